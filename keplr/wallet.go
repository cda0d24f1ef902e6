// Package keplr adapts the Keplr browser extension into cosmos transaction
// signers. All key material stays inside the extension; this package only
// shapes requests and responses and remembers which signer belongs to which
// session handle.
package keplr

import (
	"bytes"
	"context"

	txv1beta1 "cosmossdk.io/api/cosmos/tx/v1beta1"
	xc "github.com/openweb3-io/keplr-go/types"
)

//go:generate mockgen -destination=mocks/mock_wallet.go -package=mocks . Wallet,OfflineSigner

// Wallet is the surface of the extension used by this package.
type Wallet interface {
	// IsPresent reports whether the extension is installed and reachable.
	IsPresent() bool
	// Enable asks the user to authorize the chain.
	Enable(ctx context.Context, chainID xc.ChainID) error
	GetOfflineSigner(ctx context.Context, chainID xc.ChainID) (OfflineSigner, error)
	GetKey(ctx context.Context, chainID xc.ChainID) (*Key, error)
	ExperimentalSuggestChain(ctx context.Context, info *ChainInfo) error
}

// OfflineSigner is the per chain signing capability handed out by the wallet.
type OfflineSigner interface {
	SignDirect(ctx context.Context, signerAddress string, doc *txv1beta1.SignDoc) (*DirectSignResponse, error)
}

const AlgoSecp256k1 = "secp256k1"

// Key is the key descriptor the wallet reports for a chain.
type Key struct {
	Name               string `json:"name"`
	Algo               string `json:"algo"`
	PubKey             []byte `json:"pubKey"`
	Address            []byte `json:"address"`
	Bech32Address      string `json:"bech32Address"`
	EthereumHexAddress string `json:"ethereumHexAddress"`
	IsNanoLedger       bool   `json:"isNanoLedger"`
	IsKeystone         bool   `json:"isKeystone"`
}

func (k *Key) clone() *Key {
	c := *k
	c.PubKey = bytes.Clone(k.PubKey)
	c.Address = bytes.Clone(k.Address)
	return &c
}

type PubKeyJSON struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// StdSignature carries the signature as base64 text, as the wallet returns it.
type StdSignature struct {
	PubKey    PubKeyJSON `json:"pub_key"`
	Signature string     `json:"signature"`
}

// DirectSignResponse is the wallet's reply to signDirect. Signed is the doc
// the wallet actually signed, which may differ from the request.
type DirectSignResponse struct {
	Signed    *txv1beta1.SignDoc `json:"signed"`
	Signature StdSignature       `json:"signature"`
}
