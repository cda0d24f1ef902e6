//go:build !(js && wasm)

package keplr

import (
	"bytes"
	"context"

	txv1beta1 "cosmossdk.io/api/cosmos/tx/v1beta1"
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	cryptotypes "github.com/cosmos/cosmos-sdk/crypto/types"
	txtypes "github.com/cosmos/cosmos-sdk/types/tx"
	"github.com/openweb3-io/keplr-go/signer"
	xc "github.com/openweb3-io/keplr-go/types"
)

// PublicKey converts the reported key bytes into a typed public key.
func (k *Key) PublicKey() (cryptotypes.PubKey, error) {
	switch k.Algo {
	case AlgoSecp256k1:
		if len(k.PubKey) != secp256k1.PubKeySize {
			return nil, xc.WrapErrf(xc.ErrUnsupportedKeyAlgo, "invalid secp256k1 public key length %d", len(k.PubKey))
		}
		return &secp256k1.PubKey{Key: bytes.Clone(k.PubKey)}, nil
	default:
		return nil, xc.WrapErrf(xc.ErrUnsupportedKeyAlgo, "%s", k.Algo)
	}
}

// Signer is a signer.TxSigner backed by one registry session.
type Signer struct {
	registry *Registry
	handle   string
}

var _ signer.TxSigner = &Signer{}

// NewSigner registers chainID with the wallet and wraps the new session.
func NewSigner(ctx context.Context, registry *Registry, chainID xc.ChainID) (*Signer, error) {
	handle, err := registry.Register(ctx, chainID)
	if err != nil {
		return nil, err
	}
	return &Signer{registry: registry, handle: handle}, nil
}

func (s *Signer) Handle() string {
	return s.handle
}

func (s *Signer) Sign(ctx context.Context, doc *txtypes.SignDoc) ([]byte, error) {
	return s.registry.Sign(ctx, s.handle, NewAPISignDoc(doc))
}

func (s *Signer) PublicKey(ctx context.Context) (cryptotypes.PubKey, error) {
	key, err := s.registry.PublicKey(ctx, s.handle)
	if err != nil {
		return nil, err
	}
	return key.PublicKey()
}

// NewAPISignDoc copies a gogoproto SignDoc into the api message the wallet
// boundary works with.
func NewAPISignDoc(doc *txtypes.SignDoc) *txv1beta1.SignDoc {
	return &txv1beta1.SignDoc{
		BodyBytes:     doc.BodyBytes,
		AuthInfoBytes: doc.AuthInfoBytes,
		ChainId:       doc.ChainId,
		AccountNumber: doc.AccountNumber,
	}
}

// NewSignerCreator plugs keplr sessions into a signer.SignerProvider. The key
// argument is unused: the wallet owns the keys.
func NewSignerCreator(registry *Registry) signer.SignerCreator {
	return func(ctx context.Context, chainID xc.ChainID, _ string) (signer.TxSigner, error) {
		return NewSigner(ctx, registry, chainID)
	}
}
