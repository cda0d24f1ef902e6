package cosmos

import (
	"context"

	"github.com/cosmos/cosmos-sdk/crypto/hd"
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	cryptotypes "github.com/cosmos/cosmos-sdk/crypto/types"
	txtypes "github.com/cosmos/cosmos-sdk/types/tx"
	"github.com/openweb3-io/keplr-go/signer"
	"github.com/pkg/errors"
)

// CosmosHubCoinType is the BIP-44 coin type of the cosmos hub derivation path.
const CosmosHubCoinType = 118

type LocalSigner struct {
	key *secp256k1.PrivKey
}

func NewLocalSigner(key *secp256k1.PrivKey) signer.TxSigner {
	return &LocalSigner{key}
}

// NewLocalSignerFromMnemonic derives the key at m/44'/118'/0'/0/{index}.
func NewLocalSignerFromMnemonic(mnemonic string, index uint32) (signer.TxSigner, error) {
	hdPath := hd.CreateHDPath(CosmosHubCoinType, 0, index).String()
	derived, err := hd.Secp256k1.Derive()(mnemonic, "", hdPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive key from mnemonic")
	}
	key, ok := hd.Secp256k1.Generate()(derived).(*secp256k1.PrivKey)
	if !ok {
		return nil, errors.New("unexpected private key type")
	}
	return NewLocalSigner(key), nil
}

func (s *LocalSigner) PublicKey(ctx context.Context) (cryptotypes.PubKey, error) {
	return s.key.PubKey(), nil
}

func (s *LocalSigner) Sign(ctx context.Context, doc *txtypes.SignDoc) ([]byte, error) {
	bz, err := doc.Marshal()
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode sign doc")
	}
	return s.key.Sign(bz)
}
