package signer

import (
	"context"

	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	cryptotypes "github.com/cosmos/cosmos-sdk/crypto/types"
	txtypes "github.com/cosmos/cosmos-sdk/types/tx"
	signingtypes "github.com/cosmos/cosmos-sdk/types/tx/signing"
	"github.com/openweb3-io/keplr-go/blockchain/cosmos/address"
	xc "github.com/openweb3-io/keplr-go/types"
	"github.com/pkg/errors"
)

// TxSigner signs cosmos transactions in direct mode.
type TxSigner interface {
	// Sign returns the raw signature over the full SignDoc.
	Sign(ctx context.Context, doc *txtypes.SignDoc) ([]byte, error)
	PublicKey(ctx context.Context) (cryptotypes.PubKey, error)
}

// PublicKeyAny packs the signer's public key for use in a SignerInfo.
func PublicKeyAny(ctx context.Context, s TxSigner) (*codectypes.Any, error) {
	pubKey, err := s.PublicKey(ctx)
	if err != nil {
		return nil, err
	}
	packed, err := codectypes.NewAnyWithValue(pubKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to pack public key")
	}
	return packed, nil
}

func SignerInfo(ctx context.Context, s TxSigner, sequence uint64, mode signingtypes.SignMode) (*txtypes.SignerInfo, error) {
	pubKey, err := PublicKeyAny(ctx, s)
	if err != nil {
		return nil, err
	}
	return &txtypes.SignerInfo{
		PublicKey: pubKey,
		ModeInfo: &txtypes.ModeInfo{
			Sum: &txtypes.ModeInfo_Single_{
				Single: &txtypes.ModeInfo_Single{Mode: mode},
			},
		},
		Sequence: sequence,
	}, nil
}

// Address derives the signer's address on chain.
func Address(ctx context.Context, s TxSigner, chain *xc.ChainConfig) (xc.Address, error) {
	pubKey, err := s.PublicKey(ctx)
	if err != nil {
		return "", err
	}
	builder, err := address.NewAddressBuilder(chain)
	if err != nil {
		return "", err
	}
	return builder.GetAddressFromPublicKey(pubKey.Bytes())
}
