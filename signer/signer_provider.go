package signer

import (
	"context"

	xc "github.com/openweb3-io/keplr-go/types"
)

type SignerProvider interface {
	Register(kind string, creator SignerCreator)
	Provide(ctx context.Context, kind string, chainID xc.ChainID, key string) (TxSigner, error)
}
