package signer

import (
	"context"
	"fmt"

	xc "github.com/openweb3-io/keplr-go/types"
)

const (
	KindKeplr = "keplr"
	KindLocal = "local"
)

type Options struct {
	failoverSignerCreator SignerCreator
}

type Option func(*Options)

func WithFailoverSignerCreator(v SignerCreator) Option {
	return func(o *Options) {
		o.failoverSignerCreator = v
	}
}

// SignerCreator builds a signer for chainID. The meaning of key depends on the
// signer kind, e.g. a mnemonic for local signers; wallet backed signers ignore it.
type SignerCreator = func(ctx context.Context, chainID xc.ChainID, key string) (TxSigner, error)

type signerProvider struct {
	opts       *Options
	creatorMap map[string]SignerCreator
}

func NewSignerProvider(o ...Option) SignerProvider {
	opts := &Options{}

	for _, opt := range o {
		opt(opts)
	}

	return &signerProvider{
		opts:       opts,
		creatorMap: make(map[string]SignerCreator),
	}
}

func (p *signerProvider) Register(kind string, creator SignerCreator) {
	p.creatorMap[kind] = creator
}

func (p *signerProvider) Provide(ctx context.Context, kind string, chainID xc.ChainID, key string) (TxSigner, error) {
	creator, ok := p.creatorMap[kind]
	if !ok {
		if p.opts.failoverSignerCreator == nil {
			return nil, fmt.Errorf("signer creator for kind %s not found", kind)
		}

		creator = p.opts.failoverSignerCreator
	}

	return creator(ctx, chainID, key)
}
