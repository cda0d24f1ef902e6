//go:build !(js && wasm)

package keplr

import (
	"context"

	xc "github.com/openweb3-io/keplr-go/types"
)

// ExtensionWallet is only reachable from a browser build; elsewhere the
// extension is always reported missing.
type ExtensionWallet struct{}

var _ Wallet = &ExtensionWallet{}

func NewExtensionWallet() *ExtensionWallet {
	return &ExtensionWallet{}
}

func (w *ExtensionWallet) IsPresent() bool {
	return false
}

func (w *ExtensionWallet) Enable(context.Context, xc.ChainID) error {
	return xc.ErrWalletNotFound
}

func (w *ExtensionWallet) GetOfflineSigner(context.Context, xc.ChainID) (OfflineSigner, error) {
	return nil, xc.ErrWalletNotFound
}

func (w *ExtensionWallet) GetKey(context.Context, xc.ChainID) (*Key, error) {
	return nil, xc.ErrWalletNotFound
}

func (w *ExtensionWallet) ExperimentalSuggestChain(context.Context, *ChainInfo) error {
	return xc.ErrWalletNotFound
}

func (w *ExtensionWallet) OnKeystoreChange(func()) func() {
	return func() {}
}
