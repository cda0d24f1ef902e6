//go:build js && wasm

package keplr

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"syscall/js"

	txv1beta1 "cosmossdk.io/api/cosmos/tx/v1beta1"
	xc "github.com/openweb3-io/keplr-go/types"
	"github.com/pkg/errors"
)

const keystoreChangeEvent = "keplr_keystorechange"

// ExtensionWallet talks to window.keplr.
type ExtensionWallet struct {
	window js.Value
}

var _ Wallet = &ExtensionWallet{}

func NewExtensionWallet() *ExtensionWallet {
	return &ExtensionWallet{window: js.Global()}
}

func (w *ExtensionWallet) keplr() js.Value {
	return w.window.Get("keplr")
}

func (w *ExtensionWallet) IsPresent() bool {
	k := w.keplr()
	return !k.IsUndefined() && !k.IsNull()
}

func (w *ExtensionWallet) Enable(ctx context.Context, chainID xc.ChainID) error {
	_, err := w.call(ctx, "enable", chainID.String())
	return err
}

func (w *ExtensionWallet) GetOfflineSigner(ctx context.Context, chainID xc.ChainID) (OfflineSigner, error) {
	v, err := w.call(ctx, "getOfflineSigner", chainID.String())
	if err != nil {
		return nil, err
	}
	if v.IsUndefined() || v.IsNull() {
		return nil, errors.Errorf("no offline signer for %s", chainID)
	}
	return &jsOfflineSigner{value: v}, nil
}

func (w *ExtensionWallet) GetKey(ctx context.Context, chainID xc.ChainID) (*Key, error) {
	v, err := w.call(ctx, "getKey", chainID.String())
	if err != nil {
		return nil, err
	}
	if v.IsUndefined() || v.IsNull() {
		return nil, errors.Errorf("no key for %s", chainID)
	}
	return &Key{
		Name:               stringField(v, "name"),
		Algo:               stringField(v, "algo"),
		PubKey:             bytesField(v, "pubKey"),
		Address:            bytesField(v, "address"),
		Bech32Address:      stringField(v, "bech32Address"),
		EthereumHexAddress: stringField(v, "ethereumHexAddress"),
		IsNanoLedger:       boolField(v, "isNanoLedger"),
		IsKeystone:         boolField(v, "isKeystone"),
	}, nil
}

func (w *ExtensionWallet) ExperimentalSuggestChain(ctx context.Context, info *ChainInfo) error {
	bz, err := json.Marshal(info)
	if err != nil {
		return errors.Wrap(err, "failed to encode chain info")
	}
	_, err = w.call(ctx, "experimentalSuggestChain", js.Global().Get("JSON").Call("parse", string(bz)))
	return err
}

// OnKeystoreChange calls fn whenever the user switches accounts in the
// extension. The returned func removes the listener.
func (w *ExtensionWallet) OnKeystoreChange(fn func()) func() {
	listener := js.FuncOf(func(js.Value, []js.Value) any {
		go fn()
		return nil
	})
	w.window.Call("addEventListener", keystoreChangeEvent, listener)
	return func() {
		w.window.Call("removeEventListener", keystoreChangeEvent, listener)
		listener.Release()
	}
}

func (w *ExtensionWallet) call(ctx context.Context, method string, args ...any) (js.Value, error) {
	if !w.IsPresent() {
		return js.Undefined(), xc.ErrWalletNotFound
	}
	v, err := invoke(w.keplr(), method, args...)
	if err != nil {
		return v, err
	}
	return await(ctx, v)
}

type jsOfflineSigner struct {
	value js.Value
}

func (s *jsOfflineSigner) SignDirect(ctx context.Context, signerAddress string, doc *txv1beta1.SignDoc) (*DirectSignResponse, error) {
	jsDoc := js.ValueOf(map[string]any{
		"bodyBytes":     uint8Array(doc.BodyBytes),
		"authInfoBytes": uint8Array(doc.AuthInfoBytes),
		"chainId":       doc.ChainId,
		"accountNumber": float64(doc.AccountNumber),
	})
	v, err := invoke(s.value, "signDirect", signerAddress, jsDoc)
	if err != nil {
		return nil, err
	}
	res, err := await(ctx, v)
	if err != nil {
		return nil, err
	}

	sig := res.Get("signature")
	if sig.IsUndefined() || sig.IsNull() {
		return nil, errors.New("sign response has no signature")
	}
	out := &DirectSignResponse{
		Signature: StdSignature{
			Signature: stringField(sig, "signature"),
		},
	}
	if pk := sig.Get("pub_key"); !pk.IsUndefined() && !pk.IsNull() {
		out.Signature.PubKey = PubKeyJSON{
			Type:  stringField(pk, "type"),
			Value: stringField(pk, "value"),
		}
	}
	if signed := res.Get("signed"); !signed.IsUndefined() && !signed.IsNull() {
		out.Signed = &txv1beta1.SignDoc{
			BodyBytes:     bytesField(signed, "bodyBytes"),
			AuthInfoBytes: bytesField(signed, "authInfoBytes"),
			ChainId:       stringField(signed, "chainId"),
			AccountNumber: uint64Field(signed, "accountNumber"),
		}
	}
	return out, nil
}

// invoke calls method on v, turning a thrown JS exception into an error.
func invoke(v js.Value, method string, args ...any) (result js.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			if jsErr, ok := r.(js.Error); ok {
				err = errors.New(jsErr.Value.Call("toString").String())
				return
			}
			err = fmt.Errorf("%v", r)
		}
	}()
	return v.Call(method, args...), nil
}

// await resolves v if it is a thenable and returns it unchanged otherwise.
// A cancelled ctx stops the wait; the promise itself keeps running.
func await(ctx context.Context, v js.Value) (js.Value, error) {
	if v.Type() != js.TypeObject || v.Get("then").Type() != js.TypeFunction {
		return v, nil
	}

	type result struct {
		value js.Value
		err   error
	}
	done := make(chan result, 1)
	onResolve := js.FuncOf(func(_ js.Value, args []js.Value) any {
		value := js.Undefined()
		if len(args) > 0 {
			value = args[0]
		}
		done <- result{value: value}
		return nil
	})
	onReject := js.FuncOf(func(_ js.Value, args []js.Value) any {
		reason := "promise rejected"
		if len(args) > 0 {
			reason = args[0].Call("toString").String()
		}
		done <- result{err: errors.New(reason)}
		return nil
	})
	release := func() {
		onResolve.Release()
		onReject.Release()
	}
	v.Call("then", onResolve, onReject)

	select {
	case r := <-done:
		release()
		return r.value, r.err
	case <-ctx.Done():
		go func() {
			<-done
			release()
		}()
		return js.Undefined(), ctx.Err()
	}
}

func uint8Array(bz []byte) js.Value {
	arr := js.Global().Get("Uint8Array").New(len(bz))
	js.CopyBytesToJS(arr, bz)
	return arr
}

func stringField(v js.Value, name string) string {
	f := v.Get(name)
	if f.Type() != js.TypeString {
		return ""
	}
	return f.String()
}

func boolField(v js.Value, name string) bool {
	f := v.Get(name)
	return f.Type() == js.TypeBoolean && f.Bool()
}

// uint64Field reads a number, a decimal string, a bigint or a Long.
func uint64Field(v js.Value, name string) uint64 {
	f := v.Get(name)
	switch f.Type() {
	case js.TypeNumber:
		return uint64(f.Float())
	case js.TypeUndefined, js.TypeNull:
		return 0
	}
	n, err := strconv.ParseUint(js.Global().Get("String").Invoke(f).String(), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func bytesField(v js.Value, name string) []byte {
	f := v.Get(name)
	if f.Type() != js.TypeObject {
		return nil
	}
	bz := make([]byte, f.Get("length").Int())
	js.CopyBytesToGo(bz, f)
	return bz
}
