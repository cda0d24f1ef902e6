//go:build js && wasm

// Command climb-wasm exposes the Keplr signer registry to JavaScript. Every
// exported function returns a Promise; failures reject with an Error carrying
// the numeric `code` of the error kind.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"syscall/js"

	txv1beta1 "cosmossdk.io/api/cosmos/tx/v1beta1"
	"github.com/openweb3-io/keplr-go/keplr"
	xc "github.com/openweb3-io/keplr-go/types"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err == nil {
		zap.ReplaceGlobals(logger)
	}

	wallet := keplr.NewExtensionWallet()
	registry := keplr.NewRegistry(wallet, keplr.WithLogger(zap.L()))

	global := js.Global()
	global.Set("climbRegisterSigner", js.FuncOf(func(_ js.Value, args []js.Value) any {
		chainID := argString(args, 0)
		return promise(func(ctx context.Context) (any, error) {
			return registry.Register(ctx, xc.ChainID(chainID))
		})
	}))
	global.Set("climbSign", js.FuncOf(func(_ js.Value, args []js.Value) any {
		handle := argString(args, 0)
		doc := signDocFromJS(arg(args, 1))
		return promise(func(ctx context.Context) (any, error) {
			sig, err := registry.Sign(ctx, handle, doc)
			if err != nil {
				return nil, err
			}
			return uint8Array(sig), nil
		})
	}))
	global.Set("climbPublicKey", js.FuncOf(func(_ js.Value, args []js.Value) any {
		handle := argString(args, 0)
		return promise(func(ctx context.Context) (any, error) {
			key, err := registry.PublicKey(ctx, handle)
			if err != nil {
				return nil, err
			}
			return map[string]any{
				"name":               key.Name,
				"algo":               key.Algo,
				"pubKey":             uint8Array(key.PubKey),
				"address":            uint8Array(key.Address),
				"bech32Address":      key.Bech32Address,
				"ethereumHexAddress": key.EthereumHexAddress,
				"isNanoLedger":       key.IsNanoLedger,
				"isKeystone":         key.IsKeystone,
			}, nil
		})
	}))
	global.Set("climbAddChain", js.FuncOf(func(_ js.Value, args []js.Value) any {
		raw := arg(args, 0)
		if raw.Type() != js.TypeString {
			raw = js.Global().Get("JSON").Call("stringify", raw)
		}
		text := raw.String()
		return promise(func(ctx context.Context) (any, error) {
			var chain xc.ChainConfig
			if err := json.Unmarshal([]byte(text), &chain); err != nil {
				return nil, xc.WrapErr(xc.ErrInvalidChainConfig, err)
			}
			return nil, keplr.AddChain(ctx, wallet, &chain, keplr.WithLogger(zap.L()))
		})
	}))
	global.Set("climbOnKeystoreChange", js.FuncOf(func(_ js.Value, args []js.Value) any {
		callback := arg(args, 0)
		if callback.Type() != js.TypeFunction {
			return js.Undefined()
		}
		stop := wallet.OnKeystoreChange(func() {
			callback.Invoke()
		})
		var unsubscribe js.Func
		unsubscribe = js.FuncOf(func(js.Value, []js.Value) any {
			stop()
			unsubscribe.Release()
			return nil
		})
		return unsubscribe
	}))

	zap.L().Info("climb wasm ready")
	select {}
}

func promise(fn func(ctx context.Context) (any, error)) js.Value {
	executor := js.FuncOf(func(_ js.Value, args []js.Value) any {
		resolve, reject := args[0], args[1]
		go func() {
			v, err := fn(context.Background())
			if err != nil {
				reject.Invoke(jsError(err))
				return
			}
			resolve.Invoke(v)
		}()
		return nil
	})
	defer executor.Release()
	return js.Global().Get("Promise").New(executor)
}

func jsError(err error) js.Value {
	e := js.Global().Get("Error").New(err.Error())
	var xcErr *xc.Error
	if errors.As(err, &xcErr) {
		e.Set("code", xcErr.Code)
	}
	return e
}

func signDocFromJS(v js.Value) *txv1beta1.SignDoc {
	if v.Type() != js.TypeObject {
		return &txv1beta1.SignDoc{}
	}
	doc := &txv1beta1.SignDoc{
		BodyBytes:     bytesOf(v.Get("bodyBytes")),
		AuthInfoBytes: bytesOf(v.Get("authInfoBytes")),
	}
	if chainID := v.Get("chainId"); chainID.Type() == js.TypeString {
		doc.ChainId = chainID.String()
	}
	switch n := v.Get("accountNumber"); n.Type() {
	case js.TypeNumber:
		doc.AccountNumber = uint64(n.Float())
	case js.TypeString, js.TypeObject:
		// bigint and Long both stringify to the decimal value
		if parsed, err := strconv.ParseUint(js.Global().Get("String").Invoke(n).String(), 10, 64); err == nil {
			doc.AccountNumber = parsed
		}
	}
	return doc
}

func arg(args []js.Value, i int) js.Value {
	if i >= len(args) {
		return js.Undefined()
	}
	return args[i]
}

func argString(args []js.Value, i int) string {
	v := arg(args, i)
	if v.Type() != js.TypeString {
		return ""
	}
	return v.String()
}

func bytesOf(v js.Value) []byte {
	if v.Type() != js.TypeObject {
		return nil
	}
	bz := make([]byte, v.Get("length").Int())
	js.CopyBytesToGo(bz, v)
	return bz
}

func uint8Array(bz []byte) js.Value {
	arr := js.Global().Get("Uint8Array").New(len(bz))
	js.CopyBytesToJS(arr, bz)
	return arr
}
