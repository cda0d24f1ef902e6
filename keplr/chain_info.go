package keplr

import (
	"context"

	xc "github.com/openweb3-io/keplr-go/types"
	"go.uber.org/zap"
)

const (
	// CoinType is the BIP-44 coin type suggested for every chain.
	CoinType = 118
	// CoinDecimals is used for every suggested currency.
	CoinDecimals = 6
	// RestPort replaces the rpc port when no rest endpoint is configured.
	RestPort = 1317
)

type Currency struct {
	CoinDenom        string `json:"coinDenom" yaml:"coinDenom"`
	CoinMinimalDenom string `json:"coinMinimalDenom" yaml:"coinMinimalDenom"`
	CoinDecimals     int    `json:"coinDecimals" yaml:"coinDecimals"`
	CoinGeckoID      string `json:"coinGeckoId,omitempty" yaml:"coinGeckoId,omitempty"`
}

type BIP44 struct {
	CoinType int `json:"coinType" yaml:"coinType"`
}

type Bech32Config struct {
	Bech32PrefixAccAddr  string `json:"bech32PrefixAccAddr" yaml:"bech32PrefixAccAddr"`
	Bech32PrefixAccPub   string `json:"bech32PrefixAccPub" yaml:"bech32PrefixAccPub"`
	Bech32PrefixValAddr  string `json:"bech32PrefixValAddr" yaml:"bech32PrefixValAddr"`
	Bech32PrefixValPub   string `json:"bech32PrefixValPub" yaml:"bech32PrefixValPub"`
	Bech32PrefixConsAddr string `json:"bech32PrefixConsAddr" yaml:"bech32PrefixConsAddr"`
	Bech32PrefixConsPub  string `json:"bech32PrefixConsPub" yaml:"bech32PrefixConsPub"`
}

func NewBech32Config(prefix string) Bech32Config {
	return Bech32Config{
		Bech32PrefixAccAddr:  prefix,
		Bech32PrefixAccPub:   prefix + "pub",
		Bech32PrefixValAddr:  prefix + "valoper",
		Bech32PrefixValPub:   prefix + "valoperpub",
		Bech32PrefixConsAddr: prefix + "valcons",
		Bech32PrefixConsPub:  prefix + "valconspub",
	}
}

// ChainInfo is the chain description Keplr accepts in experimentalSuggestChain.
type ChainInfo struct {
	ChainID       string       `json:"chainId" yaml:"chainId"`
	ChainName     string       `json:"chainName" yaml:"chainName"`
	RPC           string       `json:"rpc" yaml:"rpc"`
	REST          string       `json:"rest" yaml:"rest"`
	BIP44         BIP44        `json:"bip44" yaml:"bip44"`
	Bech32Config  Bech32Config `json:"bech32Config" yaml:"bech32Config"`
	Currencies    []Currency   `json:"currencies" yaml:"currencies"`
	FeeCurrencies []Currency   `json:"feeCurrencies" yaml:"feeCurrencies"`
	StakeCurrency Currency     `json:"stakeCurrency" yaml:"stakeCurrency"`
}

// NewChainInfo translates a chain config into Keplr's shape. The gas denom is
// used for every currency, and doubles as the price lookup id.
func NewChainInfo(chain *xc.ChainConfig) (*ChainInfo, error) {
	prefix := chain.AddressKind.CosmosPrefix()
	if prefix == "" {
		return nil, xc.WrapErrf(xc.ErrInvalidChainConfig, "chain %s doesn't have a valid cosmos address prefix", chain.ChainID)
	}

	rest, err := restEndpoint(chain)
	if err != nil {
		return nil, err
	}

	currency := Currency{
		CoinDenom:        chain.GasDenom,
		CoinMinimalDenom: chain.GasDenom,
		CoinDecimals:     CoinDecimals,
		CoinGeckoID:      chain.GasDenom,
	}

	return &ChainInfo{
		ChainID:       chain.ChainID.String(),
		ChainName:     chain.ChainID.String(),
		RPC:           chain.RPCEndpoint,
		REST:          rest,
		BIP44:         BIP44{CoinType: CoinType},
		Bech32Config:  NewBech32Config(prefix),
		Currencies:    []Currency{currency},
		FeeCurrencies: []Currency{currency},
		StakeCurrency: currency,
	}, nil
}

// restEndpoint passes a configured rest endpoint through and otherwise uses
// the rpc endpoint on RestPort.
func restEndpoint(chain *xc.ChainConfig) (string, error) {
	if chain.RestEndpoint != "" || chain.RPCEndpoint == "" {
		return chain.RestEndpoint, nil
	}
	rest, err := xc.SetPortInURL(chain.RPCEndpoint, RestPort)
	if err != nil {
		return "", xc.WrapErr(xc.ErrInvalidChainConfig, err)
	}
	return rest, nil
}

// AddChain suggests chain to the wallet. It does not touch any registry; of
// the options only WithLogger applies.
func AddChain(ctx context.Context, wallet Wallet, chain *xc.ChainConfig, o ...Option) error {
	logger := newOptions(o...).logger

	if !wallet.IsPresent() {
		return xc.ErrWalletNotFound
	}

	info, err := NewChainInfo(chain)
	if err != nil {
		return err
	}

	if err := wallet.ExperimentalSuggestChain(ctx, info); err != nil {
		return xc.WrapErr(xc.ErrChainRegistrationFailed, err)
	}

	logger.Info("suggested chain",
		zap.String("chain_id", info.ChainID),
		zap.String("rpc", info.RPC),
		zap.String("rest", info.REST),
	)
	return nil
}
