package types

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	basev1beta1 "cosmossdk.io/api/cosmos/base/v1beta1"
	"cosmossdk.io/math"
	"github.com/shopspring/decimal"
)

// ChainID identifies a cosmos network, e.g. "cosmoshub-4".
type ChainID string

func (id ChainID) String() string {
	return string(id)
}

type CosmosAddrKind struct {
	Prefix string `mapstructure:"prefix" json:"prefix" yaml:"prefix" toml:"prefix"`
}

type EthAddrKind struct{}

// AddrKind selects how addresses are encoded on a chain. Exactly one of the
// variants is set.
type AddrKind struct {
	Cosmos *CosmosAddrKind `mapstructure:"cosmos,omitempty" json:"cosmos,omitempty" yaml:"cosmos,omitempty" toml:"cosmos,omitempty"`
	Eth    *EthAddrKind    `mapstructure:"eth,omitempty" json:"eth,omitempty" yaml:"eth,omitempty" toml:"eth,omitempty"`
}

func NewCosmosAddrKind(prefix string) AddrKind {
	return AddrKind{Cosmos: &CosmosAddrKind{Prefix: prefix}}
}

func NewEthAddrKind() AddrKind {
	return AddrKind{Eth: &EthAddrKind{}}
}

// CosmosPrefix returns the bech32 prefix, or "" when the chain does not use
// cosmos style addresses.
func (k AddrKind) CosmosPrefix() string {
	if k.Cosmos == nil {
		return ""
	}
	return k.Cosmos.Prefix
}

func (k AddrKind) IsEth() bool {
	return k.Eth != nil
}

func (k AddrKind) String() string {
	switch {
	case k.Cosmos != nil:
		return "cosmos(" + k.Cosmos.Prefix + ")"
	case k.Eth != nil:
		return "eth"
	}
	return "unknown"
}

// UnmarshalJSON accepts both {"cosmos":{"prefix":"..."}} and the bare "eth" form.
func (k *AddrKind) UnmarshalJSON(p []byte) error {
	var s string
	if err := json.Unmarshal(p, &s); err == nil {
		if s != "eth" {
			return fmt.Errorf("invalid address kind: %s", s)
		}
		*k = NewEthAddrKind()
		return nil
	}
	type plain AddrKind
	var v plain
	if err := json.Unmarshal(p, &v); err != nil {
		return err
	}
	*k = AddrKind(v)
	return nil
}

// ChainConfig describes a cosmos network the way the wallet adapter needs it.
type ChainConfig struct {
	ChainID      ChainID `mapstructure:"chain_id" json:"chain_id" yaml:"chain_id" toml:"chain_id"`
	RPCEndpoint  string  `mapstructure:"rpc_endpoint,omitempty" json:"rpc_endpoint,omitempty" yaml:"rpc_endpoint,omitempty" toml:"rpc_endpoint,omitempty"`
	GRPCEndpoint string  `mapstructure:"grpc_endpoint,omitempty" json:"grpc_endpoint,omitempty" yaml:"grpc_endpoint,omitempty" toml:"grpc_endpoint,omitempty"`
	// if not specified, will fallback to GRPCEndpoint
	GRPCWebEndpoint string `mapstructure:"grpc_web_endpoint,omitempty" json:"grpc_web_endpoint,omitempty" yaml:"grpc_web_endpoint,omitempty" toml:"grpc_web_endpoint,omitempty"`
	// needed for wallets like Keplr
	RestEndpoint string `mapstructure:"rest_endpoint,omitempty" json:"rest_endpoint,omitempty" yaml:"rest_endpoint,omitempty" toml:"rest_endpoint,omitempty"`
	// not micro-units, e.g. 0.025 would be a typical value
	GasPrice    string   `mapstructure:"gas_price,omitempty" json:"gas_price,omitempty" yaml:"gas_price,omitempty" toml:"gas_price,omitempty"`
	GasDenom    string   `mapstructure:"gas_denom" json:"gas_denom" yaml:"gas_denom" toml:"gas_denom"`
	AddressKind AddrKind `mapstructure:"address_kind" json:"address_kind" yaml:"address_kind" toml:"address_kind"`
}

func (c *ChainConfig) GRPCWeb() string {
	if c.GRPCWebEndpoint != "" {
		return c.GRPCWebEndpoint
	}
	return c.GRPCEndpoint
}

// IBCClientRevision parses the revision from a "{name}-{revision}" chain id,
// returning 0 when the id carries none.
func (c *ChainConfig) IBCClientRevision() uint64 {
	parts := strings.Split(string(c.ChainID), "-")
	revision, err := strconv.ParseUint(parts[len(parts)-1], 10, 64)
	if err != nil {
		return 0
	}
	return revision
}

// Fee is the gas fee for gasLimit at the configured gas price, rounded up.
func (c *ChainConfig) Fee(gasLimit uint64) (*basev1beta1.Coin, error) {
	if c.GasDenom == "" {
		return nil, WrapErrf(ErrInvalidChainConfig, "chain %s has no gas denom", c.ChainID)
	}
	price, err := decimal.NewFromString(c.GasPrice)
	if err != nil {
		return nil, WrapErr(ErrInvalidChainConfig, fmt.Errorf("gas price %q: %w", c.GasPrice, err))
	}
	if price.IsNegative() {
		return nil, WrapErrf(ErrInvalidChainConfig, "negative gas price %s", c.GasPrice)
	}
	amount := price.Mul(decimal.NewFromBigInt(new(big.Int).SetUint64(gasLimit), 0)).Ceil()
	return &basev1beta1.Coin{Denom: c.GasDenom, Amount: math.NewIntFromBigInt(amount.BigInt()).String()}, nil
}
