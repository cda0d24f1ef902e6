package address

import (
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	xc "github.com/openweb3-io/keplr-go/types"
)

// AddressBuilder for Cosmos
type AddressBuilder struct {
	Chain *xc.ChainConfig
}

// NewAddressBuilder creates a new Cosmos AddressBuilder
func NewAddressBuilder(chain *xc.ChainConfig) (xc.AddressBuilder, error) {
	if chain.AddressKind.CosmosPrefix() == "" && !chain.AddressKind.IsEth() {
		return nil, xc.WrapErrf(xc.ErrInvalidChainConfig, "chain %s has no address kind", chain.ChainID)
	}
	return AddressBuilder{
		Chain: chain,
	}, nil
}

// GetAddressFromPublicKey returns an Address given a compressed secp256k1 public key
func (ab AddressBuilder) GetAddressFromPublicKey(publicKeyBytes []byte) (xc.Address, error) {
	if ab.Chain.AddressKind.IsEth() {
		pubKey, err := ethcrypto.DecompressPubkey(publicKeyBytes)
		if err != nil {
			return "", xc.WrapErr(xc.ErrInvalidAddress, err)
		}
		return xc.Address(ethcrypto.PubkeyToAddress(*pubKey).Hex()), nil
	}

	publicKey := GetPublicKey(publicKeyBytes)
	rawAddress := publicKey.Address()

	err := sdk.VerifyAddressFormat(rawAddress)
	if err != nil {
		return xc.Address(""), xc.WrapErr(xc.ErrInvalidAddress, err)
	}
	bech32Addr, err := sdk.Bech32ifyAddressBytes(ab.Chain.AddressKind.CosmosPrefix(), rawAddress)
	return xc.Address(bech32Addr), err
}

// ParseAddress checks value is a valid address for kind and returns its raw bytes.
func ParseAddress(value string, kind xc.AddrKind) ([]byte, error) {
	if kind.IsEth() {
		if !common.IsHexAddress(value) {
			return nil, xc.WrapErrf(xc.ErrInvalidAddress, "not a hex address: %s", value)
		}
		return common.HexToAddress(value).Bytes(), nil
	}

	prefix := kind.CosmosPrefix()
	if prefix == "" {
		return nil, xc.WrapErrf(xc.ErrInvalidChainConfig, "address kind %s", kind)
	}
	if !strings.HasPrefix(value, prefix+"1") {
		return nil, xc.WrapErrf(xc.ErrInvalidAddress, "expected prefix %s: %s", prefix, value)
	}
	bz, err := sdk.GetFromBech32(value, prefix)
	if err != nil {
		return nil, xc.WrapErr(xc.ErrInvalidAddress, err)
	}
	if err := sdk.VerifyAddressFormat(bz); err != nil {
		return nil, xc.WrapErr(xc.ErrInvalidAddress, err)
	}
	return bz, nil
}
