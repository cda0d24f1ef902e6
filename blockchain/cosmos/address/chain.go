package address

import (
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	cryptotypes "github.com/cosmos/cosmos-sdk/crypto/types"
)

// GetPublicKey wraps compressed secp256k1 key bytes.
func GetPublicKey(publicKeyBytes []byte) cryptotypes.PubKey {
	return &secp256k1.PubKey{Key: publicKeyBytes}
}
