package types

// Address is a human readable address, bech32 or hex depending on the chain.
type Address string

func (a Address) String() string {
	return string(a)
}

// AddressBuilder derives addresses from public keys.
type AddressBuilder interface {
	GetAddressFromPublicKey(publicKeyBytes []byte) (Address, error)
}
