// Copyright (C) 2025, ovpn-dev. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"fmt"

	"github.com/ava-labs/avalanchego/utils/hashing"
	"github.com/mr-tron/base58"
)

const AddressLen = 32

// Address represents the 32 byte identity of a ledger account. Accounts
// controlled by a keypair use the raw public key bytes as their address.
type Address [AddressLen]byte

// EmptyAddress is the system identity. Fresh accounts are owned by it and
// the account-creation service is addressed through it.
var EmptyAddress = Address{}

// ToAddress returns [Address] with bytes set to b. Inputs longer than
// AddressLen are truncated.
func ToAddress(b []byte) Address {
	var a Address
	copy(a[:], b)
	return a
}

// CreateAddress returns the deterministic [Address] for a named program.
func CreateAddress(name string) Address {
	return Address(hashing.ComputeHash256Array([]byte(name)))
}

// StringToAddress returns the Address whose base58 form is s.
func StringToAddress(s string) (Address, error) {
	b, err := base58.Decode(s)
	if err != nil {
		return EmptyAddress, fmt.Errorf("%w: %s", ErrInvalidAddress, err)
	}
	if len(b) != AddressLen {
		return EmptyAddress, fmt.Errorf("%w: decoded to %d bytes", ErrInvalidAddress, len(b))
	}
	return ToAddress(b), nil
}

// String implements fmt.Stringer.
func (a Address) String() string {
	return base58.Encode(a[:])
}

// MarshalText returns the base58 representation of a.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText parses a base58-encoded address.
func (a *Address) UnmarshalText(input []byte) error {
	addr, err := StringToAddress(string(input))
	if err != nil {
		return err
	}
	*a = addr
	return nil
}
