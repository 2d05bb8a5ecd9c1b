// Copyright (C) 2025, ovpn-dev. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import (
	"fmt"

	"github.com/ovpn-dev/first-solana-dev/codec"
)

// Account is the stored record behind an address: the funds it holds, the
// program that owns it, and its raw data region.
type Account struct {
	Balance uint64
	Owner   codec.Address
	Data    []byte
}

// Exists reports whether the account has ever been provisioned or funded. A
// fresh account is all zero: no balance, no data, system owner.
func (a *Account) Exists() bool {
	return a.Balance != 0 || len(a.Data) != 0 || a.Owner != codec.EmptyAddress
}

// AccountRef is the per-call handle to an account. Signer and Writable
// record what the submitter authorized for this call; programs read them
// but never change them.
type AccountRef struct {
	Address  codec.Address
	Account  *Account
	Signer   bool
	Writable bool
}

// AccountMeta declares how a caller wants an account attached to an
// instruction. The ledger resolves metas to [AccountRef]s at execution time.
type AccountMeta struct {
	Address  codec.Address
	Signer   bool
	Writable bool
}

// AccountIter walks an ordered account reference list. Position is
// protocol: each program documents the order it expects.
type AccountIter struct {
	refs []*AccountRef
	next int
}

func NewAccountIter(refs []*AccountRef) *AccountIter {
	return &AccountIter{refs: refs}
}

// Next returns the next account reference, or ErrNotEnoughAccounts once the
// list is exhausted.
func (it *AccountIter) Next() (*AccountRef, error) {
	if it.next >= len(it.refs) {
		return nil, fmt.Errorf("%w: have %d", ErrNotEnoughAccounts, len(it.refs))
	}
	ref := it.refs[it.next]
	it.next++
	return ref, nil
}

// RequireOwner returns ErrIncorrectOwner unless ref is owned by owner.
func RequireOwner(ref *AccountRef, owner codec.Address) error {
	if ref.Account.Owner != owner {
		return fmt.Errorf("%w: %s is owned by %s", ErrIncorrectOwner, ref.Address, ref.Account.Owner)
	}
	return nil
}

// RequireSigner returns ErrMissingSignature unless ref signed the call.
func RequireSigner(ref *AccountRef) error {
	if !ref.Signer {
		return fmt.Errorf("%w: %s", ErrMissingSignature, ref.Address)
	}
	return nil
}

// RequireWritable returns ErrNotWritable unless ref was attached writable.
func RequireWritable(ref *AccountRef) error {
	if !ref.Writable {
		return fmt.Errorf("%w: %s", ErrNotWritable, ref.Address)
	}
	return nil
}

// RequireFunds returns ErrInsufficientFunds unless ref holds at least
// amount.
func RequireFunds(ref *AccountRef, amount uint64) error {
	if ref.Account.Balance < amount {
		return fmt.Errorf(
			"%w: %s holds %d, need %d",
			ErrInsufficientFunds,
			ref.Address,
			ref.Account.Balance,
			amount,
		)
	}
	return nil
}
