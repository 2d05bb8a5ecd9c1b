// Copyright (C) 2025, ovpn-dev. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import (
	"context"

	"github.com/ovpn-dev/first-solana-dev/codec"
)

// Program processes one instruction against the ordered account references
// attached to the call. Implementations must leave every referenced account
// unchanged when they return an error.
type Program interface {
	// Process executes [data] against [accounts]. [programID] is the address
	// the program is registered under.
	Process(ctx context.Context, programID codec.Address, accounts []*AccountRef, data []byte) error
}

// CreateAccountRequest asks the account-creation service to provision
// [Target]: move [Balance] from [Funder], allocate [Size] zero bytes of
// data, and hand ownership to [Owner].
type CreateAccountRequest struct {
	Funder  *AccountRef
	Target  *AccountRef
	Balance uint64
	Size    uint64
	Owner   codec.Address
}

// AccountCreator provisions fresh accounts. The ledger's system service is
// the production implementation; tests substitute their own.
type AccountCreator interface {
	CreateAccount(ctx context.Context, req *CreateAccountRequest) error
}

// Rent prices account storage.
type Rent interface {
	// MinimumBalance returns the balance an account holding [size] bytes of
	// data must carry to stay alive.
	MinimumBalance(size uint64) (uint64, error)
}
