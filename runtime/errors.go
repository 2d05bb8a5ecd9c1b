// Copyright (C) 2025, ovpn-dev. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import "errors"

var (
	ErrProgramNotFound   = errors.New("program not found")
	ErrNotEnoughAccounts = errors.New("not enough accounts")
	ErrIncorrectOwner    = errors.New("incorrect account owner")
	ErrMissingSignature  = errors.New("missing required signature")
	ErrNotWritable       = errors.New("account not writable")
	ErrInsufficientFunds = errors.New("insufficient funds")
)
