// Copyright (C) 2025, ovpn-dev. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import "errors"

var (
	ErrAccountExists = errors.New("account already in use")
	ErrAirdropValue  = errors.New("airdrop value must be greater than zero")
)
