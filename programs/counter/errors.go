// Copyright (C) 2025, ovpn-dev. All rights reserved.
// See the file LICENSE for licensing terms.

package counter

import "errors"

var (
	ErrInvalidInstruction = errors.New("invalid instruction")
	ErrMalformedState     = errors.New("malformed counter state")
	ErrProvisioningFailed = errors.New("account provisioning failed")
	ErrArithmeticOverflow = errors.New("counter overflow")
)
