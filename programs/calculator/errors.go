// Copyright (C) 2025, ovpn-dev. All rights reserved.
// See the file LICENSE for licensing terms.

package calculator

import "errors"

var (
	ErrUnknownOperation = errors.New("unknown operation")
	ErrDivisionByZero   = errors.New("division by zero")
	ErrModulusByZero    = errors.New("modulus by zero")
	ErrNegativeExponent = errors.New("negative exponent")
)
