// Copyright (C) 2025, ovpn-dev. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import "errors"

var ErrInvalidAddress = errors.New("invalid address")
