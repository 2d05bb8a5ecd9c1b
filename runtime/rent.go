// Copyright (C) 2025, ovpn-dev. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import (
	smath "github.com/ava-labs/avalanchego/utils/math"
)

const (
	// accountStorageOverhead charges for the account metadata stored
	// alongside the data region.
	accountStorageOverhead = 128

	unitsPerByteYear = 3480
	exemptionYears   = 2
)

var _ Rent = (*StandardRent)(nil)

// StandardRent prices storage at a flat rate per byte-year, charged up
// front for enough years to make the account rent exempt.
type StandardRent struct{}

func (StandardRent) MinimumBalance(size uint64) (uint64, error) {
	paidBytes, err := smath.Add(size, uint64(accountStorageOverhead))
	if err != nil {
		return 0, err
	}
	perYear, err := smath.Mul(paidBytes, uint64(unitsPerByteYear))
	if err != nil {
		return 0, err
	}
	return smath.Mul(perYear, uint64(exemptionYears))
}
