// Copyright (C) 2025, ovpn-dev. All rights reserved.
// See the file LICENSE for licensing terms.

package counter

import (
	"encoding/binary"
	"fmt"

	"github.com/ovpn-dev/first-solana-dev/consts"
)

// RecordSize is the exact byte length of a serialized counter record.
const RecordSize = consts.Uint64Len

// Record is the persistent state of one counter account.
type Record struct {
	Count uint64
}

// Bytes returns the 8 byte little-endian serialization of r.
func (r Record) Bytes() []byte {
	b := make([]byte, RecordSize)
	binary.LittleEndian.PutUint64(b, r.Count)
	return b
}

// ParseRecord decodes a counter record from the leading RecordSize bytes of
// b. Inputs shorter than RecordSize fail with ErrMalformedState; trailing
// bytes are ignored so a record can live in a larger data region.
func ParseRecord(b []byte) (Record, error) {
	if len(b) < RecordSize {
		return Record{}, fmt.Errorf("%w: have %d bytes, need %d", ErrMalformedState, len(b), RecordSize)
	}
	return Record{Count: binary.LittleEndian.Uint64(b)}, nil
}
