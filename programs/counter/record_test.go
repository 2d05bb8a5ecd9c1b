// Copyright (C) 2025, ovpn-dev. All rights reserved.
// See the file LICENSE for licensing terms.

package counter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ovpn-dev/first-solana-dev/consts"
)

func TestRecordRoundTrip(t *testing.T) {
	require := require.New(t)

	for _, count := range []uint64{0, 1, 42, 1 << 32, consts.MaxUint64} {
		record := Record{Count: count}
		b := record.Bytes()
		require.Len(b, RecordSize)

		parsed, err := ParseRecord(b)
		require.NoError(err)
		require.Equal(record, parsed)
	}
}

func TestRecordLayout(t *testing.T) {
	require := require.New(t)

	// Little-endian: the low byte comes first.
	require.Equal([]byte{42, 0, 0, 0, 0, 0, 0, 0}, Record{Count: 42}.Bytes())
}

func TestParseRecordShort(t *testing.T) {
	tests := map[string][]byte{
		"Empty":     nil,
		"OneByte":   {42},
		"SevenByte": {1, 2, 3, 4, 5, 6, 7},
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseRecord(input)
			require.ErrorIs(t, err, ErrMalformedState)
		})
	}
}

func TestParseRecordIgnoresTrailing(t *testing.T) {
	require := require.New(t)

	b := append(Record{Count: 7}.Bytes(), 0xff, 0xff)
	parsed, err := ParseRecord(b)
	require.NoError(err)
	require.Equal(uint64(7), parsed.Count)
}
