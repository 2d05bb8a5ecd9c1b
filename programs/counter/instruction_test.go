// Copyright (C) 2025, ovpn-dev. All rights reserved.
// See the file LICENSE for licensing terms.

package counter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInstructionRoundTrip(t *testing.T) {
	require := require.New(t)

	instrs := []Instruction{
		Initialize{InitialValue: 0},
		Initialize{InitialValue: 42},
		Initialize{InitialValue: ^uint64(0)},
		Increment{},
	}
	for _, instr := range instrs {
		b, err := MarshalInstruction(instr)
		require.NoError(err)

		parsed, err := UnmarshalInstruction(b)
		require.NoError(err)
		require.Equal(instr, parsed)
	}
}

func TestInstructionWireFormat(t *testing.T) {
	require := require.New(t)

	b, err := MarshalInstruction(Initialize{InitialValue: 42})
	require.NoError(err)
	require.Equal([]byte{0, 42, 0, 0, 0, 0, 0, 0, 0}, b)

	b, err = MarshalInstruction(Increment{})
	require.NoError(err)
	require.Equal([]byte{1}, b)
}

func TestUnmarshalInstructionInvalid(t *testing.T) {
	tests := map[string][]byte{
		"Empty":               nil,
		"UnknownTag":          {2},
		"TruncatedInitialize": {0, 42, 0, 0},
		"OversizedInitialize": {0, 42, 0, 0, 0, 0, 0, 0, 0, 0},
		"IncrementWithJunk":   {1, 9},
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := UnmarshalInstruction(input)
			require.ErrorIs(t, err, ErrInvalidInstruction)
		})
	}
}
