// Copyright (C) 2025, ovpn-dev. All rights reserved.
// See the file LICENSE for licensing terms.

package counter

import (
	"fmt"

	"github.com/near/borsh-go"

	"github.com/ovpn-dev/first-solana-dev/consts"
)

const (
	initializeTag byte = iota
	incrementTag
)

// Instruction is the closed set of operations the counter program accepts.
// The unexported marker keeps the sum sealed so dispatch switches stay
// exhaustive.
type Instruction interface {
	isInstruction()
}

// Initialize provisions the counter account and stores the starting value.
type Initialize struct {
	InitialValue uint64
}

// Increment advances the stored count by one.
type Increment struct{}

func (Initialize) isInstruction() {}
func (Increment) isInstruction()  {}

// MarshalInstruction returns the canonical wire form of instr: a one byte
// tag followed by the borsh serialization of the payload.
func MarshalInstruction(instr Instruction) ([]byte, error) {
	switch t := instr.(type) {
	case Initialize:
		payload, err := borsh.Serialize(t)
		if err != nil {
			return nil, err
		}
		return append([]byte{initializeTag}, payload...), nil
	case Increment:
		return []byte{incrementTag}, nil
	default:
		return nil, fmt.Errorf("%w: unknown type %T", ErrInvalidInstruction, instr)
	}
}

// UnmarshalInstruction decodes the wire form produced by
// MarshalInstruction. Empty input, an unknown tag, or a payload of the
// wrong length fail with ErrInvalidInstruction.
func UnmarshalInstruction(b []byte) (Instruction, error) {
	if len(b) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrInvalidInstruction)
	}
	tag, payload := b[0], b[1:]
	switch tag {
	case initializeTag:
		if len(payload) != consts.Uint64Len {
			return nil, fmt.Errorf(
				"%w: initialize payload is %d bytes, need %d",
				ErrInvalidInstruction,
				len(payload),
				consts.Uint64Len,
			)
		}
		var instr Initialize
		if err := borsh.Deserialize(&instr, payload); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidInstruction, err)
		}
		return instr, nil
	case incrementTag:
		if len(payload) != 0 {
			return nil, fmt.Errorf(
				"%w: increment carries no payload, got %d bytes",
				ErrInvalidInstruction,
				len(payload),
			)
		}
		return Increment{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown tag %d", ErrInvalidInstruction, tag)
	}
}
