// Copyright (C) 2025, ovpn-dev. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import (
	"github.com/near/borsh-go"

	"github.com/ovpn-dev/first-solana-dev/codec"
)

// Instruction is the submission envelope: the program to call, the accounts
// the call may touch, and the program-specific payload.
type Instruction struct {
	Program  codec.Address
	Accounts []AccountMeta
	Data     []byte
}

// Bytes returns the canonical borsh serialization of i. Transactions sign
// over these bytes.
func (i *Instruction) Bytes() ([]byte, error) {
	return borsh.Serialize(*i)
}

// ParseInstruction decodes an envelope produced by Bytes.
func ParseInstruction(b []byte) (*Instruction, error) {
	instr := new(Instruction)
	if err := borsh.Deserialize(instr, b); err != nil {
		return nil, err
	}
	return instr, nil
}
