// Copyright (C) 2025, ovpn-dev. All rights reserved.
// See the file LICENSE for licensing terms.

package calculator

import (
	"context"
	"fmt"

	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"

	"github.com/ovpn-dev/first-solana-dev/codec"
	"github.com/ovpn-dev/first-solana-dev/runtime"
)

// Address identifies the calculator program.
var Address = codec.CreateAddress("calculator")

// Operation opcodes.
const (
	OpAdd byte = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpPow
)

// InstructionLen is the fixed payload size: one opcode byte followed by two
// unsigned operand bytes.
const InstructionLen = 3

var _ runtime.Program = (*Processor)(nil)

// Processor is a stateless arithmetic program. It touches no accounts and
// reports results through the log only.
type Processor struct {
	log logging.Logger
}

func NewProcessor(log logging.Logger) *Processor {
	return &Processor{log: log}
}

func (p *Processor) Process(_ context.Context, _ codec.Address, _ []*runtime.AccountRef, data []byte) error {
	if len(data) < InstructionLen {
		p.log.Info("calculator received no operands")
		return nil
	}
	op := data[0]
	left := int64(data[1])
	right := int64(data[2])

	result, err := Evaluate(op, left, right)
	if err != nil {
		return err
	}
	p.log.Info("calculated",
		zap.Uint8("op", op),
		zap.Int64("left", left),
		zap.Int64("right", right),
		zap.Int64("result", result),
	)
	return nil
}

// Evaluate applies opcode op to the operands. It is pure, so callers can
// use it without constructing a [Processor].
func Evaluate(op byte, left int64, right int64) (int64, error) {
	switch op {
	case OpAdd:
		return left + right, nil
	case OpSub:
		return left - right, nil
	case OpMul:
		return left * right, nil
	case OpDiv:
		if right == 0 {
			return 0, ErrDivisionByZero
		}
		return left / right, nil
	case OpMod:
		if right == 0 {
			return 0, ErrModulusByZero
		}
		return left % right, nil
	case OpPow:
		return pow(left, right)
	default:
		return 0, fmt.Errorf("%w: opcode %d", ErrUnknownOperation, op)
	}
}

func pow(base int64, exp int64) (int64, error) {
	if exp < 0 {
		return 0, ErrNegativeExponent
	}
	result := int64(1)
	for i := int64(0); i < exp; i++ {
		result *= base
	}
	return result, nil
}
