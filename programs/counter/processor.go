// Copyright (C) 2025, ovpn-dev. All rights reserved.
// See the file LICENSE for licensing terms.

package counter

import (
	"context"
	"fmt"

	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"

	"github.com/ovpn-dev/first-solana-dev/codec"
	"github.com/ovpn-dev/first-solana-dev/runtime"

	smath "github.com/ava-labs/avalanchego/utils/math"
)

// Address is the identity the program is conventionally registered under.
var Address = codec.CreateAddress("counter")

var _ runtime.Program = (*Processor)(nil)

// Processor is the counter program. Initialize provisions a fresh account
// through the creation service and stores the starting value; Increment
// advances the stored count with checked arithmetic.
type Processor struct {
	log     logging.Logger
	creator runtime.AccountCreator
	rent    runtime.Rent
}

func NewProcessor(log logging.Logger, creator runtime.AccountCreator, rent runtime.Rent) *Processor {
	return &Processor{
		log:     log,
		creator: creator,
		rent:    rent,
	}
}

// Process decodes one instruction and routes it to its handler.
func (p *Processor) Process(ctx context.Context, programID codec.Address, accounts []*runtime.AccountRef, data []byte) error {
	instr, err := UnmarshalInstruction(data)
	if err != nil {
		return err
	}
	switch t := instr.(type) {
	case Initialize:
		return p.initialize(ctx, programID, accounts, t.InitialValue)
	case Increment:
		return p.increment(programID, accounts)
	default:
		return fmt.Errorf("%w: unhandled instruction %T", ErrInvalidInstruction, instr)
	}
}

// initialize expects accounts in the order: counter record, funding
// account, creation service.
func (p *Processor) initialize(ctx context.Context, programID codec.Address, accounts []*runtime.AccountRef, initialValue uint64) error {
	iter := runtime.NewAccountIter(accounts)
	target, err := iter.Next()
	if err != nil {
		return err
	}
	funder, err := iter.Next()
	if err != nil {
		return err
	}
	if _, err := iter.Next(); err != nil {
		return err
	}

	balance, err := p.rent.MinimumBalance(RecordSize)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrProvisioningFailed, err)
	}
	if err := p.creator.CreateAccount(ctx, &runtime.CreateAccountRequest{
		Funder:  funder,
		Target:  target,
		Balance: balance,
		Size:    RecordSize,
		Owner:   programID,
	}); err != nil {
		return fmt.Errorf("%w: %s", ErrProvisioningFailed, err)
	}

	record := Record{Count: initialValue}
	copy(target.Account.Data, record.Bytes())
	p.log.Debug("counter initialized",
		zap.Stringer("account", target.Address),
		zap.Uint64("count", record.Count),
	)
	return nil
}

// increment expects the counter record as the only account. Only ownership
// gates the write: the account must already belong to this program.
func (p *Processor) increment(programID codec.Address, accounts []*runtime.AccountRef) error {
	iter := runtime.NewAccountIter(accounts)
	target, err := iter.Next()
	if err != nil {
		return err
	}
	if err := runtime.RequireOwner(target, programID); err != nil {
		return err
	}

	record, err := ParseRecord(target.Account.Data)
	if err != nil {
		return err
	}
	count, err := smath.Add(record.Count, uint64(1))
	if err != nil {
		return fmt.Errorf("%w: count is %d", ErrArithmeticOverflow, record.Count)
	}
	record.Count = count

	copy(target.Account.Data, record.Bytes())
	p.log.Debug("counter incremented",
		zap.Stringer("account", target.Address),
		zap.Uint64("count", record.Count),
	)
	return nil
}
