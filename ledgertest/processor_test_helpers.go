// Copyright (C) 2025, ovpn-dev. All rights reserved.
// See the file LICENSE for licensing terms.

package ledgertest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ovpn-dev/first-solana-dev/codec"
	"github.com/ovpn-dev/first-solana-dev/runtime"
)

// ProcessorTest is a single parameterized program call. It invokes Process
// with the passed accounts and payload and checks that all assertions pass.
type ProcessorTest struct {
	Name string

	Program runtime.Program

	ProgramID codec.Address
	Accounts  []*runtime.AccountRef
	Data      []byte

	ExpectedErr error

	Assertion func(*testing.T, []*runtime.AccountRef)
}

// Run executes the [ProcessorTest] and makes sure all assertions pass.
func (test *ProcessorTest) Run(ctx context.Context, t *testing.T) {
	t.Run(test.Name, func(t *testing.T) {
		require := require.New(t)

		err := test.Program.Process(ctx, test.ProgramID, test.Accounts, test.Data)
		require.ErrorIs(err, test.ExpectedErr)

		if test.Assertion != nil {
			test.Assertion(t, test.Accounts)
		}
	})
}
