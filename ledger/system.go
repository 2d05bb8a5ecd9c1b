// Copyright (C) 2025, ovpn-dev. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"context"
	"fmt"

	"github.com/ava-labs/avalanchego/utils/logging"
	smath "github.com/ava-labs/avalanchego/utils/math"
	"go.uber.org/zap"

	"github.com/ovpn-dev/first-solana-dev/runtime"
)

var _ runtime.AccountCreator = (*SystemService)(nil)

// SystemService provisions accounts on behalf of programs. It is the only
// component allowed to move balance between unrelated accounts, so programs
// route all account creation through it.
type SystemService struct {
	log logging.Logger
}

func NewSystemService(log logging.Logger) *SystemService {
	return &SystemService{log: log}
}

// CreateAccount funds a fresh account from req.Funder and hands ownership to
// req.Owner. Both the target and the funder must have signed and be writable.
// The target must not already exist.
func (s *SystemService) CreateAccount(_ context.Context, req *runtime.CreateAccountRequest) error {
	if req.Target.Account.Exists() {
		return fmt.Errorf("%w: %s", ErrAccountExists, req.Target.Address)
	}
	if err := runtime.RequireSigner(req.Target); err != nil {
		return err
	}
	if err := runtime.RequireWritable(req.Target); err != nil {
		return err
	}
	if err := runtime.RequireSigner(req.Funder); err != nil {
		return err
	}
	if err := runtime.RequireWritable(req.Funder); err != nil {
		return err
	}
	if err := runtime.RequireFunds(req.Funder, req.Balance); err != nil {
		return err
	}

	remaining, err := smath.Sub(req.Funder.Account.Balance, req.Balance)
	if err != nil {
		return err
	}
	req.Funder.Account.Balance = remaining
	req.Target.Account.Balance = req.Balance
	req.Target.Account.Owner = req.Owner
	req.Target.Account.Data = make([]byte, req.Size)

	s.log.Debug("created account",
		zap.Stringer("target", req.Target.Address),
		zap.Stringer("funder", req.Funder.Address),
		zap.Stringer("owner", req.Owner),
		zap.Uint64("balance", req.Balance),
		zap.Uint64("size", req.Size),
	)
	return nil
}
