// Copyright (C) 2025, ovpn-dev. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"context"
	"errors"
	"sync"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/utils/logging"
	smath "github.com/ava-labs/avalanchego/utils/math"
	"github.com/near/borsh-go"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ovpn-dev/first-solana-dev/codec"
	"github.com/ovpn-dev/first-solana-dev/runtime"
)

const accountPrefix = 0x0

func accountKey(addr codec.Address) []byte {
	k := make([]byte, 1+codec.AddressLen)
	k[0] = accountPrefix
	copy(k[1:], addr[:])
	return k
}

// Ledger stores account state and applies program calls to it. Each call
// executes against working copies of the referenced accounts, so the stored
// state only ever reflects calls that succeeded.
type Ledger struct {
	log     logging.Logger
	runtime *runtime.Runtime

	registry *prometheus.Registry
	metrics  *metrics

	lock sync.Mutex
	db   database.Database
}

// New creates a ledger backed by an in-memory database.
func New(log logging.Logger, rt *runtime.Runtime) (*Ledger, error) {
	return NewWithDB(log, rt, memdb.New())
}

func NewWithDB(log logging.Logger, rt *runtime.Runtime, db database.Database) (*Ledger, error) {
	registry, metrics, err := newMetrics()
	if err != nil {
		return nil, err
	}
	return &Ledger{
		log:      log,
		runtime:  rt,
		registry: registry,
		metrics:  metrics,
		db:       db,
	}, nil
}

func (l *Ledger) Close() error {
	return l.db.Close()
}

func (l *Ledger) Gatherer() prometheus.Gatherer {
	return l.registry
}

// GetAccount returns the stored state of addr. Addresses that were never
// written return an empty account.
func (l *Ledger) GetAccount(addr codec.Address) (*runtime.Account, error) {
	l.lock.Lock()
	defer l.lock.Unlock()

	return l.getAccount(addr)
}

func (l *Ledger) getAccount(addr codec.Address) (*runtime.Account, error) {
	b, err := l.db.Get(accountKey(addr))
	if errors.Is(err, database.ErrNotFound) {
		return &runtime.Account{}, nil
	}
	if err != nil {
		return nil, err
	}
	account := new(runtime.Account)
	if err := borsh.Deserialize(account, b); err != nil {
		return nil, err
	}
	return account, nil
}

func (l *Ledger) putAccount(w database.KeyValueWriter, addr codec.Address, account *runtime.Account) error {
	b, err := borsh.Serialize(*account)
	if err != nil {
		return err
	}
	return w.Put(accountKey(addr), b)
}

// Airdrop mints value into addr outside of any program call.
func (l *Ledger) Airdrop(addr codec.Address, value uint64) error {
	if value == 0 {
		return ErrAirdropValue
	}

	l.lock.Lock()
	defer l.lock.Unlock()

	account, err := l.getAccount(addr)
	if err != nil {
		return err
	}
	balance, err := smath.Add(account.Balance, value)
	if err != nil {
		return err
	}
	account.Balance = balance
	if err := l.putAccount(l.db, addr, account); err != nil {
		return err
	}

	l.metrics.airdrops.Inc()
	l.log.Debug("airdropped",
		zap.Stringer("to", addr),
		zap.Uint64("value", value),
		zap.Uint64("balance", balance),
	)
	return nil
}

// Submit executes instruction against the current state. Writable accounts
// are persisted only if the call succeeds; a failed call leaves the ledger
// untouched.
func (l *Ledger) Submit(ctx context.Context, instruction *runtime.Instruction) error {
	l.lock.Lock()
	defer l.lock.Unlock()

	l.metrics.callsSubmitted.Inc()

	refs := make([]*runtime.AccountRef, len(instruction.Accounts))
	existed := make([]bool, len(instruction.Accounts))
	for i, meta := range instruction.Accounts {
		account, err := l.getAccount(meta.Address)
		if err != nil {
			return err
		}
		existed[i] = account.Exists()
		refs[i] = &runtime.AccountRef{
			Address:  meta.Address,
			Account:  account,
			Signer:   meta.Signer,
			Writable: meta.Writable,
		}
	}

	if err := l.runtime.Execute(ctx, instruction.Program, refs, instruction.Data); err != nil {
		l.metrics.callsReverted.Inc()
		return err
	}

	batch := l.db.NewBatch()
	defer batch.Reset()

	created := 0
	for i, ref := range refs {
		if !ref.Writable {
			continue
		}
		if err := l.putAccount(batch, ref.Address, ref.Account); err != nil {
			return err
		}
		if !existed[i] && ref.Account.Exists() {
			created++
		}
	}
	if err := batch.Write(); err != nil {
		return err
	}

	l.metrics.accountsCreated.Add(float64(created))
	return nil
}
