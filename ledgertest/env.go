// Copyright (C) 2025, ovpn-dev. All rights reserved.
// See the file LICENSE for licensing terms.

package ledgertest

import (
	"context"

	"github.com/ava-labs/avalanchego/utils/logging"

	"github.com/ovpn-dev/first-solana-dev/codec"
	"github.com/ovpn-dev/first-solana-dev/crypto/ed25519"
	"github.com/ovpn-dev/first-solana-dev/ledger"
	"github.com/ovpn-dev/first-solana-dev/programs/calculator"
	"github.com/ovpn-dev/first-solana-dev/programs/counter"
	"github.com/ovpn-dev/first-solana-dev/runtime"
	"github.com/ovpn-dev/first-solana-dev/trace"
)

// DefaultPayerBalance is airdropped to the payer of a fresh [Env].
const DefaultPayerBalance uint64 = 1_000_000_000

// Env is a fully wired ledger with all known programs registered and a
// funded payer, for use in tests.
type Env struct {
	Ledger  *ledger.Ledger
	Runtime *runtime.Runtime
	Payer   *Keypair
}

func New(log logging.Logger) (*Env, error) {
	tracer, err := trace.New(&trace.Config{Enabled: false})
	if err != nil {
		return nil, err
	}
	rt, err := runtime.New(log, tracer)
	if err != nil {
		return nil, err
	}
	l, err := ledger.New(log, rt)
	if err != nil {
		return nil, err
	}
	rt.Register(counter.Address, counter.NewProcessor(log, ledger.NewSystemService(log), runtime.StandardRent{}))
	rt.Register(calculator.Address, calculator.NewProcessor(log))

	payer, err := NewKeypair()
	if err != nil {
		return nil, err
	}
	if err := l.Airdrop(payer.Address(), DefaultPayerBalance); err != nil {
		return nil, err
	}
	return &Env{
		Ledger:  l,
		Runtime: rt,
		Payer:   payer,
	}, nil
}

// Submit verifies the transaction's signatures and applies it to the ledger.
func (e *Env) Submit(ctx context.Context, tx *Transaction) error {
	if err := tx.Verify(); err != nil {
		return err
	}
	return e.Ledger.Submit(ctx, tx.Instruction)
}

// Keypair bundles an ed25519 private key with the address derived from it.
type Keypair struct {
	priv ed25519.PrivateKey
}

func NewKeypair() (*Keypair, error) {
	priv, err := ed25519.GeneratePrivateKey()
	if err != nil {
		return nil, err
	}
	return &Keypair{priv: priv}, nil
}

func KeypairFromSeed(seed []byte) (*Keypair, error) {
	priv, err := ed25519.PrivateKeyFromSeed(seed)
	if err != nil {
		return nil, err
	}
	return &Keypair{priv: priv}, nil
}

func (k *Keypair) PublicKey() ed25519.PublicKey {
	return k.priv.PublicKey()
}

// Address returns the account address of the keypair, which is its public
// key.
func (k *Keypair) Address() codec.Address {
	return codec.Address(k.priv.PublicKey())
}

func (k *Keypair) Sign(msg []byte) ed25519.Signature {
	return ed25519.Sign(msg, k.priv)
}
