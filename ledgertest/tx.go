// Copyright (C) 2025, ovpn-dev. All rights reserved.
// See the file LICENSE for licensing terms.

package ledgertest

import (
	"fmt"

	"github.com/ovpn-dev/first-solana-dev/codec"
	"github.com/ovpn-dev/first-solana-dev/crypto"
	"github.com/ovpn-dev/first-solana-dev/crypto/ed25519"
	"github.com/ovpn-dev/first-solana-dev/runtime"
)

// Transaction pairs an instruction with the signatures that authorize it.
type Transaction struct {
	Instruction *runtime.Instruction

	sigs map[codec.Address]ed25519.Signature
}

func NewTransaction(instruction *runtime.Instruction) *Transaction {
	return &Transaction{
		Instruction: instruction,
		sigs:        make(map[codec.Address]ed25519.Signature),
	}
}

// Sign records k's signature over the instruction bytes.
func (t *Transaction) Sign(k *Keypair) error {
	msg, err := t.Instruction.Bytes()
	if err != nil {
		return err
	}
	t.sigs[k.Address()] = k.Sign(msg)
	return nil
}

// Verify checks that every account marked as a signer carries a valid
// signature over the instruction bytes.
func (t *Transaction) Verify() error {
	signers := 0
	for _, meta := range t.Instruction.Accounts {
		if meta.Signer {
			signers++
		}
	}
	if signers == 0 {
		return nil
	}

	msg, err := t.Instruction.Bytes()
	if err != nil {
		return err
	}
	batch := ed25519.NewBatch(signers)
	for _, meta := range t.Instruction.Accounts {
		if !meta.Signer {
			continue
		}
		sig, ok := t.sigs[meta.Address]
		if !ok {
			return fmt.Errorf("%w: no signature for %s", crypto.ErrInvalidSignature, meta.Address)
		}
		batch.Add(msg, ed25519.PublicKey(meta.Address), sig)
	}
	if !batch.Verify() {
		return crypto.ErrInvalidSignature
	}
	return nil
}
