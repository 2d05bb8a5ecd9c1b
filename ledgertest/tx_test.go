// Copyright (C) 2025, ovpn-dev. All rights reserved.
// See the file LICENSE for licensing terms.

package ledgertest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ovpn-dev/first-solana-dev/crypto"
	"github.com/ovpn-dev/first-solana-dev/runtime"
)

func signedTx(t *testing.T, k *Keypair) *Transaction {
	tx := NewTransaction(&runtime.Instruction{
		Accounts: []runtime.AccountMeta{
			{Address: k.Address(), Signer: true, Writable: true},
		},
		Data: []byte{1, 2, 3},
	})
	require.NoError(t, tx.Sign(k))
	return tx
}

func TestTransactionVerify(t *testing.T) {
	require := require.New(t)

	k, err := NewKeypair()
	require.NoError(err)

	require.NoError(signedTx(t, k).Verify())
}

func TestTransactionNoSigners(t *testing.T) {
	require := require.New(t)

	tx := NewTransaction(&runtime.Instruction{Data: []byte{1}})
	require.NoError(tx.Verify())
}

func TestTransactionMissingSignature(t *testing.T) {
	require := require.New(t)

	k, err := NewKeypair()
	require.NoError(err)

	tx := NewTransaction(&runtime.Instruction{
		Accounts: []runtime.AccountMeta{
			{Address: k.Address(), Signer: true},
		},
	})
	require.ErrorIs(tx.Verify(), crypto.ErrInvalidSignature)
}

func TestTransactionWrongKey(t *testing.T) {
	require := require.New(t)

	k, err := NewKeypair()
	require.NoError(err)
	other, err := NewKeypair()
	require.NoError(err)

	tx := NewTransaction(&runtime.Instruction{
		Accounts: []runtime.AccountMeta{
			{Address: k.Address(), Signer: true},
		},
	})
	require.NoError(tx.Sign(other))
	require.ErrorIs(tx.Verify(), crypto.ErrInvalidSignature)
}

func TestTransactionTamperedAfterSign(t *testing.T) {
	require := require.New(t)

	k, err := NewKeypair()
	require.NoError(err)

	tx := signedTx(t, k)
	tx.Instruction.Data[0] = 9
	require.ErrorIs(tx.Verify(), crypto.ErrInvalidSignature)
}

func TestKeypairFromSeed(t *testing.T) {
	require := require.New(t)

	seed := make([]byte, 32)
	for i := range seed {
		seed[i] = byte(i)
	}
	first, err := KeypairFromSeed(seed)
	require.NoError(err)
	second, err := KeypairFromSeed(seed)
	require.NoError(err)
	require.Equal(first.Address(), second.Address())

	_, err = KeypairFromSeed(seed[:16])
	require.ErrorIs(err, crypto.ErrInvalidPrivateKey)
}
