// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Zatoichi Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package genesis_test

import (
	"fmt"
	"os"
	"testing"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/logger"

	"github.com/zatoichi-labs/plasmacashd/account"
	"github.com/zatoichi-labs/plasmacashd/chain"
	"github.com/zatoichi-labs/plasmacashd/fault"
	"github.com/zatoichi-labs/plasmacashd/genesis"
	"github.com/zatoichi-labs/plasmacashd/mode"
	"github.com/zatoichi-labs/plasmacashd/ownership"
	"github.com/zatoichi-labs/plasmacashd/storage"
	"github.com/zatoichi-labs/plasmacashd/transactionrecord"
)

const testingDirName = "testing"

func TestMain(m *testing.M) {
	_ = os.RemoveAll(testingDirName)
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "genesis.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	if err := logger.Initialise(logging); nil != err {
		panic(fmt.Sprintf("logger setup failed: %s", err))
	}
	if err := mode.Initialise(chain.Testing); nil != err {
		panic(fmt.Sprintf("mode setup failed: %s", err))
	}
	if err := storage.InitialiseMemory(); nil != err {
		panic(fmt.Sprintf("storage setup failed: %s", err))
	}
	if err := ownership.Initialise(storage.Pool.Tokens); nil != err {
		panic(fmt.Sprintf("ownership setup failed: %s", err))
	}

	rc := m.Run()

	_ = ownership.Finalise()
	storage.Finalise()
	_ = mode.Finalise()
	logger.Finalise()
	_ = os.RemoveAll(testingDirName)
	os.Exit(rc)
}

// self-signed deposit for one owner
func makeDeposit(t *testing.T, tag byte, tokenId transactionrecord.TokenId) *transactionrecord.TokenTransfer {
	t.Helper()

	seed := make([]byte, ed25519.SeedSize)
	for i := range seed {
		seed[i] = tag
	}
	privateKey := ed25519.NewKeyFromSeed(seed)
	owner := &account.Account{
		AccountInterface: &account.ED25519Account{
			Test:      true,
			PublicKey: privateKey.Public().(ed25519.PublicKey),
		},
	}

	unsigned := transactionrecord.NewUnsignedTransfer(owner, tokenId, transactionrecord.BlockNumber{})
	message, err := unsigned.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}
	transfer, err := unsigned.AddSignature(owner, ed25519.Sign(privateKey, message))
	if nil != err {
		t.Fatalf("add signature error: %s", err)
	}
	return transfer
}

// a valid seed applies and is idempotent on re-application
func TestApply(t *testing.T) {

	seed := []*transactionrecord.TokenTransfer{
		makeDeposit(t, 0x01, transactionrecord.NewTokenId(1)),
		makeDeposit(t, 0x02, transactionrecord.NewTokenId(2)),
		makeDeposit(t, 0x03, transactionrecord.NewTokenId(3)),
	}

	if err := genesis.Apply(seed); nil != err {
		t.Fatalf("apply error: %s", err)
	}

	for i, transfer := range seed {
		current, ok := ownership.CurrentOwnerTxn(transfer.TokenId)
		if !ok {
			t.Fatalf("%d: token absent after seed", i)
		}
		if current.Receiver.String() != transfer.Receiver.String() {
			t.Errorf("%d: owner: got: %s  expected: %s", i, current.Receiver, transfer.Receiver)
		}
	}

	// restart case: the same seed must apply cleanly again
	if err := genesis.Apply(seed); nil != err {
		t.Errorf("re-apply error: %s", err)
	}

	// a different owner for a seeded token must be refused
	conflicting := []*transactionrecord.TokenTransfer{
		makeDeposit(t, 0x04, transactionrecord.NewTokenId(1)),
	}
	if err := genesis.Apply(conflicting); fault.ErrTokenAlreadyExists != err {
		t.Errorf("conflicting seed: got: %v  expected: %v", err, fault.ErrTokenAlreadyExists)
	}
}

// duplicate token ids inside one seed list are rejected
func TestApplyDuplicate(t *testing.T) {

	seed := []*transactionrecord.TokenTransfer{
		makeDeposit(t, 0x05, transactionrecord.NewTokenId(10)),
		makeDeposit(t, 0x06, transactionrecord.NewTokenId(10)),
	}

	if err := genesis.Apply(seed); fault.ErrGenesisDuplicateToken != err {
		t.Errorf("duplicate seed: got: %v  expected: %v", err, fault.ErrGenesisDuplicateToken)
	}
}
