// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Zatoichi Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord_test

import (
	"testing"

	"golang.org/x/crypto/ed25519"

	"github.com/zatoichi-labs/plasmacashd/account"
	"github.com/zatoichi-labs/plasmacashd/transactionrecord"
)

// deterministic test keypairs
//
// seeds are fixed so that test failures print stable values
type keypair struct {
	seed       []byte
	privateKey ed25519.PrivateKey
	publicKey  ed25519.PublicKey
}

func makeKeypair(tag byte) keypair {
	seed := make([]byte, ed25519.SeedSize)
	for i := range seed {
		seed[i] = tag
	}
	privateKey := ed25519.NewKeyFromSeed(seed)
	return keypair{
		seed:       seed,
		privateKey: privateKey,
		publicKey:  privateKey.Public().(ed25519.PublicKey),
	}
}

var (
	alice   = makeKeypair(0x01)
	bob     = makeKeypair(0x02)
	charlie = makeKeypair(0x03)
)

// wrap a public key in a testnet account
func makeAccount(publicKey []byte) *account.Account {
	return &account.Account{
		AccountInterface: &account.ED25519Account{
			Test:      true,
			PublicKey: publicKey,
		},
	}
}

// build a signed transfer, failing the test on any error
func makeTransfer(t *testing.T, sender keypair, receiver keypair, tokenId transactionrecord.TokenId, previousBlock transactionrecord.BlockNumber) *transactionrecord.TokenTransfer {
	t.Helper()

	unsigned := transactionrecord.NewUnsignedTransfer(makeAccount(receiver.publicKey), tokenId, previousBlock)
	message, err := unsigned.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	signature := ed25519.Sign(sender.privateKey, message)
	transfer, err := unsigned.AddSignature(makeAccount(sender.publicKey), signature)
	if nil != err {
		t.Fatalf("add signature error: %s", err)
	}
	return transfer
}
