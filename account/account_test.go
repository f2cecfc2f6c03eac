// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Zatoichi Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"golang.org/x/crypto/ed25519"

	"github.com/zatoichi-labs/plasmacashd/account"
	"github.com/zatoichi-labs/plasmacashd/fault"
)

// test accounts in raw form
//
// public key bytes are fixed so the Base58 forms are stable
var testPublicKey = []byte{
	0x95, 0xb5, 0xb8, 0x78, 0x9d, 0x1f, 0xcb, 0xbb,
	0x59, 0x92, 0x87, 0xee, 0xba, 0xba, 0x4b, 0x2c,
	0x96, 0xeb, 0x3f, 0xac, 0xfa, 0x52, 0x59, 0x1a,
	0xcc, 0x86, 0x93, 0x47, 0x0b, 0x48, 0x78, 0xf8,
}

// round trip a live account through bytes and Base58
func TestAccountRoundTrip(t *testing.T) {

	acc := &account.Account{
		AccountInterface: &account.ED25519Account{
			Test:      false,
			PublicKey: testPublicKey,
		},
	}

	fromBytes, err := account.AccountFromBytes(acc.Bytes())
	if nil != err {
		t.Fatalf("from bytes error: %s", err)
	}
	if !bytes.Equal(fromBytes.PublicKeyBytes(), testPublicKey) {
		t.Errorf("from bytes: got: %x  expected: %x", fromBytes.PublicKeyBytes(), testPublicKey)
	}

	fromBase58, err := account.AccountFromBase58(acc.String())
	if nil != err {
		t.Fatalf("from base58 error: %s", err)
	}
	if !bytes.Equal(fromBase58.PublicKeyBytes(), testPublicKey) {
		t.Errorf("from base58: got: %x  expected: %x", fromBase58.PublicKeyBytes(), testPublicKey)
	}
	if fromBase58.IsTesting() {
		t.Error("live account decoded as testing")
	}
}

// JSON form must survive a round trip
func TestAccountJSON(t *testing.T) {

	acc := &account.Account{
		AccountInterface: &account.ED25519Account{
			Test:      true,
			PublicKey: testPublicKey,
		},
	}

	buffer, err := json.Marshal(acc)
	if nil != err {
		t.Fatalf("marshal error: %s", err)
	}

	var restored account.Account
	err = json.Unmarshal(buffer, &restored)
	if nil != err {
		t.Fatalf("unmarshal error: %s", err)
	}

	if !bytes.Equal(restored.PublicKeyBytes(), acc.PublicKeyBytes()) {
		t.Errorf("json round trip: got: %x  expected: %x", restored.PublicKeyBytes(), acc.PublicKeyBytes())
	}
	if !restored.IsTesting() {
		t.Error("testing flag lost in json round trip")
	}
}

// a corrupted Base58 string must be rejected by the checksum
func TestAccountChecksum(t *testing.T) {

	acc := &account.Account{
		AccountInterface: &account.ED25519Account{
			Test:      false,
			PublicKey: testPublicKey,
		},
	}

	s := []byte(acc.String())
	if s[10] == 'z' {
		s[10] = 'x'
	} else {
		s[10] = 'z'
	}
	_, err := account.AccountFromBase58(string(s))
	if nil == err {
		t.Error("corrupted base58 account did not fail")
	}
}

// generated keypair must sign and verify
func TestKeypairSign(t *testing.T) {

	privateKey, err := account.NewKeypair(true)
	if nil != err {
		t.Fatalf("keypair error: %s", err)
	}

	acc := privateKey.Account()
	message := []byte("transfer token 123 to somebody")

	signature := privateKey.Sign(message)
	if ed25519.SignatureSize != len(signature) {
		t.Fatalf("signature size: got: %d  expected: %d", len(signature), ed25519.SignatureSize)
	}

	err = acc.CheckSignature(message, signature)
	if nil != err {
		t.Errorf("check signature error: %s", err)
	}

	// corrupt one byte of the signature
	signature[0] ^= 0x01
	err = acc.CheckSignature(message, signature)
	if fault.ErrInvalidSignature != err {
		t.Errorf("corrupted signature: got: %v  expected: %v", err, fault.ErrInvalidSignature)
	}
}

// private key text round trip
func TestPrivateKeyRoundTrip(t *testing.T) {

	privateKey, err := account.NewKeypair(false)
	if nil != err {
		t.Fatalf("keypair error: %s", err)
	}

	restored, err := account.PrivateKeyFromBase58(privateKey.String())
	if nil != err {
		t.Fatalf("from base58 error: %s", err)
	}

	if !bytes.Equal(restored.PrivateKeyBytes(), privateKey.PrivateKeyBytes()) {
		t.Errorf("round trip: got: %x  expected: %x", restored.PrivateKeyBytes(), privateKey.PrivateKeyBytes())
	}

	// a public account string is not a private key
	_, err = account.PrivateKeyFromBase58(privateKey.Account().String())
	if fault.ErrNotPrivateKey != err {
		t.Errorf("public as private: got: %v  expected: %v", err, fault.ErrNotPrivateKey)
	}
}

// nothing accounts can never verify a signature
func TestNothingAccount(t *testing.T) {

	acc := &account.Account{
		AccountInterface: &account.NothingAccount{
			Test:      true,
			PublicKey: []byte{0x12, 0x34},
		},
	}

	err := acc.CheckSignature([]byte("anything"), account.Signature{0x01})
	if fault.ErrInvalidSignature != err {
		t.Errorf("nothing account verified: got: %v", err)
	}

	fromBase58, err := account.AccountFromBase58(acc.String())
	if nil != err {
		t.Fatalf("from base58 error: %s", err)
	}
	if account.Nothing != fromBase58.KeyType() {
		t.Errorf("key type: got: %d  expected: %d", fromBase58.KeyType(), account.Nothing)
	}
}
