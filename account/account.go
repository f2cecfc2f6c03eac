// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Zatoichi Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/zatoichi-labs/plasmacashd/fault"
	"github.com/zatoichi-labs/plasmacashd/util"
)

// enumeration of supported key algorithms
const (
	// list of valid algorithms
	Nothing = iota // zero keytype **Just for Testing**
	ED25519 = iota
	// end of list (one greater than last item)
	algorithmLimit = iota
)

// miscellaneous constants
const (
	checksumLength = 4

	// bits in key code starting from LSB
	publicKeyCode = 0x01
	testKeyCode   = 0x02

	algorithmShift = 4 // shift 4 bits to get algorithm
)

// Account - base type for accounts
//
// the sender and receiver identity on every token transfer
type Account struct {
	AccountInterface
}

// AccountInterface - polymorphic interface over the signature algorithm
//
// implement this to substitute an alternate signing scheme without
// touching the transfer records or the token state machine
type AccountInterface interface {
	KeyType() int
	PublicKeyBytes() []byte
	CheckSignature(message []byte, signature Signature) error
	Bytes() []byte
	String() string
	MarshalText() ([]byte, error)
	IsTesting() bool
}

// ED25519Account - for ed25519 signatures
type ED25519Account struct {
	Test      bool
	PublicKey []byte
}

// NothingAccount - just for debugging
type NothingAccount struct {
	Test      bool
	PublicKey []byte
}

// AccountFromBase58 - this converts a Base58 encoded string and returns an account
//
// one of the specific account types are returned using the base "AccountInterface"
// interface type to allow individual methods to be called.
func AccountFromBase58(accountBase58Encoded string) (*Account, error) {
	// Decode the account
	accountDecoded := util.FromBase58(accountBase58Encoded)
	if 0 == len(accountDecoded) {
		return nil, fault.ErrCannotDecodeAccount
	}

	// Parse the key variant
	keyVariant, keyVariantLength := util.FromVarint64(accountDecoded)

	// Check key type
	if 0 == keyVariantLength || keyVariant&publicKeyCode != publicKeyCode {
		return nil, fault.ErrNotPublicKey
	}

	// compute algorithm
	keyAlgorithm := keyVariant >> algorithmShift
	if keyAlgorithm >= algorithmLimit {
		return nil, fault.ErrInvalidKeyType
	}

	// network selection
	isTest := 0 != keyVariant&testKeyCode

	// Compute key length
	keyLength := len(accountDecoded) - keyVariantLength - checksumLength
	if keyLength <= 0 {
		return nil, fault.ErrInvalidKeyLength
	}

	// Checksum
	checksumStart := len(accountDecoded) - checksumLength
	checksum := sha3.Sum256(accountDecoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], accountDecoded[checksumStart:]) {
		return nil, fault.ErrChecksumMismatch
	}

	publicKey := accountDecoded[keyVariantLength:checksumStart]
	return accountFromPublicKey(keyAlgorithm, isTest, publicKey)
}

// AccountFromBytes - this converts a byte encoded buffer and returns an account
//
// one of the specific account types are returned using the base "AccountInterface"
// interface type to allow individual methods to be called.
func AccountFromBytes(accountBytes []byte) (*Account, error) {

	// Parse the key variant
	keyVariant, keyVariantLength := util.FromVarint64(accountBytes)

	// Check key type
	if 0 == keyVariantLength || keyVariant&publicKeyCode != publicKeyCode {
		return nil, fault.ErrNotPublicKey
	}

	// compute algorithm
	keyAlgorithm := keyVariant >> algorithmShift
	if keyAlgorithm >= algorithmLimit {
		return nil, fault.ErrInvalidKeyType
	}

	// network selection
	isTest := 0 != keyVariant&testKeyCode

	// Compute key length
	keyLength := len(accountBytes) - keyVariantLength
	if keyLength <= 0 {
		return nil, fault.ErrInvalidKeyLength
	}

	publicKey := accountBytes[keyVariantLength:]
	return accountFromPublicKey(keyAlgorithm, isTest, publicKey)
}

// internal: wrap a raw public key in the correct account type
func accountFromPublicKey(keyAlgorithm uint64, isTest bool, publicKey []byte) (*Account, error) {
	switch keyAlgorithm {
	case ED25519:
		if ed25519.PublicKeySize != len(publicKey) {
			return nil, fault.ErrInvalidKeyLength
		}
		return &Account{
			AccountInterface: &ED25519Account{
				Test:      isTest,
				PublicKey: publicKey,
			},
		}, nil
	case Nothing:
		if 2 != len(publicKey) {
			return nil, fault.ErrInvalidKeyLength
		}
		return &Account{
			AccountInterface: &NothingAccount{
				Test:      isTest,
				PublicKey: publicKey,
			},
		}, nil
	default:
		return nil, fault.ErrInvalidKeyType
	}
}

// UnmarshalText - convert a Base58 JSON form back to an account
func (account *Account) UnmarshalText(s []byte) error {
	a, err := AccountFromBase58(string(s))
	if nil != err {
		return err
	}
	account.AccountInterface = a.AccountInterface
	return nil
}

// ED25519
// -------

// KeyType - key type code (see enumeration above)
func (account *ED25519Account) KeyType() int {
	return ED25519
}

// PublicKeyBytes - fetch the public key as byte slice
func (account *ED25519Account) PublicKeyBytes() []byte {
	return account.PublicKey[:]
}

// CheckSignature - check the signature of a message
func (account *ED25519Account) CheckSignature(message []byte, signature Signature) error {

	if ed25519.SignatureSize != len(signature) {
		return fault.ErrInvalidSignature
	}

	if !ed25519.Verify(account.PublicKey[:], message, signature) {
		return fault.ErrInvalidSignature
	}
	return nil
}

// Bytes - byte slice for encoded key
func (account *ED25519Account) Bytes() []byte {
	keyVariant := byte(ED25519<<algorithmShift) | publicKeyCode
	if account.Test {
		keyVariant |= testKeyCode
	}
	return append([]byte{keyVariant}, account.PublicKey[:]...)
}

// String - base58 encoding of encoded key
func (account *ED25519Account) String() string {
	buffer := account.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return util.ToBase58(buffer)
}

// MarshalText - convert an account to its Base58 JSON form
func (account ED25519Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// IsTesting - return whether the public key is in test mode or not
func (account ED25519Account) IsTesting() bool {
	return account.Test
}

// Nothing
// -------

// KeyType - key type code (see enumeration above)
func (account *NothingAccount) KeyType() int {
	return Nothing
}

// PublicKeyBytes - fetch the public key as byte slice
func (account *NothingAccount) PublicKeyBytes() []byte {
	return account.PublicKey[:]
}

// CheckSignature - check the signature of a message
func (account *NothingAccount) CheckSignature(message []byte, signature Signature) error {
	return fault.ErrInvalidSignature
}

// Bytes - byte slice for encoded key
func (account *NothingAccount) Bytes() []byte {
	keyVariant := byte(Nothing<<algorithmShift) | publicKeyCode
	if account.Test {
		keyVariant |= testKeyCode
	}
	return append([]byte{keyVariant}, account.PublicKey[:]...)
}

// String - base58 encoding of encoded key
func (account *NothingAccount) String() string {
	buffer := account.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return util.ToBase58(buffer)
}

// MarshalText - convert an account to its Base58 JSON form
func (account NothingAccount) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// IsTesting - return whether the public key is in test mode or not
func (account NothingAccount) IsTesting() bool {
	return account.Test
}
