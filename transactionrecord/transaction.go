// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Zatoichi Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/zatoichi-labs/plasmacashd/account"
)

// TagType - type code for transfer records
type TagType uint64

// enumerate the possible record types
// this is encoded a Varint64 at start of "Packed"
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(iota)

	// valid record types
	TokenTransferTag = TagType(iota) // single token ownership change

	// this item must be last
	InvalidTag = TagType(iota)
)

// Packed - packed records are just a byte slice
type Packed []byte

// byte sizes for various fields
const (
	maxSignatureLength = 1024
)

// UnsignedTransfer - the fields of a token transfer that are signed
//
// transient value, only exists as the intermediate step before
// AddSignature produces a TokenTransfer
type UnsignedTransfer struct {
	Receiver      *account.Account `json:"receiver"`      // base58: the "destination" owner
	TokenId       TokenId          `json:"tokenId"`       // hex: 256 bit token identifier
	PreviousBlock BlockNumber      `json:"previousBlock"` // hex: as of which round ownership was confirmed
}

// TokenTransfer - one signed ownership change of a single token
//
// immutable once constructed: AddSignature is the only construction
// path and it refuses to bind a sender whose signature does not match
type TokenTransfer struct {
	Receiver      *account.Account  `json:"receiver"`      // base58: the "destination" owner
	TokenId       TokenId           `json:"tokenId"`       // hex: 256 bit token identifier
	PreviousBlock BlockNumber       `json:"previousBlock"` // hex: as of which round ownership was confirmed
	Sender        *account.Account  `json:"sender"`        // base58: the account whose signature is attached
	Signature     account.Signature `json:"signature"`     // hex: corresponds to sender over unsigned fields
}

// NewUnsignedTransfer - assemble the unsigned fields of a transfer
func NewUnsignedTransfer(receiver *account.Account, tokenId TokenId, previousBlock BlockNumber) *UnsignedTransfer {
	return &UnsignedTransfer{
		Receiver:      receiver,
		TokenId:       tokenId,
		PreviousBlock: previousBlock,
	}
}

// Unsigned - recover the unsigned fields from a signed transfer
func (transfer *TokenTransfer) Unsigned() *UnsignedTransfer {
	return &UnsignedTransfer{
		Receiver:      transfer.Receiver,
		TokenId:       transfer.TokenId,
		PreviousBlock: transfer.PreviousBlock,
	}
}
