// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Zatoichi Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"bytes"

	"github.com/zatoichi-labs/plasmacashd/account"
)

// Relationship - structural relationship between two transfers of the
// same token
type Relationship int

// all possible relationships
const (
	Unrelated Relationship = iota
	Parent
	Child
	EarlierSibling
	LaterSibling
	DoubleSpend
	Same
)

// String - relationship name for use by the fmt package (for %s)
func (relationship Relationship) String() string {
	switch relationship {
	case Parent:
		return "Parent"
	case Child:
		return "Child"
	case EarlierSibling:
		return "EarlierSibling"
	case LaterSibling:
		return "LaterSibling"
	case DoubleSpend:
		return "DoubleSpend"
	case Same:
		return "Same"
	default:
		return "Unrelated"
	}
}

// account equality by encoded bytes
func sameAccount(a *account.Account, b *account.Account) bool {
	if nil == a || nil == b {
		return false
	}
	return bytes.Equal(a.Bytes(), b.Bytes())
}

// Classify - structural relationship of transfer to other
//
// both records must reference the same token and must already have
// been individually verified; signatures are not re-checked here
//
// pure and total: always returns exactly one relationship
//
// the rules are checked in this exact order; if receiver/sender match
// in both directions at once the first rule wins, so a 2-cycle is
// reported as Parent and the cycle itself is left to the adjudication
// layer that consumes classifications
func (transfer *TokenTransfer) Classify(other *TokenTransfer) Relationship {

	switch {
	case sameAccount(transfer.Receiver, other.Sender):
		// other spends what this transfer delivered
		return Parent

	case sameAccount(transfer.Sender, other.Receiver):
		// this transfer spends what other delivered
		return Child

	case sameAccount(transfer.Sender, other.Sender):
		// both claim to move the token away from the same prior
		// owner: a fork candidate, disambiguate by block reference
		switch transfer.PreviousBlock.Cmp(other.PreviousBlock) {
		case -1:
			return EarlierSibling
		case +1:
			return LaterSibling
		default:
			if !sameAccount(transfer.Receiver, other.Receiver) {
				// two validly signed spends of the same prior
				// state to different destinations: the on-chain
				// evidence a fraud proof needs
				return DoubleSpend
			}
			return Same
		}

	default:
		return Unrelated
	}
}
