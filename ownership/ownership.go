// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Zatoichi Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"bytes"

	"github.com/bitmark-inc/logger"

	"github.com/zatoichi-labs/plasmacashd/account"
	"github.com/zatoichi-labs/plasmacashd/fault"
	"github.com/zatoichi-labs/plasmacashd/merkle"
	"github.com/zatoichi-labs/plasmacashd/messagebus"
	"github.com/zatoichi-labs/plasmacashd/mode"
	"github.com/zatoichi-labs/plasmacashd/transactionrecord"
)

// account equality by encoded bytes
func sameAccount(a *account.Account, b *account.Account) bool {
	if nil == a || nil == b {
		return false
	}
	return bytes.Equal(a.Bytes(), b.Bytes())
}

// read and unpack the current transfer for a token id
//
// hold the lock before calling
// returns nil if the token is absent
func currentTransfer(tokenId transactionrecord.TokenId) *transactionrecord.TokenTransfer {
	packed := transactionrecord.Packed(globalData.tokens.Get(tokenId[:]))
	if nil == packed {
		return nil
	}
	transfer, _, err := packed.UnpackTokenTransfer(mode.IsTesting())
	if nil != err {
		globalData.log.Criticalf("stored transfer for token: %s  error: %s", tokenId, err)
		logger.Panic("ownership: token database corrupt")
	}
	return transfer
}

// every key on a stored record must belong to the current network,
// the read path refuses to unpack foreign keys
func wrongNetwork(transfer *transactionrecord.TokenTransfer) bool {
	return transfer.Receiver.IsTesting() != mode.IsTesting() ||
		transfer.Sender.IsTesting() != mode.IsTesting()
}

// Deposit - bring a token under the control of this chain
//
// the deposit transfer is self-signed: its sender is the party whose
// signature appears in the record and the caller must be that party
func Deposit(caller *account.Account, transfer *transactionrecord.TokenTransfer) error {
	toLock.Lock()
	defer toLock.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	if globalData.tokens.Has(transfer.TokenId[:]) {
		return fault.ErrTokenAlreadyExists
	}
	if err := transfer.Verify(); nil != err {
		return fault.ErrInvalidSignature
	}
	if wrongNetwork(transfer) {
		return fault.ErrWrongNetworkForPublicKey
	}
	if !sameAccount(caller, transfer.Sender) {
		return fault.ErrSignerMismatch
	}

	packed, err := transfer.Pack()
	if nil != err {
		return fault.ErrInvalidSignature
	}

	globalData.tokens.Put(transfer.TokenId[:], packed)
	globalData.log.Infof("deposit: token: %s  owner: %s", transfer.TokenId, transfer.Receiver)

	messagebus.Send("ownership", Deposited{
		TokenId: transfer.TokenId,
		Owner:   transfer.Receiver,
	})
	return nil
}

// Transfer - move a token to a new owner
//
// the proposed transfer must be a direct child of the stored current
// transfer: its sender is the receiver of the stored record
func Transfer(caller *account.Account, transfer *transactionrecord.TokenTransfer) error {
	toLock.Lock()
	defer toLock.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	previous := currentTransfer(transfer.TokenId)
	if nil == previous {
		return fault.ErrTokenDoesNotExist
	}
	if err := transfer.Verify(); nil != err {
		return fault.ErrInvalidSignature
	}
	if wrongNetwork(transfer) {
		return fault.ErrWrongNetworkForPublicKey
	}
	if !sameAccount(caller, transfer.Sender) {
		return fault.ErrSignerMismatch
	}
	if transactionrecord.Child != transfer.Classify(previous) {
		return fault.ErrNotCurrentOwner
	}

	packed, err := transfer.Pack()
	if nil != err {
		return fault.ErrInvalidSignature
	}

	// the previous record is superseded, not logged here: an
	// append-only history is the host's concern
	globalData.tokens.Put(transfer.TokenId[:], packed)
	globalData.log.Infof("transfer: token: %s  from: %s  to: %s", transfer.TokenId, transfer.Sender, transfer.Receiver)

	messagebus.Send("ownership", Transferred{
		TokenId: transfer.TokenId,
		From:    transfer.Sender,
		To:      transfer.Receiver,
	})
	return nil
}

// Withdraw - remove a token from the chain
//
// only the current owner, the receiver of the stored record, may
// withdraw; the token becomes absent and can be deposited again
func Withdraw(caller *account.Account, tokenId transactionrecord.TokenId) error {
	toLock.Lock()
	defer toLock.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	current := currentTransfer(tokenId)
	if nil == current {
		return fault.ErrTokenDoesNotExist
	}
	if !sameAccount(caller, current.Receiver) {
		return fault.ErrNotCurrentOwner
	}

	globalData.tokens.Delete(tokenId[:])
	globalData.log.Infof("withdraw: token: %s  owner: %s", tokenId, current.Receiver)

	messagebus.Send("ownership", Withdrawn{
		TokenId: tokenId,
		Owner:   current.Receiver,
	})
	return nil
}

// CurrentOwnerTxn - pure read of the current state of one token
//
// the second result is false if the token is absent
func CurrentOwnerTxn(tokenId transactionrecord.TokenId) (*transactionrecord.TokenTransfer, bool) {
	toLock.Lock()
	defer toLock.Unlock()

	if !globalData.initialised {
		return nil, false
	}

	transfer := currentTransfer(tokenId)
	if nil == transfer {
		return nil, false
	}
	return transfer, true
}

// LeafValue - the commitment leaf for one token id
//
// the hash of the current transfer's unsigned fields, or the empty
// leaf value if the token is absent
func LeafValue(tokenId transactionrecord.TokenId) merkle.Digest {
	transfer, ok := CurrentOwnerTxn(tokenId)
	if !ok {
		return transactionrecord.EmptyLeafHash()
	}
	leafHash, err := transfer.LeafHash()
	if nil != err {
		globalData.log.Criticalf("leaf hash for token: %s  error: %s", tokenId, err)
		logger.Panic("ownership: token database corrupt")
	}
	return leafHash
}
