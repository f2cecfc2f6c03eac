// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Zatoichi Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/zatoichi-labs/plasmacashd/account"
	"github.com/zatoichi-labs/plasmacashd/fault"
	"github.com/zatoichi-labs/plasmacashd/util"
)

// UnpackTokenTransfer - turn a byte slice back into a signed transfer
//
// the reconstructed record goes through AddSignature so an invalid
// signature can never produce a TokenTransfer value
//
// returns the record, the number of bytes used and an error
func (record Packed) UnpackTokenTransfer(testnet bool) (t *TokenTransfer, n int, e error) {

	// the unpacker indexes into the record and could run past a
	// truncated buffer
	defer func() {
		if r := recover(); nil != r {
			t = nil
			n = 0
			e = fault.ErrNotTransferPack
		}
	}()

	recordType, n := util.FromVarint64(record)
	if 0 == n || TokenTransferTag != TagType(recordType) {
		return nil, 0, fault.ErrNotTransferPack
	}

	// receiver public key
	receiverLength, receiverOffset := util.ClippedVarint64(record[n:], 1, 8192)
	if 0 == receiverOffset {
		return nil, 0, fault.ErrNotTransferPack
	}
	n += receiverOffset
	receiver, err := account.AccountFromBytes(record[n : n+receiverLength])
	if nil != err {
		return nil, 0, err
	}
	if receiver.IsTesting() != testnet {
		return nil, 0, fault.ErrWrongNetworkForPublicKey
	}
	n += receiverLength

	// token id
	tokenId := TokenId{}
	copy(tokenId[:], record[n:n+TokenIdLength])
	n += TokenIdLength

	// previous block reference
	previousBlock := BlockNumber{}
	copy(previousBlock[:], record[n:n+BlockNumberLength])
	n += BlockNumberLength

	// sender public key
	senderLength, senderOffset := util.ClippedVarint64(record[n:], 1, 8192)
	if 0 == senderOffset {
		return nil, 0, fault.ErrNotTransferPack
	}
	n += senderOffset
	sender, err := account.AccountFromBytes(record[n : n+senderLength])
	if nil != err {
		return nil, 0, err
	}
	if sender.IsTesting() != testnet {
		return nil, 0, fault.ErrWrongNetworkForPublicKey
	}
	n += senderLength

	// signature is remainder of record
	signatureLength, signatureOffset := util.ClippedVarint64(record[n:], 1, maxSignatureLength)
	if 0 == signatureOffset {
		return nil, 0, fault.ErrNotTransferPack
	}
	n += signatureOffset
	signature := make(account.Signature, signatureLength)
	copy(signature, record[n:n+signatureLength])
	n += signatureLength

	unsigned := NewUnsignedTransfer(receiver, tokenId, previousBlock)
	transfer, err := unsigned.AddSignature(sender, signature)
	if nil != err {
		return nil, 0, err
	}
	return transfer, n, nil
}
