// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Zatoichi Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/zatoichi-labs/plasmacashd/account"
	"github.com/zatoichi-labs/plasmacashd/fault"
	"github.com/zatoichi-labs/plasmacashd/merkle"
	"github.com/zatoichi-labs/plasmacashd/util"
)

// the canonical signable encoding of the unsigned fields
//
// Varint64(tag) ⧺ Varint64(len) ⧺ receiver ⧺ token id ⧺ previous block
//
// sender and signature are excluded: they cannot self-reference
func packUnsigned(receiver []byte, tokenId TokenId, previousBlock BlockNumber) Packed {
	message := util.ToVarint64(uint64(TokenTransferTag))
	message = appendBytes(message, receiver)
	message = append(message, tokenId[:]...)
	message = append(message, previousBlock[:]...)
	return message
}

// Pack - the canonical signable encoding of an unsigned transfer
//
// this is the exact byte string the sender must sign
func (unsigned *UnsignedTransfer) Pack() (Packed, error) {
	if nil == unsigned.Receiver {
		return nil, fault.ErrInvalidReceiverOrSender
	}
	return packUnsigned(unsigned.Receiver.Bytes(), unsigned.TokenId, unsigned.PreviousBlock), nil
}

// Hash - digest of the canonical signable encoding
func (unsigned *UnsignedTransfer) Hash() (merkle.Digest, error) {
	packed, err := unsigned.Pack()
	if nil != err {
		return merkle.Digest{}, err
	}
	return merkle.NewDigest(packed), nil
}

// EmptyLeafHash - the canonical "nothing here" leaf value
//
// digest of the all-zero unsigned transfer, used by the commitment
// structure for every token id that has no current transfer
func EmptyLeafHash() merkle.Digest {
	return merkle.NewDigest(packUnsigned([]byte{}, TokenId{}, BlockNumber{}))
}

// AddSignature - bind a sender to an unsigned transfer
//
// the only construction path for a TokenTransfer: the signature is
// verified against the canonical hash before the record exists, so a
// TokenTransfer value is always self-consistent
func (unsigned *UnsignedTransfer) AddSignature(sender *account.Account, signature account.Signature) (*TokenTransfer, error) {
	if nil == sender || nil == unsigned.Receiver {
		return nil, fault.ErrInvalidReceiverOrSender
	}
	if len(signature) > maxSignatureLength {
		return nil, fault.ErrSignatureTooLong
	}

	message, err := unsigned.Pack()
	if nil != err {
		return nil, err
	}
	if err := sender.CheckSignature(message, signature); nil != err {
		return nil, fault.ErrInvalidSignature
	}

	return &TokenTransfer{
		Receiver:      unsigned.Receiver,
		TokenId:       unsigned.TokenId,
		PreviousBlock: unsigned.PreviousBlock,
		Sender:        sender,
		Signature:     signature,
	}, nil
}

// Verify - defensive re-check of a transfer received over an
// untrusted channel
//
// AddSignature already enforces this invariant for locally
// constructed transfers
func (transfer *TokenTransfer) Verify() error {
	if nil == transfer.Sender || nil == transfer.Receiver {
		return fault.ErrInvalidReceiverOrSender
	}
	if len(transfer.Signature) > maxSignatureLength {
		return fault.ErrSignatureTooLong
	}

	message := packUnsigned(transfer.Receiver.Bytes(), transfer.TokenId, transfer.PreviousBlock)
	if err := transfer.Sender.CheckSignature(message, transfer.Signature); nil != err {
		return fault.ErrInvalidSignature
	}
	return nil
}

// LeafHash - the value committed into the commitment structure
//
// re-derives the presigning hash of the unsigned fields; the
// signature is never part of the committed leaf
func (transfer *TokenTransfer) LeafHash() (merkle.Digest, error) {
	return transfer.Unsigned().Hash()
}

// Pack - full wire encoding of a signed transfer
//
// Pack canonical unsigned fields followed by sender with
// signature last
//
// NOTE: returns the "unsigned" message on signature failure - for
//       debugging/testing
func (transfer *TokenTransfer) Pack() (Packed, error) {
	if nil == transfer.Receiver || nil == transfer.Sender {
		return nil, fault.ErrInvalidReceiverOrSender
	}
	if len(transfer.Signature) > maxSignatureLength {
		return nil, fault.ErrSignatureTooLong
	}

	// concatenate bytes
	message := packUnsigned(transfer.Receiver.Bytes(), transfer.TokenId, transfer.PreviousBlock)

	// signature covers only the canonical unsigned prefix
	err := transfer.Sender.CheckSignature(message, transfer.Signature)
	if nil != err {
		return message, err
	}

	message = appendAccount(message, transfer.Sender)

	// Signature Last
	return appendBytes(message, transfer.Signature), nil
}

// append a length prefixed byte slice
func appendBytes(buffer []byte, data []byte) []byte {
	length := util.ToVarint64(uint64(len(data)))
	buffer = append(buffer, length...)
	buffer = append(buffer, data...)
	return buffer
}

// append a length prefixed account
func appendAccount(buffer []byte, acc *account.Account) []byte {
	return appendBytes(buffer, acc.Bytes())
}
