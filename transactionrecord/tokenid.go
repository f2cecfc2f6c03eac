// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Zatoichi Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"

	"github.com/zatoichi-labs/plasmacashd/fault"
)

// TokenIdLength - number of bytes in a token identifier
const TokenIdLength = 32

// BlockNumberLength - number of bytes in a block reference
const BlockNumberLength = 32

// TokenId - 256 bit unsigned integer identifying one token
//
// stored big endian so that the bytes double as the leaf index of
// the token in a sparse indexed commitment structure
type TokenId [TokenIdLength]byte

// BlockNumber - 256 bit unsigned integer block reference
//
// stored big endian, ordered by bytes.Compare
type BlockNumber [BlockNumberLength]byte

// NewTokenId - token id from a uint64 value
func NewTokenId(n uint64) TokenId {
	tokenId := TokenId{}
	binary.BigEndian.PutUint64(tokenId[TokenIdLength-8:], n)
	return tokenId
}

// NewBlockNumber - block reference from a uint64 value
func NewBlockNumber(n uint64) BlockNumber {
	blockNumber := BlockNumber{}
	binary.BigEndian.PutUint64(blockNumber[BlockNumberLength-8:], n)
	return blockNumber
}

// LeafIndex - the big endian bit string indexing this token's leaf
//
// stable and bijective over the token id space, as required for
// non-membership proofs against the commitment structure
func (tokenId TokenId) LeafIndex() [TokenIdLength]byte {
	return tokenId
}

// Cmp - compare two block references
//
// returns -1/0/+1 like bytes.Compare
func (blockNumber BlockNumber) Cmp(other BlockNumber) int {
	return bytes.Compare(blockNumber[:], other[:])
}

// String - convert a token id to hex string for use by the fmt package (for %s)
func (tokenId TokenId) String() string {
	return hex.EncodeToString(tokenId[:])
}

// GoString - convert a token id to hex string for use by the fmt package (for %#v)
func (tokenId TokenId) GoString() string {
	return "<token:" + hex.EncodeToString(tokenId[:]) + ">"
}

// MarshalText - convert a token id to hex text
func (tokenId TokenId) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(len(tokenId)))
	hex.Encode(buffer, tokenId[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into a token id
func (tokenId *TokenId) UnmarshalText(s []byte) error {
	if TokenIdLength != hex.DecodedLen(len(s)) {
		return fault.ErrNotTokenId
	}
	byteCount, err := hex.Decode(tokenId[:], s)
	if nil != err {
		return err
	}
	if TokenIdLength != byteCount {
		return fault.ErrNotTokenId
	}
	return nil
}

// String - convert a block reference to hex string for use by the fmt package (for %s)
func (blockNumber BlockNumber) String() string {
	return hex.EncodeToString(blockNumber[:])
}

// MarshalText - convert a block reference to hex text
func (blockNumber BlockNumber) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(len(blockNumber)))
	hex.Encode(buffer, blockNumber[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into a block reference
func (blockNumber *BlockNumber) UnmarshalText(s []byte) error {
	if BlockNumberLength != hex.DecodedLen(len(s)) {
		return fault.ErrNotTransferPack
	}
	byteCount, err := hex.Decode(blockNumber[:], s)
	if nil != err {
		return err
	}
	if BlockNumberLength != byteCount {
		return fault.ErrNotTransferPack
	}
	return nil
}
