// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Zatoichi Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strconv"

	"github.com/zatoichi-labs/plasmacashd/transactionrecord"
)

// parse a token id given as either a small decimal number or the full
// 64 digit hex form
func parseTokenId(s string) (transactionrecord.TokenId, error) {
	if n, err := strconv.ParseUint(s, 10, 64); nil == err {
		return transactionrecord.NewTokenId(n), nil
	}
	tokenId := transactionrecord.TokenId{}
	err := tokenId.UnmarshalText([]byte(s))
	return tokenId, err
}

// parse a block reference given as either a small decimal number or
// the full 64 digit hex form
func parseBlockNumber(s string) (transactionrecord.BlockNumber, error) {
	if n, err := strconv.ParseUint(s, 10, 64); nil == err {
		return transactionrecord.NewBlockNumber(n), nil
	}
	blockNumber := transactionrecord.BlockNumber{}
	err := blockNumber.UnmarshalText([]byte(s))
	return blockNumber, err
}
