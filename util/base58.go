// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Zatoichi Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"github.com/mr-tron/base58"
)

// ToBase58 - encode a byte slice as Base58
func ToBase58(buffer []byte) string {
	return base58.Encode(buffer)
}

// FromBase58 - decode a Base58 string to a byte slice
//
// returns an empty slice on any decode failure
func FromBase58(s string) []byte {
	buffer, err := base58.Decode(s)
	if nil != err {
		return []byte{}
	}
	return buffer
}
