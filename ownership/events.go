// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Zatoichi Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"github.com/zatoichi-labs/plasmacashd/account"
	"github.com/zatoichi-labs/plasmacashd/transactionrecord"
)

// events queued to the message bus after a committed state change
//
// the host decides how and whether to publish them

// Deposited - a token entered the chain
type Deposited struct {
	TokenId transactionrecord.TokenId `json:"tokenId"`
	Owner   *account.Account          `json:"owner"`
}

// Transferred - a token changed owner
type Transferred struct {
	TokenId transactionrecord.TokenId `json:"tokenId"`
	From    *account.Account          `json:"from"`
	To      *account.Account          `json:"to"`
}

// Withdrawn - a token left the chain
type Withdrawn struct {
	TokenId transactionrecord.TokenId `json:"tokenId"`
	Owner   *account.Account          `json:"owner"`
}
