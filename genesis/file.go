// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Zatoichi Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package genesis

import (
	"encoding/json"
	"io/ioutil"

	"github.com/zatoichi-labs/plasmacashd/account"
	"github.com/zatoichi-labs/plasmacashd/fault"
	"github.com/zatoichi-labs/plasmacashd/transactionrecord"
)

// one seed entry from the JSON file
type seedEntry struct {
	Receiver      *account.Account              `json:"receiver"`
	TokenId       transactionrecord.TokenId     `json:"token_id"`
	PreviousBlock transactionrecord.BlockNumber `json:"previous_block"`
	Sender        *account.Account              `json:"sender"`
	Signature     account.Signature             `json:"signature"`
}

// LoadFile - read a JSON seed file
//
// each entry is rebuilt through the signing path so a tampered file is
// rejected here, before any deposit is attempted
func LoadFile(fileName string) ([]*transactionrecord.TokenTransfer, error) {

	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return nil, err
	}

	entries := []seedEntry{}
	if err := json.Unmarshal(data, &entries); nil != err {
		return nil, err
	}

	seed := make([]*transactionrecord.TokenTransfer, 0, len(entries))
	for _, entry := range entries {
		if nil == entry.Receiver || nil == entry.Sender {
			return nil, fault.ErrInvalidReceiverOrSender
		}
		unsigned := transactionrecord.NewUnsignedTransfer(entry.Receiver, entry.TokenId, entry.PreviousBlock)
		transfer, err := unsigned.AddSignature(entry.Sender, entry.Signature)
		if nil != err {
			return nil, err
		}
		seed = append(seed, transfer)
	}

	return seed, nil
}
