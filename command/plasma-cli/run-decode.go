// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Zatoichi Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli"

	"github.com/zatoichi-labs/plasmacashd/transactionrecord"
)

func runDecode(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	record := c.String("record")
	if "" == record {
		return fmt.Errorf("missing record")
	}

	packed, err := hex.DecodeString(record)
	if nil != err {
		return err
	}

	transfer, n, err := transactionrecord.Packed(packed).UnpackTokenTransfer(m.testnet)
	if nil != err {
		return err
	}
	if n != len(packed) {
		return fmt.Errorf("excess data after record: %d bytes", len(packed)-n)
	}

	leafHash, err := transfer.LeafHash()
	if nil != err {
		return err
	}

	printJson(m.w, struct {
		Transfer *transactionrecord.TokenTransfer `json:"transfer"`
		LeafHash string                           `json:"leaf_hash"`
	}{
		Transfer: transfer,
		LeafHash: leafHash.String(),
	})
	return nil
}
