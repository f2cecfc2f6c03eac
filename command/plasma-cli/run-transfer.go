// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Zatoichi Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli"

	"github.com/zatoichi-labs/plasmacashd/account"
	"github.com/zatoichi-labs/plasmacashd/transactionrecord"
)

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	privateKey, err := account.PrivateKeyFromBase58(c.String("sender"))
	if nil != err {
		return fmt.Errorf("sender: %s", err)
	}
	if privateKey.IsTesting() != m.testnet {
		return fmt.Errorf("sender key is for the wrong network")
	}

	receiver, err := account.AccountFromBase58(c.String("receiver"))
	if nil != err {
		return fmt.Errorf("receiver: %s", err)
	}

	tokenId, err := parseTokenId(c.String("token-id"))
	if nil != err {
		return fmt.Errorf("token-id: %s", err)
	}

	previousBlock, err := parseBlockNumber(c.String("previous-block"))
	if nil != err {
		return fmt.Errorf("previous-block: %s", err)
	}

	unsigned := transactionrecord.NewUnsignedTransfer(receiver, tokenId, previousBlock)
	message, err := unsigned.Pack()
	if nil != err {
		return err
	}

	sender := privateKey.Account()
	transfer, err := unsigned.AddSignature(sender, privateKey.Sign(message))
	if nil != err {
		return err
	}

	packed, err := transfer.Pack()
	if nil != err {
		return err
	}

	leafHash, err := transfer.LeafHash()
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "transfer: %#v\n", transfer)
	}

	printJson(m.w, struct {
		Transfer *transactionrecord.TokenTransfer `json:"transfer"`
		Packed   string                           `json:"packed"`
		LeafHash string                           `json:"leaf_hash"`
	}{
		Transfer: transfer,
		Packed:   hex.EncodeToString(packed),
		LeafHash: leafHash.String(),
	})
	return nil
}
