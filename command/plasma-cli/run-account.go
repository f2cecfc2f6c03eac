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
)

func runAccount(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	publicKey := c.String("publickey")
	if "" == publicKey {
		return fmt.Errorf("missing public key")
	}

	if m.verbose {
		fmt.Fprintf(m.e, "publickey: %s\n", publicKey)
	}

	keyBytes, err := hex.DecodeString(publicKey)
	if nil != err {
		return err
	}

	keyVariant := byte(account.ED25519 << 4)
	keyVariant |= 0x01 // public key
	if m.testnet {
		keyVariant |= 0x02 // test network
	}
	acc, err := account.AccountFromBytes(append([]byte{keyVariant}, keyBytes...))
	if nil != err {
		return err
	}

	printJson(m.w, struct {
		Account string `json:"account"`
		Testnet bool   `json:"testnet"`
	}{
		Account: acc.String(),
		Testnet: acc.IsTesting(),
	})
	return nil
}
