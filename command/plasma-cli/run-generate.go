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

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	privateKey, err := account.NewKeypair(m.testnet)
	if nil != err {
		return err
	}

	acc := privateKey.Account()

	if m.verbose {
		fmt.Fprintf(m.e, "privateKey: %#v\n", privateKey)
	}

	printJson(m.w, struct {
		PrivateKey string `json:"private_key"`
		Account    string `json:"account"`
		PublicKey  string `json:"public_key"`
	}{
		PrivateKey: privateKey.String(),
		Account:    acc.String(),
		PublicKey:  hex.EncodeToString(acc.PublicKeyBytes()),
	})
	return nil
}
