// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Zatoichi Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	testnet bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "plasma-cli"
	app.Usage = "offline key and transfer record tool"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: "plasma",
			Usage: " connect to `NETWORK` [plasma|testing|local]",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "generate",
			Usage:  "generate a key pair",
			Action: runGenerate,
		},
		{
			Name:      "account",
			Usage:     "display account from a public key",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "publickey, p",
					Value: "",
					Usage: "*hex public `KEY`",
				},
			},
			Action: runAccount,
		},
		{
			Name:      "transfer",
			Usage:     "build and sign a token transfer",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "sender, s",
					Value: "",
					Usage: "*sender private `KEY` in Base58",
				},
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: "*receiver `ACCOUNT` in Base58",
				},
				cli.StringFlag{
					Name:  "token-id, t",
					Value: "",
					Usage: "*token id, decimal or 64 digit hex `TOKEN`",
				},
				cli.StringFlag{
					Name:  "previous-block, b",
					Value: "0",
					Usage: " block of previous transfer, decimal or 64 digit hex `BLOCK`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "decode",
			Usage:     "decode a packed transfer record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "record, r",
					Value: "",
					Usage: "*packed transfer record `HEX`",
				},
			},
			Action: runDecode,
		},
		{
			Name:  "version",
			Usage: "display plasma-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		// only want one of these
		network := c.GlobalString("network")
		switch network {
		case "plasma", "live":
			network = "plasma"
		case "testing", "test":
			network = "testing"
		case "local", "regression":
			network = "local"
		default:
			return fmt.Errorf("network: %q can only be plasma/testing/local", network)
		}

		c.App.Metadata["config"] = &metadata{
			testnet: network != "plasma",
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}

		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
