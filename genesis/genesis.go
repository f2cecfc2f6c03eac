// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Zatoichi Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package genesis - seed initial token ownership
//
// the seed is a list of self-signed deposit transfers applied through
// the normal deposit path before the first command is accepted
package genesis

import (
	"bytes"

	"github.com/bitmark-inc/logger"

	"github.com/zatoichi-labs/plasmacashd/fault"
	"github.com/zatoichi-labs/plasmacashd/ownership"
	"github.com/zatoichi-labs/plasmacashd/transactionrecord"
)

// Apply - deposit every seed transfer
//
// duplicate token ids in the seed are an error, never a silent
// overwrite: a wrong seeded owner is exactly the corruption the
// state machine exists to prevent
//
// re-applying the same seed against an existing store is allowed so
// that a restarted node can run its genesis unconditionally; a stored
// record that differs from the seed is an error
func Apply(seed []*transactionrecord.TokenTransfer) error {
	log := logger.New("genesis")

	// scan the whole list first so that a duplicate aborts the
	// seeding before any deposit is made
	seen := make(map[transactionrecord.TokenId]struct{}, len(seed))
	for i, transfer := range seed {
		if _, ok := seen[transfer.TokenId]; ok {
			log.Errorf("seed entry: %d  duplicate token: %s", i, transfer.TokenId)
			return fault.ErrGenesisDuplicateToken
		}
		seen[transfer.TokenId] = struct{}{}
	}

	for i, transfer := range seed {
		if current, ok := ownership.CurrentOwnerTxn(transfer.TokenId); ok {
			packedSeed, err := transfer.Pack()
			if nil != err {
				return err
			}
			packedCurrent, err := current.Pack()
			if nil != err {
				return err
			}
			if !bytes.Equal(packedSeed, packedCurrent) {
				log.Errorf("seed entry: %d  token: %s already owned by: %s", i, transfer.TokenId, current.Receiver)
				return fault.ErrTokenAlreadyExists
			}
			// already seeded on a previous run
			continue
		}

		// the deposit path enforces signature and self-consistency
		if err := ownership.Deposit(transfer.Sender, transfer); nil != err {
			log.Errorf("seed entry: %d  token: %s  error: %s", i, transfer.TokenId, err)
			return err
		}
	}

	log.Infof("seeded: %d tokens", len(seen))
	return nil
}
