// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Zatoichi Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/zatoichi-labs/plasmacashd/fault"
	"github.com/zatoichi-labs/plasmacashd/storage"
)

// to ensure synchronised ownership updates
var toLock sync.Mutex

// globals for this package
var globalData struct {
	log    *logger.L
	tokens *storage.PoolHandle

	// set once during initialise
	initialised bool
}

// Initialise - attach the token pool
//
// storage and mode must already be initialised
func Initialise(tokens *storage.PoolHandle) error {
	toLock.Lock()
	defer toLock.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	globalData.log = logger.New("ownership")
	globalData.log.Info("starting…")
	globalData.tokens = tokens
	globalData.initialised = true

	return nil
}

// Finalise - detach the token pool
func Finalise() error {
	toLock.Lock()
	defer toLock.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("finished")
	globalData.log.Flush()
	globalData.tokens = nil
	globalData.initialised = false

	return nil
}
