// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Zatoichi Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - run a set of shutdown-aware goroutines
package background

import (
	"sync"
)

// Process - type signature for a background process
//
// the process must return promptly when the shutdown channel closes
type Process func(args interface{}, shutdown <-chan struct{})

// Processes - list of processes to start
type Processes []Process

// T - handle for a started set
type T struct {
	shutdown chan struct{}
	wg       sync.WaitGroup
}

// Start - run all processes with a shared shutdown channel
func Start(processes Processes, args interface{}) *T {
	register := &T{
		shutdown: make(chan struct{}),
	}

	register.wg.Add(len(processes))
	for _, p := range processes {
		go func(p Process) {
			defer register.wg.Done()
			p(args, register.shutdown)
		}(p)
	}
	return register
}

// Stop - signal shutdown and wait for every process to finish
func (register *T) Stop() {
	if nil == register {
		return
	}
	close(register.shutdown)
	register.wg.Wait()
}
