// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Zatoichi Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/zatoichi-labs/plasmacashd/background"
)

// all processes run and all stop on shutdown
func TestStartStop(t *testing.T) {

	var started int32
	var stopped int32

	proc := func(args interface{}, shutdown <-chan struct{}) {
		atomic.AddInt32(&started, 1)
		<-shutdown
		atomic.AddInt32(&stopped, 1)
	}

	register := background.Start(background.Processes{proc, proc, proc}, nil)

	// give the goroutines a chance to run
	time.Sleep(20 * time.Millisecond)
	if 3 != atomic.LoadInt32(&started) {
		t.Errorf("started: got: %d  expected: 3", started)
	}

	register.Stop()
	if 3 != atomic.LoadInt32(&stopped) {
		t.Errorf("stopped: got: %d  expected: 3", stopped)
	}
}

// stopping a nil handle is a no-op
func TestStopNil(t *testing.T) {
	var register *background.T
	register.Stop()
}
