// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Zatoichi Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync/atomic"
)

// internal constants
const (
	queueSize = 1000
)

// Message - one queued event
type Message struct {
	From string
	Item interface{}
}

var (
	// for queueing data
	queue = make(chan Message, queueSize)

	// events discarded because no consumer kept up
	dropped uint64
)

// Send - queue an event
//
// never blocks the state machine: if no consumer is draining the
// queue the oldest behaviour is to drop and count
func Send(from string, item interface{}) {
	select {
	case queue <- Message{From: from, Item: item}:
	default:
		atomic.AddUint64(&dropped, 1)
	}
}

// Chan - channel to read from
func Chan() <-chan Message {
	return queue
}

// Dropped - number of events lost to a full queue
func Dropped() uint64 {
	return atomic.LoadUint64(&dropped)
}
