// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Zatoichi Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus_test

import (
	"testing"

	"github.com/zatoichi-labs/plasmacashd/messagebus"
)

// queued items come out in order with their origin
func TestQueue(t *testing.T) {

	messagebus.Send("one", 1)
	messagebus.Send("two", 2)

	m := <-messagebus.Chan()
	if "one" != m.From || 1 != m.Item.(int) {
		t.Errorf("first: got: %v", m)
	}

	m = <-messagebus.Chan()
	if "two" != m.From || 2 != m.Item.(int) {
		t.Errorf("second: got: %v", m)
	}
}

// a full queue drops rather than blocking the sender
func TestQueueOverflow(t *testing.T) {

	// more sends than the queue can buffer
	for i := 0; i < 2000; i += 1 {
		messagebus.Send("flood", i)
	}

	if 0 == messagebus.Dropped() {
		t.Error("overflow did not drop")
	}

	// drain for following tests
drain:
	for {
		select {
		case <-messagebus.Chan():
		default:
			break drain
		}
	}
}
