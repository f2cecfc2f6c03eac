// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Zatoichi Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"encoding/json"

	"github.com/zatoichi-labs/plasmacashd/background"
	"github.com/zatoichi-labs/plasmacashd/messagebus"
	"github.com/zatoichi-labs/plasmacashd/ownership"
)

// topic per event type, the first frame subscribers filter on
func topic(item interface{}) string {
	switch item.(type) {
	case ownership.Deposited:
		return "deposit"
	case ownership.Transferred:
		return "transfer"
	case ownership.Withdrawn:
		return "withdraw"
	default:
		return "event"
	}
}

// the background process draining the message bus
//
// events are published when a socket is bound, otherwise discarded so
// the queue never fills up
var broadcaster background.Process = func(args interface{}, shutdown <-chan struct{}) {
	data := args.(*publishData)
	log := data.log

	log.Info("broadcaster: starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case message := <-messagebus.Chan():
			// the socket is set before this process starts and
			// cleared only after it has stopped
			socket := data.socket
			if nil == socket {
				continue loop
			}

			payload, err := json.Marshal(message.Item)
			if nil != err {
				log.Errorf("broadcaster: marshal error: %s", err)
				continue loop
			}

			_, err = socket.SendMessage(topic(message.Item), payload)
			if nil != err {
				log.Errorf("broadcaster: send error: %s", err)
				continue loop
			}
			log.Debugf("broadcaster: %s: %s", topic(message.Item), payload)
		}
	}

	log.Info("broadcaster: finished")
}
