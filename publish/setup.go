// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Zatoichi Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package publish - broadcast committed ownership events
//
// drains the message bus in a background process and publishes each
// event as a two frame ZeroMQ message: topic then JSON payload
package publish

import (
	"sync"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/logger"

	"github.com/zatoichi-labs/plasmacashd/background"
	"github.com/zatoichi-labs/plasmacashd/fault"
)

// Configuration - a block of configuration data
// this is read from the configuration file
type Configuration struct {
	Broadcast []string `gluamapper:"broadcast" json:"broadcast"`
}

// globals for background process
type publishData struct {
	sync.RWMutex // to allow locking

	log    *logger.L   // logger
	socket *zmq.Socket // PUB socket, nil if not broadcasting

	// for background
	background *background.T

	// set once during initialise
	initialised bool
}

// global data
var globalData publishData

// Initialise - bind the broadcast addresses and start draining
func Initialise(configuration *Configuration) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	globalData.log = logger.New("publish")
	globalData.log.Info("starting…")

	if 0 == len(configuration.Broadcast) {
		globalData.log.Info("no broadcast addresses")
	} else {
		socket, err := zmq.NewSocket(zmq.PUB)
		if nil != err {
			return err
		}
		_ = socket.SetLinger(0)

		for _, address := range configuration.Broadcast {
			globalData.log.Infof("broadcast on: %s", address)
			if err := socket.Bind(address); nil != err {
				globalData.log.Errorf("bind: %q  error: %s", address, err)
				socket.Close()
				return err
			}
		}
		globalData.socket = socket
	}

	// all data initialised
	globalData.initialised = true

	// start background processes
	globalData.log.Info("start background…")
	globalData.background = background.Start(background.Processes{broadcaster}, &globalData)

	return nil
}

// Finalise - stop all background tasks
func Finalise() error {

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.background.Stop()

	if nil != globalData.socket {
		globalData.socket.Close()
		globalData.socket = nil
	}

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}
