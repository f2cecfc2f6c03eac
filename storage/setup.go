// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Zatoichi Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/bitmark-inc/logger"

	"github.com/zatoichi-labs/plasmacashd/fault"
)

// exported storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type pools struct {
	Tokens   *PoolHandle `prefix:"T"`
	TestData *PoolHandle `prefix:"Z"`
}

// Pool - the set of exported pools
var Pool pools

// holds the database handle
var poolData struct {
	sync.RWMutex
	db    *leveldb.DB
	cache Cache

	// set once during initialise
	initialised bool
}

// Initialise - open up the database connection
//
// this must be called before any pool is accessed
func Initialise(database string) error {
	poolData.Lock()
	defer poolData.Unlock()

	if poolData.initialised {
		return fault.ErrAlreadyInitialised
	}

	db, err := leveldb.OpenFile(database, nil)
	if nil != err {
		logger.Criticalf("storage: open file: %q  error: %s", database, err)
		return err
	}

	setup(db)
	return nil
}

// InitialiseMemory - in-memory database, testing only
func InitialiseMemory() error {
	poolData.Lock()
	defer poolData.Unlock()

	if poolData.initialised {
		return fault.ErrAlreadyInitialised
	}

	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if nil != err {
		return err
	}

	setup(db)
	return nil
}

// hold lock before calling
func setup(db *leveldb.DB) {
	poolData.db = db
	poolData.cache = newCache()

	// this will be a struct type
	poolType := reflect.TypeOf(Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&Pool).Elem()

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)
		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			logger.Panicf("storage: pool: %s has invalid prefix: %q", fieldInfo.Name, prefixTag)
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix: prefix,
			limit:  limit,
		}
		newPool := reflect.ValueOf(p)
		poolValue.Field(i).Set(newPool)
	}

	poolData.initialised = true
}

// Finalise - close the database connection
func Finalise() {
	poolData.Lock()
	defer poolData.Unlock()

	if !poolData.initialised {
		return
	}

	poolData.cache.Clear()
	poolData.db.Close()
	poolData.db = nil
	poolData.initialised = false
}

// IsInitialised - check the database is open
func IsInitialised() bool {
	poolData.RLock()
	defer poolData.RUnlock()
	return poolData.initialised
}
