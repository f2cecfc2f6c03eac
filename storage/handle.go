// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Zatoichi Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"
)

// PoolHandle - one prefixed pool inside the shared database
type PoolHandle struct {
	prefix byte
	limit  []byte
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Put - store a key/value bytes pair to the database
func (p *PoolHandle) Put(key []byte, value []byte) {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.db {
		logger.Panic("pool.Put nil database")
		return
	}
	prefixedKey := p.prefixKey(key)
	err := poolData.db.Put(prefixedKey, value, nil)
	logger.PanicIfError("pool.Put", err)
	poolData.cache.Set(dbPut, string(prefixedKey), value)
}

// Delete - remove a key from the database
func (p *PoolHandle) Delete(key []byte) {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.db {
		logger.Panic("pool.Delete nil database")
		return
	}
	prefixedKey := p.prefixKey(key)
	err := poolData.db.Delete(prefixedKey, nil)
	logger.PanicIfError("pool.Delete", err)
	poolData.cache.Set(dbDelete, string(prefixedKey), nil)
}

// Get - read a value for a given key
//
// this returns the actual element - copy the result if it must be preserved
func (p *PoolHandle) Get(key []byte) []byte {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.db {
		return nil
	}

	prefixedKey := p.prefixKey(key)
	if value, found := poolData.cache.Get(string(prefixedKey)); found {
		return value
	}

	value, err := poolData.db.Get(prefixedKey, nil)
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("pool.Get", err)
	poolData.cache.Set(dbPut, string(prefixedKey), value)
	return value
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) bool {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.db {
		return false
	}

	prefixedKey := p.prefixKey(key)
	if _, found := poolData.cache.Get(string(prefixedKey)); found {
		return true
	}

	value, err := poolData.db.Has(prefixedKey, nil)
	logger.PanicIfError("pool.Has", err)
	return value
}
