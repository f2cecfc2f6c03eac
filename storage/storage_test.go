// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Zatoichi Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zatoichi-labs/plasmacashd/storage"
)

// open an in-memory database for all tests in this package
func TestMain(m *testing.M) {
	if err := storage.InitialiseMemory(); nil != err {
		panic("storage initialise: " + err.Error())
	}
	rc := m.Run()
	storage.Finalise()
	os.Exit(rc)
}

// basic put/get/delete cycle on a pool
func TestPoolCycle(t *testing.T) {

	pool := storage.Pool.TestData

	key := []byte("key-one")
	value := []byte("value-one")

	assert.False(t, pool.Has(key), "key present before put")

	pool.Put(key, value)
	assert.True(t, pool.Has(key), "key absent after put")
	assert.Equal(t, value, pool.Get(key), "wrong value")

	// overwrite
	value2 := []byte("value-two")
	pool.Put(key, value2)
	assert.Equal(t, value2, pool.Get(key), "wrong value after overwrite")

	pool.Delete(key)
	assert.False(t, pool.Has(key), "key present after delete")
	assert.Nil(t, pool.Get(key), "value present after delete")
}

// pools with different prefixes must not alias
func TestPoolIsolation(t *testing.T) {

	key := []byte("shared-key")

	storage.Pool.Tokens.Put(key, []byte("token"))
	defer storage.Pool.Tokens.Delete(key)

	assert.False(t, storage.Pool.TestData.Has(key), "pool prefixes alias")
}

// double initialise must fail
func TestDoubleInitialise(t *testing.T) {

	err := storage.InitialiseMemory()
	assert.NotNil(t, err, "second initialise did not fail")
}
