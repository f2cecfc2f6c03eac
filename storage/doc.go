// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Zatoichi Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintains a single LevelDB database with prefixed pools:
//
//   Tokens:
//     T ⧺ token id    - packed current transfer for the token
//                       absent if never deposited or withdrawn
//
// a small expiring cache sits in front of reads; the cache is
// updated on every put/delete so a read after a write inside the
// expiry window never touches the disk
package storage
