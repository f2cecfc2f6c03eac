// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Zatoichi Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ownership - the per-token state machine
//
// every token id is either absent or owned, where owned means the
// packed current transfer is stored under the token id:
//
//   absent --deposit--> owned --transfer--> owned --withdraw--> absent
//
// each operation checks all of its preconditions against the stored
// state and the relationship classifier, then commits with a single
// pool put or delete; a rejected operation leaves the store untouched
//
// commands for the same token id are serialized by a package lock;
// the caller identity must already be authenticated by the host
package ownership
