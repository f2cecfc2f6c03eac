// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Zatoichi Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - queue of ownership events for the host
//
// the token state machine announces every committed state change
// here; the host decides whether to publish, log or drop them
package messagebus
