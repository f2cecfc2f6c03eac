// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Zatoichi Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/zatoichi-labs/plasmacashd/fault"
)

// test that error classes are detected correctly
func TestClasses(t *testing.T) {

	if !fault.IsErrExists(fault.ErrTokenAlreadyExists) {
		t.Errorf("not an exists error: %s", fault.ErrTokenAlreadyExists)
	}
	if !fault.IsErrInvalid(fault.ErrInvalidSignature) {
		t.Errorf("not an invalid error: %s", fault.ErrInvalidSignature)
	}
	if !fault.IsErrNotFound(fault.ErrTokenDoesNotExist) {
		t.Errorf("not a not-found error: %s", fault.ErrTokenDoesNotExist)
	}
	if fault.IsErrExists(fault.ErrTokenDoesNotExist) {
		t.Errorf("wrongly an exists error: %s", fault.ErrTokenDoesNotExist)
	}
}

// ensure that single instance comparison works
func TestInstance(t *testing.T) {

	err := func() error {
		return fault.ErrNotCurrentOwner
	}()

	if fault.ErrNotCurrentOwner != err {
		t.Errorf("error instance mismatch: %s", err)
	}
}
