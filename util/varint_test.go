// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Zatoichi Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"bytes"
	"testing"

	"github.com/zatoichi-labs/plasmacashd/util"
)

// test Varint64 round trip
func TestVarint64(t *testing.T) {

	tests := []struct {
		value   uint64
		encoded []byte
	}{
		{0x00, []byte{0x00}},
		{0x01, []byte{0x01}},
		{0x7f, []byte{0x7f}},
		{0x80, []byte{0x80, 0x01}},
		{0xff, []byte{0xff, 0x01}},
		{0x3fff, []byte{0xff, 0x7f}},
		{0x4000, []byte{0x80, 0x80, 0x01}},
		{0xffffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
	}

	for i, item := range tests {
		encoded := util.ToVarint64(item.value)
		if !bytes.Equal(encoded, item.encoded) {
			t.Errorf("%d: encode: %d  got: %x  expected: %x", i, item.value, encoded, item.encoded)
		}
		value, count := util.FromVarint64(item.encoded)
		if count != len(item.encoded) {
			t.Errorf("%d: decode used: %d bytes  expected: %d", i, count, len(item.encoded))
		}
		if value != item.value {
			t.Errorf("%d: decode: %x  got: %d  expected: %d", i, item.encoded, value, item.value)
		}
	}
}

// truncated buffers must decode as zero length
func TestVarint64Truncated(t *testing.T) {

	value, count := util.FromVarint64([]byte{0x80})
	if 0 != count || 0 != value {
		t.Errorf("truncated decode: got: %d, %d  expected: 0, 0", value, count)
	}

	value, count = util.FromVarint64([]byte{})
	if 0 != count || 0 != value {
		t.Errorf("empty decode: got: %d, %d  expected: 0, 0", value, count)
	}
}

// out of range values must be rejected
func TestClippedVarint64(t *testing.T) {

	buffer := util.ToVarint64(300)

	v, n := util.ClippedVarint64(buffer, 1, 8192)
	if 300 != v || len(buffer) != n {
		t.Errorf("clipped: got: %d, %d  expected: 300, %d", v, n, len(buffer))
	}

	v, n = util.ClippedVarint64(buffer, 1, 100)
	if 0 != v || 0 != n {
		t.Errorf("clipped out of range: got: %d, %d  expected: 0, 0", v, n)
	}
}

// Base58 round trip
func TestBase58(t *testing.T) {

	buffer := []byte{0x01, 0x02, 0x03, 0xfd, 0xfe, 0xff}
	s := util.ToBase58(buffer)
	decoded := util.FromBase58(s)
	if !bytes.Equal(buffer, decoded) {
		t.Errorf("base58 round trip: got: %x  expected: %x", decoded, buffer)
	}

	if 0 != len(util.FromBase58("0OIl")) {
		t.Error("base58 decode of invalid characters did not fail")
	}
}
