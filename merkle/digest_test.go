// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Zatoichi Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle_test

import (
	"encoding/json"
	"testing"

	"github.com/zatoichi-labs/plasmacashd/fault"
	"github.com/zatoichi-labs/plasmacashd/merkle"
)

// test the digest of an empty record
//
// echo -n '' | sha3sum -a 256
func TestEmptyDigest(t *testing.T) {

	d := merkle.NewDigest([]byte{})

	expected := "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a"
	if expected != d.String() {
		t.Errorf("digest: got: %s  expected: %s", d, expected)
	}
}

// test JSON round trip of a digest
func TestDigestJSON(t *testing.T) {

	d := merkle.NewDigest([]byte("1234567890"))

	buffer, err := json.Marshal(d)
	if nil != err {
		t.Fatalf("marshal error: %s", err)
	}

	var restored merkle.Digest
	err = json.Unmarshal(buffer, &restored)
	if nil != err {
		t.Fatalf("unmarshal error: %s", err)
	}

	if restored != d {
		t.Errorf("round trip: got: %#v  expected: %#v", restored, d)
	}
}

// truncated hex must be rejected
func TestDigestUnmarshalShort(t *testing.T) {

	var d merkle.Digest
	err := d.UnmarshalText([]byte("1234"))
	if fault.ErrNotDigest != err {
		t.Errorf("unmarshal of short hex: got: %v  expected: %v", err, fault.ErrNotDigest)
	}
}
