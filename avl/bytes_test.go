// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/bitmark-inc/avltree/avl"
)

// raw binary key, ordered bytewise
type binItem []byte

func (b binItem) String() string {
	return fmt.Sprintf("%x", []byte(b))
}

func (b binItem) Compare(x interface{}) int {
	return bytes.Compare(b, x.(binItem))
}

// keys with embedded NULs and unequal lengths, listed in bytewise order
var binList = []binItem{
	{0x00},
	{0x00, 0x00, 0x01},
	{0x00, 0x7f},
	{0x10, 0x20},
	{0x10, 0x20, 0x00},
	{0x80},
	{0xff, 0x00},
	{0xff, 0x00, 0x01},
}

func TestBinaryKeys(t *testing.T) {
	// shuffled insert order
	order := []int{5, 2, 7, 0, 4, 6, 1, 3}

	tree := avl.New()
	for _, i := range order {
		if !tree.Insert(binList[i], i) {
			t.Fatalf("insert: %q  was already present", binList[i])
		}
	}
	checkStructure(t, tree)

	if len(binList) != tree.Count() {
		t.Fatalf("count: actual: %d  expected: %d", tree.Count(), len(binList))
	}

	// in-order traversal must match the bytewise ordering
	i := 0
	for p := tree.First(); nil != p; p = p.Next() {
		if 0 != p.Key().Compare(binList[i]) {
			t.Errorf("traverse: %d: actual: %q  expected: %q", i, p.Key(), binList[i])
		}
		i += 1
	}

	// positional access must agree with the traversal
	for i, key := range binList {
		node := tree.Get(i)
		if nil == node {
			t.Fatalf("get: %d returned nil", i)
		}
		if 0 != node.Key().Compare(key) {
			t.Errorf("get: %d: actual: %q  expected: %q", i, node.Key(), key)
		}

		found, index := tree.Search(key)
		if nil == found || index != i {
			t.Errorf("search: %q: actual index: %d  expected: %d", key, index, i)
		}
	}

	// out of range indexes on a populated tree
	if nil != tree.Get(-1) {
		t.Errorf("get: -1 returned a node")
	}
	if nil != tree.Get(tree.Count()) {
		t.Errorf("get: %d returned a node", tree.Count())
	}
}
