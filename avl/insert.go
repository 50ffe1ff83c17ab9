// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - add a key and value to the tree
//
// an insert with a key already in the tree only overwrites the value
// of the existing node, keys stay unique
// returns true if a new node was added
func (tree *Tree) Insert(key Item, value interface{}) bool {

	if nil == tree.root {
		tree.root = newNode(key, value)
		return true
	}

	p := tree.root
descend:
	for {
		switch p.key.Compare(key) {
		case +1: // p.key > key
			if nil == p.left {
				n := newNode(key, value)
				p.left = n
				n.up = p
				p = n
				break descend
			}
			p = p.left
		case -1: // p.key < key
			if nil == p.right {
				n := newNode(key, value)
				p.right = n
				n.up = p
				p = n
				break descend
			}
			p = p.right
		default: // an existing key, only the value changes
			p.value = value
			return false
		}
	}

	// only nodes above the new leaf have changed
	tree.rebalance(p)
	return true
}
