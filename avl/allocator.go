// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"sync"
)

// Item - a key item must implement the Compare function
type Item interface {
	Compare(interface{}) int // exactly -1, 0 or +1 for the key ordering
}

// Node - a node in the tree
type Node struct {
	left   *Node       // left sub-tree
	right  *Node       // right sub-tree
	up     *Node       // points to parent node
	key    Item        // key part for ordering
	value  interface{} // value part for data storage
	count  int         // records held at this node, one under unique keys
	weight int         // records in the sub-tree rooted here, count included
	height int         // longest downward path to a leaf, a leaf is zero
}

// global data for allocator
var m sync.Mutex   // to keep values in sync
var pool *Node     // linked list of reclaimed nodes
var totalNodes int // total nodes created
var freeNodes int  // number of nodes in the pool

// allocate a new leaf node, reuses reclaimed nodes if any are available
func newNode(key Item, value interface{}) *Node {
	m.Lock()
	if nil == pool {
		if 0 != freeNodes {
			panic("pool corrupt")
		}
		totalNodes += 1
		m.Unlock()
		return &Node{
			key:    key,
			value:  value,
			count:  1,
			weight: 1,
			height: 0,
		}
	}
	p := pool
	pool = p.up
	p.key = key
	p.value = value
	p.count = 1
	p.weight = 1
	p.height = 0
	p.left = nil
	p.right = nil
	p.up = nil // ensure freelist pointer is cleared
	freeNodes -= 1
	m.Unlock()
	return p
}

// reclaim a node and keep it in a pool
func freeNode(node *Node) {
	m.Lock()
	node.up = pool // use as free list pointer

	node.left = nil
	node.right = nil
	node.key = nil
	node.value = nil
	node.count = 0
	node.weight = 0
	node.height = 0
	freeNodes += 1

	pool = node
	m.Unlock()
}
