// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - removes a specific item from the tree
//
// returns the stored value, or nil if the key was not present
func (tree *Tree) Delete(key Item) interface{} {
	node, _ := search(key, tree.root, 0)
	if nil == node {
		return nil
	}
	value := node.value // preserve the value part
	tree.remove(node)
	freeNode(node) // return deleted node to pool
	return value
}

// unlink a node from the tree and restore the height invariant
// upwards from the point where a link actually changed
func (tree *Tree) remove(node *Node) {

	if nil != node.left && nil != node.right {
		// two children: the in-order successor is unlinked from its
		// own position and takes over this one, so no key or value
		// is copied between nodes and pointers held by callers stay
		// valid while other keys are removed
		s := node.right.first()

		start := s.up // heights change upward from where the successor left
		if node == start {
			start = s
		}

		// the successor has no left child, its right child moves up
		tree.cut(s, s.right)

		s.left = node.left
		s.left.up = s
		s.right = node.right
		if nil != s.right {
			s.right.up = s
		}
		tree.cut(node, s)

		tree.rebalance(start)
		return
	}

	// one child at most and it moves up into the vacant position
	child := node.left
	if nil == child {
		child = node.right
	}
	parent := node.up
	tree.cut(node, child)
	tree.rebalance(parent)
}

// replace node with child, possibly nil, under node's parent
func (tree *Tree) cut(node *Node, child *Node) {
	parent := node.up
	if nil != child {
		child.up = parent
	}
	if nil == parent {
		tree.root = child
	} else if parent.left == node {
		parent.left = child
	} else {
		parent.right = child
	}
}
