// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Get - fetch the node at a zero based position in key order
//
// the sub-tree weights make this a single root to node descent
func (tree *Tree) Get(index int) *Node {
	if index < 0 || index >= tree.Count() {
		return nil
	}
	return get(index, tree.root)
}

func get(index int, tree *Node) *Node {
	if nil == tree {
		return nil
	}

	nl := tree.leftWeight()

	if index < nl {
		return get(index, tree.left)
	}
	if index >= nl+tree.count {
		// skip over the left nodes and this node
		return get(index-nl-tree.count, tree.right)
	}
	return tree
}
