// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
)

// CheckUp - check the up pointers for consistency
func (tree *Tree) CheckUp() bool {
	return checkup(tree.root, nil)
}

// internal: consistency checker
func checkup(p *Node, up *Node) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		fmt.Printf("check up fail at node: %v  actual: %v  expected: %v\n",
			p.key, keyOf(p.up), keyOf(up))
		return false
	}
	if !checkup(p.left, p) {
		return false
	}
	return checkup(p.right, p)
}

// CheckCounts - check the stored weight and height of every node by
// recomputing both from the bottom of the tree upwards
func (tree *Tree) CheckCounts() bool {
	_, _, ok := checkcounts(tree.root)
	return ok
}

// internal: returns recomputed height and weight of a sub-tree
func checkcounts(p *Node) (int, int, bool) {
	if nil == p {
		return -1, 0, true
	}
	lh, lw, okl := checkcounts(p.left)
	rh, rw, okr := checkcounts(p.right)

	h := 1 + lh
	if rh > lh {
		h = 1 + rh
	}
	w := p.count + lw + rw

	if !okl || !okr {
		return h, w, false
	}
	if h != p.height || w != p.weight {
		fmt.Printf("check counts fail at node: %v  height: %d  expected: %d  weight: %d  expected: %d\n",
			p.key, p.height, h, p.weight, w)
		return h, w, false
	}
	return h, w, true
}

// IsBalanced - true if no node has sub-tree heights differing by more
// than one, an empty tree is balanced
//
// a verification aid, the mutation path never needs a full scan
func (tree *Tree) IsBalanced() bool {
	if nil == tree.root {
		return true
	}

	stack := append(make([]*Node, 0, 16), tree.root)
	for n := len(stack); n > 0; n = len(stack) {
		p := stack[n-1]
		stack = stack[:n-1]
		if p.IsHeavy() {
			return false
		}
		if nil != p.left {
			stack = append(stack, p.left)
		}
		if nil != p.right {
			stack = append(stack, p.right)
		}
	}
	return true
}

// internal: key display that tolerates a nil node
func keyOf(p *Node) interface{} {
	if nil == p {
		return nil
	}
	return p.key
}
