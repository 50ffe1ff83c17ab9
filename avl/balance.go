// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// height of the left sub-tree, -1 if absent
func (p *Node) leftHeight() int {
	if nil == p.left {
		return -1
	}
	return p.left.height
}

// height of the right sub-tree, -1 if absent
func (p *Node) rightHeight() int {
	if nil == p.right {
		return -1
	}
	return p.right.height
}

// weight of the left sub-tree, zero if absent
func (p *Node) leftWeight() int {
	if nil == p.left {
		return 0
	}
	return p.left.weight
}

// weight of the right sub-tree, zero if absent
func (p *Node) rightWeight() int {
	if nil == p.right {
		return 0
	}
	return p.right.weight
}

// IsHeavy - true if the two sub-tree heights differ by more than one
//
// a diagnostic, the mutation path uses the directional checks below
func (p *Node) IsHeavy() bool {
	return p.isLeftHeavy(1) || p.isRightHeavy(1)
}

// true if the left sub-tree is taller than the right by more than diff
//
// diff = 1 detects a height violation, diff = 0 detects which way an
// already heavy node leans
func (p *Node) isLeftHeavy(diff int) bool {
	return p.leftHeight()-p.rightHeight() > diff
}

// true if the right sub-tree is taller than the left by more than diff
func (p *Node) isRightHeavy(diff int) bool {
	return p.rightHeight()-p.leftHeight() > diff
}

// recompute weight and height from the current children
//
// only correct if the children are already up to date, so callers work
// from the bottom of the tree upwards
func (p *Node) update() {
	p.weight = p.count + p.leftWeight() + p.rightWeight()

	l := p.leftHeight()
	r := p.rightHeight()
	if l > r {
		p.height = 1 + l
	} else {
		p.height = 1 + r
	}
}

// attach x below p on the side its key belongs
//
// also points the child back at its new parent
func (p *Node) addChild(x *Node) {
	if p.key.Compare(x.key) > 0 {
		p.left = x
	} else {
		p.right = x
	}
	x.up = p
}

// rotate the heavy right child up into the place of node
//
// the child's left sub-tree contains the keys between the two moved
// nodes and is handed across to node, everything else keeps its order
func (tree *Tree) rotateLeft(node *Node, heavyChild *Node) {
	if nil == heavyChild {
		panic("avl: rotate left without a right child")
	}

	parent := node.up

	node.right = heavyChild.left
	if nil != node.right {
		node.right.up = node
	}
	node.update() // node lost a sub-tree, refresh before the new parent reads it

	heavyChild.up = parent
	heavyChild.left = node
	node.up = heavyChild
	heavyChild.update()

	if nil == parent {
		tree.root = heavyChild
	} else {
		parent.addChild(heavyChild)
	}
}

// rotate the heavy left child up into the place of node
func (tree *Tree) rotateRight(node *Node, heavyChild *Node) {
	if nil == heavyChild {
		panic("avl: rotate right without a left child")
	}

	parent := node.up

	node.left = heavyChild.right
	if nil != node.left {
		node.left.up = node
	}
	node.update()

	heavyChild.up = parent
	heavyChild.right = node
	node.up = heavyChild
	heavyChild.update()

	if nil == parent {
		tree.root = heavyChild
	} else {
		parent.addChild(heavyChild)
	}
}

// restore the height invariant at node if it is violated
//
// the node's own height must already be current; returns the parent
// captured before any rotation moved the links, which is the next node
// an upward walk has to visit
func (tree *Tree) balance(node *Node) *Node {
	parent := node.up

	if node.isLeftHeavy(1) {
		// a taller-or-equal outer sub-tree takes a single rotation, a
		// left child leaning to the right must be turned first or the
		// rotation cannot reduce the height
		if node.left.isRightHeavy(0) {
			tree.rotateLeft(node.left, node.left.right)
		}
		tree.rotateRight(node, node.left)
	} else if node.isRightHeavy(1) {
		if node.right.isLeftHeavy(0) {
			tree.rotateRight(node.right, node.right.left)
		}
		tree.rotateLeft(node, node.right)
	}

	return parent
}

// walk from a just modified node up to the root, refreshing weight and
// height and rotating wherever the walk finds a violation
//
// an insert or a delete changes heights only along this path, and each
// step runs after the one below it, so every check sees current values
func (tree *Tree) rebalance(node *Node) {
	for nil != node {
		node.update()
		node = tree.balance(node)
	}
}
