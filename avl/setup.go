// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Tree - type to hold the root node of a tree
type Tree struct {
	root *Node
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root: nil,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
//
// read from the root weight, so the count and the positional index
// operations always agree
func (tree *Tree) Count() int {
	if nil == tree.root {
		return 0
	}
	return tree.root.weight
}

// Height - longest path from the root down to a leaf
//
// an empty tree has a height of -1 and a single node zero
func (tree *Tree) Height() int {
	if nil == tree.root {
		return -1
	}
	return tree.root.height
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// GetChildrenByDepth - returns all children in a specific depth of a tree
func (p *Node) GetChildrenByDepth(depth uint) []*Node {
	nodes := []*Node{}

	if depth == 0 {
		nodes = []*Node{p}
	} else {
		left := p.left
		right := p.right
		if left != nil {
			nodes = append(nodes, left.GetChildrenByDepth(depth-1)...)
		}

		if right != nil {
			nodes = append(nodes, right.GetChildrenByDepth(depth-1)...)
		}
	}
	return nodes
}

// Key - read the key from a node item
func (p *Node) Key() Item {
	return p.key
}

// Value - read the value from a node item
func (p *Node) Value() interface{} {
	return p.value
}

// Parent - return parent node of a node
func (p *Node) Parent() *Node {
	return p.up
}

// Left - return left child of a node, nil if absent
func (p *Node) Left() *Node {
	return p.left
}

// Right - return right child of a node, nil if absent
func (p *Node) Right() *Node {
	return p.right
}

// Height - longest downward path from this node to a leaf
func (p *Node) Height() int {
	return p.height
}

// Weight - number of nodes in the sub-tree rooted at this node
func (p *Node) Weight() int {
	return p.weight
}

// Depth - get the depth of a node
func (p *Node) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}
