// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - a balanced binary search tree with the addition of
// parent pointers to allow iteration through the nodes
//
// Every node carries the height and the weight (node count) of the
// sub-tree below it.  After an insert or a delete the tree walks from
// the point of change back up to the root, recomputing both values and
// rotating wherever the heights of the two children differ by more
// than one.  The weight doubles as an order statistic, so nodes can be
// fetched by in-order position and a search reports the position of
// the key it found.
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// This version allows for data associated with the key, which can be
// overwritten by an insert with the same key.  Also delete moves
// nodes rather than copying data between them, so node pointers held
// by callers stay valid and previous nodes can be deleted during
// iteration.
package avl
