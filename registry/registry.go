// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - an ordered registry of keyed entries with expiry
//
// The tree underneath is not thread safe, so every operation
// serialises through the registry lock.  Entries carry a last seen
// time, refreshed by Add, and a background sweep removes the entries
// that have gone stale.
package registry

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/background"
	"github.com/bitmark-inc/avltree/counter"
	"github.com/bitmark-inc/avltree/fault"
)

// minimum allowed expiry, so the sweep interval cannot drop below
// half a second
const minimumExpiry = 2 * time.Second

// value stored against each key
type entry struct {
	data interface{}
	seen time.Time // last seen time
}

// Registry - ordered key to data mapping with expiry
type Registry struct {
	sync.RWMutex

	log     *logger.L
	tree    *avl.Tree
	expiry  time.Duration
	changed bool
	expired counter.Counter
	bg      *background.T
}

// New - create an empty registry
func New(log *logger.L, expiry time.Duration) (*Registry, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if expiry < minimumExpiry {
		return nil, fault.ErrInvalidExpiry
	}

	r := &Registry{
		log:    log,
		tree:   avl.New(),
		expiry: expiry,
	}
	return r, nil
}

// Add - store data against a key, refreshing the last seen time
//
// returns true if the key was not already present
func (r *Registry) Add(key avl.Item, data interface{}) bool {
	r.Lock()
	defer r.Unlock()

	added := r.tree.Insert(key, &entry{
		data: data,
		seen: time.Now(),
	})
	if added {
		r.changed = true
		r.log.Debugf("add: %v  count: %d", key, r.tree.Count())
	} else {
		r.log.Tracef("refresh: %v", key)
	}
	return added
}

// Get - fetch the data for a key
func (r *Registry) Get(key avl.Item) (interface{}, bool) {
	r.RLock()
	defer r.RUnlock()

	node, _ := r.tree.Search(key)
	if nil == node {
		return nil, false
	}
	return node.Value().(*entry).data, true
}

// Seen - when the key was last added or refreshed
func (r *Registry) Seen(key avl.Item) (time.Time, error) {
	r.RLock()
	defer r.RUnlock()

	node, _ := r.tree.Search(key)
	if nil == node {
		return time.Time{}, fault.ErrKeyNotFound
	}
	return node.Value().(*entry).seen, nil
}

// Remove - delete a key
//
// returns true if the key was present
func (r *Registry) Remove(key avl.Item) bool {
	r.Lock()
	defer r.Unlock()

	if nil == r.tree.Delete(key) {
		return false
	}
	r.changed = true
	r.log.Debugf("remove: %v  count: %d", key, r.tree.Count())
	return true
}

// Next - key and data following a key in order, wrapping around to
// the first key after the highest one
//
// the key itself does not have to be present
func (r *Registry) Next(key avl.Item) (avl.Item, interface{}, error) {
	r.RLock()
	defer r.RUnlock()

	if r.tree.IsEmpty() {
		return nil, nil, fault.ErrRegistryIsEmpty
	}

	// smallest key strictly greater than the given one
	var succ *avl.Node
	for p := r.tree.Root(); nil != p; {
		if p.Key().Compare(key) > 0 {
			succ = p
			p = p.Left()
		} else {
			p = p.Right()
		}
	}
	if nil == succ {
		succ = r.tree.First() // wrap around
	}

	return succ.Key(), succ.Value().(*entry).data, nil
}

// At - key and data at a zero based position in key order
func (r *Registry) At(index int) (avl.Item, interface{}, error) {
	r.RLock()
	defer r.RUnlock()

	node := r.tree.Get(index)
	if nil == node {
		return nil, nil, fault.ErrIndexOutOfRange
	}
	return node.Key(), node.Value().(*entry).data, nil
}

// Count - number of entries currently registered
func (r *Registry) Count() int {
	r.RLock()
	defer r.RUnlock()

	return r.tree.Count()
}

// Changed - true if the key set changed since the flag was last reset
func (r *Registry) Changed() bool {
	r.RLock()
	defer r.RUnlock()

	return r.changed
}

// Change - set or reset the changed flag
func (r *Registry) Change(changed bool) {
	r.Lock()
	defer r.Unlock()

	r.changed = changed
}

// Expired - total number of entries the expiry has removed
func (r *Registry) Expired() uint64 {
	return r.expired.Uint64()
}

// Expire - remove all entries last seen before the expiry time
//
// returns the number of entries removed
func (r *Registry) Expire() int {
	r.Lock()
	defer r.Unlock()

	cutoff := time.Now().Add(-r.expiry)
	removed := 0

	for p := r.tree.First(); nil != p; {
		next := p.Next() // fetch before any delete

		if p.Value().(*entry).seen.Before(cutoff) {
			key := p.Key()
			r.tree.Delete(key)
			removed += 1
			r.log.Infof("expired: %v", key)
		}
		p = next
	}

	if removed > 0 {
		r.changed = true
		r.expired.Add(uint64(removed))
		r.log.Infof("expired: %d entries  remaining: %d", removed, r.tree.Count())
	}
	return removed
}
