// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sync/errgroup"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/registry"
	"github.com/bitmark-inc/avltree/registry/fixtures"
)

type testKey struct {
	s string
}

func (k testKey) String() string {
	return k.s
}

func (k testKey) Compare(x interface{}) int {
	return strings.Compare(k.s, x.(testKey).s)
}

func TestNew(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_, err := registry.New(nil, time.Minute)
	assert.Equal(t, fault.ErrInvalidLoggerChannel, err, "wrong nil logger error")

	_, err = registry.New(logger.New(fixtures.LogCategory), time.Second)
	assert.Equal(t, fault.ErrInvalidExpiry, err, "wrong short expiry error")

	r, err := registry.New(logger.New(fixtures.LogCategory), time.Minute)
	assert.Nil(t, err, "wrong New")
	assert.NotNil(t, r, "no registry")
	assert.Equal(t, 0, r.Count(), "not empty")
}

func TestAddGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	r, err := registry.New(logger.New(fixtures.LogCategory), time.Minute)
	assert.Nil(t, err, "wrong New")

	added := r.Add(testKey{"alpha"}, "one")
	assert.True(t, added, "not add")

	data, ok := r.Get(testKey{"alpha"})
	assert.True(t, ok, "not found")
	assert.Equal(t, "one", data, "wrong data")

	// refresh overwrites the data and is not an add
	added = r.Add(testKey{"alpha"}, "two")
	assert.False(t, added, "refresh counted as add")

	data, ok = r.Get(testKey{"alpha"})
	assert.True(t, ok, "not found")
	assert.Equal(t, "two", data, "wrong data after refresh")
	assert.Equal(t, 1, r.Count(), "wrong count")

	_, ok = r.Get(testKey{"bravo"})
	assert.False(t, ok, "found a missing key")
}

func TestSeen(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	r, err := registry.New(logger.New(fixtures.LogCategory), time.Minute)
	assert.Nil(t, err, "wrong New")

	_, err = r.Seen(testKey{"alpha"})
	assert.Equal(t, fault.ErrKeyNotFound, err, "wrong missing key error")

	r.Add(testKey{"alpha"}, "one")
	seen, err := r.Seen(testKey{"alpha"})
	assert.Nil(t, err, "wrong Seen")
	assert.WithinDuration(t, time.Now(), seen, time.Second, "wrong seen time")
}

func TestRemove(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	r, err := registry.New(logger.New(fixtures.LogCategory), time.Minute)
	assert.Nil(t, err, "wrong New")

	assert.False(t, r.Remove(testKey{"alpha"}), "removed a missing key")

	r.Add(testKey{"alpha"}, "one")
	assert.True(t, r.Remove(testKey{"alpha"}), "not removed")
	assert.Equal(t, 0, r.Count(), "wrong count")

	_, ok := r.Get(testKey{"alpha"})
	assert.False(t, ok, "still present")
}

func TestChanged(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	r, err := registry.New(logger.New(fixtures.LogCategory), time.Minute)
	assert.Nil(t, err, "wrong New")
	assert.False(t, r.Changed(), "not changed")

	r.Add(testKey{"alpha"}, "one")
	assert.True(t, r.Changed(), "not changed")

	r.Change(false)
	assert.False(t, r.Changed(), "still changed")

	// a refresh is not a change to the key set
	r.Add(testKey{"alpha"}, "two")
	assert.False(t, r.Changed(), "refresh marked change")

	r.Remove(testKey{"alpha"})
	assert.True(t, r.Changed(), "not changed")
}

func TestNext(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	r, err := registry.New(logger.New(fixtures.LogCategory), time.Minute)
	assert.Nil(t, err, "wrong New")

	_, _, err = r.Next(testKey{"alpha"})
	assert.Equal(t, fault.ErrRegistryIsEmpty, err, "wrong empty error")

	r.Add(testKey{"bravo"}, 2)
	r.Add(testKey{"alpha"}, 1)
	r.Add(testKey{"charlie"}, 3)

	key, data, err := r.Next(testKey{"alpha"})
	assert.Nil(t, err, "wrong next")
	assert.Equal(t, testKey{"bravo"}, key, "wrong key")
	assert.Equal(t, 2, data, "wrong data")

	// wrap around at the end
	key, _, err = r.Next(testKey{"charlie"})
	assert.Nil(t, err, "wrong next")
	assert.Equal(t, testKey{"alpha"}, key, "wrong wrap around key")

	// the starting key does not have to be present
	key, _, err = r.Next(testKey{"b"})
	assert.Nil(t, err, "wrong next")
	assert.Equal(t, testKey{"bravo"}, key, "wrong key after missing")
}

func TestAt(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	r, err := registry.New(logger.New(fixtures.LogCategory), time.Minute)
	assert.Nil(t, err, "wrong New")

	r.Add(testKey{"bravo"}, 2)
	r.Add(testKey{"alpha"}, 1)
	r.Add(testKey{"charlie"}, 3)

	expected := []string{"alpha", "bravo", "charlie"}
	for i, s := range expected {
		key, data, err := r.At(i)
		assert.Nil(t, err, "wrong At")
		assert.Equal(t, testKey{s}, key, "wrong key")
		assert.Equal(t, i+1, data, "wrong data")
	}

	_, _, err = r.At(3)
	assert.Equal(t, fault.ErrIndexOutOfRange, err, "wrong range error")
	_, _, err = r.At(-1)
	assert.Equal(t, fault.ErrIndexOutOfRange, err, "wrong range error")
}

// many go routines on one registry, each with its own key range
func TestConcurrent(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	r, err := registry.New(logger.New(fixtures.LogCategory), time.Minute)
	assert.Nil(t, err, "wrong New")

	const routines = 8
	const keysEach = 100

	g := new(errgroup.Group)
	for n := 0; n < routines; n += 1 {
		n := n
		g.Go(func() error {
			for i := 0; i < keysEach; i += 1 {
				key := testKey{fmt.Sprintf("%d-%03d", n, i)}
				r.Add(key, i)
				if _, ok := r.Get(key); !ok {
					return fmt.Errorf("missing key: %v", key)
				}
			}
			// drop the odd keys again
			for i := 1; i < keysEach; i += 2 {
				key := testKey{fmt.Sprintf("%d-%03d", n, i)}
				if !r.Remove(key) {
					return fmt.Errorf("remove failed: %v", key)
				}
			}
			return nil
		})
	}
	err = g.Wait()
	assert.Nil(t, err, "wrong hammer")

	assert.Equal(t, routines*keysEach/2, r.Count(), "wrong count")

	// survivors come back in strictly ascending order
	prev := ""
	for i := 0; i < r.Count(); i += 1 {
		key, data, err := r.At(i)
		assert.Nil(t, err, "wrong At")
		s := key.(testKey).s
		assert.True(t, prev < s, "order broken at: %d", i)
		assert.Equal(t, 0, data.(int)%2, "an odd key survived")
		prev = s
	}
}
