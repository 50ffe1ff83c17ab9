// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/background"
	"github.com/bitmark-inc/avltree/fault"
)

// sweep at this fraction of the expiry time
const sweepRatio = 4

// the background process that expires stale entries
type sweeper struct {
	log      *logger.L
	registry *Registry
}

// Start - begin the background expiry sweep
func (r *Registry) Start() error {
	r.Lock()
	defer r.Unlock()

	if nil != r.bg {
		return fault.ErrAlreadyInitialised
	}

	r.log.Info("start sweeper")

	processes := background.Processes{
		&sweeper{
			log:      r.log,
			registry: r,
		},
	}
	r.bg = background.Start(processes, nil)
	return nil
}

// Stop - stop the background expiry sweep and wait for it to finish
func (r *Registry) Stop() error {
	r.Lock()
	bg := r.bg
	r.bg = nil
	r.Unlock()

	// the wait must happen outside the lock, the sweeper takes the
	// lock for each sweep
	if nil == bg {
		return fault.ErrNotInitialised
	}
	bg.Stop()

	r.log.Info("sweeper stopped")
	r.log.Flush()
	return nil
}

// Run - the sweep loop
func (swp *sweeper) Run(args interface{}, shutdown <-chan struct{}) {
	log := swp.log

	log.Info("starting…")

	delay := swp.registry.expiry / sweepRatio
loop:
	for {
		log.Debug("waiting…")
		select {
		case <-shutdown:
			break loop
		case <-time.After(delay):
			n := swp.registry.Expire()
			log.Debugf("swept: %d", n)
		}
	}
	log.Info("shutting down…")
	log.Flush()
}
