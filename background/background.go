// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - handle a group of go routines that run
// until a single shutdown is signalled
package background

import (
	"sync"
)

// Process - run a background process, the shutdown channel is closed
// to signal termination and Run must return soon after
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// T - handle for later stopping the processes
type T struct {
	sync.WaitGroup
	finalise chan struct{}
}

// Start - start up a set of background processes
// all with the same args value
func Start(processes Processes, args interface{}) *T {

	register := &T{
		finalise: make(chan struct{}),
	}
	register.Add(len(processes))

	// start each background
	for _, p := range processes {
		go func(p Process) {
			p.Run(args, register.finalise)
			register.Done()
		}(p)
	}
	return register
}

// Stop - stop all the background processes and wait for them to finish
//
// a nil handle or a second stop cannot happen from the normal
// start/stop pairing so only the nil is guarded
func (t *T) Stop() {

	if nil == t {
		return
	}

	// trigger shutdown of all background tasks
	close(t.finalise)

	// wait for all backgrounds to finish
	t.Wait()
}
