// Copyright (c) 2024 The libica-ecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package stats counts backend usage for the operations in package ecc.
// It is an external collaborator per spec §2 — the core dispatcher
// reports through it but never reads counts back to make decisions.
package stats

import "sync/atomic"

// Backend identifies which execution path serviced an operation.
type Backend int

const (
	BackendCPU Backend = iota
	BackendCoprocessor
	BackendSoftware
)

// Counters accumulates per-backend call counts; operations are not
// counted separately.
type Counters struct {
	counts [3]atomic.Uint64
}

// Default is the process-wide counter set the ecc package reports to
// when no explicit Counters is supplied.
var Default = &Counters{}

// Record increments the counter for backend.
func (c *Counters) Record(backend Backend) {
	if int(backend) < 0 || int(backend) >= len(c.counts) {
		return
	}
	c.counts[backend].Add(1)
}

// Count returns the current count for backend.
func (c *Counters) Count(backend Backend) uint64 {
	if int(backend) < 0 || int(backend) >= len(c.counts) {
		return 0
	}
	return c.counts[backend].Load()
}
