// Copyright (c) 2024 The libica-ecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stats

import "testing"

func TestCountersRecordIndependentBackends(t *testing.T) {
	c := &Counters{}
	c.Record(BackendCPU)
	c.Record(BackendCPU)
	c.Record(BackendCoprocessor)

	if got := c.Count(BackendCPU); got != 2 {
		t.Errorf("BackendCPU count = %d, want 2", got)
	}
	if got := c.Count(BackendCoprocessor); got != 1 {
		t.Errorf("BackendCoprocessor count = %d, want 1", got)
	}
	if got := c.Count(BackendSoftware); got != 0 {
		t.Errorf("BackendSoftware count = %d, want 0", got)
	}
}

func TestCountersOutOfRangeIsSafe(t *testing.T) {
	c := &Counters{}
	c.Record(Backend(99))
	if got := c.Count(Backend(99)); got != 0 {
		t.Errorf("out-of-range Count = %d, want 0", got)
	}
	if got := c.Count(Backend(-1)); got != 0 {
		t.Errorf("negative Count = %d, want 0", got)
	}
}
