// Copyright (c) 2024 The libica-ecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fipsmode

import "testing"

func TestDeniedOnlyWhenRequiredAndNotActive(t *testing.T) {
	t.Cleanup(func() {
		SetRequired(false)
		SetChecker(func() bool { return true })
	})

	SetRequired(false)
	SetChecker(func() bool { return false })
	if Denied() {
		t.Fatalf("Denied() must be false when FIPS mode is not required")
	}

	SetRequired(true)
	SetChecker(func() bool { return true })
	if Denied() {
		t.Fatalf("Denied() must be false when required and active")
	}

	SetChecker(func() bool { return false })
	if !Denied() {
		t.Fatalf("Denied() must be true when required but not active")
	}
}
