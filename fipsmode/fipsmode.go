// Copyright (c) 2024 The libica-ecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fipsmode gates the software-fallback backend behind FIPS-mode
// policy, per spec §7's policy-denied error kind. It is an external
// collaborator: the decision of whether FIPS mode is required and
// whether the underlying cryptographic library is actually running in
// FIPS mode both live outside this core.
package fipsmode

import "sync/atomic"

var required atomic.Bool

// SetRequired records whether the library must refuse non-FIPS-validated
// code paths.
func SetRequired(v bool) { required.Store(v) }

// Required reports whether FIPS mode is required.
func Required() bool { return required.Load() }

// Checker reports whether the underlying cryptographic library is
// currently operating in FIPS mode. The default always reports true,
// i.e. a no-op that never trips the policy-denied check; a real
// deployment supplies one backed by its crypto library's FIPS indicator.
type Checker func() bool

var active Checker = func() bool { return true }

// SetChecker installs the FIPS-mode checker used by Denied.
func SetChecker(c Checker) { active = c }

// Denied reports whether the caller's operation must be refused with
// EACCES: FIPS mode is required but the underlying library is not
// currently in FIPS mode.
func Denied() bool {
	return Required() && !active()
}
