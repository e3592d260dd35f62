// Copyright (c) 2024 The libica-ecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cpacf

import "syscall"

// pccInvoke executes the PCC instruction with function code fc over
// paramBlock and reports whether it succeeded. It is a package-level
// variable — rather than a direct call to the per-arch implementation — so
// tests can substitute a fake that performs a deterministic, checkable
// transform of paramBlock instead of driving real silicon. Production code
// never reassigns it.
var pccInvoke = pccInstruction

// kdsaInvoke executes the KDSA instruction with function code fc over
// paramBlock and returns the instruction's condition code, the same seam
// as pccInvoke but for the sign/verify instruction family. Unlike PCC,
// KDSA's condition code is meaningful beyond pass/fail (cc 1 distinguishes
// a rejected signature from a hardware error), so it is returned alongside
// the error rather than collapsed into it.
var kdsaInvoke = kdsaInstruction

// errCPACFUnavailable is returned by the non-s390x instruction stubs. It is
// never observed by a caller of this module: the top-level dispatcher only
// attempts the CPU-instruction backend when the capability collaborator
// reports msa9_switch is set, which on a non-s390x build should never be
// true.
var errCPACFUnavailable = syscall.ENOSYS

// errHardware is returned when the instruction itself reports a nonzero
// condition code, i.e. a genuine hardware-level failure rather than an
// unsupported curve.
var errHardware = syscall.EIO
