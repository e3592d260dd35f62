// Copyright (c) 2024 The libica-ecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build !s390x

package cpacf

// pccInstruction is the non-s390x stub: PCC does not exist outside
// z/Architecture, so this always reports the instruction unavailable. The
// top-level dispatcher should never reach here with msa9_switch set on a
// build that isn't s390x.
func pccInstruction(fc uint8, paramBlock []byte) error {
	return errCPACFUnavailable
}
