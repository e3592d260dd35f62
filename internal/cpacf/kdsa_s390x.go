// Copyright (c) 2024 The libica-ecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build s390x

package cpacf

// kdsa is implemented in kdsa_s390x.s. It executes the KDSA instruction with
// the given function code over the parameter block pointed to by
// paramBlock. cc and errn both carry the condition code: 0 on success, 1
// for a rejected signature or out-of-range input, 2 for a signing retry
// request.
//
//go:noescape
func kdsa(fc uint64, paramBlock *byte) (cc uint64, errn uint64)

// kdsaInstruction is the s390x implementation of kdsaInvoke. cc is passed
// straight through to ecdsa.go, which is responsible for turning a verify
// failure into the spec's EFAULT, a retry request into another iteration of
// the signing loop, and a hard failure into EIO.
func kdsaInstruction(fc uint8, paramBlock []byte) (cc uint64, err error) {
	success, errn := kdsa(uint64(fc), &paramBlock[0])
	if success == 0 {
		return 0, nil
	}
	if errn == 1 || errn == 2 {
		return errn, nil
	}
	return errn, errHardware
}
