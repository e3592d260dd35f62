// Copyright (c) 2024 The libica-ecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build s390x

package cpacf

// pcc is implemented in pcc_s390x.s. It executes the PCC instruction with
// the given function code over the 4096-byte parameter block pointed to by
// paramBlock, and returns the instruction's condition code.
//
//go:noescape
func pcc(fc uint64, paramBlock *byte) (cc uint64)

// pccInstruction is the s390x implementation of pccInvoke: it drives real
// silicon. A nonzero condition code is reported as a hardware failure; the
// parameter-block packing functions in scalarmul.go are responsible for
// translating that into the spec's EIO.
func pccInstruction(fc uint8, paramBlock []byte) error {
	cc := pcc(uint64(fc), &paramBlock[0])
	if cc != 0 {
		return errHardware
	}
	return nil
}
