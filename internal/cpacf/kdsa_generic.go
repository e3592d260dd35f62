// Copyright (c) 2024 The libica-ecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build !s390x

package cpacf

// kdsaInstruction is the non-s390x stub: KDSA does not exist outside
// z/Architecture.
func kdsaInstruction(fc uint8, paramBlock []byte) (cc uint64, err error) {
	return 0, errCPACFUnavailable
}
