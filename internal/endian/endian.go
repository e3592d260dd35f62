// Copyright (c) 2024 The libica-ecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package endian implements the fixed-width in-place byte reversals used
// when moving Montgomery/Edwards coordinates between their little-endian
// external representation and the big-endian layout the CPU instructions
// expect.
package endian

// Reverse32 reverses the 32 bytes of b in place.
func Reverse32(b *[32]byte) {
	reverse(b[:])
}

// Reverse64 reverses the 64 bytes of b in place.
func Reverse64(b *[64]byte) {
	reverse(b[:])
}

// ReverseSlice reverses b in place, whatever its length.
func ReverseSlice(b []byte) {
	reverse(b)
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
