// Copyright (c) 2024 The libica-ecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cpacf

import (
	"syscall"

	"github.com/ibm-s390-linux/libica-ecc/curve"
	"github.com/ibm-s390-linux/libica-ecc/internal/endian"
)

// pccParamBlockSize is the full size of a PCC parameter block. The slots
// occupy its start; the remainder is scratch space for the instruction.
const pccParamBlockSize = 4096

// maxSlotWeierstrass reports the per-curve slot size for the
// Weierstrass/Edwards PCC variant: 32 for P-256/Ed25519, 48 for P-384, 80
// for P-521, 64 for Ed448.
func maxSlotWeierstrass(c curve.ID) int {
	switch c {
	case curve.P256, curve.Ed25519:
		return 32
	case curve.P384:
		return 48
	case curve.P521:
		return 80
	case curve.Ed448:
		return 64
	default:
		return 0
	}
}

// maxSlotMontgomery reports the per-curve slot size for the Montgomery PCC
// variant: 32 for X25519, 64 for X448.
func maxSlotMontgomery(c curve.ID) int {
	switch c {
	case curve.X25519:
		return 32
	case curve.X448:
		return 64
	default:
		return 0
	}
}

// ScalarMultiplyWeierstrass performs the Weierstrass/Edwards PCC scalar
// multiplication described in spec §4.1: the parameter block holds five
// slots {res_x, res_y, x, y, scalar} each maxSlot wide, with privlen-byte
// inputs right-aligned in each slot. Both res_x and res_y are copied back.
// Montgomery curves are not handled here and report EINVAL.
func ScalarMultiplyWeierstrass(c curve.ID, x, y, scalar []byte) (resX, resY []byte, err error) {
	fn, ok := scalarMulFuncFor(c)
	slot := maxSlotWeierstrass(c)
	if !ok || slot == 0 {
		return nil, nil, syscall.EINVAL
	}
	privlen := len(scalar)

	block := make([]byte, pccParamBlockSize)
	defer scrub(block)

	const (
		slotResX = 0
		slotResY = 1
		slotX    = 2
		slotY    = 3
		slotScal = 4
	)
	putRightAligned(block[slotX*slot:slotX*slot+slot], x)
	putRightAligned(block[slotY*slot:slotY*slot+slot], y)
	putRightAligned(block[slotScal*slot:slotScal*slot+slot], scalar)

	hwFC := s390PCCFunctions[fn].hwFC
	if err := pccInvoke(hwFC, block); err != nil {
		return nil, nil, syscall.EIO
	}

	resX = make([]byte, privlen)
	copy(resX, block[slotResX*slot+slot-privlen:slotResX*slot+slot])
	resY = make([]byte, privlen)
	copy(resY, block[slotResY*slot+slot-privlen:slotResY*slot+slot])
	return resX, resY, nil
}

// ScalarMultiplyMontgomery performs the Montgomery PCC scalar
// multiplication described in spec §4.1: three slots {res_u, u, scalar},
// little-endian on the wire, clamped per RFC 7748 after the copy but
// before the big-endian flip the instruction requires. Weierstrass and
// Edwards curves are not handled here and report EINVAL.
func ScalarMultiplyMontgomery(c curve.ID, u, scalar []byte) (resU []byte, err error) {
	fn, ok := scalarMulFuncFor(c)
	slot := maxSlotMontgomery(c)
	if !ok || slot == 0 {
		return nil, syscall.EINVAL
	}
	privlen := len(scalar)

	block := make([]byte, pccParamBlockSize)
	defer scrub(block)

	const (
		slotResU = 0
		slotU    = 1
		slotScal = 2
	)
	uSlot := block[slotU*slot : slotU*slot+slot]
	scalSlot := block[slotScal*slot : slotScal*slot+slot]

	copy(uSlot[:privlen], u)
	copy(scalSlot[:privlen], scalar)
	clampMontgomery(c, uSlot[:privlen], scalSlot[:privlen])

	endian.ReverseSlice(uSlot)
	endian.ReverseSlice(scalSlot)

	hwFC := s390PCCFunctions[fn].hwFC
	if err := pccInvoke(hwFC, block); err != nil {
		return nil, syscall.EIO
	}

	resUSlot := block[slotResU*slot : slotResU*slot+slot]
	endian.ReverseSlice(resUSlot)

	resU = make([]byte, privlen)
	copy(resU, resUSlot[:privlen])
	return resU, nil
}

// clampMontgomery applies the RFC 7748 clamping rules to a little-endian
// scalar (and, for X25519, masks the non-canonical high bit of u) in
// place. uTail and scalarTail are the privlen-byte little-endian values —
// the head of their respective slots before the endianness flip.
func clampMontgomery(c curve.ID, uTail, scalarTail []byte) {
	switch c {
	case curve.X25519:
		scalarTail[0] &= 248
		scalarTail[31] = (scalarTail[31] & 127) | 64
		uTail[31] &= 0x7f
	case curve.X448:
		scalarTail[0] &= 252
		scalarTail[55] |= 128
	}
}

// putRightAligned copies src into the tail of dst, leaving the leading
// bytes zero. dst must be at least as long as src.
func putRightAligned(dst, src []byte) {
	copy(dst[len(dst)-len(src):], src)
}
