// Copyright (c) 2024 The libica-ecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cpacf

import (
	"syscall"

	"github.com/ibm-s390-linux/libica-ecc/curve"
)

// RandFunc supplies fresh random bytes for the KDSA deterministic-mode
// rand slot. It is drained afresh on every iteration of the sign retry
// loop per spec §9.
type RandFunc func([]byte) error

// privlenForCurve returns the ECDSA-capable curve's private-scalar
// length, matching curve.Lookup but avoiding a second catalog traversal
// per call site.
func privlenForCurve(c curve.ID) int {
	cc, ok := curve.Lookup(c)
	if !ok {
		return 0
	}
	return cc.PrivLen
}

// ECDSASign invokes the CPU-instruction ECDSA sign path described in spec
// §4.2. With rng nil, the instruction supplies its own randomness and is
// invoked exactly once. With rng non-nil, the deterministic-mode bit is
// set and the instruction is retried — with a freshly drawn rand slot each
// time — until it reports success; the loop is unbounded by design.
func ECDSASign(c curve.ID, priv, hash []byte, rng RandFunc) (r, s []byte, err error) {
	fn, ok := sigFuncFor(c, true)
	if !ok {
		return nil, nil, syscall.EINVAL
	}
	privlen := privlenForCurve(c)
	slot := maxSlotWeierstrass(c)

	hwFC := s390KDSAFunctions[fn].hwFC
	if rng != nil {
		hwFC |= deterministicBit
	}

	block := make([]byte, 5*slot)
	defer scrub(block)

	const (
		slotR    = 0
		slotS    = 1
		slotHash = 2
		slotPriv = 3
		slotRand = 4
	)
	packHash(block[slotHash*slot:slotHash*slot+slot], hash)
	putRightAligned(block[slotPriv*slot:slotPriv*slot+slot], priv)

	for {
		if rng != nil {
			randSlot := block[slotRand*slot : slotRand*slot+slot]
			for i := range randSlot {
				randSlot[i] = 0
			}
			if err := rng(randSlot[slot-privlen:]); err != nil {
				return nil, nil, syscall.EIO
			}
		}

		cc, err := kdsaInvoke(hwFC, block)
		if err != nil {
			return nil, nil, syscall.EIO
		}
		if cc == 0 {
			break
		}
		if rng == nil {
			// The instruction supplies its own randomness; a nonzero cc
			// here is a hardware failure, not a retryable rejection.
			return nil, nil, syscall.EIO
		}
		// cc == 1 or 2: the instruction rejected this k, retry with fresh
		// randomness.
	}

	r = make([]byte, privlen)
	copy(r, block[slotR*slot+slot-privlen:slotR*slot+slot])
	s = make([]byte, privlen)
	copy(s, block[slotS*slot+slot-privlen:slotS*slot+slot])
	return r, s, nil
}

// ECDSAVerify invokes the CPU-instruction ECDSA verify path. A nonzero
// condition code is reported as EFAULT (signature invalid) per spec §4.2;
// an error from invoking the instruction itself is reported as EIO.
func ECDSAVerify(c curve.ID, x, y, hash, r, s []byte) error {
	fn, ok := sigFuncFor(c, false)
	if !ok {
		return syscall.EINVAL
	}
	slot := maxSlotWeierstrass(c)
	hwFC := s390KDSAFunctions[fn].hwFC

	block := make([]byte, 5*slot)
	defer scrub(block)

	const (
		slotR    = 0
		slotS    = 1
		slotHash = 2
		slotX    = 3
		slotY    = 4
	)
	putRightAligned(block[slotR*slot:slotR*slot+slot], r)
	putRightAligned(block[slotS*slot:slotS*slot+slot], s)
	packHash(block[slotHash*slot:slotHash*slot+slot], hash)
	putRightAligned(block[slotX*slot:slotX*slot+slot], x)
	putRightAligned(block[slotY*slot:slotY*slot+slot], y)

	cc, err := kdsaInvoke(hwFC, block)
	if err != nil {
		return syscall.EIO
	}
	if cc != 0 {
		return syscall.EFAULT
	}
	return nil
}

// packHash right-aligns hash into slot, truncating from the tail if hash
// is longer than slot. off = slot_size - min(hashlen, slot_size); the
// copied length is slot_size - off, taken from the leftmost bytes of
// hash, matching spec §4.2's truncation formula.
func packHash(slot, hash []byte) {
	hashlen := len(hash)
	take := hashlen
	if take > len(slot) {
		take = len(slot)
	}
	off := len(slot) - take
	copy(slot[off:], hash[:take])
}
