// Copyright (c) 2024 The libica-ecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cpacf

import (
	"bytes"
	"syscall"
	"testing"

	"github.com/ibm-s390-linux/libica-ecc/curve"
)

func withFakeKDSA(t *testing.T, fn func(fc uint64, block []byte) (uint64, error)) {
	t.Helper()
	orig := kdsaInvoke
	kdsaInvoke = func(fc uint8, block []byte) (uint64, error) { return fn(uint64(fc), block) }
	t.Cleanup(func() { kdsaInvoke = orig })
}

func TestECDSASignNoRNGSucceedsFirstTry(t *testing.T) {
	slot := maxSlotWeierstrass(curve.P256)
	withFakeKDSA(t, func(fc uint64, block []byte) (uint64, error) {
		copy(block[0*slot:1*slot], bytes.Repeat([]byte{0x11}, slot))
		copy(block[1*slot:2*slot], bytes.Repeat([]byte{0x22}, slot))
		return 0, nil
	})

	r, s, err := ECDSASign(curve.P256, make([]byte, 32), make([]byte, 32), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(r, bytes.Repeat([]byte{0x11}, 32)) {
		t.Errorf("r = %x", r)
	}
	if !bytes.Equal(s, bytes.Repeat([]byte{0x22}, 32)) {
		t.Errorf("s = %x", s)
	}
}

func TestECDSASignNoRNGHardwareFailure(t *testing.T) {
	withFakeKDSA(t, func(fc uint64, block []byte) (uint64, error) { return 1, nil })
	_, _, err := ECDSASign(curve.P256, make([]byte, 32), make([]byte, 32), nil)
	if err != syscall.EIO {
		t.Fatalf("err = %v, want EIO", err)
	}
}

// TestECDSASignDeterministicRetries exercises the retry loop: the first
// two calls report a rejected k (cc 1/2), the third succeeds, and the
// test asserts the rng callback was drained fresh on every attempt.
func TestECDSASignDeterministicRetries(t *testing.T) {
	calls := 0
	withFakeKDSA(t, func(fc uint64, block []byte) (uint64, error) {
		calls++
		if fc&0x80 == 0 {
			t.Fatalf("deterministic bit not set in function code %#x", fc)
		}
		if calls < 3 {
			return uint64(calls), nil
		}
		return 0, nil
	})

	rngCalls := 0
	rng := func(b []byte) error {
		rngCalls++
		for i := range b {
			b[i] = byte(rngCalls)
		}
		return nil
	}

	_, _, err := ECDSASign(curve.P256, make([]byte, 32), make([]byte, 32), rng)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
	if rngCalls != 3 {
		t.Errorf("rngCalls = %d, want 3", rngCalls)
	}
}

func TestECDSAVerifyRejection(t *testing.T) {
	withFakeKDSA(t, func(fc uint64, block []byte) (uint64, error) { return 1, nil })
	err := ECDSAVerify(curve.P256, make([]byte, 32), make([]byte, 32), make([]byte, 32), make([]byte, 32), make([]byte, 32))
	if err != syscall.EFAULT {
		t.Fatalf("err = %v, want EFAULT", err)
	}
}

func TestECDSAVerifyAccept(t *testing.T) {
	withFakeKDSA(t, func(fc uint64, block []byte) (uint64, error) { return 0, nil })
	err := ECDSAVerify(curve.P256, make([]byte, 32), make([]byte, 32), make([]byte, 32), make([]byte, 32), make([]byte, 32))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPackHashTruncatesLeadingBytes(t *testing.T) {
	slot := make([]byte, 4)
	hash := []byte{1, 2, 3, 4, 5, 6}
	packHash(slot, hash)
	if !bytes.Equal(slot, []byte{1, 2, 3, 4}) {
		t.Errorf("slot = %v, want leftmost 4 bytes of hash", slot)
	}
}

func TestPackHashRightAlignsShortHash(t *testing.T) {
	slot := make([]byte, 4)
	hash := []byte{9, 9}
	packHash(slot, hash)
	if !bytes.Equal(slot, []byte{0, 0, 9, 9}) {
		t.Errorf("slot = %v, want right-aligned with leading zeros", slot)
	}
}

func TestECDSASignUnsupportedCurve(t *testing.T) {
	_, _, err := ECDSASign(curve.Ed25519, nil, nil, nil)
	if err != syscall.EINVAL {
		t.Fatalf("err = %v, want EINVAL", err)
	}
}
