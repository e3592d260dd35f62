// Copyright (c) 2024 The libica-ecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package eckey

import (
	"bytes"
	"testing"

	"github.com/ibm-s390-linux/libica-ecc/curve"
)

func p256(t *testing.T) curve.Curve {
	t.Helper()
	c, ok := curve.Lookup(curve.P256)
	if !ok {
		t.Fatalf("curve.Lookup(P256) failed")
	}
	return c
}

func TestSetDZeroPads(t *testing.T) {
	k := New(p256(t))
	k.SetD([]byte{0x01, 0x02})
	if len(k.D) != 32 {
		t.Fatalf("len(D) = %d, want 32", len(k.D))
	}
	want := make([]byte, 32)
	want[30], want[31] = 0x01, 0x02
	if !bytes.Equal(k.D, want) {
		t.Fatalf("D = %x, want %x", k.D, want)
	}
}

func TestSetXYIndependentNils(t *testing.T) {
	k := New(p256(t))
	k.SetXY([]byte{0xAA}, nil)
	if k.X == nil {
		t.Fatalf("X must be set")
	}
	if k.Y != nil {
		t.Fatalf("Y must remain nil")
	}
}

func TestHasPrivateHasPublic(t *testing.T) {
	k := New(p256(t))
	if k.HasPrivate() || k.HasPublic() {
		t.Fatalf("fresh Key must have neither private nor public material")
	}
	k.SetD(make([]byte, 32))
	if !k.HasPrivate() {
		t.Fatalf("HasPrivate() = false after SetD")
	}
	if k.HasPublic() {
		t.Fatalf("HasPublic() = true before SetXY")
	}
	k.SetXY(make([]byte, 32), make([]byte, 32))
	if !k.HasPublic() {
		t.Fatalf("HasPublic() = false after SetXY")
	}
}

func TestScrubZeroesAllBuffers(t *testing.T) {
	k := New(p256(t))
	k.SetD(bytes.Repeat([]byte{0xFF}, 32))
	k.SetXY(bytes.Repeat([]byte{0xFF}, 32), bytes.Repeat([]byte{0xFF}, 32))
	k.Scrub()
	zero := make([]byte, 32)
	if !bytes.Equal(k.D, zero) || !bytes.Equal(k.X, zero) || !bytes.Equal(k.Y, zero) {
		t.Fatalf("Scrub left non-zero bytes: D=%x X=%x Y=%x", k.D, k.X, k.Y)
	}
}

func TestScrubOnPartiallyPopulatedKeyDoesNotPanic(t *testing.T) {
	k := New(p256(t))
	k.SetD(make([]byte, 32))
	k.Scrub()
}

func TestSetDTooLongPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("SetD with an oversized value must panic")
		}
	}()
	k := New(p256(t))
	k.SetD(make([]byte, 33))
}
