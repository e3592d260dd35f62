// Copyright (c) 2024 The libica-ecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package curve

import "testing"

func TestLookupRejectsOutOfRangeIDs(t *testing.T) {
	if _, ok := Lookup(ID(-1)); ok {
		t.Fatalf("Lookup(-1) reported ok, want false")
	}
	if _, ok := Lookup(numCurves); ok {
		t.Fatalf("Lookup(numCurves) reported ok, want false")
	}
}

func TestLookupEveryCurveIsWellFormed(t *testing.T) {
	for id := ID(0); id < numCurves; id++ {
		c, ok := Lookup(id)
		if !ok {
			t.Fatalf("Lookup(%d) failed", id)
		}
		if c.Name == "" {
			t.Errorf("curve %d: empty Name", id)
		}
		if c.PrivLen <= 0 {
			t.Errorf("curve %d (%s): PrivLen = %d, want > 0", id, c.Name, c.PrivLen)
		}
		if c.Gx == nil {
			t.Errorf("curve %d (%s): nil Gx", id, c.Name)
		}
		if c.Family == Weierstrass && c.Gy == nil {
			t.Errorf("curve %d (%s): Weierstrass curve missing Gy", id, c.Name)
		}
		if c.Family == Montgomery && c.Gy != nil {
			t.Errorf("curve %d (%s): Montgomery curve must not carry Gy", id, c.Name)
		}
	}
}

func TestOnlyNISTCurvesAreECDSACapable(t *testing.T) {
	nist := map[ID]bool{P256: true, P384: true, P521: true}
	for id := ID(0); id < numCurves; id++ {
		c, _ := Lookup(id)
		if c.ECDSACapable != nist[id] {
			t.Errorf("curve %d (%s): ECDSACapable = %v, want %v", id, c.Name, c.ECDSACapable, nist[id])
		}
	}
}

func TestP521BitLenIs521NotPrivLenTimes8(t *testing.T) {
	c, _ := Lookup(P521)
	if c.BitLen != 521 {
		t.Fatalf("P-521 BitLen = %d, want 521", c.BitLen)
	}
	if c.PrivLen*8 == c.BitLen {
		t.Fatalf("P-521's PrivLen*8 unexpectedly equals BitLen; the special case may have regressed")
	}
}

func TestIDStringAndFamilyString(t *testing.T) {
	if got := P256.String(); got != "P-256" {
		t.Errorf("P256.String() = %q, want %q", got, "P-256")
	}
	if got := ID(999).String(); got != "unknown curve" {
		t.Errorf("ID(999).String() = %q, want %q", got, "unknown curve")
	}
	if got := Weierstrass.String(); got != "weierstrass" {
		t.Errorf("Weierstrass.String() = %q, want %q", got, "weierstrass")
	}
	if got := Montgomery.String(); got != "montgomery" {
		t.Errorf("Montgomery.String() = %q, want %q", got, "montgomery")
	}
}
