// Copyright (c) 2024 The libica-ecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecc

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex literal: %v", err)
	}
	return b
}

// TestDeriveX25519PublicKnownAnswer checks RFC 7748 section 6.1's first
// Diffie-Hellman test vector: X25519(a, 9) for Alice's private scalar a.
func TestDeriveX25519PublicKnownAnswer(t *testing.T) {
	priv := mustHex(t, "77076d0a7318a57d3c16c17251b26645df4c2f87ebc0992ab177fba51db92c2a")
	want := mustHex(t, "8520f0098930a754748b7ddcb43ef75a0dbf3a0d26381af4eba4a98eaa9b4e6a")

	got, err := DeriveX25519Public(softwareOnlyConfig(), priv)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("pub = %x, want %x", got, want)
	}
}

// TestDeriveEd25519PublicKnownAnswer checks RFC 8032 section 7.1's first
// test vector (TEST 1): SECRET KEY -> PUBLIC KEY.
func TestDeriveEd25519PublicKnownAnswer(t *testing.T) {
	seed := mustHex(t, "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60")
	want := mustHex(t, "d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a")

	got, err := DeriveEd25519Public(softwareOnlyConfig(), seed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("pub = %x, want %x", got, want)
	}
}

// TestDeriveX448PublicIsDeterministicAndCorrectLength exercises the
// circl-backed software path without pinning an exact RFC 7748 X448
// vector: length and determinism are the properties this wiring must
// uphold regardless of the underlying scalar value.
func TestDeriveX448PublicIsDeterministicAndCorrectLength(t *testing.T) {
	priv := bytes.Repeat([]byte{0x05}, 56)
	cfg := softwareOnlyConfig()

	got1, err := DeriveX448Public(cfg, priv)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got1) != 56 {
		t.Fatalf("len(pub) = %d, want 56", len(got1))
	}
	got2, err := DeriveX448Public(cfg, priv)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got1, got2) {
		t.Fatalf("DeriveX448Public is not deterministic for a fixed scalar")
	}
}

// TestDeriveEd448PublicIsDeterministicAndCorrectLength mirrors the X448
// case for the Ed448/SHAKE-256 path.
func TestDeriveEd448PublicIsDeterministicAndCorrectLength(t *testing.T) {
	seed := bytes.Repeat([]byte{0x11}, 57)
	cfg := softwareOnlyConfig()

	got1, err := DeriveEd448Public(cfg, seed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got1) != 57 {
		t.Fatalf("len(pub) = %d, want 57", len(got1))
	}
	got2, err := DeriveEd448Public(cfg, seed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got1, got2) {
		t.Fatalf("DeriveEd448Public is not deterministic for a fixed seed")
	}
}
