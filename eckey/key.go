// Copyright (c) 2024 The libica-ecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package eckey defines the in-memory EC key record shared by every
// backend: the (curve, D, X, Y) triple from spec §3.
package eckey

import "github.com/ibm-s390-linux/libica-ecc/curve"

// Key is an elliptic-curve key record. D is the private scalar and may be
// nil for a pure-public key; X and Y are the affine public coordinates and
// may be nil if not yet materialized. Every non-nil field is exactly
// Curve.PrivLen bytes, left-padded with zeros.
//
// A Key owns its buffers; its lifetime is the enclosing operation. Callers
// that hold a Key containing a private scalar past the end of an operation
// are responsible for scrubbing it themselves (Scrub does this).
type Key struct {
	Curve curve.Curve
	D     []byte
	X     []byte
	Y     []byte
}

// New returns a Key for c with D, X, Y left nil. Use the setters to
// populate fields with correctly padded buffers.
func New(c curve.Curve) *Key {
	return &Key{Curve: c}
}

// SetD copies d into a freshly allocated, zero-padded PrivLen-byte buffer.
// d must not be longer than PrivLen bytes.
func (k *Key) SetD(d []byte) {
	k.D = pad(d, k.Curve.PrivLen)
}

// SetXY copies x and y into freshly allocated, zero-padded PrivLen-byte
// buffers. Either may be nil to leave that coordinate unset.
func (k *Key) SetXY(x, y []byte) {
	if x != nil {
		k.X = pad(x, k.Curve.PrivLen)
	}
	if y != nil {
		k.Y = pad(y, k.Curve.PrivLen)
	}
}

// HasPrivate reports whether D is present.
func (k *Key) HasPrivate() bool {
	return k.D != nil
}

// HasPublic reports whether both X and Y are present.
func (k *Key) HasPublic() bool {
	return k.X != nil && k.Y != nil
}

// Scrub zeroizes every buffer this key owns. It is safe to call multiple
// times and on a Key with some or all fields nil.
func (k *Key) Scrub() {
	scrub(k.D)
	scrub(k.X)
	scrub(k.Y)
}

//go:noinline
func scrub(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// pad returns a newly allocated buffer of length n holding b right-aligned
// with leading zeros. b must not be longer than n bytes.
func pad(b []byte, n int) []byte {
	out := make([]byte, n)
	if len(b) > n {
		panic("eckey: value longer than curve privlen")
	}
	copy(out[n-len(b):], b)
	return out
}
