// Copyright (c) 2024 The libica-ecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package curve defines the closed set of elliptic curves this module
// accelerates and the per-curve constants every other package keys its
// behavior off of: private-scalar byte length, curve family, base point,
// and group order.
package curve

import (
	"crypto/elliptic"
	"math/big"
)

// ID is an opaque tag identifying one of the seven curves this module
// supports. It is the key every other fixed-layout structure in this module
// is parameterized by.
type ID int

// The closed set of supported curves. No other value of ID is meaningful.
const (
	P256 ID = iota
	P384
	P521
	Ed25519
	Ed448
	X25519
	X448

	numCurves
)

// Family distinguishes the two CPU-instruction parameter block shapes a
// curve is packed into (see internal/cpacf).
type Family int

const (
	// Weierstrass is also used for the twisted-Edwards curves Ed25519 and
	// Ed448, which share the five-slot {res_x, res_y, x, y, scalar}
	// parameter block shape with the NIST curves.
	Weierstrass Family = iota
	// Montgomery curves (X25519, X448) use the three-slot
	// {res_u, u, scalar} shape instead.
	Montgomery
)

// Curve holds the catalog entry for one supported curve.
type Curve struct {
	ID ID

	// Name is the curve's canonical name, used in log messages and errors.
	Name string

	// PrivLen is the canonical byte length of a private scalar (and of
	// each padded coordinate buffer) for this curve.
	PrivLen int

	// Family selects which CPU-instruction parameter block shape applies.
	Family Family

	// MaxSlot is the per-slot width of the CPU-instruction parameter
	// block for this curve's family group (curves sharing a parameter
	// block use the same MaxSlot; shorter curves are right-aligned and
	// zero-padded within it).
	MaxSlot int

	// BitLen is the bit-length carried in coprocessor key-token
	// bit-length fields. It equals PrivLen*8 except for P-521, which
	// carries 521 per spec.
	BitLen int

	// Gx, Gy are the curve's base point, big-endian affine coordinates.
	// For Montgomery curves Gy is nil; only the u-coordinate (Gx) is
	// meaningful.
	Gx, Gy *big.Int

	// Order is the order of the base point's subgroup.
	Order *big.Int

	// ECDSACapable reports whether the CPU-instruction and coprocessor
	// ECDSA paths support this curve (true only for the three NIST
	// curves per spec).
	ECDSACapable bool
}

var catalog = [numCurves]Curve{}

func init() {
	p256 := elliptic.P256().Params()
	p384 := elliptic.P384().Params()
	p521 := elliptic.P521().Params()

	catalog[P256] = Curve{
		ID: P256, Name: "P-256", PrivLen: 32, Family: Weierstrass,
		MaxSlot: 32, BitLen: 32 * 8,
		Gx: p256.Gx, Gy: p256.Gy, Order: p256.N,
		ECDSACapable: true,
	}
	catalog[P384] = Curve{
		ID: P384, Name: "P-384", PrivLen: 48, Family: Weierstrass,
		MaxSlot: 48, BitLen: 48 * 8,
		Gx: p384.Gx, Gy: p384.Gy, Order: p384.N,
		ECDSACapable: true,
	}
	catalog[P521] = Curve{
		ID: P521, Name: "P-521", PrivLen: 66, Family: Weierstrass,
		MaxSlot: 80, BitLen: 521,
		Gx: p521.Gx, Gy: p521.Gy, Order: p521.N,
		ECDSACapable: true,
	}

	// RFC 8032 edwards25519 domain parameters.
	catalog[Ed25519] = Curve{
		ID: Ed25519, Name: "Ed25519", PrivLen: 32, Family: Weierstrass,
		MaxSlot: 32, BitLen: 32 * 8,
		Gx:    mustHex("216936d3cd6e53fec0a4e231fdd6dc5c692cc7609525a7b2c9562d608f25d51a"),
		Gy:    mustHex("6666666666666666666666666666666666666666666666666666666666666658"),
		Order: mustHex("1000000000000000000000000000000014def9dea2f79cd65812631a5cf5d3ed"),
	}

	// RFC 8032 edwards448 ("Goldilocks") domain parameters.
	catalog[Ed448] = Curve{
		ID: Ed448, Name: "Ed448", PrivLen: 57, Family: Weierstrass,
		MaxSlot: 64, BitLen: 57 * 8,
		Gx:    mustHex("4f1970c66bed0ded221d15a622bf36da9e146570470f1767ea6de324a3d3a46412ae1af72ab66511433b80e18b00938e2626a82bc70cc05e"),
		Gy:    mustHex("693f46716eb6bc248876203756c9c7624bea73736ca3984087789c1e05a0c2d73ad3ff1ce67c39c4fdbd132c4ed7c8ad9808795bf230fa14"),
		Order: mustHex("3fffffffffffffffffffffffffffffffffffffffffffffffffffffff7cca23e9c44edb49aed63690216cc2728dc58f552378c292ab5844f3"),
	}

	// RFC 7748 curve25519 domain parameters (Montgomery form, u-only).
	catalog[X25519] = Curve{
		ID: X25519, Name: "X25519", PrivLen: 32, Family: Montgomery,
		MaxSlot: 32, BitLen: 32 * 8,
		Gx:    big.NewInt(9),
		Order: mustHex("1000000000000000000000000000000014def9dea2f79cd65812631a5cf5d3ed"),
	}

	// RFC 7748 curve448 domain parameters (Montgomery form, u-only).
	catalog[X448] = Curve{
		ID: X448, Name: "X448", PrivLen: 56, Family: Montgomery,
		MaxSlot: 64, BitLen: 56 * 8,
		Gx:    big.NewInt(5),
		Order: mustHex("3fffffffffffffffffffffffffffffffffffffffffffffffffffffff7cca23e9c44edb49aed63690216cc2728dc58f552378c292ab5844f3"),
	}
}

func mustHex(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("curve: invalid hex constant " + s)
	}
	return n
}

// Lookup returns the catalog entry for id and reports whether id names one
// of the supported curves.
func Lookup(id ID) (Curve, bool) {
	if id < 0 || id >= numCurves {
		return Curve{}, false
	}
	return catalog[id], true
}

// String returns the curve's canonical name.
func (id ID) String() string {
	if c, ok := Lookup(id); ok {
		return c.Name
	}
	return "unknown curve"
}

// String returns the family's name.
func (f Family) String() string {
	if f == Montgomery {
		return "montgomery"
	}
	return "weierstrass"
}
