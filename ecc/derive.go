// Copyright (c) 2024 The libica-ecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecc

import (
	"crypto/sha512"
	"syscall"

	"golang.org/x/crypto/sha3"

	"github.com/ibm-s390-linux/libica-ecc/curve"
	"github.com/ibm-s390-linux/libica-ecc/eckey"
	"github.com/ibm-s390-linux/libica-ecc/icaerr"
	"github.com/ibm-s390-linux/libica-ecc/internal/cpacf"
	"github.com/ibm-s390-linux/libica-ecc/internal/endian"
)

// MaterializePublic fills in key.X/key.Y by scalar-multiplying the base
// point with key.D, per the §3 invariant: coprocessor ECDSA sign needs a
// public key even when the caller only supplied D. It is a no-op if the
// public coordinates are already present, and fails with EINVAL for
// Montgomery curves, which derive through DeriveX25519Public/
// DeriveX448Public instead.
func MaterializePublic(key *eckey.Key) error {
	if err := materializePublic(key); err != nil {
		return icaerr.New("derive_pub", err.(syscall.Errno))
	}
	return nil
}

// materializePublic is MaterializePublic's internal form, returning a bare
// syscall.Errno (or nil) so callers inside package ecc — notably the
// coprocessor ECDSA sign dispatch closure — can fold it straight into
// dispatch's errno-typed return path without double-wrapping.
func materializePublic(key *eckey.Key) error {
	if key.HasPublic() {
		return nil
	}
	if !key.HasPrivate() || key.Curve.Family != curve.Weierstrass {
		return syscall.EINVAL
	}
	gx := make([]byte, key.Curve.PrivLen)
	gy := make([]byte, key.Curve.PrivLen)
	key.Curve.Gx.FillBytes(gx)
	key.Curve.Gy.FillBytes(gy)
	x, y, err := cpacf.ScalarMultiplyWeierstrass(key.Curve.ID, gx, gy, key.D)
	if err != nil {
		return err
	}
	key.SetXY(x, y)
	return nil
}

// DeriveX25519Public computes the X25519 public key for the little-endian
// 32-byte scalar priv, tried on the CPU-instruction path first and via
// crypto/ecdh in software when unavailable.
func DeriveX25519Public(cfg *Config, priv []byte) (pub []byte, err error) {
	var out []byte
	derr := dispatch(cfg, opECDH,
		func() error {
			var e error
			out, e = cpacf.ScalarMultiplyMontgomery(curve.X25519, baseU(curve.X25519), priv)
			return e
		},
		func() error { return syscall.EINVAL },
		func() error {
			var e error
			out, e = softwareX25519Public(priv)
			return e
		},
	)
	if derr != nil {
		return nil, icaerr.New("x25519_derive_pub", derr.(syscall.Errno))
	}
	return out, nil
}

// DeriveX448Public computes the X448 public key for the little-endian
// 56-byte scalar priv.
func DeriveX448Public(cfg *Config, priv []byte) (pub []byte, err error) {
	var out []byte
	derr := dispatch(cfg, opECDH,
		func() error {
			var e error
			out, e = cpacf.ScalarMultiplyMontgomery(curve.X448, baseU(curve.X448), priv)
			return e
		},
		func() error { return syscall.EINVAL },
		func() error {
			var e error
			out, e = softwareX448Public(priv)
			return e
		},
	)
	if derr != nil {
		return nil, icaerr.New("x448_derive_pub", derr.(syscall.Errno))
	}
	return out, nil
}

func baseU(id curve.ID) []byte {
	cc, _ := curve.Lookup(id)
	u := make([]byte, cc.PrivLen)
	cc.Gx.FillBytes(u)
	endian.ReverseSlice(u)
	return u
}

// DeriveEd25519Public implements spec §4.5 for Ed25519: SHA-512 the
// 32-byte seed, clamp, scalar-multiply the Edwards base point via the
// CPU-instruction path, and re-derive the sign bit.
func DeriveEd25519Public(cfg *Config, seed []byte) (pub []byte, err error) {
	h := sha512.Sum512(seed)
	clamped := h[:32]
	clamped[0] &^= 7
	clamped[31] = (clamped[31] & 0x3f) | 0x40

	var out []byte
	derr := dispatch(cfg, opECDH,
		func() error {
			var e error
			out, e = edwardsDerive(curve.Ed25519, clamped, 32)
			return e
		},
		func() error { return syscall.EINVAL },
		func() error {
			var e error
			out, e = softwareEd25519Public(seed)
			return e
		},
	)
	if derr != nil {
		return nil, icaerr.New("ed25519_derive_pub", derr.(syscall.Errno))
	}
	return out, nil
}

// DeriveEd448Public implements spec §4.5 for Ed448: SHAKE-256 the 57-byte
// seed to 114 bytes, clamp the low 57, scalar-multiply, re-derive the
// sign bit.
func DeriveEd448Public(cfg *Config, seed []byte) (pub []byte, err error) {
	hash := make([]byte, 114)
	shake := sha3.NewShake256()
	shake.Write(seed)
	shake.Read(hash)

	clamped := make([]byte, 64)
	copy(clamped, hash[:57])
	clamped[0] &^= 3
	clamped[55] |= 0x80
	clamped[56] = 0

	var out []byte
	derr := dispatch(cfg, opECDH,
		func() error {
			var e error
			out, e = edwardsDerive(curve.Ed448, clamped, 57)
			return e
		},
		func() error { return syscall.EINVAL },
		func() error {
			var e error
			out, e = softwareEd448Public(seed)
			return e
		},
	)
	if derr != nil {
		return nil, icaerr.New("ed448_derive_pub", derr.(syscall.Errno))
	}
	return out, nil
}

// edwardsDerive runs spec §4.5 steps 3-7 given a clamped, little-endian
// scalar workspace (32 bytes for Ed25519, 64 bytes — 57 meaningful — for
// Ed448) and returns the outlen-byte encoded public key.
func edwardsDerive(id curve.ID, clamped []byte, outlen int) ([]byte, error) {
	work := make([]byte, len(clamped))
	copy(work, clamped)
	endian.ReverseSlice(work)

	cc, _ := curve.Lookup(id)
	gx := make([]byte, cc.PrivLen)
	gy := make([]byte, cc.PrivLen)
	cc.Gx.FillBytes(gx)
	cc.Gy.FillBytes(gy)

	resX, pubY, err := cpacf.ScalarMultiplyWeierstrass(id, gx, gy, work[len(work)-cc.PrivLen:])
	if err != nil {
		return nil, err
	}

	endian.ReverseSlice(resX)
	endian.ReverseSlice(pubY)

	signBit := resX[0] & 1
	pubY[len(pubY)-1] = (pubY[len(pubY)-1] &^ 0x80) | (signBit << 7)

	endian.ReverseSlice(pubY)
	out := make([]byte, outlen)
	copy(out, pubY[:outlen])
	return out, nil
}
