// Copyright (c) 2024 The libica-ecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// This file holds the software-fallback adapters: thin wrappers around a
// general-purpose cryptographic library, used only when neither the
// CPU-instruction nor the coprocessor path can service a request. Per
// spec §1 these are explicitly out of scope for implementation depth —
// they exist so the third dispatch arm is real rather than a stub that
// always fails.
package ecc

import (
	"crypto/ecdh"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"math/big"
	"syscall"

	"github.com/cloudflare/circl/dh/x448"
	circlEd448 "github.com/cloudflare/circl/sign/ed448"
	"github.com/decred/dcrd/crypto/rand"

	"github.com/ibm-s390-linux/libica-ecc/curve"
	"github.com/ibm-s390-linux/libica-ecc/eckey"
)

func ellipticCurveFor(id curve.ID) (elliptic.Curve, bool) {
	switch id {
	case curve.P256:
		return elliptic.P256(), true
	case curve.P384:
		return elliptic.P384(), true
	case curve.P521:
		return elliptic.P521(), true
	default:
		return nil, false
	}
}

func ecdhCurveFor(id curve.ID) (ecdh.Curve, bool) {
	switch id {
	case curve.P256:
		return ecdh.P256(), true
	case curve.P384:
		return ecdh.P384(), true
	case curve.P521:
		return ecdh.P521(), true
	case curve.X25519:
		return ecdh.X25519(), true
	default:
		return nil, false
	}
}

// softwareECDH implements the ECDH software fallback for every curve
// family: crypto/ecdh for the NIST curves and X25519, circl's x448 for
// X448.
func softwareECDH(c curve.Curve, d, pubX, pubY []byte) ([]byte, error) {
	if c.ID == curve.X448 {
		var priv, peer, shared x448.Key
		copy(priv[:], d)
		copy(peer[:], pubX)
		if !x448.Shared(&shared, &priv, &peer) {
			return nil, syscall.EIO
		}
		return shared[:], nil
	}

	ec, ok := ecdhCurveFor(c.ID)
	if !ok {
		return nil, syscall.EINVAL
	}
	priv, err := ec.NewPrivateKey(d)
	if err != nil {
		return nil, syscall.EIO
	}

	var peerBytes []byte
	if c.ID == curve.X25519 {
		peerBytes = pubX
	} else {
		peerBytes = append([]byte{0x04}, append(append([]byte{}, pubX...), pubY...)...)
	}
	peer, err := ec.NewPublicKey(peerBytes)
	if err != nil {
		return nil, syscall.EIO
	}

	secret, err := priv.ECDH(peer)
	if err != nil {
		return nil, syscall.EIO
	}
	return secret, nil
}

// softwareECDSASign signs with crypto/ecdsa, ignoring any deterministic
// rng hook — the thin software path always draws its own randomness.
func softwareECDSASign(priv *eckey.Key, hash []byte, _ RandFunc) (r, s []byte, err error) {
	ec, ok := ellipticCurveFor(priv.Curve.ID)
	if !ok {
		return nil, nil, syscall.EINVAL
	}
	sk := new(ecdsa.PrivateKey)
	sk.Curve = ec
	sk.D = new(big.Int).SetBytes(priv.D)
	sk.X, sk.Y = ec.ScalarBaseMult(priv.D)

	rr, ss, err := ecdsa.Sign(rand.Reader(), sk, hash)
	if err != nil {
		return nil, nil, syscall.EIO
	}
	privlen := priv.Curve.PrivLen
	r = make([]byte, privlen)
	s = make([]byte, privlen)
	rr.FillBytes(r)
	ss.FillBytes(s)
	return r, s, nil
}

func softwareECDSAVerify(pub *eckey.Key, hash, r, s []byte) error {
	ec, ok := ellipticCurveFor(pub.Curve.ID)
	if !ok {
		return syscall.EINVAL
	}
	pk := &ecdsa.PublicKey{
		Curve: ec,
		X:     new(big.Int).SetBytes(pub.X),
		Y:     new(big.Int).SetBytes(pub.Y),
	}
	rr := new(big.Int).SetBytes(r)
	ss := new(big.Int).SetBytes(s)
	if !ecdsa.Verify(pk, hash, rr, ss) {
		return syscall.EFAULT
	}
	return nil
}

// softwareECKeyGen generates a fresh P-256/P-384/P-521 key pair with
// crypto/ecdsa.GenerateKey, the pure-software counterpart to
// rejectionSampleKeyGen's CPU-instruction-assisted version: no PCC
// instruction involved, just the general-purpose library.
func softwareECKeyGen(id curve.ID) (d, x, y []byte, err error) {
	ec, ok := ellipticCurveFor(id)
	if !ok {
		return nil, nil, nil, syscall.EINVAL
	}
	cc, _ := curve.Lookup(id)
	sk, err := ecdsa.GenerateKey(ec, rand.Reader())
	if err != nil {
		return nil, nil, nil, syscall.EIO
	}
	d = make([]byte, cc.PrivLen)
	x = make([]byte, cc.PrivLen)
	y = make([]byte, cc.PrivLen)
	sk.D.FillBytes(d)
	sk.X.FillBytes(x)
	sk.Y.FillBytes(y)
	return d, x, y, nil
}

func softwareX25519Public(priv []byte) ([]byte, error) {
	sk, err := ecdh.X25519().NewPrivateKey(priv)
	if err != nil {
		return nil, syscall.EIO
	}
	return sk.PublicKey().Bytes(), nil
}

func softwareX448Public(priv []byte) ([]byte, error) {
	var sk, pk x448.Key
	copy(sk[:], priv)
	x448.KeyGen(&pk, &sk)
	return pk[:], nil
}

func softwareEd25519Public(seed []byte) ([]byte, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, syscall.EINVAL
	}
	sk := ed25519.NewKeyFromSeed(seed)
	pub, ok := sk.Public().(ed25519.PublicKey)
	if !ok {
		return nil, syscall.EIO
	}
	return []byte(pub), nil
}

func softwareEd448Public(seed []byte) ([]byte, error) {
	sk := circlEd448.NewKeyFromSeed(seed)
	pub, ok := sk.Public().(circlEd448.PublicKey)
	if !ok {
		return nil, syscall.EIO
	}
	return []byte(pub), nil
}
