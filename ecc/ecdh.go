// Copyright (c) 2024 The libica-ecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecc

import (
	"syscall"

	"github.com/ibm-s390-linux/libica-ecc/coprocessor"
	"github.com/ibm-s390-linux/libica-ecc/curve"
	"github.com/ibm-s390-linux/libica-ecc/eckey"
	"github.com/ibm-s390-linux/libica-ecc/icaerr"
	"github.com/ibm-s390-linux/libica-ecc/internal/cpacf"
)

// ECDH computes the shared secret for the Weierstrass curve priv.Curve
// between the local private key priv and the peer's public key
// (pubX, pubY), dispatching across the CPU, coprocessor, and software
// backends per spec §4.4.
func ECDH(cfg *Config, priv *eckey.Key, pubX, pubY []byte) (z []byte, err error) {
	if !priv.HasPrivate() {
		return nil, icaerr.New("ecdh", syscall.EINVAL)
	}
	c := priv.Curve

	var result []byte
	derr := dispatch(cfg, opECDH,
		func() error {
			var e error
			result, _, e = cpacfScalarMult(c.ID, pubX, pubY, priv.D)
			return e
		},
		func() error {
			var e error
			result, e = coprocessor.ECDH(cfg.Device, cfg.Domain, priv.D, pubX, pubY)
			return e
		},
		func() error {
			var e error
			result, e = softwareECDH(c, priv.D, pubX, pubY)
			return e
		},
	)
	if derr != nil {
		return nil, icaerr.New("ecdh", derr.(syscall.Errno))
	}
	return result, nil
}

// cpacfScalarMult dispatches to the Weierstrass or Montgomery PCC variant
// per the curve's family. z is the X coordinate (the U coordinate, for
// Montgomery), used as the ECDH shared secret; yOut is the Y coordinate
// for Weierstrass curves and nil for Montgomery curves.
func cpacfScalarMult(id curve.ID, x, y, scalar []byte) (z []byte, yOut []byte, err error) {
	cc, ok := curve.Lookup(id)
	if !ok {
		return nil, nil, syscall.EINVAL
	}
	if cc.Family == curve.Montgomery {
		u, e := cpacf.ScalarMultiplyMontgomery(id, x, scalar)
		return u, nil, e
	}
	resX, resY, e := cpacf.ScalarMultiplyWeierstrass(id, x, y, scalar)
	return resX, resY, e
}
