// Copyright (c) 2024 The libica-ecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecc

import (
	"syscall"

	"github.com/ibm-s390-linux/libica-ecc/coprocessor"
	"github.com/ibm-s390-linux/libica-ecc/eckey"
	"github.com/ibm-s390-linux/libica-ecc/icaerr"
	"github.com/ibm-s390-linux/libica-ecc/internal/cpacf"
)

// RandFunc supplies fresh random bytes for the deterministic-signature
// rand slot, mirroring cpacf.RandFunc so callers don't need to import
// the internal package to pass one through.
type RandFunc = cpacf.RandFunc

// ECDSASign signs hash with priv, dispatching across the CPU,
// coprocessor, and software backends per spec §4.4. Only the three NIST
// curves are ECDSA-capable; any other curve fails with EINVAL before any
// backend is tried. rng, if non-nil, selects the deterministic-signature
// mode and is drained for fresh randomness on every internal retry.
func ECDSASign(cfg *Config, priv *eckey.Key, hash []byte, rng RandFunc) (r, s []byte, err error) {
	if !priv.HasPrivate() || !priv.Curve.ECDSACapable {
		return nil, nil, icaerr.New("ecdsa_sign", syscall.EINVAL)
	}

	var rOut, sOut []byte
	derr := dispatch(cfg, opECDSASign,
		func() error {
			var e error
			rOut, sOut, e = cpacf.ECDSASign(priv.Curve.ID, priv.D, hash, rng)
			return e
		},
		func() error {
			if !priv.HasPublic() {
				if e := materializePublic(priv); e != nil {
					return e
				}
			}
			var e error
			sig, e := coprocessor.ECDSASign(cfg.Device, cfg.Domain, priv.D, priv.X, priv.Y, hash)
			if e == nil {
				privlen := priv.Curve.PrivLen
				rOut = sig[:privlen]
				sOut = sig[privlen:]
			}
			return e
		},
		func() error {
			var e error
			rOut, sOut, e = softwareECDSASign(priv, hash, rng)
			return e
		},
	)
	if derr != nil {
		return nil, nil, icaerr.New("ecdsa_sign", derr.(syscall.Errno))
	}
	return rOut, sOut, nil
}

// ECDSAVerify checks (r, s) against hash under pub, dispatching across the
// three backends. A rejected signature is reported as
// icaerr.ErrSignatureInvalid regardless of which backend serviced the
// request.
func ECDSAVerify(cfg *Config, pub *eckey.Key, hash, r, s []byte) error {
	if !pub.HasPublic() || !pub.Curve.ECDSACapable {
		return icaerr.New("ecdsa_verify", syscall.EINVAL)
	}

	derr := dispatch(cfg, opECDSAVerify,
		func() error {
			return cpacf.ECDSAVerify(pub.Curve.ID, pub.X, pub.Y, hash, r, s)
		},
		func() error {
			sig := append(append([]byte{}, r...), s...)
			return coprocessor.ECDSAVerify(cfg.Device, cfg.Domain, pub.X, pub.Y, hash, sig)
		},
		func() error {
			return softwareECDSAVerify(pub, hash, r, s)
		},
	)
	if derr != nil {
		return icaerr.New("ecdsa_verify", derr.(syscall.Errno))
	}
	return nil
}
