// Copyright (c) 2024 The libica-ecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecc

import (
	"math/big"
	"syscall"

	"github.com/decred/dcrd/crypto/rand"

	"github.com/ibm-s390-linux/libica-ecc/coprocessor"
	"github.com/ibm-s390-linux/libica-ecc/curve"
	"github.com/ibm-s390-linux/libica-ecc/eckey"
	"github.com/ibm-s390-linux/libica-ecc/icaerr"
	"github.com/ibm-s390-linux/libica-ecc/internal/cpacf"
)

// ECKeyGen generates a fresh key pair on c, dispatching across the CPU,
// coprocessor, and software backends per spec §4.4. The CPU path is
// always tried first regardless of ica_offload_enabled, matching §4.4
// step 1's keygen carve-out.
func ECKeyGen(cfg *Config, c curve.Curve) (*eckey.Key, error) {
	key := eckey.New(c)

	derr := dispatch(cfg, opECKeyGen,
		func() error {
			d, x, y, e := rejectionSampleKeyGen(c.ID)
			if e != nil {
				return e
			}
			key.SetD(d)
			key.SetXY(x, y)
			return nil
		},
		func() error {
			d, x, y, e := coprocessor.ECKeyGen(cfg.Device, cfg.Domain, c.PrivLen)
			if e != nil {
				return e
			}
			key.SetD(d)
			key.SetXY(x, y)
			return nil
		},
		func() error {
			d, x, y, e := softwareECKeyGen(c.ID)
			if e != nil {
				return e
			}
			key.SetD(d)
			key.SetXY(x, y)
			return nil
		},
	)
	if derr != nil {
		return nil, icaerr.New("eckeygen", derr.(syscall.Errno))
	}
	return key, nil
}

// rejectionSampleKeyGen implements spec §4.6, the CPU-instruction keygen
// backend: draw a uniformly random scalar in [1, order) by rejection
// sampling, then scalar-multiply the base point via the CPU-instruction
// path. The original source hardcodes this for P-256/P-384/P-521 only;
// every other curve reports EINVAL.
func rejectionSampleKeyGen(id curve.ID) (d, x, y []byte, err error) {
	switch id {
	case curve.P256, curve.P384, curve.P521:
	default:
		return nil, nil, nil, syscall.EINVAL
	}
	cc, ok := curve.Lookup(id)
	if !ok || cc.Order == nil || cc.Family != curve.Weierstrass || cc.Gy == nil {
		return nil, nil, nil, syscall.EINVAL
	}

	gx := make([]byte, cc.PrivLen)
	gy := make([]byte, cc.PrivLen)
	cc.Gx.FillBytes(gx)
	cc.Gy.FillBytes(gy)

	for {
		scalar := rand.BigInt(cc.Order)
		if scalar.Sign() == 0 {
			continue
		}
		dBytes := make([]byte, cc.PrivLen)
		scalar.FillBytes(dBytes)
		scrubBigInt(scalar)

		resX, resY, serr := cpacf.ScalarMultiplyWeierstrass(id, gx, gy, dBytes)
		if serr != nil {
			return nil, nil, nil, serr
		}
		return dBytes, resX, resY, nil
	}
}

// scrubBigInt zeroizes the big.Int's backing word storage, per spec
// §4.6's instruction to scrub the big-integer representation after
// copying the scalar into its destination buffer.
//
//go:noinline
func scrubBigInt(n *big.Int) {
	bits := n.Bits()
	for i := range bits {
		bits[i] = 0
	}
}
