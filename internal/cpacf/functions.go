// Copyright (c) 2024 The libica-ecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cpacf

import "github.com/ibm-s390-linux/libica-ecc/curve"

// ScalarMulFunc is an index into s390PCCFunctions selecting the PCC
// function code for a scalar-multiplication call.
type ScalarMulFunc int

// The function-code enumerators named in spec §6, in table order.
const (
	ScalarMultiplyP256 ScalarMulFunc = iota
	ScalarMultiplyP384
	ScalarMultiplyP521
	ScalarMultiplyEd25519
	ScalarMultiplyEd448
	ScalarMultiplyX25519
	ScalarMultiplyX448

	numScalarMulFuncs
)

// SigFunc is an index into s390KDSAFunctions selecting the KDSA function
// code for an ECDSA sign or verify call.
type SigFunc int

const (
	ECDSASignP256 SigFunc = iota
	ECDSAVerifyP256
	ECDSASignP384
	ECDSAVerifyP384
	ECDSASignP521
	ECDSAVerifyP521

	numSigFuncs
)

// pccFunction pairs the hardware function code with the curve it
// implements, mirroring the s390_pcc_functions[] table in the original
// implementation.
type pccFunction struct {
	curve curve.ID
	hwFC  uint8
}

// s390PCCFunctions is the PCC function-code table, indexed by
// ScalarMulFunc. Codes follow the PCC "compute elliptic curve point"
// function-code assignment from the z/Architecture Principles of
// Operation, MSA 9.
var s390PCCFunctions = [numScalarMulFuncs]pccFunction{
	ScalarMultiplyP256:    {curve.P256, 1},
	ScalarMultiplyP384:    {curve.P384, 2},
	ScalarMultiplyP521:    {curve.P521, 3},
	ScalarMultiplyEd25519: {curve.Ed25519, 4},
	ScalarMultiplyEd448:   {curve.Ed448, 5},
	ScalarMultiplyX25519:  {curve.X25519, 6},
	ScalarMultiplyX448:    {curve.X448, 7},
}

// kdsaFunction pairs the hardware function code with the curve and
// operation (sign vs verify) it implements, mirroring the
// s390_kdsa_functions[] table in the original implementation.
type kdsaFunction struct {
	curve  curve.ID
	sign   bool
	hwFC   uint8
}

// deterministicBit is OR'd into a KDSA sign function code to select the
// instruction's deterministic-signature mode, per spec §4.2.
const deterministicBit = 0x80

// s390KDSAFunctions is the KDSA function-code table, indexed by SigFunc.
var s390KDSAFunctions = [numSigFuncs]kdsaFunction{
	ECDSASignP256:   {curve.P256, true, 9},
	ECDSAVerifyP256: {curve.P256, false, 1},
	ECDSASignP384:   {curve.P384, true, 10},
	ECDSAVerifyP384: {curve.P384, false, 2},
	ECDSASignP521:   {curve.P521, true, 11},
	ECDSAVerifyP521: {curve.P521, false, 3},
}

// scalarMulFuncFor returns the ScalarMulFunc for c, and false if the CPU
// path does not support scalar multiplication on c.
func scalarMulFuncFor(c curve.ID) (ScalarMulFunc, bool) {
	for i, f := range s390PCCFunctions {
		if f.curve == c {
			return ScalarMulFunc(i), true
		}
	}
	return 0, false
}

// sigFuncFor returns the SigFunc for (c, sign), and false if the CPU path
// does not support ECDSA on c. Only P-256/P-384/P-521 are supported per
// spec §4.2 — Ed25519/Ed448 ECDSA never resolve here.
func sigFuncFor(c curve.ID, sign bool) (SigFunc, bool) {
	for i, f := range s390KDSAFunctions {
		if f.curve == c && f.sign == sign {
			return SigFunc(i), true
		}
	}
	return 0, false
}
