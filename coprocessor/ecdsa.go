// Copyright (c) 2024 The libica-ecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coprocessor

import (
	"encoding/binary"
	"syscall"
)

const (
	ecdsaSignSubfuncCode   = 0x5347 // "SG"
	ecdsaVerifySubfuncCode = 0x5356 // "SV"
)

var ecdsaRule = [8]byte{'E', 'C', 'D', 'S', 'A', ' ', ' ', ' '}

// rsSignatureInvalid is the reply return-subcode the coprocessor reports
// alongside a return-code of 4 when a verify request's signature is
// cryptographically invalid, per spec §4.3 and §7.
const rsSignatureInvalid = 1

// ECDSASign performs the coprocessor ECDSA-sign request described in spec
// §4.3: subfunction "SG", rule "ECDSA   ", VUD carrying the length-
// prefixed hash, followed by a keyblock with a single private-key token
// containing (D, X, Y). Reply vud_len-8 must equal 2*privlen; mismatch is
// reported as EIO.
func ECDSASign(dev Device, domain int16, priv, x, y, hash []byte) (sig []byte, err error) {
	privlen := len(priv)
	hashlen := len(hash)
	tokenLen := keyTokenLen(privlen)
	keyblockLen := 2 + tokenLen
	parmlen := signParmblockLen(hashlen) + keyblockLen

	rb := newRequestBuf(domain)
	defer rb.scrub()

	parm := rb.reqParm(parmlen)
	off := putECDSASignParmblock(parm, hash)
	binary.BigEndian.PutUint16(parm[off:], uint16(keyblockLen))
	off += 2
	off += putKeyToken(parm[off:], priv, x, y, privlen, keyUsageECDSA)
	rb.finalize(off)

	if err := dev.SendCPRB(rb.buf); err != nil {
		return nil, syscall.EIO
	}

	reply := rb.replyEnvelope()
	rc := parseCPRBX(reply)
	if rc.rtcode != 0 || rc.rscode != 0 {
		return nil, syscall.EIO
	}

	replyParm := rb.replyParm()
	vudLen := binary.BigEndian.Uint16(replyParm[0:])
	if int(vudLen)-8 != 2*privlen {
		return nil, syscall.EIO
	}
	sig = make([]byte, 2*privlen)
	copy(sig, replyParm[8:8+2*privlen])
	return sig, nil
}

// ECDSAVerify performs the coprocessor ECDSA-verify request: subfunction
// "SV", rule "ECDSA   ", VUD carrying the length-prefixed hash followed by
// the length-prefixed signature, followed by a keyblock with a public-key
// token. The coprocessor distinguishes a rejected signature
// (ccp_rtcode==4, ccp_rscode==RS_SIGNATURE_INVALID) from any other
// nonzero pairing, which is a transport/hardware failure.
func ECDSAVerify(dev Device, domain int16, x, y, hash, sig []byte) error {
	privlen := len(x)
	hashlen := len(hash)
	tokenLen := publicOnlyKeyTokenLen(privlen)
	keyblockLen := 2 + tokenLen
	parmlen := verifyParmblockLen(hashlen, len(sig)) + keyblockLen

	rb := newRequestBuf(domain)
	defer rb.scrub()

	parm := rb.reqParm(parmlen)
	off := putECDSAVerifyParmblock(parm, hash, sig)
	binary.BigEndian.PutUint16(parm[off:], uint16(keyblockLen))
	off += 2
	off += putPublicOnlyKeyToken(parm[off:], x, y, privlen)
	rb.finalize(off)

	if err := dev.SendCPRB(rb.buf); err != nil {
		return syscall.EIO
	}

	reply := rb.replyEnvelope()
	rc := parseCPRBX(reply)
	if rc.rtcode == 4 && rc.rscode == rsSignatureInvalid {
		return syscall.EFAULT
	}
	if rc.rtcode != 0 || rc.rscode != 0 {
		return syscall.EIO
	}
	return nil
}

// signParmblockLen returns the size of an ECDSA-sign parmblock: subfunc
// code + rule-array length + rule + vud_len/vud1_len fields + hash.
func signParmblockLen(hashlen int) int {
	return 2 + 2 + 8 + 2 + 2 + hashlen
}

func putECDSASignParmblock(buf, hash []byte) int {
	binary.BigEndian.PutUint16(buf[0:], ecdsaSignSubfuncCode)
	binary.BigEndian.PutUint16(buf[2:], 0x000A)
	copy(buf[4:], ecdsaRule[:])
	hashlen := len(hash)
	binary.BigEndian.PutUint16(buf[12:], uint16(hashlen+4))
	binary.BigEndian.PutUint16(buf[14:], uint16(hashlen+2))
	copy(buf[16:], hash)
	return signParmblockLen(hashlen)
}

// verifyParmblockLen returns the size of an ECDSA-verify parmblock:
// subfunc code + rule-array length + rule + vud_len + length-prefixed
// hash + length-prefixed signature.
func verifyParmblockLen(hashlen, siglen int) int {
	return 2 + 2 + 8 + 2 + (2 + hashlen) + (2 + siglen)
}

func putECDSAVerifyParmblock(buf, hash, sig []byte) int {
	hashlen := len(hash)
	siglen := len(sig)
	binary.BigEndian.PutUint16(buf[0:], ecdsaVerifySubfuncCode)
	binary.BigEndian.PutUint16(buf[2:], 0x000A)
	copy(buf[4:], ecdsaRule[:])
	binary.BigEndian.PutUint16(buf[12:], uint16(2+(2+hashlen)+(2+siglen)))
	binary.BigEndian.PutUint16(buf[14:], uint16(2+hashlen))
	copy(buf[16:], hash)
	voff := 16 + hashlen
	binary.BigEndian.PutUint16(buf[voff:], uint16(2+siglen))
	copy(buf[voff+2:], sig)
	return verifyParmblockLen(hashlen, siglen)
}
