// Copyright (c) 2024 The libica-ecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coprocessor

import (
	"encoding/binary"
	"syscall"
)

// ecdhSubfuncCode is "DH" in ASCII, per spec §4.3.
const ecdhSubfuncCode = 0x4448

var ecdhRule = [8]byte{'P', 'A', 'S', 'S', 'T', 'H', 'R', 'U'}

// ecdhVUD is the fixed 20-byte vendor-unique-data literal the ECDH
// parmblock carries, reproduced verbatim from the original implementation
// (Open Question (a): the firmware-level rationale for this exact byte
// sequence is not stated in the source).
var ecdhVUD = [20]byte{
	0x00, 0x14,
	0x00, 0x04, 0x00, 0x91,
	0x00, 0x06, 0x00, 0x93, 0x00, 0x00,
	0x00, 0x04, 0x00, 0x90,
	0x00, 0x04, 0x00, 0x92,
}

const ecdhParmblockLen = 2 /*subfunc*/ + 2 /*rule len*/ + 8 /*rule*/ + len(ecdhVUD)

func putECDHParmblock(buf []byte) int {
	binary.BigEndian.PutUint16(buf[0:], ecdhSubfuncCode)
	binary.BigEndian.PutUint16(buf[2:], 0x000A)
	copy(buf[4:], ecdhRule[:])
	copy(buf[12:], ecdhVUD[:])
	return ecdhParmblockLen
}

// Device abstracts the ioctl-capable coprocessor handle so this package's
// request builders stay portable across the linux-only syscall plumbing
// in device_linux.go.
type Device interface {
	// SendCPRB issues ZSECSENDCPRB with the given request/reply buffer
	// pair already laid out in buf, in place.
	SendCPRB(buf []byte) error
}

// ECDH performs the coprocessor ECDH request described in spec §4.3: the
// parmblock carries subfunction "DH", rule "PASSTHRU", and the fixed VUD
// literal, followed by a keyblock with two identical, adjacent copies of
// the combined (privA, pubB) key token, followed by four null key
// tokens — the firmware demands the duplication, per Open Question
// (a). Only party A's private scalar and party B's public coordinates
// are ever serialized into the token; party A's own public coordinates
// have no field to occupy. Reply key_len-4 must equal privlen; mismatch
// is reported as EIO.
func ECDH(dev Device, domain int16, privA, xB, yB []byte) (z []byte, err error) {
	privlen := len(privA)
	tokenLen := keyTokenLen(privlen)
	keyblockLen := 2 + 2*tokenLen + 4*len(nullKeyToken)
	parmlen := ecdhParmblockLen + keyblockLen

	rb := newRequestBuf(domain)
	defer rb.scrub()

	parm := rb.reqParm(parmlen)
	off := putECDHParmblock(parm)
	binary.BigEndian.PutUint16(parm[off:], uint16(keyblockLen))
	off += 2
	off += putKeyToken(parm[off:], privA, xB, yB, privlen, keyUsageECDH)
	off += putKeyToken(parm[off:], privA, xB, yB, privlen, keyUsageECDH)
	off += putNullKeyToken(parm[off:])
	off += putNullKeyToken(parm[off:])
	off += putNullKeyToken(parm[off:])
	off += putNullKeyToken(parm[off:])
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
	keyLen := binary.BigEndian.Uint16(replyParm[0:])
	if int(keyLen)-4 != privlen {
		return nil, syscall.EIO
	}
	z = make([]byte, privlen)
	copy(z, replyParm[4:4+privlen])
	return z, nil
}
