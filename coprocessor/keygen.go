// Copyright (c) 2024 The libica-ecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coprocessor

import (
	"encoding/binary"
	"syscall"
)

const eckeygenSubfuncCode = 0x5047 // "PG"

var eckeygenRule = [8]byte{'C', 'L', 'E', 'A', 'R', ' ', ' ', ' '}

const eckeygenParmblockLen = 2 + 2 + 8 + 2

func putECKeyGenParmblock(buf []byte) int {
	binary.BigEndian.PutUint16(buf[0:], eckeygenSubfuncCode)
	binary.BigEndian.PutUint16(buf[2:], 0x000A)
	copy(buf[4:], eckeygenRule[:])
	binary.BigEndian.PutUint16(buf[12:], 0x0002)
	return eckeygenParmblockLen
}

// ECKeyGen performs the coprocessor EC key-generation request described
// in spec §4.3: subfunction "PG", rule "CLEAR   ", followed by a keyblock
// with a skeleton private-key token (no scalar, no coordinates) and a
// trailing ECC-null token. The reply's private section formatted_data_len
// must equal privlen; the public section (located by walking section_len
// bytes past the private section) must report compress_flag 0x04.
func ECKeyGen(dev Device, domain int16, privlen int) (d, x, y []byte, err error) {
	skeletonLen := eckeygenSkeletonTokenLen()
	keyblockLen := 2 + skeletonLen + eccNullTokenLen
	parmlen := eckeygenParmblockLen + keyblockLen

	rb := newRequestBuf(domain)
	defer rb.scrub()

	parm := rb.reqParm(parmlen)
	off := putECKeyGenParmblock(parm)
	binary.BigEndian.PutUint16(parm[off:], uint16(keyblockLen))
	off += 2
	off += putEckeygenSkeletonToken(parm[off:], privlen)
	off += putECCNullToken(parm[off:])
	rb.finalize(off)

	if err := dev.SendCPRB(rb.buf); err != nil {
		return nil, nil, nil, syscall.EIO
	}

	reply := rb.replyEnvelope()
	rc := parseCPRBX(reply)
	if rc.rtcode != 0 || rc.rscode != 0 {
		return nil, nil, nil, syscall.EIO
	}

	replyParm := rb.replyParm()
	// The reply key block carries a 2-byte length field ahead of the key
	// token, mirroring the request's keyblock framing.
	token := replyParm[2:]
	scalar, pubOff := parsePrivateKeyToken(token)
	if len(scalar) != privlen {
		return nil, nil, nil, syscall.EIO
	}
	d = make([]byte, privlen)
	copy(d, scalar)

	compressFlag, xy := parsePublicKeyToken(token, pubOff)
	if compressFlag != compressFlagUncompressed || len(xy) != 2*privlen {
		return nil, nil, nil, syscall.EIO
	}
	x = make([]byte, privlen)
	y = make([]byte, privlen)
	copy(x, xy[:privlen])
	copy(y, xy[privlen:])
	return d, x, y, nil
}
