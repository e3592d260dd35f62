// Copyright (c) 2024 The libica-ecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package coprocessor builds and parses the vendor request/reply control
// blocks exchanged with a Crypto Express coprocessor over a character
// device ioctl, and drives that ioctl. Every multi-byte field on the wire
// is big-endian; buffers are packed explicitly with encoding/binary
// rather than relying on Go struct layout, since the layout must match
// what the coprocessor firmware expects byte-for-byte.
package coprocessor

import "encoding/binary"

// cprbxLen is the size in bytes of the CPRBX envelope this package
// writes and reads. The request buffer holds cprbxLen bytes of envelope
// followed immediately by the operation's parameter block; the reply
// buffer is laid out the same way. Because both halves of the shared
// allocation have a fixed, statically known layout (see requestBuf),
// the envelope carries no pointer fields into the parameter block the
// way the vendor's C structure does — position is implicit.
const cprbxLen = 32

// parmBlockSize is the fixed size reserved for a parameter block within
// the shared coprocessor request/reply allocation.
const parmBlockSize = 2048

const cprbVerID = 0x02

var funcIDT2 = [2]byte{'T', '2'}

// CPRBX field offsets within the cprbxLen-byte envelope.
const (
	offCPRBLen    = 0
	offCPRBVerID  = 2
	offFuncID     = 4
	offReqParml   = 8
	offDomain     = 12
	offRplMsgbl   = 16
	offRplParml   = 20
	offCCPRTCode  = 24
	offCCPRSCode  = 28
)

// putCPRBX writes a request CPRBX header into buf[:cprbxLen]. parml is the
// length of the parameter block that follows it in the same buffer.
func putCPRBX(buf []byte, parml uint32, domain int16) {
	binary.BigEndian.PutUint16(buf[offCPRBLen:], cprbxLen)
	buf[offCPRBVerID] = cprbVerID
	copy(buf[offFuncID:], funcIDT2[:])
	binary.BigEndian.PutUint32(buf[offReqParml:], parml)
	binary.BigEndian.PutUint16(buf[offDomain:], uint16(domain))
	binary.BigEndian.PutUint32(buf[offRplMsgbl:], cprbxLen+parmBlockSize)
}

// replyCPRBX reads back the fields of a reply CPRBX populated by the
// coprocessor.
type replyCPRBX struct {
	rplParml uint32
	rtcode   uint32
	rscode   uint32
}

func parseCPRBX(buf []byte) replyCPRBX {
	return replyCPRBX{
		rplParml: binary.BigEndian.Uint32(buf[offRplParml:]),
		rtcode:   binary.BigEndian.Uint32(buf[offCCPRTCode:]),
		rscode:   binary.BigEndian.Uint32(buf[offCCPRSCode:]),
	}
}

// requestBuf is the shared allocation described in spec §3: the first
// half holds the request CPRBX and parameter block, the second half is
// pre-sized space for the reply. Zeroed and freed (by the garbage
// collector, once scrubbed) on every exit path.
type requestBuf struct {
	buf    []byte
	domain int16
}

func newRequestBuf(domain int16) *requestBuf {
	return &requestBuf{
		buf:    make([]byte, 2*(cprbxLen+parmBlockSize)),
		domain: domain,
	}
}

// reqEnvelope returns the request CPRBX slice.
func (r *requestBuf) reqEnvelope() []byte { return r.buf[:cprbxLen] }

// reqParm returns the request parameter block slice, sized to n.
func (r *requestBuf) reqParm(n int) []byte { return r.buf[cprbxLen : cprbxLen+n] }

// replyEnvelope returns the reply CPRBX slice.
func (r *requestBuf) replyEnvelope() []byte {
	return r.buf[cprbxLen+parmBlockSize : 2*cprbxLen+parmBlockSize]
}

// replyParm returns the full reply parameter block region.
func (r *requestBuf) replyParm() []byte {
	return r.buf[2*cprbxLen+parmBlockSize:]
}

// finalize writes the request CPRBX header now that the parameter block
// length is known.
func (r *requestBuf) finalize(parml int) {
	putCPRBX(r.reqEnvelope(), uint32(parml), r.domain)
}

// scrub zeroizes the entire shared allocation. Every request path defers
// this on every exit, per spec §5.
func (r *requestBuf) scrub() {
	scrubBytes(r.buf)
}

//go:noinline
func scrubBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
