// Copyright (c) 2024 The libica-ecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coprocessor

import (
	"bytes"
	"encoding/binary"
	"syscall"
	"testing"
)

func TestECDSASignSuccessParsesSignature(t *testing.T) {
	wantR := bytes.Repeat([]byte{0x11}, 32)
	wantS := bytes.Repeat([]byte{0x22}, 32)
	dev := &fakeDevice{writeReply: func(buf []byte) {
		putReplyCPRBX(buf, 0, 0)
		parm := replyParmOf(buf)
		binary.BigEndian.PutUint16(parm[0:], uint16(8+64))
		copy(parm[8:8+32], wantR)
		copy(parm[8+32:8+64], wantS)
	}}

	priv := make([]byte, 32)
	x := make([]byte, 32)
	y := make([]byte, 32)
	hash := make([]byte, 32)
	sig, err := ECDSASign(dev, 3, priv, x, y, hash)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := append(append([]byte{}, wantR...), wantS...)
	if !bytes.Equal(sig, want) {
		t.Fatalf("sig = %x, want %x", sig, want)
	}
}

func TestECDSASignVudLenMismatchIsEIO(t *testing.T) {
	dev := &fakeDevice{writeReply: func(buf []byte) {
		putReplyCPRBX(buf, 0, 0)
		parm := replyParmOf(buf)
		binary.BigEndian.PutUint16(parm[0:], uint16(8+32)) // should be 8+64
	}}
	_, err := ECDSASign(dev, 3, make([]byte, 32), make([]byte, 32), make([]byte, 32), make([]byte, 32))
	if err != syscall.EIO {
		t.Fatalf("err = %v, want EIO", err)
	}
}

func TestECDSASignNonzeroReturnCodeIsEIO(t *testing.T) {
	dev := &fakeDevice{writeReply: func(buf []byte) {
		putReplyCPRBX(buf, 12, 0)
	}}
	_, err := ECDSASign(dev, 3, make([]byte, 32), make([]byte, 32), make([]byte, 32), make([]byte, 32))
	if err != syscall.EIO {
		t.Fatalf("err = %v, want EIO", err)
	}
}

func TestECDSAVerifyAcceptsValidSignature(t *testing.T) {
	dev := &fakeDevice{writeReply: func(buf []byte) {
		putReplyCPRBX(buf, 0, 0)
	}}
	err := ECDSAVerify(dev, 3, make([]byte, 32), make([]byte, 32), make([]byte, 32), make([]byte, 64))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestECDSAVerifyRejectsInvalidSignatureAsEFAULT(t *testing.T) {
	dev := &fakeDevice{writeReply: func(buf []byte) {
		putReplyCPRBX(buf, 4, rsSignatureInvalid)
	}}
	err := ECDSAVerify(dev, 3, make([]byte, 32), make([]byte, 32), make([]byte, 32), make([]byte, 64))
	if err != syscall.EFAULT {
		t.Fatalf("err = %v, want EFAULT", err)
	}
}

func TestECDSAVerifyOtherFailureIsEIO(t *testing.T) {
	dev := &fakeDevice{writeReply: func(buf []byte) {
		putReplyCPRBX(buf, 8, 0)
	}}
	err := ECDSAVerify(dev, 3, make([]byte, 32), make([]byte, 32), make([]byte, 32), make([]byte, 64))
	if err != syscall.EIO {
		t.Fatalf("err = %v, want EIO", err)
	}
}

func TestECDSAVerifySameReturnCodeDifferentSubcodeIsEIO(t *testing.T) {
	// rtcode==4 but rscode != rsSignatureInvalid must not be mistaken for
	// a rejected signature.
	dev := &fakeDevice{writeReply: func(buf []byte) {
		putReplyCPRBX(buf, 4, 99)
	}}
	err := ECDSAVerify(dev, 3, make([]byte, 32), make([]byte, 32), make([]byte, 32), make([]byte, 64))
	if err != syscall.EIO {
		t.Fatalf("err = %v, want EIO", err)
	}
}

func TestECDSASignRequestCarriesLengthPrefixedHash(t *testing.T) {
	var captured []byte
	dev := &fakeDevice{writeReply: func(buf []byte) {
		captured = append([]byte(nil), buf...)
		putReplyCPRBX(buf, 0, 0)
		parm := replyParmOf(buf)
		binary.BigEndian.PutUint16(parm[0:], uint16(8+64))
	}}

	hash := bytes.Repeat([]byte{0xAB}, 32)
	if _, err := ECDSASign(dev, 0, make([]byte, 32), make([]byte, 32), make([]byte, 32), hash); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reqParm := captured[cprbxLen:]
	vud1Len := binary.BigEndian.Uint16(reqParm[14:])
	if int(vud1Len) != len(hash)+2 {
		t.Fatalf("vud1_len = %d, want %d", vud1Len, len(hash)+2)
	}
	if !bytes.Equal(reqParm[16:16+len(hash)], hash) {
		t.Fatalf("request hash bytes mismatch")
	}
}
