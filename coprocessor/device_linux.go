// Copyright (c) 2024 The libica-ecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build linux

package coprocessor

import (
	"encoding/binary"
	"os"
	"syscall"
	"unsafe"

	"golang.org/x/sys/unix"
)

// agentIDCCA is the ASCII "CA" agent identifier the vendor driver expects
// in the ica_xcRB descriptor, per spec §6.
const agentIDCCA = 0x4341

// autoSelect requests any available adapter card rather than a specific
// one, per spec §6.
const autoSelect = 0xFFFF

// zsecSendCPRB is the vendor ioctl request number for submitting a CPRBX
// to the coprocessor driver.
const zsecSendCPRB = 0xc0105301

// icaXCRB mirrors the kernel's ica_xcRB descriptor: the ioctl argument
// that carries pointers and lengths into the request/reply buffer
// described in spec §3.
type icaXCRB struct {
	agentID                 uint16
	userDefined             uint16
	requestControlBlkLength uint32
	_                       uint32
	requestControlBlkAddr   uintptr
	requestDataLength       uint32
	_                       uint32
	requestDataAddr         uintptr
	replyControlBlkLength   uint32
	_                       uint32
	replyControlBlkAddr     uintptr
	replyDataLength         uint32
	_                       uint32
	replyDataAddr           uintptr
	priorityWindow          uint16
	status                  uint16
}

// LinuxDevice drives the coprocessor over a character device's
// ZSECSENDCPRB ioctl.
type LinuxDevice struct {
	f *os.File
}

// OpenDevice opens the zcrypt character device at path. The caller closes
// the returned Device when done.
func OpenDevice(path string) (*LinuxDevice, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, syscall.ENODEV
	}
	return &LinuxDevice{f: f}, nil
}

// Close releases the device handle.
func (d *LinuxDevice) Close() error {
	return d.f.Close()
}

// SendCPRB issues ZSECSENDCPRB with buf laid out as [reqEnvelope | reqParm
// | replyEnvelope | replyParm], per spec §6's ica_xcRB descriptor fields.
func (d *LinuxDevice) SendCPRB(buf []byte) error {
	reqLen := uint32(cprbxLen + parmBlockSize)
	rplLen := binary.BigEndian.Uint32(buf[offRplMsgbl:])

	xcrb := icaXCRB{
		agentID:                 agentIDCCA,
		userDefined:             autoSelect,
		requestControlBlkLength: uint32(cprbxLen) + binary.BigEndian.Uint32(buf[offReqParml:]),
		requestControlBlkAddr:   uintptr(unsafe.Pointer(&buf[0])),
		replyControlBlkLength:   rplLen,
		replyControlBlkAddr:     uintptr(unsafe.Pointer(&buf[reqLen])),
	}

	_, _, errno := unix.Syscall(unix.SYS_IOCTL, d.f.Fd(), uintptr(zsecSendCPRB), uintptr(unsafe.Pointer(&xcrb)))
	if errno != 0 {
		return errno
	}
	return nil
}
