// Copyright (c) 2024 The libica-ecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build !linux

package coprocessor

import "syscall"

// LinuxDevice is unavailable outside Linux; the zcrypt character device
// and its ZSECSENDCPRB ioctl do not exist elsewhere.
type LinuxDevice struct{}

// OpenDevice always fails on non-Linux platforms.
func OpenDevice(path string) (*LinuxDevice, error) {
	return nil, syscall.ENODEV
}

func (d *LinuxDevice) Close() error { return nil }

func (d *LinuxDevice) SendCPRB(buf []byte) error {
	return syscall.ENODEV
}
