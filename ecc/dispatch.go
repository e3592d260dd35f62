// Copyright (c) 2024 The libica-ecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ecc implements the top-level EC operations — ECDH, ECDSA
// sign/verify, EC key generation, and Edwards/Montgomery public-key
// derivation — dispatching each across the CPU-instruction, coprocessor,
// and software backends described in spec §4.4.
package ecc

import (
	"syscall"

	"github.com/ibm-s390-linux/libica-ecc/capability"
	"github.com/ibm-s390-linux/libica-ecc/coprocessor"
	"github.com/ibm-s390-linux/libica-ecc/fipsmode"
	"github.com/ibm-s390-linux/libica-ecc/stats"
)

// Config bundles the collaborators a Dispatch call consults: the runtime
// capability flags (spec §4.4/§5), the coprocessor device handle (nil
// means "driver not loaded", spec §4.4 step 3), the cached domain, and
// the usage counters (spec §1's "external collaborator").
type Config struct {
	Caps    *capability.Flags
	Device  coprocessor.Device
	Domain  int16
	Counter *stats.Counters
}

// DefaultConfig returns a Config wired to the process-wide capability and
// stats defaults, with no coprocessor device attached.
func DefaultConfig() *Config {
	return &Config{
		Caps:    capability.Default,
		Device:  nil,
		Domain:  -1,
		Counter: stats.Default,
	}
}

func (c *Config) record(b stats.Backend) {
	if c.Counter != nil {
		c.Counter.Record(b)
	}
}

// op identifies which of the four top-level operations is dispatching,
// since keygen always tries the CPU path first regardless of
// ica_offload_enabled (spec §4.4 step 1).
type op int

const (
	opECDH op = iota
	opECDSASign
	opECDSAVerify
	opECKeyGen
)

// dispatch implements spec §4.4's four-step backend selection. cpu is
// called first when eligible and must return syscall.EINVAL when the
// curve is unsupported on that path (the sentinel consumed here) and any
// other error otherwise. coproc is called when the coprocessor path is
// reached; software is called only when cfg.Caps.SoftwareFallback() is
// set and every hardware path has been ruled out, since spec §8 scenario
// 6 requires a bare ENODEV when the coprocessor is simply offline. The
// software arm is additionally gated by fipsmode.Denied(), per spec §7:
// a FIPS-required deployment whose crypto library isn't actually running
// in FIPS mode refuses to fall back to the unvalidated software path and
// reports EACCES instead of silently running it anyway.
func dispatch(cfg *Config, o op, cpu func() error, coproc func() error, software func() error) error {
	tryCPU := cfg.Caps.MSA9() && (!cfg.Caps.OffloadEnabled() || o == opECKeyGen)
	if tryCPU {
		err := cpu()
		if err != syscall.EINVAL {
			if err == nil {
				cfg.record(stats.BackendCPU)
			} else {
				log.Debugf("op %d: CPU-instruction backend failed: %v", o, err)
			}
			return err
		}
	}

	if cfg.Caps.OnlineCard() {
		if cfg.Device == nil {
			log.Debugf("op %d: ecc_via_online_card set but no coprocessor device attached", o)
			return syscall.EIO
		}
		err := coproc()
		if err == nil {
			cfg.record(stats.BackendCoprocessor)
		} else {
			log.Debugf("op %d: coprocessor backend failed: %v", o, err)
		}
		return err
	}

	if cfg.Caps.SoftwareFallback() {
		if fipsmode.Denied() {
			log.Debugf("op %d: software fallback denied, FIPS mode required but not active", o)
			return syscall.EACCES
		}
		err := software()
		if err == nil {
			cfg.record(stats.BackendSoftware)
		} else {
			log.Debugf("op %d: software backend failed: %v", o, err)
		}
		return err
	}

	log.Debugf("op %d: no backend available", o)
	return syscall.ENODEV
}
