// Copyright (c) 2024 The libica-ecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package capability holds the runtime feature flags that gate which
// backend the top-level operations in package ecc may attempt, per spec
// §4.4 and §5. Flag state is owned by library initialization elsewhere —
// this package is the read-only collaborator the dispatcher consults.
package capability

import "sync/atomic"

// Flags holds the three flags named in spec §4.4: msa9_switch (CPU
// instructions available), ecc_via_online_card (coprocessor available),
// and ica_offload_enabled (force the coprocessor even when the CPU path
// could handle the curve).
type Flags struct {
	msa9       atomic.Bool
	onlineCard atomic.Bool
	offload    atomic.Bool
	software   atomic.Bool
}

// Default is the process-wide flag set consulted by package ecc's
// dispatcher when no explicit Flags is supplied.
var Default = &Flags{}

// SetMSA9 records whether the CPU supports the MSA 9 curve-specific
// PCC/KDSA function codes.
func (f *Flags) SetMSA9(v bool) { f.msa9.Store(v) }

// MSA9 reports whether the CPU-instruction backend may be attempted.
func (f *Flags) MSA9() bool { return f.msa9.Load() }

// SetOnlineCard records whether a Crypto Express coprocessor is online
// and reachable.
func (f *Flags) SetOnlineCard(v bool) { f.onlineCard.Store(v) }

// OnlineCard reports whether the coprocessor backend may be attempted.
func (f *Flags) OnlineCard() bool { return f.onlineCard.Load() }

// SetOffloadEnabled records whether the coprocessor should be preferred
// over the CPU-instruction backend even when both are available.
func (f *Flags) SetOffloadEnabled(v bool) { f.offload.Store(v) }

// OffloadEnabled reports whether ica_offload_enabled is set.
func (f *Flags) OffloadEnabled() bool { return f.offload.Load() }

// SetSoftwareFallback records whether the dispatcher may fall through to
// the pure-software backend when neither hardware path can service a
// request. This has no counterpart flag name in spec §4.4 — it exists so
// the software fallback adapters have a call site of their own without
// disturbing the ENODEV behavior spec §8 scenario 6 requires when the
// coprocessor is simply unavailable and no explicit opt-in into software
// has been made.
func (f *Flags) SetSoftwareFallback(v bool) { f.software.Store(v) }

// SoftwareFallback reports whether the software backend may be tried as
// a last resort.
func (f *Flags) SoftwareFallback() bool { return f.software.Load() }
