// Copyright (c) 2024 The libica-ecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command icainfo prints the curve catalog and the resolved capability
// flags. It is a thin stand-in for the CLI test harness named as an
// external collaborator in spec §1 — it wires config and capability
// together, nothing more.
package main

import (
	"errors"
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"

	"github.com/ibm-s390-linux/libica-ecc/capability"
	"github.com/ibm-s390-linux/libica-ecc/config"
	"github.com/ibm-s390-linux/libica-ecc/coprocessor"
	"github.com/ibm-s390-linux/libica-ecc/curve"
)

func main() {
	cfg, _, err := config.Load()
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	caps := &capability.Flags{}
	cfg.Apply(caps)

	fmt.Println("curves:")
	for id := curve.ID(0); ; id++ {
		c, ok := curve.Lookup(id)
		if !ok {
			break
		}
		fmt.Printf("  %-8s privlen=%-3d family=%v ecdsa=%v\n",
			c.Name, c.PrivLen, c.Family, c.ECDSACapable)
	}

	fmt.Println("capability flags:")
	fmt.Printf("  msa9_switch:        %v\n", caps.MSA9())
	fmt.Printf("  ecc_via_online_card: %v\n", caps.OnlineCard())
	fmt.Printf("  ica_offload_enabled: %v\n", caps.OffloadEnabled())
	fmt.Printf("  software_fallback:   %v\n", caps.SoftwareFallback())
	fmt.Printf("  device path:         %s\n", cfg.DevicePath)
	fmt.Printf("  default domain:      %d\n", coprocessor.DefaultDomain())
}
