// Copyright (c) 2024 The libica-ecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package config defines the CLI-parseable runtime configuration for this
// module's capability switches and coprocessor device path, in the style
// of this lineage's own top-level config struct: a jessevdk/go-flags
// tagged struct consumed by a thin cmd/ entry point.
package config

import (
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"

	"github.com/ibm-s390-linux/libica-ecc/capability"
)

const defaultDevicePath = "/dev/z90crypt"

// Config holds the three runtime capability switches named in spec §4.4,
// plus the coprocessor device path, as CLI-parseable options.
type Config struct {
	MSA9             bool   `long:"msa9" description:"CPU supports the MSA 9 curve-specific PCC/KDSA function codes"`
	OnlineCard       bool   `long:"online-card" description:"a Crypto Express coprocessor is online and reachable"`
	OffloadEnabled   bool   `long:"offload" description:"prefer the coprocessor over the CPU-instruction path when both are available"`
	SoftwareFallback bool   `long:"software-fallback" description:"permit the software backend as a last resort when no hardware path is usable"`
	DevicePath       string `long:"device" description:"coprocessor character-device path" default:"/dev/z90crypt"`
}

// Load parses os.Args[1:] into a Config, mirroring this lineage's own
// dcrd.go entry-point parsing convention.
func Load() (*Config, []string, error) {
	cfg := Config{DevicePath: defaultDevicePath}
	parser := flags.NewParser(&cfg, flags.Default)
	args, err := parser.Parse()
	if err != nil {
		return nil, nil, err
	}
	return &cfg, args, nil
}

// Apply writes the parsed switches into the given capability.Flags.
func (c *Config) Apply(caps *capability.Flags) {
	caps.SetMSA9(c.MSA9)
	caps.SetOnlineCard(c.OnlineCard)
	caps.SetOffloadEnabled(c.OffloadEnabled)
	caps.SetSoftwareFallback(c.SoftwareFallback)
}

// Fatalf prints a usage error and exits, matching gencerts.go's fatalf.
func Fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}
