// Copyright (c) 2024 The libica-ecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build linux

package coprocessor

import (
	"os"
	"strconv"
	"strings"
	"sync"
)

const apDomainFile = "/sys/bus/ap/ap_domain"

var (
	domainOnce   sync.Once
	cachedDomain int16
)

// DefaultDomain returns the coprocessor domain read once from
// /sys/bus/ap/ap_domain, per spec §5 and §6. On absence or parse failure
// the domain is -1; this is not treated as fatal at this layer — callers
// still issue the request, and the coprocessor itself may reject it.
func DefaultDomain() int16 {
	domainOnce.Do(func() {
		cachedDomain = -1
		data, err := os.ReadFile(apDomainFile)
		if err != nil {
			log.Debugf("could not read %s: %v", apDomainFile, err)
			return
		}
		n, err := strconv.Atoi(strings.TrimSpace(string(data)))
		if err != nil {
			log.Debugf("could not parse %s: %v", apDomainFile, err)
			return
		}
		cachedDomain = int16(n)
	})
	return cachedDomain
}
