// SPDX-License-Identifier: GPL-3.0-only

package validator

import (
	"crypto/md5"
	"encoding/hex"
)

// PhoneNumber is the canonical representation of a validated number. All
// fields are pure derivations of the same digit string; the value is never
// mutated after Normalize returns it.
type PhoneNumber struct {
	// Sanitized input in international form, identical to E164
	Raw string `json:"raw"`
	// Local format with leading zero, e.g. 081234567890
	Local string `json:"formatted"`
	// International format with digit grouping, e.g. +62 8123 4567 890
	International string `json:"international"`
	// E.164 format, e.g. +6281234567890
	E164 string `json:"e164"`
}

// Canonical returns the single canonical form used for cache keys and
// blacklist lookups.
func (p PhoneNumber) Canonical() string {
	return p.E164
}

// CacheKey derives the result-cache key from the canonical form. Two inputs
// that normalize to the same number always produce the same key.
func (p PhoneNumber) CacheKey() string {
	sum := md5.Sum([]byte(p.E164))
	return "track_" + hex.EncodeToString(sum[:])
}
