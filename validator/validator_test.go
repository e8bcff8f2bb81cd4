// SPDX-License-Identifier: GPL-3.0-only

package validator

import (
	"errors"
	"testing"
)

func TestNormalizeLocalNumber(t *testing.T) {
	v := NewValidator()

	p, err := v.Normalize("081234567890")
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}

	if p.E164 != "+6281234567890" {
		t.Errorf("Expected e164 +6281234567890, got %s", p.E164)
	}
	if p.Local != "081234567890" {
		t.Errorf("Expected local 081234567890, got %s", p.Local)
	}
	if p.International != "+62 8123 4567 890" {
		t.Errorf("Expected international '+62 8123 4567 890', got %q", p.International)
	}
	if p.Raw != p.E164 {
		t.Errorf("Expected raw to equal e164, got %s", p.Raw)
	}
}

func TestNormalizeCountryCodeVariants(t *testing.T) {
	v := NewValidator()

	inputs := []string{"081234567890", "6281234567890", "+6281234567890", "+62 8123 4567 890", "0812-3456-7890"}

	var keys []string
	for _, in := range inputs {
		p, err := v.Normalize(in)
		if err != nil {
			t.Fatalf("Normalize(%q) failed: %v", in, err)
		}
		if p.E164 != "+6281234567890" {
			t.Errorf("Normalize(%q): expected e164 +6281234567890, got %s", in, p.E164)
		}
		keys = append(keys, p.CacheKey())
	}

	for i := 1; i < len(keys); i++ {
		if keys[i] != keys[0] {
			t.Errorf("Cache keys diverge: %s vs %s", keys[i], keys[0])
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	v := NewValidator()

	first, err := v.Normalize("0812 3456 7890")
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}

	for _, again := range []string{first.E164, first.Local, first.International, first.Raw} {
		second, err := v.Normalize(again)
		if err != nil {
			t.Fatalf("Normalize(%q) failed: %v", again, err)
		}
		if second != first {
			t.Errorf("Normalize not idempotent for %q: %+v vs %+v", again, second, first)
		}
	}
}

func TestNormalizeRejectsMalformedInput(t *testing.T) {
	v := NewValidator()

	for _, in := range []string{"", "abc", "0812", "12345", "++++"} {
		if _, err := v.Normalize(in); !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("Normalize(%q): expected ErrInvalidFormat, got %v", in, err)
		}
	}
}

func TestNormalizePermissiveFallback(t *testing.T) {
	v := &Validator{Strict: false}

	// Structurally dubious but pattern-conformant numbers pass in
	// permissive mode.
	p, err := v.Normalize("0000000000")
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if p.E164 != "+62000000000" {
		t.Errorf("Expected e164 +62000000000, got %s", p.E164)
	}

	if _, err := v.Normalize("000"); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Expected ErrInvalidFormat for short input, got %v", err)
	}
}
