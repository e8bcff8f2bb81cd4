// SPDX-License-Identifier: GPL-3.0-only

package prefixes

import "testing"

func testIndex() *LookupIndex {
	launched := 1995
	operators := []OperatorEntry{
		{Prefix: "081", Name: "Conflicting Short Entry", Type: "GSM"},
		{Prefix: "0812", Name: "Telkomsel Simpati", Type: "GSM", Launched: &launched},
		{Prefix: "0817", Name: "XL Axiata", Type: "GSM"},
		{Prefix: "08", Name: "Generic Mobile", Type: "GSM"},
	}
	areas := []AreaEntry{
		{Code: "0271", City: "Solo", Province: "Jawa Tengah", Timezone: "WIB"},
		{Code: "021", City: "Jakarta", Province: "DKI Jakarta", Timezone: "WIB"},
		{Code: "031", City: "Surabaya", Province: "Jawa Timur", Timezone: "WIB"},
	}
	return BuildIndex(operators, areas)
}

func TestResolveOperatorMostSpecificWins(t *testing.T) {
	idx := testIndex()

	// The 4-digit entry must beat the conflicting 3-digit one.
	op, ok := idx.ResolveOperator("081234567890")
	if !ok {
		t.Fatal("Expected operator match")
	}
	if op.Name != "Telkomsel Simpati" {
		t.Errorf("Expected Telkomsel Simpati via 4-digit prefix, got %s", op.Name)
	}
}

func TestResolveOperatorFallsBackToShorterPrefixes(t *testing.T) {
	idx := testIndex()

	op, ok := idx.ResolveOperator("081534567890")
	if !ok {
		t.Fatal("Expected operator match")
	}
	if op.Name != "Conflicting Short Entry" {
		t.Errorf("Expected 3-digit fallback match, got %s", op.Name)
	}

	op, ok = idx.ResolveOperator("089934567890")
	if !ok {
		t.Fatal("Expected operator match")
	}
	if op.Name != "Generic Mobile" {
		t.Errorf("Expected 2-digit fallback match, got %s", op.Name)
	}
}

func TestResolveOperatorUnknownIsNotAnError(t *testing.T) {
	idx := testIndex()

	op, ok := idx.ResolveOperator("0000000000")
	if ok {
		t.Error("Expected no match for unknown prefix")
	}
	if op.Type != "Unknown" {
		t.Errorf("Expected sentinel type Unknown, got %s", op.Type)
	}
	if op.Launched != nil {
		t.Error("Expected no launch year on sentinel")
	}
}

func TestResolveAreaTableOrder(t *testing.T) {
	idx := testIndex()

	area, ok := idx.ResolveArea("02134567890")
	if !ok {
		t.Fatal("Expected area match")
	}
	if area.City != "Jakarta" {
		t.Errorf("Expected Jakarta, got %s", area.City)
	}

	// Both 021 and 0271 occur as substrings here. Table order decides, not
	// position in the number, so the longer code listed first wins.
	area, ok = idx.ResolveArea("02102710000")
	if !ok {
		t.Fatal("Expected area match")
	}
	if area.City != "Solo" {
		t.Errorf("Expected Solo via table order, got %s", area.City)
	}
}

func TestResolveAreaDefault(t *testing.T) {
	idx := testIndex()

	area, ok := idx.ResolveArea("0899999999")
	if ok {
		t.Error("Expected no area match")
	}
	if area.Province != "Seluruh Indonesia" {
		t.Errorf("Expected default province, got %s", area.Province)
	}
}
