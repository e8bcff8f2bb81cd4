package tracking

import (
	"testing"
	"time"

	"lacak-server/commons/prefixes"
)

func sampleResult(e164 string) LookupResult {
	return LookupResult{
		Operator: prefixes.OperatorEntry{Prefix: "0812", Name: "Telkomsel", Type: "GSM"},
		Location: prefixes.AreaEntry{Code: "021", City: "Jakarta", Province: "DKI Jakarta", Timezone: "WIB"},
		Status: Status{
			IsActive:        true,
			ConfidenceScore: 75,
		},
		AdditionalInfo: map[string]any{"carrier": "Telkomsel"},
		Meta: Meta{
			Source:      "internal_database",
			LastUpdated: time.Now().Format(time.RFC3339),
		},
	}
}

func TestCacheHitBeforeExpiry(t *testing.T) {
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	cache := NewResultCache(time.Hour, 0)
	cache.Now = func() time.Time { return now }

	cache.Put("track_abc", sampleResult("+6281234567890"), 0)

	now = now.Add(59 * time.Minute)
	got, ok := cache.Get("track_abc")
	if !ok {
		t.Fatal("Expected cache hit before TTL expiry")
	}
	if got.Operator.Name != "Telkomsel" {
		t.Errorf("Expected operator Telkomsel, got %s", got.Operator.Name)
	}
}

func TestCacheExpiryIsAMiss(t *testing.T) {
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	cache := NewResultCache(time.Hour, 0)
	cache.Now = func() time.Time { return now }

	cache.Put("track_abc", sampleResult("+6281234567890"), 0)

	now = now.Add(61 * time.Minute)
	if _, ok := cache.Get("track_abc"); ok {
		t.Fatal("Expected cache miss after TTL expiry")
	}
	if cache.Len() != 0 {
		t.Errorf("Expected expired entry to be purged, cache still holds %d entries", cache.Len())
	}
}

func TestCachePerEntryTTLOverride(t *testing.T) {
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	cache := NewResultCache(time.Hour, 0)
	cache.Now = func() time.Time { return now }

	cache.Put("track_short", sampleResult("+6281234567890"), time.Minute)

	now = now.Add(2 * time.Minute)
	if _, ok := cache.Get("track_short"); ok {
		t.Fatal("Expected entry with one-minute TTL to expire after two minutes")
	}
}

func TestCacheInsertionOrderEviction(t *testing.T) {
	cache := NewResultCache(time.Hour, 2)

	cache.Put("track_a", sampleResult("+6281234567890"), 0)
	cache.Put("track_b", sampleResult("+6281234567891"), 0)
	cache.Put("track_c", sampleResult("+6281234567892"), 0)

	if cache.Len() != 2 {
		t.Fatalf("Expected 2 entries after eviction, got %d", cache.Len())
	}
	if _, ok := cache.Get("track_a"); ok {
		t.Error("Expected oldest entry track_a to be evicted")
	}
	if _, ok := cache.Get("track_b"); !ok {
		t.Error("Expected track_b to survive eviction")
	}
	if _, ok := cache.Get("track_c"); !ok {
		t.Error("Expected track_c to survive eviction")
	}
}

func TestCacheOverwriteDoesNotGrowOrder(t *testing.T) {
	cache := NewResultCache(time.Hour, 2)

	cache.Put("track_a", sampleResult("+6281234567890"), 0)
	cache.Put("track_a", sampleResult("+6281234567890"), 0)
	cache.Put("track_b", sampleResult("+6281234567891"), 0)

	if cache.Len() != 2 {
		t.Fatalf("Expected 2 entries, got %d", cache.Len())
	}
	if _, ok := cache.Get("track_a"); !ok {
		t.Error("Expected overwritten entry track_a to still be present")
	}
}

func TestCacheGetReturnsIndependentCopy(t *testing.T) {
	cache := NewResultCache(time.Hour, 0)
	cache.Put("track_abc", sampleResult("+6281234567890"), 0)

	first, ok := cache.Get("track_abc")
	if !ok {
		t.Fatal("Expected cache hit")
	}
	first.AdditionalInfo["carrier"] = "mutated"
	first.Meta.Cached = true

	second, ok := cache.Get("track_abc")
	if !ok {
		t.Fatal("Expected cache hit")
	}
	if second.AdditionalInfo["carrier"] != "Telkomsel" {
		t.Error("Mutating a returned result leaked into the cached value")
	}
	if second.Meta.Cached {
		t.Error("Cached flag mutation leaked into the cached value")
	}
}
