package tracking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lacak-server/validator"
)

func testPhone(t *testing.T) validator.PhoneNumber {
	t.Helper()
	p, err := validator.NewValidator().Normalize("081234567890")
	if err != nil {
		t.Fatalf("Failed to normalize test number: %v", err)
	}
	return p
}

func TestEnrichChainsValidationIntoGeocoding(t *testing.T) {
	numverify := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("number") == "" {
			t.Error("Expected number query parameter")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"valid":true,"number":"6281234567890","carrier":"Telkomsel","location":"Jakarta","line_type":"mobile"}`))
	}))
	defer numverify.Close()

	var geocodeCalls int
	opencage := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		geocodeCalls++
		if q := r.URL.Query().Get("q"); q != "Jakarta" {
			t.Errorf("Expected geocode query Jakarta, got %q", q)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[{"formatted":"Jakarta, Indonesia","geometry":{"lat":-6.2,"lng":106.8}}]}`))
	}))
	defer opencage.Close()

	nv := NewNumverifyClient("test-key", time.Second, 0)
	nv.BaseURL = numverify.URL
	oc := NewOpencageClient("test-key", time.Second, 0)
	oc.BaseURL = opencage.URL

	enricher := &ExternalEnricher{Numverify: nv, Opencage: oc, Timeout: time.Second}
	info := enricher.Enrich(context.Background(), testPhone(t))

	if _, ok := info["numverify"]; !ok {
		t.Error("Expected numverify data in enrichment result")
	}
	if _, ok := info["geocoding"]; !ok {
		t.Error("Expected geocoding data in enrichment result")
	}
	if geocodeCalls != 1 {
		t.Errorf("Expected exactly one geocode call, got %d", geocodeCalls)
	}
}

func TestEnrichSkipsGeocodingWithoutLocation(t *testing.T) {
	numverify := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"valid":true,"number":"6281234567890","carrier":"Telkomsel","location":""}`))
	}))
	defer numverify.Close()

	var geocodeCalls int
	opencage := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		geocodeCalls++
		w.Write([]byte(`{"results":[]}`))
	}))
	defer opencage.Close()

	nv := NewNumverifyClient("test-key", time.Second, 0)
	nv.BaseURL = numverify.URL
	oc := NewOpencageClient("test-key", time.Second, 0)
	oc.BaseURL = opencage.URL

	enricher := &ExternalEnricher{Numverify: nv, Opencage: oc, Timeout: time.Second}
	info := enricher.Enrich(context.Background(), testPhone(t))

	if _, ok := info["numverify"]; !ok {
		t.Error("Expected numverify data in enrichment result")
	}
	if geocodeCalls != 0 {
		t.Errorf("Expected no geocode call without a location, got %d", geocodeCalls)
	}
}

func TestEnrichSwallowsProviderFailure(t *testing.T) {
	numverify := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer numverify.Close()

	nv := NewNumverifyClient("test-key", time.Second, 0)
	nv.BaseURL = numverify.URL

	enricher := &ExternalEnricher{Numverify: nv, Timeout: time.Second}
	info := enricher.Enrich(context.Background(), testPhone(t))

	if len(info) != 0 {
		t.Errorf("Expected empty enrichment on provider failure, got %v", info)
	}
}

func TestEnrichTreatsInvalidNumberAsNoData(t *testing.T) {
	numverify := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"valid":false}`))
	}))
	defer numverify.Close()

	nv := NewNumverifyClient("test-key", time.Second, 0)
	nv.BaseURL = numverify.URL

	enricher := &ExternalEnricher{Numverify: nv, Timeout: time.Second}
	info := enricher.Enrich(context.Background(), testPhone(t))

	if _, ok := info["numverify"]; ok {
		t.Error("Expected no numverify data for a service-invalid number")
	}
}

func TestEnrichTimeoutCutsOffHungProvider(t *testing.T) {
	numverify := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.Write([]byte(`{"valid":true}`))
	}))
	defer numverify.Close()

	nv := NewNumverifyClient("test-key", time.Second, 0)
	nv.BaseURL = numverify.URL

	enricher := &ExternalEnricher{Numverify: nv, Timeout: 50 * time.Millisecond}

	start := time.Now()
	info := enricher.Enrich(context.Background(), testPhone(t))
	elapsed := time.Since(start)

	if len(info) != 0 {
		t.Errorf("Expected empty enrichment after timeout, got %v", info)
	}
	if elapsed > 400*time.Millisecond {
		t.Errorf("Expected enrichment to be cut off by the timeout, took %v", elapsed)
	}
}
