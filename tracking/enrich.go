// SPDX-License-Identifier: GPL-3.0-only

package tracking

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"lacak-server/commons"
	"lacak-server/validator"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultNumverifyURL = "http://apilayer.net/api/validate"
	defaultOpencageURL  = "https://api.opencagedata.com/geocode/v1/json"
)

// Enricher augments a lookup with data from external services, best-effort.
// Implementations never fail the pipeline: on error or timeout they simply
// contribute nothing.
type Enricher interface {
	Enrich(ctx context.Context, p validator.PhoneNumber) map[string]any
}

type NumverifyResult struct {
	Valid               bool   `json:"valid"`
	Number              string `json:"number"`
	LocalFormat         string `json:"local_format"`
	InternationalFormat string `json:"international_format"`
	CountryPrefix       string `json:"country_prefix"`
	CountryCode         string `json:"country_code"`
	CountryName         string `json:"country_name"`
	Location            string `json:"location"`
	Carrier             string `json:"carrier"`
	LineType            string `json:"line_type"`
}

type NumverifyClient struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
	limiter    *rate.Limiter
}

func NewNumverifyClient(apiKey string, timeout time.Duration, rateLimit float64) *NumverifyClient {
	var limiter *rate.Limiter
	if rateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(rateLimit), int(rateLimit)+1)
	}
	return &NumverifyClient{
		APIKey:     apiKey,
		BaseURL:    defaultNumverifyURL,
		HTTPClient: &http.Client{Timeout: timeout},
		limiter:    limiter,
	}
}

// Validate queries the number-validation service. A structurally invalid
// number per the service returns (nil, nil).
func (c *NumverifyClient) Validate(ctx context.Context, e164 string) (*NumverifyResult, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit: %w", err)
		}
	}

	q := url.Values{}
	q.Set("access_key", c.APIKey)
	q.Set("number", e164)

	req, err := http.NewRequestWithContext(ctx, "GET", c.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var result NumverifyResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, err
	}
	if !result.Valid {
		return nil, nil
	}
	return &result, nil
}

type OpencageClient struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
	limiter    *rate.Limiter
}

func NewOpencageClient(apiKey string, timeout time.Duration, rateLimit float64) *OpencageClient {
	var limiter *rate.Limiter
	if rateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(rateLimit), int(rateLimit)+1)
	}
	return &OpencageClient{
		APIKey:     apiKey,
		BaseURL:    defaultOpencageURL,
		HTTPClient: &http.Client{Timeout: timeout},
		limiter:    limiter,
	}
}

// Geocode resolves a free-form location string to the service's first result.
func (c *OpencageClient) Geocode(ctx context.Context, location string) (map[string]any, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit: %w", err)
		}
	}

	q := url.Values{}
	q.Set("q", location)
	q.Set("key", c.APIKey)
	q.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, "GET", c.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Results []map[string]any `json:"results"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, err
	}
	if len(parsed.Results) == 0 {
		return nil, nil
	}
	return parsed.Results[0], nil
}

// ExternalEnricher chains the configured providers. Geocoding feeds off the
// location reported by the validation provider, so it is skipped whenever
// that provider did not run or returned no location. One attempt per
// provider, no retries, a hung provider is cut off by the timeout.
type ExternalEnricher struct {
	Numverify *NumverifyClient
	Opencage  *OpencageClient
	Timeout   time.Duration
}

func (e *ExternalEnricher) Enrich(ctx context.Context, p validator.PhoneNumber) map[string]any {
	info := map[string]any{}

	var location string
	if e.Numverify != nil {
		callCtx, cancel := context.WithTimeout(ctx, e.Timeout)
		result, err := e.Numverify.Validate(callCtx, p.E164)
		cancel()
		if err != nil {
			commons.Logger.Debugf("Numverify lookup failed for %s: %v", p.E164, err)
		} else if result != nil {
			info["numverify"] = result
			location = result.Location
		}
	}

	if e.Opencage != nil && location != "" {
		callCtx, cancel := context.WithTimeout(ctx, e.Timeout)
		geo, err := e.Opencage.Geocode(callCtx, location)
		cancel()
		if err != nil {
			commons.Logger.Debugf("Geocoding failed for %q: %v", location, err)
		} else if geo != nil {
			info["geocoding"] = geo
		}
	}

	return info
}
