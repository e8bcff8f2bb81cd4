// SPDX-License-Identifier: GPL-3.0-only

package tracking

import (
	"context"
	"lacak-server/commons"
	"lacak-server/commons/prefixes"
	"lacak-server/validator"
	"time"
)

// Orchestrator composes the lookup pipeline. All collaborators are injected
// at construction; the orchestrator itself holds no mutable state, so one
// instance serves all requests concurrently.
type Orchestrator struct {
	Validator *validator.Validator
	Tables    *prefixes.LookupIndex
	Blacklist BlacklistGate
	Porting   PortingStore
	Cache     *ResultCache
	Limiter   *RateLimiter
	Enricher  Enricher
	Scorer    *Scorer

	// RequireAPIKey gates the key validation and quota steps. When false,
	// lookups are unauthenticated and unmetered.
	RequireAPIKey bool
}

// Track runs one raw input through the full pipeline:
// normalize, authorize, blacklist gate, cache, resolve + enrich + score,
// cache write, quota increment. Errors are terminal for this call; only a
// cache hit or a blacklist rejection short-circuits.
func (o *Orchestrator) Track(ctx context.Context, rawInput, apiKey string) (*LookupResult, error) {
	p, err := o.Validator.Normalize(rawInput)
	if err != nil {
		return nil, ErrInvalidFormat()
	}

	var keyID string
	if o.RequireAPIKey {
		key, err := o.Limiter.ValidateKey(apiKey)
		if err != nil {
			return nil, ErrInternal(err)
		}
		if key == nil {
			return nil, ErrUnauthorized()
		}
		keyID = key.KeyID

		ok, err := o.Limiter.CheckLimit(keyID)
		if err != nil {
			return nil, ErrInternal(err)
		}
		if !ok {
			return nil, ErrRateLimited()
		}
	}

	entry, err := o.Blacklist.Check(p)
	if err != nil {
		return nil, ErrInternal(err)
	}
	if entry != nil {
		return nil, ErrBlacklisted()
	}

	cacheKey := p.CacheKey()
	if cached, ok := o.Cache.Get(cacheKey); ok {
		cached.Meta.Cached = true
		return &cached, nil
	}

	operator, operatorKnown := o.Tables.ResolveOperator(p.Local)
	area, areaKnown := o.Tables.ResolveArea(p.Local)

	var porting *PortingInfo
	if o.Porting != nil {
		record, err := o.Porting.Lookup(p)
		if err != nil {
			commons.Logger.Warnf("Porting lookup failed for %s: %v", p.Canonical(), err)
		} else if record != nil {
			porting = &PortingInfo{
				PreviousOperator: record.PreviousOperator,
				CurrentOperator:  record.CurrentOperator,
				PortedAt:         record.PortedAt.Format(time.RFC3339),
			}
		}
	}

	additional := map[string]any{}
	if o.Enricher != nil {
		additional = o.Enricher.Enrich(ctx, p)
	}

	result := LookupResult{
		Phone:    p,
		Operator: operator,
		Location: area,
		Porting:  porting,
		Status: Status{
			IsActive:        o.Scorer.ActiveStatus(),
			IsPorted:        porting != nil,
			IsBlacklisted:   false,
			ConfidenceScore: o.Scorer.Score(operatorKnown, areaKnown, porting != nil),
		},
		AdditionalInfo: additional,
		Meta: Meta{
			Source:      "internal_database",
			LastUpdated: time.Now().Format(time.RFC3339),
			Cached:      false,
		},
	}

	o.Cache.Put(cacheKey, result, 0)

	if o.RequireAPIKey {
		if err := o.Limiter.Increment(keyID); err != nil {
			return nil, ErrInternal(err)
		}
	}

	return &result, nil
}
