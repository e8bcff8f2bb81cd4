// SPDX-License-Identifier: GPL-3.0-only

package tracking

import (
	"lacak-server/commons/prefixes"
	"lacak-server/validator"
)

type Status struct {
	IsActive        bool `json:"is_active"`
	IsPorted        bool `json:"is_ported"`
	IsBlacklisted   bool `json:"is_blacklisted"`
	ConfidenceScore int  `json:"confidence_score"`
}

type PortingInfo struct {
	PreviousOperator string `json:"previous_operator"`
	CurrentOperator  string `json:"current_operator"`
	PortedAt         string `json:"ported_at"`
}

type Meta struct {
	Source      string `json:"source"`
	LastUpdated string `json:"last_updated"`
	Cached      bool   `json:"cached"`
}

// LookupResult is the full descriptor for one tracked number. It is
// constructed once per cache miss and never mutated afterwards; cache hits
// hand out a copy with only Meta.Cached toggled.
type LookupResult struct {
	Phone          validator.PhoneNumber  `json:"phone"`
	Operator       prefixes.OperatorEntry `json:"operator"`
	Location       prefixes.AreaEntry     `json:"location"`
	Porting        *PortingInfo           `json:"porting"`
	Status         Status                 `json:"status"`
	AdditionalInfo map[string]any         `json:"additional_info"`
	Meta           Meta                   `json:"meta"`
}

// Clone returns an independent copy so callers cannot mutate the cached
// value through the AdditionalInfo map.
func (r LookupResult) Clone() LookupResult {
	out := r
	if r.AdditionalInfo != nil {
		out.AdditionalInfo = make(map[string]any, len(r.AdditionalInfo))
		for k, v := range r.AdditionalInfo {
			out.AdditionalInfo[k] = v
		}
	}
	if r.Porting != nil {
		p := *r.Porting
		out.Porting = &p
	}
	return out
}
