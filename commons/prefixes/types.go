// SPDX-License-Identifier: GPL-3.0-only

package prefixes

// OperatorEntry describes one mobile operator prefix. Prefixes are stored in
// local format (leading zero), lengths 2 to 4.
type OperatorEntry struct {
	Prefix   string `json:"prefix"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Launched *int   `json:"launched"`
}

// AreaEntry describes one geographic area code. Matching is done by substring
// scan over the local-format number, so the table must list longer codes
// before shorter ones that they contain (0271 before 021). The loader keeps
// file order; it does not reorder or verify.
type AreaEntry struct {
	Code     string `json:"code"`
	City     string `json:"city"`
	Province string `json:"province"`
	Timezone string `json:"timezone"`
}

type OperatorData struct {
	Operators []OperatorEntry `json:"operators"`
}

type AreaData struct {
	Areas []AreaEntry `json:"areas"`
}

// LookupIndex holds both tables ready for querying. Operators are indexed by
// prefix, areas stay an ordered slice.
type LookupIndex struct {
	ByPrefix map[string]OperatorEntry
	Areas    []AreaEntry
}
