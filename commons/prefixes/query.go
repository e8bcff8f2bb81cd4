// SPDX-License-Identifier: GPL-3.0-only

package prefixes

import (
	"encoding/json"
	"os"
	"strings"
)

// UnknownOperator is the sentinel returned when no prefix matches. An
// unrecognized operator is a valid lookup outcome, not an error.
var UnknownOperator = OperatorEntry{
	Name: "Operator tidak dikenali",
	Type: "Unknown",
}

// DefaultArea is the sentinel returned when no area code matches.
var DefaultArea = AreaEntry{
	City:     "Tidak dapat ditentukan",
	Province: "Seluruh Indonesia",
	Timezone: "WIB",
}

func LoadOperatorJSON(filePath string) ([]OperatorEntry, error) {
	var raw OperatorData

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	return raw.Operators, nil
}

func LoadAreaJSON(filePath string) ([]AreaEntry, error) {
	var raw AreaData

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	return raw.Areas, nil
}

func BuildIndex(operators []OperatorEntry, areas []AreaEntry) *LookupIndex {
	idx := &LookupIndex{
		ByPrefix: make(map[string]OperatorEntry, len(operators)),
		Areas:    areas,
	}

	for _, e := range operators {
		idx.ByPrefix[e.Prefix] = e
	}

	return idx
}

// ResolveOperator matches the local-format number against the operator table,
// trying prefixes of length 4, then 3, then 2. Most-specific-first is the
// tie-break: a 4-digit entry always beats a conflicting 3-digit one. The
// second return reports whether a table entry matched.
func (idx *LookupIndex) ResolveOperator(local string) (OperatorEntry, bool) {
	for _, n := range []int{4, 3, 2} {
		if len(local) < n {
			continue
		}
		if e, ok := idx.ByPrefix[local[:n]]; ok {
			return e, true
		}
	}
	return UnknownOperator, false
}

// ResolveArea scans the area table in file order and returns the first code
// found as a substring of the local-format number. Substring containment can
// false-positive on a code appearing mid-number; the table ordering invariant
// (see AreaEntry) is the only mitigation, kept as-is from the source data.
func (idx *LookupIndex) ResolveArea(local string) (AreaEntry, bool) {
	for _, a := range idx.Areas {
		if strings.Contains(local, a.Code) {
			return a, true
		}
	}
	return DefaultArea, false
}
