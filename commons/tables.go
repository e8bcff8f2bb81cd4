// SPDX-License-Identifier: GPL-3.0-only

package commons

import (
	"lacak-server/commons/prefixes"
	"os"
	"path/filepath"
)

var Tables *prefixes.LookupIndex

func InitTables() {
	operators, err := prefixes.LoadOperatorJSON(filepath.Join(".", "operators.json"))
	if err != nil {
		Logger.Fatalf("Failed to load operator prefix data: %v", err)
	}

	overwritePath := filepath.Join(".", "operators_overwrite.json")
	if _, err := os.Stat(overwritePath); err == nil {
		overwriteEntries, err := prefixes.LoadOperatorJSON(overwritePath)
		if err != nil {
			Logger.Printf("Warning: Failed to load operator overwrite data: %v", err)
		} else {
			entryMap := make(map[string]prefixes.OperatorEntry, len(operators))
			for _, entry := range operators {
				entryMap[entry.Prefix] = entry
			}
			for _, entry := range overwriteEntries {
				entryMap[entry.Prefix] = entry
			}
			merged := make([]prefixes.OperatorEntry, 0, len(entryMap))
			for _, entry := range entryMap {
				merged = append(merged, entry)
			}
			operators = merged
			Logger.Printf("Loaded %d operator overwrite entries", len(overwriteEntries))
		}
	}

	areas, err := prefixes.LoadAreaJSON(filepath.Join(".", "area_codes.json"))
	if err != nil {
		Logger.Fatalf("Failed to load area code data: %v", err)
	}

	Tables = prefixes.BuildIndex(operators, areas)
	Logger.Printf("Loaded %d operator prefixes and %d area codes", len(operators), len(areas))
}
