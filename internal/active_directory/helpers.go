package active_directory

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ─── Normalization ───

func NormalizeDN(dn string) string {
	return strings.ToLower(strings.TrimSpace(dn))
}

// ─── Ordering & Dedup ───

// SortOrgUnits orders units by name, case-insensitively, so that log output
// and processing order are stable across runs.
func SortOrgUnits(units []OrgUnit) {
	c := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(units, func(i, j int) bool {
		return c.CompareString(units[i].Name, units[j].Name) < 0
	})
}

// DedupeOrgUnits collapses units whose trimmed names coincide (the same OU
// name can appear at multiple depths of the tree). The first DN wins.
// Returns the kept units and the dropped duplicates.
func DedupeOrgUnits(units []OrgUnit) (kept []OrgUnit, dropped []OrgUnit) {
	seen := make(map[string]struct{})
	for _, unit := range units {
		name := strings.TrimSpace(unit.Name)
		if _, ok := seen[name]; ok {
			dropped = append(dropped, unit)
			continue
		}
		seen[name] = struct{}{}
		kept = append(kept, unit)
	}
	return kept, dropped
}
