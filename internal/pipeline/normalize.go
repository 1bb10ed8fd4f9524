package pipeline

import "icptargets/internal/util"

// DedupeValues removes duplicates under trimmed, lowercased comparison. The first
// occurrence is kept as given and order is preserved. Blank values are dropped.
func DedupeValues(values []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(values))
	for _, v := range values {
		key := util.NormalizeKey(v)
		if key == "" {
			continue
		}
		if _, exists := seen[key]; exists {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}
	return out
}
