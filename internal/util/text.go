package util

import "strings"

// NormalizeKey is the comparison key for domains/IPs: trimmed and lowercased.
func NormalizeKey(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

// SplitCellLines splits a multi-line cell value and trims every line.
// Empty lines are kept so callers decide what to drop.
func SplitCellLines(input string) []string {
	parts := strings.Split(input, "\n")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

// IndexContaining returns the index of the first value containing substr, or -1.
func IndexContaining(values []string, substr string) int {
	for i, v := range values {
		if strings.Contains(v, substr) {
			return i
		}
	}
	return -1
}
