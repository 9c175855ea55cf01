// Package strings provides string manipulation utilities.
package strings

import (
	"strings"
)

// SplitList splits every value on commas and returns the lowercased,
// trimmed, non-empty parts with duplicates removed. Order is preserved.
// It accepts both repeated parameters and comma separated lists, so
// ?expand=ocr&expand=summary and ?expand=ocr,summary parse the same.
//
// Example:
//
//	SplitList([]string{" OCR ,summary", "ocr", ""})
//	// Returns: []string{"ocr", "summary"}
func SplitList(values ...string) []string {
	result := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))

	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.ToLower(strings.TrimSpace(part))
			if part == "" {
				continue
			}
			if _, ok := seen[part]; !ok {
				seen[part] = struct{}{}
				result = append(result, part)
			}
		}
	}

	return result
}
