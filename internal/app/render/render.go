// Package render substitutes {{name}} placeholders in assembled document
// content. Unknown placeholders are left verbatim so a half-filled document
// still shows what data is missing.
package render

import (
	"fmt"
	"regexp"
	"strings"
)

var placeholderRe = regexp.MustCompile(`\{\{([^}]+)\}\}`)

// ReplacePlaceholders substitutes {{key}} occurrences in content with the
// stringified values from data.
func ReplacePlaceholders(content string, data map[string]any) string {
	if len(data) == 0 {
		return content
	}

	values := make(map[string]string, len(data))
	for k, v := range data {
		values[k] = fmt.Sprint(v)
	}

	return placeholderRe.ReplaceAllStringFunc(content, func(match string) string {
		key := strings.TrimSuffix(strings.TrimPrefix(match, "{{"), "}}")
		if v, ok := values[key]; ok {
			return v
		}
		return match
	})
}

// Placeholders returns the distinct placeholder names in content, in order
// of first appearance.
func Placeholders(content string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, m := range placeholderRe.FindAllStringSubmatch(content, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}
