package i18n

import (
	"fmt"
	"maps"
	"strconv"
	"strings"
)

// ReplacePlaceholders replaces placeholders in the template string with values
// from the provided map. Placeholders use the format {{name}}.
// If a placeholder is not found in the map, it remains unchanged.
//
// Example:
//
//	template: "Hello, {{name}}! You have {{count}} messages."
//	placeholders: M{"name": "John", "count": 5}
//	returns: "Hello, John! You have 5 messages."
func ReplacePlaceholders(template string, placeholders M) string {
	if len(placeholders) < 1 {
		return template
	}

	result := template
	for key, value := range placeholders {
		placeholder := "{{" + key + "}}"
		replacement := fmt.Sprintf("%v", value)
		result = strings.ReplaceAll(result, placeholder, replacement)
	}

	return result
}

// Interpolate replaces positional placeholders {{0}}, {{1}}, ... with the
// already formatted args. Placeholders without a matching argument stay as is.
//
//	Interpolate("Must be {{0}} to {{1}} characters.", "2", "10")
//	// "Must be 2 to 10 characters."
func Interpolate(template string, args ...string) string {
	if len(args) == 0 || !strings.Contains(template, "{{") {
		return template
	}

	pairs := make([]string, 0, len(args)*2)
	for idx, arg := range args {
		pairs = append(pairs, "{{"+strconv.Itoa(idx)+"}}", arg)
	}

	return strings.NewReplacer(pairs...).Replace(template)
}

func replacePlaceholdersWithMerge(template string, placeholders ...M) string {
	switch len(placeholders) {
	case 0:
		return template
	case 1:
		return ReplacePlaceholders(template, placeholders[0])
	}

	merged := make(M)
	for _, p := range placeholders {
		maps.Copy(merged, p)
	}
	return ReplacePlaceholders(template, merged)
}
