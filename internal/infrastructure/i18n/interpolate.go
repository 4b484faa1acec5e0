package i18n

import (
	"fmt"
	"regexp"
)

var placeholderRe = regexp.MustCompile(`\{\{(\w+)\}\}`)

// Interpolate replaces every {{name}} in text with data[name] in a single
// left-to-right pass. A placeholder whose name is missing from data, or
// whose value renders as an empty string, is left as is.
func Interpolate(text string, data map[string]any) string {
	if data == nil {
		return text
	}
	return placeholderRe.ReplaceAllStringFunc(text, func(match string) string {
		name := match[2 : len(match)-2]
		v, ok := data[name]
		if !ok || v == nil {
			return match
		}
		s := fmt.Sprint(v)
		if s == "" {
			return match
		}
		return s
	})
}
