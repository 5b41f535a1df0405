package sheet

import (
	"regexp"
	"strings"
)

// DefaultSuffix stands in for an empty lot tag in file names.
const DefaultSuffix = "LSX"

var (
	nonCodeChars     = regexp.MustCompile(`[^A-Z0-9]`)
	whitespaceRun    = regexp.MustCompile(`\s+`)
	nonFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)
)

// StripCode upper-cases s and drops every character outside [A-Z0-9].
func StripCode(s string) string {
	return nonCodeChars.ReplaceAllString(strings.ToUpper(s), "")
}

// NormalizeCode returns the canonical product code: stripped to [A-Z0-9] with
// the two-letter "CC" prefix folded to "C".
func NormalizeCode(s string) string {
	code := StripCode(s)
	if strings.HasPrefix(code, "CC") {
		code = "C" + code[2:]
	}
	return code
}

// SanitizeForFilename turns a free-text lot tag into a file-name token:
// whitespace runs become "_", other unsafe runs become "-". Empty input
// yields DefaultSuffix.
func SanitizeForFilename(s string) string {
	s = strings.TrimSpace(s)
	s = whitespaceRun.ReplaceAllString(s, "_")
	s = nonFilenameChars.ReplaceAllString(s, "-")
	if s == "" {
		return DefaultSuffix
	}
	return s
}

// ParseSelection splits a comma separated code list into normalized codes.
// "all" (or an empty string) returns nil, meaning no filter; any other input
// returns a non-nil slice, possibly empty.
func ParseSelection(selected string) []string {
	selected = strings.TrimSpace(selected)
	if selected == "" || strings.EqualFold(selected, "all") {
		return nil
	}
	codes := []string{}
	for _, part := range strings.Split(selected, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		if code := NormalizeCode(part); code != "" {
			codes = append(codes, code)
		}
	}
	return codes
}
