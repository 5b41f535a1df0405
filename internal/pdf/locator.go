package pdf

import (
	"regexp"
	"strings"
)

// Matcher decides whether a page's text depicts a product code.
type Matcher interface {
	Name() string
	Match(code, text string) bool
}

// ExactMatcher matches when the code appears verbatim.
type ExactMatcher struct{}

func (ExactMatcher) Name() string { return "exact" }

func (ExactMatcher) Match(code, text string) bool {
	return code != "" && strings.Contains(text, code)
}

// AliasMatcher retries with the "C"/"CC" prefix swapped: C123 -> CC123,
// CC123 -> C123, anything else gains a CC prefix.
type AliasMatcher struct{}

func (AliasMatcher) Name() string { return "alias" }

func (AliasMatcher) Match(code, text string) bool {
	if code == "" {
		return false
	}
	return strings.Contains(text, AliasCode(code))
}

// AliasCode returns the alternate spelling tried by AliasMatcher.
func AliasCode(code string) string {
	switch {
	case strings.HasPrefix(code, "CC"):
		return "C" + code[2:]
	case strings.HasPrefix(code, "C"):
		return "CC" + code[1:]
	default:
		return "CC" + code
	}
}

// FuzzyMatcher allows any run of whitespace or hyphens after each character,
// so "C207720" matches "C 207-720".
type FuzzyMatcher struct{}

func (FuzzyMatcher) Name() string { return "fuzzy" }

func (FuzzyMatcher) Match(code, text string) bool {
	if code == "" {
		return false
	}
	return FuzzyPattern(code).MatchString(text)
}

// FuzzyPattern compiles the separator-tolerant pattern for code.
func FuzzyPattern(code string) *regexp.Regexp {
	var b strings.Builder
	for _, r := range code {
		b.WriteString(regexp.QuoteMeta(string(r)))
		b.WriteString(`[\s\-]*`)
	}
	return regexp.MustCompile(b.String())
}

// Match is a located page.
type Match struct {
	Page    int    // 1-based page number
	Matcher string // name of the strategy that found it
}

// Locator tries its matchers in order; each matcher scans every page before
// the next one is consulted, and the first hit wins.
type Locator struct {
	matchers []Matcher
}

// NewLocator builds a locator from an ordered matcher chain.
func NewLocator(matchers ...Matcher) *Locator {
	return &Locator{matchers: matchers}
}

// DefaultLocator is the exact, alias, fuzzy chain.
func DefaultLocator() *Locator {
	return NewLocator(ExactMatcher{}, AliasMatcher{}, FuzzyMatcher{})
}

// Locate searches texts (one entry per page, in page order) for code.
func (l *Locator) Locate(texts []string, code string) (Match, bool) {
	for _, m := range l.matchers {
		for i, text := range texts {
			if m.Match(code, text) {
				return Match{Page: i + 1, Matcher: m.Name()}, true
			}
		}
	}
	return Match{}, false
}

// FindPage locates code in the document.
func (d *Document) FindPage(l *Locator, code string) (Match, bool) {
	return l.Locate(d.PageTexts(), code)
}
