package formula

import (
	"github.com/viant/parsly"
)

// Token codes
const (
	elementCode = iota
	countCode
)

// Token definitions
var (
	elementToken = parsly.NewToken(elementCode, "Element", newElementMatcher())
	countToken   = parsly.NewToken(countCode, "Count", newCountMatcher())
)

// Custom matchers
func newElementMatcher() parsly.Matcher {
	return &elementMatcher{}
}

func newCountMatcher() parsly.Matcher {
	return &countMatcher{}
}

// elementMatcher matches an element symbol: an uppercase letter followed by
// any number of lowercase letters.  This also covers the R/X pseudo-element
// groups used by acyl-carrier-protein formulas.
type elementMatcher struct{}

func (m *elementMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	size := cursor.InputSize

	if pos >= size {
		return 0
	}
	if !isUpper(input[pos]) {
		return 0
	}
	matched := 1
	for i := pos + 1; i < size; i++ {
		if !isLower(input[i]) {
			break
		}
		matched++
	}
	return matched
}

// countMatcher matches an element count: digits with an optional fractional
// part (fractional counts occur in lumped biomass formulas).
type countMatcher struct{}

func (m *countMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	size := cursor.InputSize

	matched := 0
	for i := pos; i < size; i++ {
		if !isDigit(input[i]) {
			break
		}
		matched++
	}
	if matched == 0 {
		return 0
	}
	// optional fractional part
	if next := pos + matched; next+1 < size && input[next] == '.' && isDigit(input[next+1]) {
		matched += 2
		for i := pos + matched; i < size; i++ {
			if !isDigit(input[i]) {
				break
			}
			matched++
		}
	}
	return matched
}

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }
