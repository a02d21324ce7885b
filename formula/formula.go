// Package formula parses chemical formula strings such as C11H21N2O7PRS into
// element counts and provides the algebra needed for reaction mass-balance
// checks.
package formula

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/viant/parsly"
)

// Formula maps element symbols to their counts.
type Formula map[string]float64

// Parse parses a chemical formula.  The empty string parses to an empty
// formula; malformed input yields an error.
func Parse(input string) (Formula, error) {
	ret := Formula{}
	if input == "" {
		return ret, nil
	}
	cursor := parsly.NewCursor("", []byte(input), 0)
	for cursor.Pos < cursor.InputSize {
		matched := cursor.MatchOne(elementToken)
		if matched.Code != elementToken.Code {
			return nil, cursor.NewError(elementToken)
		}
		element := matched.Text(cursor)

		count := 1.0
		matched = cursor.MatchOne(countToken)
		if matched.Code == countToken.Code {
			value, err := strconv.ParseFloat(matched.Text(cursor), 64)
			if err != nil {
				return nil, fmt.Errorf("invalid element count in %q: %w", input, err)
			}
			count = value
		}
		ret[element] += count
	}
	return ret, nil
}

// Add accumulates factor copies of other into the formula.
func (f Formula) Add(other Formula, factor float64) {
	for element, count := range other {
		f[element] += count * factor
	}
}

// Equal reports whether both formulas have identical element counts, within
// a small tolerance to absorb fractional-count rounding.
func (f Formula) Equal(other Formula) bool {
	diff := Formula{}
	diff.Add(f, 1)
	diff.Add(other, -1)
	return diff.IsBalanced()
}

// IsBalanced reports whether every element count is (numerically) zero.
func (f Formula) IsBalanced() bool {
	for _, count := range f {
		if math.Abs(count) > 1e-9 {
			return false
		}
	}
	return true
}

// Elements returns the element symbols with non-zero counts in Hill order:
// carbon, hydrogen, then the remaining symbols alphabetically.
func (f Formula) Elements() []string {
	var elements []string
	for element, count := range f {
		if math.Abs(count) > 1e-9 {
			elements = append(elements, element)
		}
	}
	sort.Slice(elements, func(i, j int) bool {
		return hillRank(elements[i]) < hillRank(elements[j])
	})
	return elements
}

// String renders the formula in Hill order, omitting unit counts.
func (f Formula) String() string {
	var b strings.Builder
	for _, element := range f.Elements() {
		b.WriteString(element)
		count := f[element]
		if math.Abs(count-1) < 1e-9 {
			continue
		}
		if count == math.Trunc(count) {
			b.WriteString(strconv.FormatInt(int64(count), 10))
			continue
		}
		b.WriteString(strconv.FormatFloat(count, 'g', -1, 64))
	}
	return b.String()
}

func hillRank(element string) string {
	switch element {
	case "C":
		return "0"
	case "H":
		return "1"
	}
	return "2" + element
}
