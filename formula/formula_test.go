package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		description string
		input       string
		expect      Formula
		hasError    bool
	}{
		{
			description: "empty formula",
			input:       "",
			expect:      Formula{},
		},
		{
			description: "single element",
			input:       "H",
			expect:      Formula{"H": 1},
		},
		{
			description: "water",
			input:       "H2O",
			expect:      Formula{"H": 2, "O": 1},
		},
		{
			description: "acyl carrier protein fragment",
			input:       "C11H21N2O7PRS",
			expect:      Formula{"C": 11, "H": 21, "N": 2, "O": 7, "P": 1, "R": 1, "S": 1},
		},
		{
			description: "two letter element",
			input:       "Fe2O3",
			expect:      Formula{"Fe": 2, "O": 3},
		},
		{
			description: "fractional count",
			input:       "C0.5H",
			expect:      Formula{"C": 0.5, "H": 1},
		},
		{
			description: "repeated element accumulates",
			input:       "CH3COOH",
			expect:      Formula{"C": 2, "H": 4, "O": 2},
		},
		{
			description: "leading lowercase",
			input:       "h2O",
			hasError:    true,
		},
		{
			description: "leading digit",
			input:       "2HO",
			hasError:    true,
		},
	}

	for _, testCase := range testCases {
		actual, err := Parse(testCase.input)
		if testCase.hasError {
			assert.Error(t, err, testCase.description)
			continue
		}
		if !assert.NoError(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

func TestFormula_Add(t *testing.T) {
	net := Formula{}
	water, err := Parse("H2O")
	assert.NoError(t, err)
	protons, err := Parse("H")
	assert.NoError(t, err)

	net.Add(water, -1)
	net.Add(protons, 2)
	assert.InDelta(t, 0.0, net["H"], 1e-9)
	assert.InDelta(t, -1.0, net["O"], 1e-9)
	assert.False(t, net.IsBalanced())
}

func TestFormula_Equal(t *testing.T) {
	glucose, err := Parse("C6H12O6")
	assert.NoError(t, err)
	other, err := Parse("C6H12O6")
	assert.NoError(t, err)
	assert.True(t, glucose.Equal(other))

	fructose, err := Parse("C6H12O5")
	assert.NoError(t, err)
	assert.False(t, glucose.Equal(fructose))
}

func TestFormula_String(t *testing.T) {
	testCases := []struct {
		description string
		formula     Formula
		expect      string
	}{
		{
			description: "hill order puts carbon then hydrogen first",
			formula:     Formula{"O": 6, "C": 6, "H": 12},
			expect:      "C6H12O6",
		},
		{
			description: "no carbon sorts alphabetically",
			formula:     Formula{"O": 1, "H": 2},
			expect:      "H2O",
		},
		{
			description: "unit counts omitted",
			formula:     Formula{"H": 1},
			expect:      "H",
		},
		{
			description: "zero counts dropped",
			formula:     Formula{"C": 1, "N": 0},
			expect:      "C",
		},
	}

	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, testCase.formula.String(), testCase.description)
	}
}
