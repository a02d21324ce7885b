package model

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseValue(t *testing.T) {
	testCases := []struct {
		description string
		input       string
		expect      float64
		hasError    bool
	}{
		{
			description: "plain number",
			input:       "-1000",
			expect:      -1000,
		},
		{
			description: "scientific notation",
			input:       "1.5e3",
			expect:      1500,
		},
		{
			description: "positive infinity token",
			input:       "INF",
			expect:      math.Inf(1),
		},
		{
			description: "negative infinity token",
			input:       "-INF",
			expect:      math.Inf(-1),
		},
		{
			description: "garbage",
			input:       "unbounded",
			hasError:    true,
		},
	}

	for _, testCase := range testCases {
		actual, err := ParseValue(testCase.input)
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

func TestFormatValue_RoundTrip(t *testing.T) {
	for _, value := range []float64{0, -1000, 1000, 0.5, math.Inf(1), math.Inf(-1)} {
		parsed, err := ParseValue(FormatValue(value))
		assert.NoError(t, err)
		assert.Equal(t, value, parsed)
	}
}

func TestParameter_JSON_Infinity(t *testing.T) {
	parameter := &Parameter{ID: "plus_inf", Value: math.Inf(1), Constant: true, SBOTerm: "SBO:0000626"}
	data, err := json.Marshal(parameter)
	assert.NoError(t, err)
	assert.Contains(t, string(data), `"INF"`)

	var decoded Parameter
	assert.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, math.IsInf(decoded.Value, 1))
	assert.Equal(t, "SBO:0000626", decoded.SBOTerm)
}

func TestParameter_IsFinite(t *testing.T) {
	assert.True(t, (&Parameter{Value: 10}).IsFinite())
	assert.False(t, (&Parameter{Value: math.Inf(-1)}).IsFinite())
}
