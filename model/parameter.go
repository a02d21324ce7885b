package model

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Positive/negative infinity literals used by flux-bound parameters.
const (
	InfinityToken         = "INF"
	NegativeInfinityToken = "-INF"
)

// Parameter supplies a reusable numeric value, typically a flux bound shared
// by many reactions.  Value may be ±Inf; infinite bounds are represented as
// exact math.Inf sentinels so that unbounded detection stays bit-exact.
type Parameter struct {
	ID       string  `json:"id" yaml:"id"`
	Value    float64 `json:"-" yaml:"-"`
	Constant bool    `json:"constant" yaml:"constant"`

	// SBOTerm is pass-through metadata, preserved but not interpreted.
	SBOTerm string `json:"sboTerm,omitempty" yaml:"sboTerm,omitempty"`
}

// EntityID implements Entity.
func (p *Parameter) EntityID() string { return p.ID }

// IsFinite reports whether the parameter value is a finite number.
func (p *Parameter) IsFinite() bool {
	return !math.IsInf(p.Value, 0)
}

// Clone returns a copy of the parameter.
func (p *Parameter) Clone() *Parameter {
	if p == nil {
		return nil
	}
	ret := *p
	return &ret
}

// parameterAlias avoids MarshalJSON recursion.
type parameterAlias Parameter

type parameterJSON struct {
	parameterAlias
	Value string `json:"value"`
}

// MarshalJSON encodes infinite values with their SBML literal tokens since
// encoding/json cannot represent IEEE infinities.
func (p *Parameter) MarshalJSON() ([]byte, error) {
	return json.Marshal(&parameterJSON{
		parameterAlias: parameterAlias(*p),
		Value:          FormatValue(p.Value),
	})
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (p *Parameter) UnmarshalJSON(data []byte) error {
	var raw parameterJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	value, err := ParseValue(raw.Value)
	if err != nil {
		return err
	}
	*p = Parameter(raw.parameterAlias)
	p.Value = value
	return nil
}

// ParseValue parses a numeric literal accepting the INF and -INF tokens as
// exact infinities.
func ParseValue(text string) (float64, error) {
	switch text {
	case InfinityToken:
		return math.Inf(1), nil
	case NegativeInfinityToken:
		return math.Inf(-1), nil
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid numeric value %q: %w", text, err)
	}
	return value, nil
}

// FormatValue is the inverse of ParseValue.
func FormatValue(value float64) string {
	switch {
	case math.IsInf(value, 1):
		return InfinityToken
	case math.IsInf(value, -1):
		return NegativeInfinityToken
	}
	return strconv.FormatFloat(value, 'g', -1, 64)
}
