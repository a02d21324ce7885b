package model

import "math"

// UnitKind enumerates the SBML base units exercised by flux-bound unit
// definitions.
type UnitKind string

const (
	UnitKindMole          UnitKind = "mole"
	UnitKindGram          UnitKind = "gram"
	UnitKindSecond        UnitKind = "second"
	UnitKindLitre         UnitKind = "litre"
	UnitKindMetre         UnitKind = "metre"
	UnitKindDimensionless UnitKind = "dimensionless"
)

// IsValid reports whether the kind is one of the supported base units.
func (k UnitKind) IsValid() bool {
	switch k {
	case UnitKindMole, UnitKindGram, UnitKindSecond, UnitKindLitre,
		UnitKindMetre, UnitKindDimensionless:
		return true
	}
	return false
}

// Unit is a single factor of a derived unit: kind^exponent scaled by
// 10^scale and multiplied by multiplier.
type Unit struct {
	Kind       UnitKind `json:"kind" yaml:"kind"`
	Exponent   int      `json:"exponent" yaml:"exponent"`
	Scale      int      `json:"scale" yaml:"scale"`
	Multiplier float64  `json:"multiplier" yaml:"multiplier"`
}

// Factor returns the numeric contribution of the unit ignoring its kind:
// (multiplier * 10^scale)^exponent.
func (u Unit) Factor() float64 {
	return math.Pow(u.Multiplier*math.Pow(10, float64(u.Scale)), float64(u.Exponent))
}

// UnitDefinition composes an ordered sequence of units into a derived
// physical unit.  Order is significant for display only; the algebraic
// result is order independent.
type UnitDefinition struct {
	ID    string `json:"id" yaml:"id"`
	Units []Unit `json:"units,omitempty" yaml:"units,omitempty"`
}

// EntityID implements Entity.
func (d *UnitDefinition) EntityID() string { return d.ID }

// Factor returns the combined numeric factor of all units in the sequence.
func (d *UnitDefinition) Factor() float64 {
	factor := 1.0
	for _, unit := range d.Units {
		factor *= unit.Factor()
	}
	return factor
}

// Exponent returns the accumulated exponent of the given base unit kind in
// the derived unit, e.g. -1 for second in mmol/(gDW*h).
func (d *UnitDefinition) Exponent(kind UnitKind) int {
	exponent := 0
	for _, unit := range d.Units {
		if unit.Kind == kind {
			exponent += unit.Exponent
		}
	}
	return exponent
}

// WithUnit appends a unit factor to the definition.
func (d *UnitDefinition) WithUnit(kind UnitKind, exponent, scale int, multiplier float64) *UnitDefinition {
	d.Units = append(d.Units, Unit{Kind: kind, Exponent: exponent, Scale: scale, Multiplier: multiplier})
	return d
}

// Clone returns a deep copy of the unit definition.
func (d *UnitDefinition) Clone() *UnitDefinition {
	if d == nil {
		return nil
	}
	ret := &UnitDefinition{ID: d.ID}
	if d.Units != nil {
		ret.Units = make([]Unit, len(d.Units))
		copy(ret.Units, d.Units)
	}
	return ret
}
