package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnitDefinition_Factor(t *testing.T) {
	// mmol / (gDW * hour)
	definition := (&UnitDefinition{ID: "mmol_per_gDW_per_hr"}).
		WithUnit(UnitKindMole, 1, -3, 1).
		WithUnit(UnitKindGram, -1, 0, 1).
		WithUnit(UnitKindSecond, -1, 0, 3600)

	assert.InDelta(t, 1e-3/3600, definition.Factor(), 1e-12)
	assert.Equal(t, 1, definition.Exponent(UnitKindMole))
	assert.Equal(t, -1, definition.Exponent(UnitKindGram))
	assert.Equal(t, -1, definition.Exponent(UnitKindSecond))
	assert.Equal(t, 0, definition.Exponent(UnitKindLitre))
}

func TestUnit_Factor(t *testing.T) {
	testCases := []struct {
		description string
		unit        Unit
		expect      float64
	}{
		{
			description: "millimole",
			unit:        Unit{Kind: UnitKindMole, Exponent: 1, Scale: -3, Multiplier: 1},
			expect:      1e-3,
		},
		{
			description: "per hour",
			unit:        Unit{Kind: UnitKindSecond, Exponent: -1, Scale: 0, Multiplier: 3600},
			expect:      1.0 / 3600,
		},
		{
			description: "plain gram inverse",
			unit:        Unit{Kind: UnitKindGram, Exponent: -1, Scale: 0, Multiplier: 1},
			expect:      1,
		},
	}

	for _, testCase := range testCases {
		assert.InDelta(t, testCase.expect, testCase.unit.Factor(), 1e-12, testCase.description)
	}
}

func TestUnitKind_IsValid(t *testing.T) {
	assert.True(t, UnitKindMole.IsValid())
	assert.True(t, UnitKindDimensionless.IsValid())
	assert.False(t, UnitKind("furlong").IsValid())
}

func TestModel_DefineUnit(t *testing.T) {
	m := New("units")
	definition, err := m.DefineUnit("flux", Unit{Kind: UnitKindMole, Exponent: 1, Scale: -3, Multiplier: 1})
	assert.NoError(t, err)
	assert.Equal(t, "flux", definition.ID)

	_, err = m.DefineUnit("flux")
	assert.ErrorIs(t, err, ErrDuplicateID)

	resolved, err := m.ResolveUnit("flux")
	assert.NoError(t, err)
	assert.Equal(t, definition, resolved)

	_, err = m.ResolveUnit("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
