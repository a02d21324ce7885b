package names

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gemstack/gemkit/model"
)

func newTestModel(t *testing.T) *model.Model {
	t.Helper()
	m := model.New("test_model")
	assert.NoError(t, m.AddCompartment(&model.Compartment{ID: "c", Constant: true}))
	assert.NoError(t, m.AddCompartment(&model.Compartment{ID: "e", Constant: true}))
	assert.NoError(t, m.AddSpecies(&model.Species{ID: "glc_c", Name: "D-Glucose [c]", Compartment: "c"}))
	assert.NoError(t, m.AddSpecies(&model.Species{ID: "glc_e", Name: "D-Glucose[e]", Compartment: "e"}))
	assert.NoError(t, m.AddSpecies(&model.Species{ID: "h2o_c", Name: "Water", Compartment: "c"}))
	return m
}

func TestTrim(t *testing.T) {
	testCases := []struct {
		description string
		name        string
		expect      string
		hasError    bool
	}{
		{
			description: "cytosol suffix with space",
			name:        "D-Glucose [c]",
			expect:      "D-Glucose",
		},
		{
			description: "extracellular suffix without space",
			name:        "D-Glucose[e]",
			expect:      "D-Glucose",
		},
		{
			description: "no suffix",
			name:        "Water",
			hasError:    true,
		},
		{
			description: "unrecognised compartment",
			name:        "Pyruvate [m]",
			hasError:    true,
		},
	}

	for _, testCase := range testCases {
		actual, err := Trim(testCase.name)
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

func TestService_Find(t *testing.T) {
	service := New()
	output := &FindOutput{}
	err := service.find(context.Background(), &FindInput{Model: newTestModel(t)}, output)
	assert.NoError(t, err)
	assert.Equal(t, map[string]string{
		"glc_c": "D-Glucose [c]",
		"glc_e": "D-Glucose[e]",
	}, output.Names)
}

func TestService_Fix(t *testing.T) {
	service := New()
	subject := newTestModel(t)

	output := &FixOutput{}
	err := service.fix(context.Background(), &FixInput{Model: subject}, output)
	assert.NoError(t, err)
	assert.Equal(t, []string{"glc_c", "glc_e"}, output.Fixed)

	for _, id := range output.Fixed {
		fixed, err := output.Model.Species.Get(id)
		assert.NoError(t, err)
		assert.Equal(t, "D-Glucose", fixed.Name)
	}

	// the subject model is untouched
	original, err := subject.Species.Get("glc_c")
	assert.NoError(t, err)
	assert.Equal(t, "D-Glucose [c]", original.Name)
}
