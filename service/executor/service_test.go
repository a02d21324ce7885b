package executor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gemstack/gemkit/extension"
	"github.com/gemstack/gemkit/model"
	"github.com/gemstack/gemkit/service/names"
	"github.com/gemstack/gemkit/service/summary"
)

func newTestModel(t *testing.T) *model.Model {
	t.Helper()
	m := model.New("test_model")
	assert.NoError(t, m.AddCompartment(&model.Compartment{ID: "c", Constant: true}))
	assert.NoError(t, m.AddSpecies(&model.Species{ID: "glc_c", Name: "D-Glucose [c]", Compartment: "c"}))
	return m
}

func newTestUtilities() *extension.Utilities {
	utilities := extension.NewUtilities()
	utilities.Register(names.New())
	utilities.Register(summary.New())
	return utilities
}

func TestService_Execute(t *testing.T) {
	service := NewService(newTestUtilities())
	result, err := service.Execute(context.Background(), "names", "fix", &names.FixInput{Model: newTestModel(t)})
	assert.NoError(t, err)

	output, ok := result.(*names.FixOutput)
	if !assert.True(t, ok) {
		return
	}
	assert.Equal(t, []string{"glc_c"}, output.Fixed)
	fixed, err := output.Model.Species.Get("glc_c")
	assert.NoError(t, err)
	assert.Equal(t, "D-Glucose", fixed.Name)
}

func TestService_Execute_MapInput(t *testing.T) {
	service := NewService(newTestUtilities())
	result, err := service.Execute(context.Background(), "summary", "stats", map[string]interface{}{
		"model": newTestModel(t),
	})
	assert.NoError(t, err)

	output, ok := result.(*summary.Output)
	if !assert.True(t, ok) {
		return
	}
	assert.Equal(t, "test_model", output.ID)
	assert.Equal(t, 1, output.Species)
}

func TestService_Execute_Listener(t *testing.T) {
	var seenService, seenMethod string
	service := NewService(newTestUtilities(), WithListener(func(service, method string, input, output interface{}) {
		seenService, seenMethod = service, method
	}))
	_, err := service.Execute(context.Background(), "names", "find", &names.FindInput{Model: newTestModel(t)})
	assert.NoError(t, err)
	assert.Equal(t, "names", seenService)
	assert.Equal(t, "find", seenMethod)
}

func TestService_Execute_Unknown(t *testing.T) {
	service := NewService(newTestUtilities())

	_, err := service.Execute(context.Background(), "missing", "fix", nil)
	assert.ErrorIs(t, err, ErrServiceNotFound)

	_, err = service.Execute(context.Background(), "names", "missing", nil)
	assert.ErrorIs(t, err, ErrMethodNotFound)
}
