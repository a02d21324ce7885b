package knockout

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
	assert.NoError(t, m.AddSpecies(&model.Species{ID: "a_c", Compartment: "c"}))
	assert.NoError(t, m.AddSpecies(&model.Species{ID: "b_c", Compartment: "c"}))
	assert.NoError(t, m.AddParameter(&model.Parameter{ID: "lb", Value: 0, Constant: true}))
	assert.NoError(t, m.AddParameter(&model.Parameter{ID: "ub", Value: 1000, Constant: true}))
	for _, gene := range []string{"g1", "g2", "g3"} {
		assert.NoError(t, m.AddGeneProduct(&model.GeneProduct{ID: gene, Label: gene}))
	}

	addReaction := func(id string, association *model.GeneProductAssociation) {
		reaction := &model.Reaction{ID: id, LowerBound: "lb", UpperBound: "ub"}
		reaction.WithReactant("a_c", 1).WithProduct("b_c", 1)
		if association != nil {
			reaction.WithAssociation(association)
		}
		assert.NoError(t, m.AddReaction(reaction))
	}
	addReaction("R_OR", model.Or(model.Gene("g1"), model.Gene("g2")))
	addReaction("R_AND", model.And(model.Gene("g1"), model.Gene("g3")))
	addReaction("R_LEAF", model.Gene("g2"))
	addReaction("R_NONE", nil)
	return m
}

func TestService_Evaluate(t *testing.T) {
	service := New()
	testCases := []struct {
		description string
		reaction    string
		activeGenes []string
		expect      bool
	}{
		{
			description: "or satisfied by one branch",
			reaction:    "R_OR",
			activeGenes: []string{"g2"},
			expect:      true,
		},
		{
			description: "or with no active genes",
			reaction:    "R_OR",
			activeGenes: []string{},
			expect:      false,
		},
		{
			description: "and needs every gene",
			reaction:    "R_AND",
			activeGenes: []string{"g1"},
			expect:      false,
		},
		{
			description: "and fully satisfied",
			reaction:    "R_AND",
			activeGenes: []string{"g1", "g3"},
			expect:      true,
		},
		{
			description: "no association is always active",
			reaction:    "R_NONE",
			activeGenes: []string{},
			expect:      true,
		},
	}

	for _, testCase := range testCases {
		output := &EvaluateOutput{}
		err := service.evaluate(context.Background(), &EvaluateInput{
			Model:       newTestModel(t),
			Reaction:    testCase.reaction,
			ActiveGenes: testCase.activeGenes,
		}, output)
		if !assert.NoError(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expect, output.Active, testCase.description)
	}
}

func TestService_Evaluate_UnknownReaction(t *testing.T) {
	service := New()
	err := service.evaluate(context.Background(), &EvaluateInput{
		Model:    newTestModel(t),
		Reaction: "missing",
	}, &EvaluateOutput{})
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestService_SingleGene(t *testing.T) {
	service := New()
	output := &SingleGeneOutput{}
	err := service.singleGene(context.Background(), &SingleGeneInput{Model: newTestModel(t)}, output)
	assert.NoError(t, err)

	byGene := map[string][]string{}
	for _, deletion := range output.Deletions {
		byGene[deletion.Gene] = deletion.Disabled
	}
	assert.Len(t, byGene, 3)
	assert.Equal(t, []string{"R_AND"}, byGene["g1"])
	assert.Equal(t, []string{"R_LEAF"}, byGene["g2"])
	assert.Equal(t, []string{"R_AND"}, byGene["g3"])
}
