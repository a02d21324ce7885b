package compare

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/gemstack/gemkit/internal/clock"
	"github.com/gemstack/gemkit/model"
)

func newTestModel(t *testing.T, id string, reactionIDs ...string) *model.Model {
	t.Helper()
	m := model.New(id)
	assert.NoError(t, m.AddCompartment(&model.Compartment{ID: "c", Constant: true}))
	assert.NoError(t, m.AddSpecies(&model.Species{ID: "a_c", Compartment: "c", ChemicalFormula: "C2H4"}))
	assert.NoError(t, m.AddSpecies(&model.Species{ID: "b_c", Compartment: "c", ChemicalFormula: "C2H4"}))
	assert.NoError(t, m.AddParameter(&model.Parameter{ID: "lb", Value: -1000, Constant: true}))
	assert.NoError(t, m.AddParameter(&model.Parameter{ID: "ub", Value: 1000, Constant: true}))
	for _, reactionID := range reactionIDs {
		reaction := &model.Reaction{ID: reactionID, Reversible: true, LowerBound: "lb", UpperBound: "ub"}
		reaction.WithReactant("a_c", 1).WithProduct("b_c", 1)
		assert.NoError(t, m.AddReaction(reaction))
	}
	return m
}

func TestService_Presence(t *testing.T) {
	service := New()
	output := &PresenceOutput{}
	err := service.presence(context.Background(), &PresenceInput{
		Models: []*model.Model{
			newTestModel(t, "one", "R1", "R2"),
			newTestModel(t, "two", "R2", "R3"),
			newTestModel(t, "three", "R2"),
		},
	}, output)
	assert.NoError(t, err)
	assert.Equal(t, map[string]int{"R1": 1, "R2": 3, "R3": 1}, output.Counts)
}

func TestService_Presence_TooFewModels(t *testing.T) {
	service := New()
	err := service.presence(context.Background(), &PresenceInput{
		Models: []*model.Model{newTestModel(t, "one", "R1")},
	}, &PresenceOutput{})
	assert.Error(t, err)
}

func TestService_Diff(t *testing.T) {
	frozen := time.Date(2025, 2, 11, 10, 30, 0, 0, time.UTC)
	clock.NowFunc = func() time.Time { return frozen }
	defer func() { clock.NowFunc = time.Now }()

	service := New()
	output := &DiffOutput{}
	err := service.diff(context.Background(), &DiffInput{
		A: newTestModel(t, "one", "R1", "R2"),
		B: newTestModel(t, "one", "R2", "R3"),
	}, output)
	assert.NoError(t, err)
	assert.Equal(t, frozen, output.GeneratedAt)
	assert.Contains(t, output.Patch, "-reaction R1")
	assert.Contains(t, output.Patch, "+reaction R3")
	assert.Equal(t, 1, output.Added)
	assert.Equal(t, 1, output.Removed)
}

func TestService_Diff_Identical(t *testing.T) {
	service := New()
	output := &DiffOutput{}
	err := service.diff(context.Background(), &DiffInput{
		A: newTestModel(t, "one", "R1"),
		B: newTestModel(t, "one", "R1"),
	}, output)
	assert.NoError(t, err)
	assert.Empty(t, output.Patch)
	assert.Zero(t, output.Added)
	assert.Zero(t, output.Removed)
}

func TestRender(t *testing.T) {
	summary := render(newTestModel(t, "one", "R1"))
	lines := strings.Split(strings.TrimRight(summary, "\n"), "\n")
	assert.Equal(t, "model one strict=false", lines[0])
	assert.Contains(t, summary, "species a_c compartment=c formula=C2H4")
	assert.Contains(t, summary, "reaction R1 a_c <=> b_c [-1000, 1000]")
}
