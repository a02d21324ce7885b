package compare

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/gemstack/gemkit/internal/clock"
	"github.com/gemstack/gemkit/model"
	"github.com/gemstack/gemkit/model/types"
	"github.com/pmezard/go-difflib/difflib"
)

const name = "compare"

// Service compares models: reaction presence counts across a collection and
// unified diffs of two models' canonical summaries.
type Service struct{}

// New creates a compare service
func New() *Service {
	return &Service{}
}

// Name returns the service name
func (s *Service) Name() string {
	return name
}

// PresenceInput takes the models to compare, at least two.
type PresenceInput struct {
	Models []*model.Model `json:"models"`
}

// PresenceOutput maps each reaction id to the number of models it appears
// in, usable as per-reaction weight data in map visualisations.
type PresenceOutput struct {
	Counts map[string]int `json:"counts"`
}

// DiffInput selects the two models to diff; Context sets the number of
// context lines, default 3.
type DiffInput struct {
	A       *model.Model `json:"a"`
	B       *model.Model `json:"b"`
	Context int          `json:"context,omitempty"`
}

// DiffOutput carries a GNU unified diff of the two canonical summaries,
// empty when the models render identically.
type DiffOutput struct {
	Patch       string    `json:"patch,omitempty"`
	Added       int       `json:"added"`
	Removed     int       `json:"removed"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// Methods returns the service methods
func (s *Service) Methods() types.Signatures {
	return []types.Signature{
		{
			Name:        "presence",
			Description: "Counts in how many of the given models each reaction appears.",
			Input:       reflect.TypeOf(&PresenceInput{}),
			Output:      reflect.TypeOf(&PresenceOutput{}),
		},
		{
			Name:        "diff",
			Description: "Produces a unified diff of two models' canonical summaries.",
			Input:       reflect.TypeOf(&DiffInput{}),
			Output:      reflect.TypeOf(&DiffOutput{}),
		},
	}
}

// Method returns the specified method
func (s *Service) Method(name string) (types.Executable, error) {
	switch strings.ToLower(name) {
	case "presence":
		return s.presence, nil
	case "diff":
		return s.diff, nil
	default:
		return nil, types.NewMethodNotFoundError(name)
	}
}

func (s *Service) presence(ctx context.Context, in, out interface{}) error {
	input, ok := in.(*PresenceInput)
	if !ok {
		return types.NewInvalidInputError(in)
	}
	output, ok := out.(*PresenceOutput)
	if !ok {
		return types.NewInvalidOutputError(out)
	}
	if len(input.Models) < 2 {
		return fmt.Errorf("presence comparison needs at least two models, got %v", len(input.Models))
	}
	output.Counts = map[string]int{}
	for _, subject := range input.Models {
		for reaction := range subject.Reactions.All() {
			output.Counts[reaction.ID]++
		}
	}
	return nil
}

func (s *Service) diff(ctx context.Context, in, out interface{}) error {
	input, ok := in.(*DiffInput)
	if !ok {
		return types.NewInvalidInputError(in)
	}
	output, ok := out.(*DiffOutput)
	if !ok {
		return types.NewInvalidOutputError(out)
	}
	if input.A == nil || input.B == nil {
		return fmt.Errorf("diff needs two models")
	}
	contextLines := input.Context
	if contextLines <= 0 {
		contextLines = 3
	}
	output.GeneratedAt = clock.Now()
	thisSummary, thatSummary := render(input.A), render(input.B)
	if thisSummary == thatSummary {
		return nil
	}
	patch, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(thisSummary),
		B:        difflib.SplitLines(thatSummary),
		FromFile: input.A.ID,
		ToFile:   input.B.ID,
		Context:  contextLines,
	})
	if err != nil {
		return err
	}
	output.Patch = patch
	for _, line := range strings.Split(patch, "\n") {
		switch {
		case strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++"):
			output.Added++
		case strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "---"):
			output.Removed++
		}
	}
	return nil
}
