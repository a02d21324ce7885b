package summary

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/gemstack/gemkit/model"
	"github.com/gemstack/gemkit/model/types"
)

const name = "summary"

// Service renders model statistics
type Service struct{}

type Input struct {
	Model *model.Model `json:"model"`

	// Print echoes the report to standard output.
	Print bool `json:"print,omitempty"`
}

// Output carries the counts and a printable report.
type Output struct {
	ID              string `json:"id"`
	Compartments    int    `json:"compartments"`
	Species         int    `json:"species"`
	WithFormula     int    `json:"withFormula"`
	Parameters      int    `json:"parameters"`
	GeneProducts    int    `json:"geneProducts"`
	Reactions       int    `json:"reactions"`
	Exchanges       int    `json:"exchanges"`
	Objectives      int    `json:"objectives"`
	ActiveObjective string `json:"activeObjective,omitempty"`
	Report          string `json:"report"`
}

// New creates a summary service
func New() *Service {
	return &Service{}
}

// Name returns the service name
func (s *Service) Name() string {
	return name
}

// Methods returns the service methods
func (s *Service) Methods() types.Signatures {
	return []types.Signature{
		{
			Name:        "stats",
			Description: "Summarises a model's entity counts and active objective.",
			Input:       reflect.TypeOf(&Input{}),
			Output:      reflect.TypeOf(&Output{}),
		},
	}
}

// Method returns the specified method
func (s *Service) Method(name string) (types.Executable, error) {
	switch strings.ToLower(name) {
	case "stats":
		return s.stats, nil
	default:
		return nil, types.NewMethodNotFoundError(name)
	}
}

func (s *Service) stats(ctx context.Context, in, out interface{}) error {
	input, ok := in.(*Input)
	if !ok {
		return types.NewInvalidInputError(in)
	}
	output, ok := out.(*Output)
	if !ok {
		return types.NewInvalidOutputError(out)
	}
	subject := input.Model
	output.ID = subject.ID
	output.Compartments = subject.Compartments.Len()
	output.Species = subject.Species.Len()
	output.Parameters = subject.Parameters.Len()
	output.GeneProducts = subject.GeneProducts.Len()
	output.Reactions = subject.Reactions.Len()
	output.Objectives = subject.Objectives.Table.Len()
	for species := range subject.Species.All() {
		if species.HasFormula() {
			output.WithFormula++
		}
	}
	for reaction := range subject.Reactions.All() {
		if reaction.IsExchange() {
			output.Exchanges++
		}
	}
	if active := subject.Objectives.Active(); active != nil {
		output.ActiveObjective = active.ID
	}
	var b strings.Builder
	fmt.Fprintf(&b, "model %v\n", output.ID)
	fmt.Fprintf(&b, "  compartments:  %v\n", output.Compartments)
	fmt.Fprintf(&b, "  species:       %v (%v with formula)\n", output.Species, output.WithFormula)
	fmt.Fprintf(&b, "  parameters:    %v\n", output.Parameters)
	fmt.Fprintf(&b, "  gene products: %v\n", output.GeneProducts)
	fmt.Fprintf(&b, "  reactions:     %v (%v exchanges)\n", output.Reactions, output.Exchanges)
	fmt.Fprintf(&b, "  objectives:    %v", output.Objectives)
	if output.ActiveObjective != "" {
		fmt.Fprintf(&b, " (active %v)", output.ActiveObjective)
	}
	b.WriteString("\n")
	output.Report = b.String()
	if input.Print {
		fmt.Print(output.Report)
	}
	return nil
}
