package maintenance

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/gemstack/gemkit/model"
	"github.com/gemstack/gemkit/model/types"
)

const name = "maintenance"

// notations maps a metabolite notation to the species ids allowed in an ATP
// maintenance reaction: ATP and water as reactants, ADP, phosphate and
// protons as products.
var notations = map[string]struct {
	reactants []string
	products  []string
}{
	"modelseed": {
		reactants: []string{"cpd00002_c0", "cpd00001_c0"},
		products:  []string{"cpd00008_c0", "cpd00009_c0", "cpd00067_c0"},
	},
	"bigg": {
		reactants: []string{"atp_c", "h2o_c"},
		products:  []string{"adp_c", "pi_c", "h_c"},
	},
}

// Service detects ATP maintenance (ATPM) reactions, the non-growth energy
// drain most genome scale models carry exactly one of.
type Service struct{}

// New creates a maintenance service
func New() *Service {
	return &Service{}
}

// Name returns the service name
func (s *Service) Name() string {
	return name
}

// FindInput selects the model and the metabolite notation, "ModelSEED"
// (default) or "BiGG"; capitalisation does not matter.
type FindInput struct {
	Model    *model.Model `json:"model"`
	Notation string       `json:"notation,omitempty"`
}

// FindOutput lists candidate maintenance reaction ids in model order.
// Reaction is set only when exactly one candidate exists.
type FindOutput struct {
	Reaction   string   `json:"reaction,omitempty"`
	Candidates []string `json:"candidates,omitempty"`
}

// Methods returns the service methods
func (s *Service) Methods() types.Signatures {
	return []types.Signature{
		{
			Name:        "find",
			Description: "Finds ATP maintenance reactions by their reactant and product signature.",
			Input:       reflect.TypeOf(&FindInput{}),
			Output:      reflect.TypeOf(&FindOutput{}),
		},
	}
}

// Method returns the specified method
func (s *Service) Method(name string) (types.Executable, error) {
	switch strings.ToLower(name) {
	case "find":
		return s.find, nil
	default:
		return nil, types.NewMethodNotFoundError(name)
	}
}

func (s *Service) find(ctx context.Context, in, out interface{}) error {
	input, ok := in.(*FindInput)
	if !ok {
		return types.NewInvalidInputError(in)
	}
	output, ok := out.(*FindOutput)
	if !ok {
		return types.NewInvalidOutputError(out)
	}
	notation := strings.ToLower(input.Notation)
	if notation == "" {
		notation = "modelseed"
	}
	allowed, ok := notations[notation]
	if !ok {
		return fmt.Errorf("unknown notation %q, use ModelSEED or BiGG", input.Notation)
	}
	for reaction := range input.Model.Reactions.All() {
		if isMaintenance(reaction, allowed.reactants, allowed.products) {
			output.Candidates = append(output.Candidates, reaction.ID)
		}
	}
	if len(output.Candidates) == 1 {
		output.Reaction = output.Candidates[0]
	}
	return nil
}

// isMaintenance requires at least one participant on each side and every
// participant drawn from the allowed sets.
func isMaintenance(reaction *model.Reaction, allowedReactants, allowedProducts []string) bool {
	if len(reaction.Reactants) == 0 || len(reaction.Products) == 0 {
		return false
	}
	for _, ref := range reaction.Reactants {
		if !contains(allowedReactants, ref.Species) {
			return false
		}
	}
	for _, ref := range reaction.Products {
		if !contains(allowedProducts, ref.Species) {
			return false
		}
	}
	return true
}

func contains(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
