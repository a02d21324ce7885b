package knockout

import (
	"context"
	"reflect"
	"strings"

	"github.com/gemstack/gemkit/model"
	"github.com/gemstack/gemkit/model/types"
)

const name = "knockout"

// Service evaluates gene product associations against active-gene sets:
// single GPR queries and whole-model single-gene deletion scans.  A
// reaction with no association is never disabled by a gene deletion.
type Service struct{}

// New creates a knockout service
func New() *Service {
	return &Service{}
}

// Name returns the service name
func (s *Service) Name() string {
	return name
}

// EvaluateInput names a reaction and the genes considered active.
type EvaluateInput struct {
	Model       *model.Model `json:"model"`
	Reaction    string       `json:"reaction"`
	ActiveGenes []string     `json:"activeGenes"`
}

// EvaluateOutput reports whether the reaction's association is satisfied;
// a reaction without an association is always active.
type EvaluateOutput struct {
	Active bool `json:"active"`
}

type SingleGeneInput struct {
	Model *model.Model `json:"model"`
}

// GeneDeletion lists the reactions a single gene deletion disables, in
// model order.
type GeneDeletion struct {
	Gene     string   `json:"gene"`
	Disabled []string `json:"disabled,omitempty"`
}

// SingleGeneOutput reports one deletion entry per gene product, in model
// order.
type SingleGeneOutput struct {
	Deletions []GeneDeletion `json:"deletions"`
}

// Methods returns the service methods
func (s *Service) Methods() types.Signatures {
	return []types.Signature{
		{
			Name:        "evaluate",
			Description: "Evaluates a reaction's gene product association against an active-gene set.",
			Input:       reflect.TypeOf(&EvaluateInput{}),
			Output:      reflect.TypeOf(&EvaluateOutput{}),
		},
		{
			Name:        "singleGene",
			Description: "Reports which reactions each single gene deletion disables.",
			Input:       reflect.TypeOf(&SingleGeneInput{}),
			Output:      reflect.TypeOf(&SingleGeneOutput{}),
		},
	}
}

// Method returns the specified method
func (s *Service) Method(name string) (types.Executable, error) {
	switch strings.ToLower(name) {
	case "evaluate":
		return s.evaluate, nil
	case "singlegene":
		return s.singleGene, nil
	default:
		return nil, types.NewMethodNotFoundError(name)
	}
}

func (s *Service) evaluate(ctx context.Context, in, out interface{}) error {
	input, ok := in.(*EvaluateInput)
	if !ok {
		return types.NewInvalidInputError(in)
	}
	output, ok := out.(*EvaluateOutput)
	if !ok {
		return types.NewInvalidOutputError(out)
	}
	reaction, err := input.Model.Reactions.Get(input.Reaction)
	if err != nil {
		return err
	}
	if reaction.Association == nil {
		output.Active = true
		return nil
	}
	active := make(map[string]bool, len(input.ActiveGenes))
	for _, gene := range input.ActiveGenes {
		active[gene] = true
	}
	output.Active = reaction.Association.Evaluate(active)
	return nil
}

func (s *Service) singleGene(ctx context.Context, in, out interface{}) error {
	input, ok := in.(*SingleGeneInput)
	if !ok {
		return types.NewInvalidInputError(in)
	}
	output, ok := out.(*SingleGeneOutput)
	if !ok {
		return types.NewInvalidOutputError(out)
	}
	allActive := make(map[string]bool, input.Model.GeneProducts.Len())
	for gene := range input.Model.GeneProducts.All() {
		allActive[gene.ID] = true
	}
	for gene := range input.Model.GeneProducts.All() {
		deletion := GeneDeletion{Gene: gene.ID}
		allActive[gene.ID] = false
		for reaction := range input.Model.Reactions.All() {
			if reaction.Association == nil {
				continue
			}
			// with every other gene active an unsatisfied association can
			// only be the deleted gene's doing
			if !reaction.Association.Evaluate(allActive) {
				deletion.Disabled = append(deletion.Disabled, reaction.ID)
			}
		}
		allActive[gene.ID] = true
		output.Deletions = append(output.Deletions, deletion)
	}
	return nil
}
