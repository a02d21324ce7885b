package curation

import (
	"context"
	"reflect"
	"strings"

	"github.com/gemstack/gemkit/formula"
	"github.com/gemstack/gemkit/model"
	"github.com/gemstack/gemkit/model/types"
)

const name = "curation"

// Service groups formula curation helpers: copying formulas between
// species, listing species without formulas, locating a species' twin in
// another compartment and checking elemental mass balance.
type Service struct{}

// New creates a curation service
func New() *Service {
	return &Service{}
}

// Name returns the service name
func (s *Service) Name() string {
	return name
}

// CopyFormulaInput selects the species to copy a chemical formula between.
type CopyFormulaInput struct {
	Model  *model.Model `json:"model"`
	Source string       `json:"source"`
	Target string       `json:"target"`
}

// CopyFormulaOutput carries the updated model.
type CopyFormulaOutput struct {
	Model   *model.Model `json:"model"`
	Formula string       `json:"formula"`
}

type MissingFormulasInput struct {
	Model *model.Model `json:"model"`
}

// MissingFormulasOutput lists species ids lacking a chemical formula, in
// model order.
type MissingFormulasOutput struct {
	Species []string `json:"species"`
}

// FindMatchInput selects the species to find a twin for.
type FindMatchInput struct {
	Model   *model.Model `json:"model"`
	Species string       `json:"species"`
}

// FindMatchOutput lists species sharing the subject's display name in other
// compartments.  Match is set only when exactly one candidate exists.
type FindMatchOutput struct {
	Match      string   `json:"match,omitempty"`
	Candidates []string `json:"candidates,omitempty"`
}

// MassBalanceInput selects the reactions to balance-check; an empty Reaction
// checks every reaction in the model.
type MassBalanceInput struct {
	Model    *model.Model `json:"model"`
	Reaction string       `json:"reaction,omitempty"`
}

// BalanceReport describes the elemental balance of a single reaction.  Net
// maps element symbols to the product minus reactant totals; Incomplete
// lists participants without a chemical formula, in which case Balanced is
// meaningless.
type BalanceReport struct {
	Reaction   string             `json:"reaction"`
	Balanced   bool               `json:"balanced"`
	Net        map[string]float64 `json:"net,omitempty"`
	Incomplete []string           `json:"incomplete,omitempty"`
}

type MassBalanceOutput struct {
	Reports []BalanceReport `json:"reports"`
}

// Methods returns the service methods
func (s *Service) Methods() types.Signatures {
	return []types.Signature{
		{
			Name:        "copyFormula",
			Description: "Copies the chemical formula from one species to another, returning a new model.",
			Input:       reflect.TypeOf(&CopyFormulaInput{}),
			Output:      reflect.TypeOf(&CopyFormulaOutput{}),
		},
		{
			Name:        "missingFormulas",
			Description: "Lists species that lack a chemical formula.",
			Input:       reflect.TypeOf(&MissingFormulasInput{}),
			Output:      reflect.TypeOf(&MissingFormulasOutput{}),
		},
		{
			Name:        "findMatch",
			Description: "Finds species with the same display name in a different compartment.",
			Input:       reflect.TypeOf(&FindMatchInput{}),
			Output:      reflect.TypeOf(&FindMatchOutput{}),
		},
		{
			Name:        "massBalance",
			Description: "Checks elemental mass balance of one or all reactions.",
			Input:       reflect.TypeOf(&MassBalanceInput{}),
			Output:      reflect.TypeOf(&MassBalanceOutput{}),
		},
	}
}

// Method returns the specified method
func (s *Service) Method(name string) (types.Executable, error) {
	switch strings.ToLower(name) {
	case "copyformula":
		return s.copyFormula, nil
	case "missingformulas":
		return s.missingFormulas, nil
	case "findmatch":
		return s.findMatch, nil
	case "massbalance":
		return s.massBalance, nil
	default:
		return nil, types.NewMethodNotFoundError(name)
	}
}

func (s *Service) copyFormula(ctx context.Context, in, out interface{}) error {
	input, ok := in.(*CopyFormulaInput)
	if !ok {
		return types.NewInvalidInputError(in)
	}
	output, ok := out.(*CopyFormulaOutput)
	if !ok {
		return types.NewInvalidOutputError(out)
	}
	source, err := input.Model.Species.Get(input.Source)
	if err != nil {
		return err
	}
	next := input.Model.Clone()
	target, err := next.Species.Get(input.Target)
	if err != nil {
		return err
	}
	target.ChemicalFormula = source.ChemicalFormula
	output.Model = next
	output.Formula = source.ChemicalFormula
	return nil
}

func (s *Service) missingFormulas(ctx context.Context, in, out interface{}) error {
	input, ok := in.(*MissingFormulasInput)
	if !ok {
		return types.NewInvalidInputError(in)
	}
	output, ok := out.(*MissingFormulasOutput)
	if !ok {
		return types.NewInvalidOutputError(out)
	}
	for species := range input.Model.Species.All() {
		if !species.HasFormula() {
			output.Species = append(output.Species, species.ID)
		}
	}
	return nil
}

func (s *Service) findMatch(ctx context.Context, in, out interface{}) error {
	input, ok := in.(*FindMatchInput)
	if !ok {
		return types.NewInvalidInputError(in)
	}
	output, ok := out.(*FindMatchOutput)
	if !ok {
		return types.NewInvalidOutputError(out)
	}
	subject, err := input.Model.Species.Get(input.Species)
	if err != nil {
		return err
	}
	for candidate := range input.Model.Species.All() {
		if candidate.ID == subject.ID || candidate.Compartment == subject.Compartment {
			continue
		}
		if candidate.Name == subject.Name {
			output.Candidates = append(output.Candidates, candidate.ID)
		}
	}
	if len(output.Candidates) == 1 {
		output.Match = output.Candidates[0]
	}
	return nil
}

func (s *Service) massBalance(ctx context.Context, in, out interface{}) error {
	input, ok := in.(*MassBalanceInput)
	if !ok {
		return types.NewInvalidInputError(in)
	}
	output, ok := out.(*MassBalanceOutput)
	if !ok {
		return types.NewInvalidOutputError(out)
	}
	if input.Reaction != "" {
		reaction, err := input.Model.Reactions.Get(input.Reaction)
		if err != nil {
			return err
		}
		report, err := balance(input.Model, reaction)
		if err != nil {
			return err
		}
		output.Reports = append(output.Reports, report)
		return nil
	}
	for reaction := range input.Model.Reactions.All() {
		report, err := balance(input.Model, reaction)
		if err != nil {
			return err
		}
		output.Reports = append(output.Reports, report)
	}
	return nil
}

// balance totals each element over the reaction, products positive and
// reactants negative.
func balance(aModel *model.Model, reaction *model.Reaction) (BalanceReport, error) {
	report := BalanceReport{Reaction: reaction.ID}
	net := formula.Formula{}
	accumulate := func(refs []model.SpeciesReference, sign float64) error {
		for _, ref := range refs {
			species, err := aModel.Species.Get(ref.Species)
			if err != nil {
				return err
			}
			if !species.HasFormula() {
				report.Incomplete = append(report.Incomplete, species.ID)
				continue
			}
			parsed, err := formula.Parse(species.ChemicalFormula)
			if err != nil {
				return model.NewEntityError("species", species.ID, err)
			}
			net.Add(parsed, sign*ref.Stoichiometry)
		}
		return nil
	}
	if err := accumulate(reaction.Reactants, -1); err != nil {
		return report, err
	}
	if err := accumulate(reaction.Products, 1); err != nil {
		return report, err
	}
	if len(net) > 0 {
		report.Net = net
	}
	report.Balanced = len(report.Incomplete) == 0 && net.IsBalanced()
	return report, nil
}
