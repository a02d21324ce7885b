package loader

import (
	"fmt"

	"github.com/gemstack/gemkit/internal/idgen"
	"github.com/gemstack/gemkit/internal/sbml"
	"github.com/gemstack/gemkit/model"
)

// load carries the state of a single load attempt through the phase
// machine.
type load struct {
	model    *model.Model
	phase    Phase
	warnings []Warning
}

// malformed decorates a structural parse failure with the offending entity
// identity while keeping ErrMalformedDocument detectable via errors.Is.
func malformed(kind, id string, err error) error {
	return &model.EntityError{Kind: kind, ID: id, Err: fmt.Errorf("%w: %v", model.ErrMalformedDocument, err)}
}

// parseModel runs the full state machine over the document root.  onPhase,
// when non-nil, observes every successful phase transition.
func parseModel(root *sbml.Node, onPhase func(Phase)) (*load, error) {
	modelNode := root
	if modelNode.Name() == "sbml" {
		modelNode = modelNode.Child("model")
	}
	if modelNode == nil || modelNode.Name() != "model" {
		return nil, malformed("model", "", fmt.Errorf("document has no model element"))
	}

	id := modelNode.AttrOrDefault("id", "")
	if id == "" {
		id = "model-" + idgen.New()
	}
	strict, err := modelNode.BoolAttr("strict", false)
	if err != nil {
		return nil, malformed("model", id, err)
	}

	l := &load{model: model.New(id)}
	l.model.MetaID = modelNode.AttrOrDefault("metaid", "")
	l.model.Strict = strict

	steps := []struct {
		next Phase
		run  func(node *sbml.Node) error
	}{
		{PhaseUnitsLoaded, l.loadUnits},
		{PhaseEntitiesLoaded, l.loadEntities},
		{PhaseReactionsLoaded, l.loadReactions},
		{PhaseObjectivesLoaded, l.loadObjectives},
		{PhaseValidated, l.validate},
	}
	for _, step := range steps {
		if err := step.run(modelNode); err != nil {
			return l, err
		}
		l.phase = step.next
		if onPhase != nil {
			onPhase(l.phase)
		}
	}
	return l, nil
}

func (l *load) loadUnits(modelNode *sbml.Node) error {
	list := modelNode.Child("listOfUnitDefinitions")
	if list == nil {
		return nil
	}
	return list.Items(func(_ int, node *sbml.Node) error {
		if node.Name() != "unitDefinition" {
			return nil
		}
		id, err := node.RequiredAttr("id")
		if err != nil {
			return malformed("unitDefinition", "", err)
		}
		var units []model.Unit
		if unitList := node.Child("listOfUnits"); unitList != nil {
			for _, unitNode := range unitList.Children("unit") {
				unit, err := parseUnit(unitNode)
				if err != nil {
					return malformed("unitDefinition", id, err)
				}
				units = append(units, unit)
			}
		}
		_, err = l.model.DefineUnit(id, units...)
		return err
	})
}

func parseUnit(node *sbml.Node) (model.Unit, error) {
	kind, err := node.RequiredAttr("kind")
	if err != nil {
		return model.Unit{}, err
	}
	exponent, err := node.IntAttr("exponent", 1)
	if err != nil {
		return model.Unit{}, err
	}
	scale, err := node.IntAttr("scale", 0)
	if err != nil {
		return model.Unit{}, err
	}
	multiplier, ok, err := node.FloatAttr("multiplier")
	if err != nil {
		return model.Unit{}, err
	}
	if !ok {
		multiplier = 1
	}
	return model.Unit{Kind: model.UnitKind(kind), Exponent: exponent, Scale: scale, Multiplier: multiplier}, nil
}

// loadEntities populates the flat tables: compartments, species, parameters
// and gene products.  Gene products are table entities and therefore loaded
// here, before any reaction references them, even though the fbc list
// appears after the reactions in the serialised document.
func (l *load) loadEntities(modelNode *sbml.Node) error {
	if list := modelNode.Child("listOfCompartments"); list != nil {
		for _, node := range list.Children("compartment") {
			if err := l.loadCompartment(node); err != nil {
				return err
			}
		}
	}
	if list := modelNode.Child("listOfSpecies"); list != nil {
		for _, node := range list.Children("species") {
			if err := l.loadSpecies(node); err != nil {
				return err
			}
		}
	}
	if list := modelNode.Child("listOfParameters"); list != nil {
		for _, node := range list.Children("parameter") {
			if err := l.loadParameter(node); err != nil {
				return err
			}
		}
	}
	if list := modelNode.Child("listOfGeneProducts"); list != nil {
		for _, node := range list.Children("geneProduct") {
			if err := l.loadGeneProduct(node); err != nil {
				return err
			}
		}
	}
	return nil
}

func (l *load) loadCompartment(node *sbml.Node) error {
	id, err := node.RequiredAttr("id")
	if err != nil {
		return malformed("compartment", "", err)
	}
	constant, err := node.BoolAttr("constant", true)
	if err != nil {
		return malformed("compartment", id, err)
	}
	return l.model.AddCompartment(&model.Compartment{ID: id, Constant: constant})
}

func (l *load) loadSpecies(node *sbml.Node) error {
	id, err := node.RequiredAttr("id")
	if err != nil {
		return malformed("species", "", err)
	}
	compartment, err := node.RequiredAttr("compartment")
	if err != nil {
		return malformed("species", id, err)
	}
	species := &model.Species{
		ID:              id,
		Name:            node.AttrOrDefault("name", ""),
		Compartment:     compartment,
		ChemicalFormula: node.AttrOrDefault("chemicalFormula", ""),
	}
	if species.HasOnlySubstanceUnits, err = node.BoolAttr("hasOnlySubstanceUnits", false); err != nil {
		return malformed("species", id, err)
	}
	if species.BoundaryCondition, err = node.BoolAttr("boundaryCondition", false); err != nil {
		return malformed("species", id, err)
	}
	if species.Constant, err = node.BoolAttr("constant", false); err != nil {
		return malformed("species", id, err)
	}
	return l.model.AddSpecies(species)
}

func (l *load) loadParameter(node *sbml.Node) error {
	id, err := node.RequiredAttr("id")
	if err != nil {
		return malformed("parameter", "", err)
	}
	value, ok, err := node.FloatAttr("value")
	if err != nil {
		return malformed("parameter", id, err)
	}
	if !ok {
		return malformed("parameter", id, fmt.Errorf("missing required attribute %q", "value"))
	}
	constant, err := node.BoolAttr("constant", true)
	if err != nil {
		return malformed("parameter", id, err)
	}
	return l.model.AddParameter(&model.Parameter{
		ID:       id,
		Value:    value,
		Constant: constant,
		SBOTerm:  node.AttrOrDefault("sboTerm", ""),
	})
}

func (l *load) loadGeneProduct(node *sbml.Node) error {
	id, err := node.RequiredAttr("id")
	if err != nil {
		return malformed("geneProduct", "", err)
	}
	return l.model.AddGeneProduct(&model.GeneProduct{
		ID:    id,
		Name:  node.AttrOrDefault("name", ""),
		Label: node.AttrOrDefault("label", ""),
	})
}

func (l *load) loadReactions(modelNode *sbml.Node) error {
	list := modelNode.Child("listOfReactions")
	if list == nil {
		return nil
	}
	for _, node := range list.Children("reaction") {
		reaction, err := parseReaction(node)
		if err != nil {
			return err
		}
		if err = l.model.AddReaction(reaction); err != nil {
			return err
		}
	}
	return nil
}

func parseReaction(node *sbml.Node) (*model.Reaction, error) {
	id, err := node.RequiredAttr("id")
	if err != nil {
		return nil, malformed("reaction", "", err)
	}
	reaction := &model.Reaction{
		ID:   id,
		Name: node.AttrOrDefault("name", ""),
	}
	if reaction.Reversible, err = node.BoolAttr("reversible", false); err != nil {
		return nil, malformed("reaction", id, err)
	}
	if reaction.Fast, err = node.BoolAttr("fast", false); err != nil {
		return nil, malformed("reaction", id, err)
	}
	if reaction.LowerBound, err = node.RequiredAttr("lowerFluxBound"); err != nil {
		return nil, malformed("reaction", id, err)
	}
	if reaction.UpperBound, err = node.RequiredAttr("upperFluxBound"); err != nil {
		return nil, malformed("reaction", id, err)
	}
	if reaction.Reactants, err = parseSpeciesReferences(node.Child("listOfReactants"), id); err != nil {
		return nil, err
	}
	if reaction.Products, err = parseSpeciesReferences(node.Child("listOfProducts"), id); err != nil {
		return nil, err
	}
	if gpaNode := node.Child("geneProductAssociation"); gpaNode != nil {
		children := gpaNode.Children("")
		if len(children) != 1 {
			return nil, malformed("reaction", id, fmt.Errorf("geneProductAssociation must have exactly one child"))
		}
		association, err := parseAssociation(children[0], id)
		if err != nil {
			return nil, err
		}
		reaction.Association = association
	}
	return reaction, nil
}

func parseSpeciesReferences(list *sbml.Node, reactionID string) ([]model.SpeciesReference, error) {
	if list == nil {
		return nil, nil
	}
	var refs []model.SpeciesReference
	for _, node := range list.Children("speciesReference") {
		species, err := node.RequiredAttr("species")
		if err != nil {
			return nil, malformed("reaction", reactionID, err)
		}
		stoichiometry, ok, err := node.FloatAttr("stoichiometry")
		if err != nil {
			return nil, malformed("reaction", reactionID, err)
		}
		if !ok {
			stoichiometry = 1
		}
		constant, err := node.BoolAttr("constant", true)
		if err != nil {
			return nil, malformed("reaction", reactionID, err)
		}
		refs = append(refs, model.SpeciesReference{Species: species, Stoichiometry: stoichiometry, Constant: constant})
	}
	return refs, nil
}

// parseAssociation builds the gene-product association tree by recursive
// descent over the parsed children; back-references are impossible by
// construction.
func parseAssociation(node *sbml.Node, reactionID string) (*model.GeneProductAssociation, error) {
	switch node.Name() {
	case "geneProductRef":
		gene, err := node.RequiredAttr("geneProduct")
		if err != nil {
			return nil, malformed("reaction", reactionID, err)
		}
		return model.Gene(gene), nil
	case "and", "or":
		var children []*model.GeneProductAssociation
		for _, childNode := range node.Children("") {
			child, err := parseAssociation(childNode, reactionID)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
		if node.Name() == "and" {
			return &model.GeneProductAssociation{Kind: model.AssociationAnd, Children: children}, nil
		}
		return &model.GeneProductAssociation{Kind: model.AssociationOr, Children: children}, nil
	}
	return nil, malformed("reaction", reactionID, fmt.Errorf("unexpected association element %s", node.Name()))
}

func (l *load) loadObjectives(modelNode *sbml.Node) error {
	list := modelNode.Child("listOfObjectives")
	if list == nil {
		return nil
	}
	for _, node := range list.Children("objective") {
		if err := l.loadObjective(node); err != nil {
			return err
		}
	}
	if active, ok := list.AttrValue("activeObjective"); ok {
		if err := l.model.SetActiveObjective(active); err != nil {
			return err
		}
	}
	return nil
}

func (l *load) loadObjective(node *sbml.Node) error {
	id, err := node.RequiredAttr("id")
	if err != nil {
		return malformed("objective", "", err)
	}
	objectiveType, err := node.RequiredAttr("type")
	if err != nil {
		return malformed("objective", id, err)
	}
	objective := &model.Objective{ID: id, Type: model.ObjectiveType(objectiveType)}
	if list := node.Child("listOfFluxObjectives"); list != nil {
		seen := map[string]bool{}
		for _, foNode := range list.Children("fluxObjective") {
			reaction, err := foNode.RequiredAttr("reaction")
			if err != nil {
				return malformed("objective", id, err)
			}
			coefficient, ok, err := foNode.FloatAttr("coefficient")
			if err != nil {
				return malformed("objective", id, err)
			}
			if !ok {
				coefficient = 1
			}
			// Duplicate entries keep summation semantics well-defined, so
			// they are a warning rather than a hard error.
			if seen[reaction] {
				l.warnings = append(l.warnings, Warning{
					Kind:    "objective",
					ID:      id,
					Message: fmt.Sprintf("duplicate flux objective for reaction %s", reaction),
				})
			}
			seen[reaction] = true
			objective.FluxObjectives = append(objective.FluxObjectives, model.FluxObjective{Reaction: reaction, Coefficient: coefficient})
		}
	}
	return l.model.AddObjective(objective)
}

// validate is the terminal transition; a model that reaches PhaseValidated
// has every cross-reference resolved.
func (l *load) validate(*sbml.Node) error {
	if issues := l.model.Validate(); len(issues) > 0 {
		return issues[0]
	}
	return nil
}
