package model

import (
	"bytes"
	"encoding/json"
)

// Model is a fully cross-referenced in-memory representation of a genome
// scale metabolic model.  All entities are created during loading, in
// dependency order; after a successful load the model is read-mostly and
// safe for concurrent read-only access.  Utilities that transform a model
// must either produce a new Model (see Clone) or mutate under exclusive
// access and re-validate.
type Model struct {
	ID     string `json:"id" yaml:"id"`
	MetaID string `json:"metaId,omitempty" yaml:"metaId,omitempty"`

	// Strict mirrors fbc:strict: all flux bounds are constant parameters.
	Strict bool `json:"strict" yaml:"strict"`

	UnitDefinitions *Table[*UnitDefinition] `json:"unitDefinitions" yaml:"unitDefinitions"`
	Compartments    *Table[*Compartment]    `json:"compartments" yaml:"compartments"`
	Species         *Table[*Species]        `json:"species" yaml:"species"`
	Parameters      *Table[*Parameter]      `json:"parameters" yaml:"parameters"`
	GeneProducts    *Table[*GeneProduct]    `json:"geneProducts" yaml:"geneProducts"`
	Reactions       *Table[*Reaction]       `json:"reactions" yaml:"reactions"`
	Objectives      *Objectives             `json:"objectives" yaml:"objectives"`
}

// New creates an empty model with the given id.
func New(id string) *Model {
	return &Model{
		ID:              id,
		UnitDefinitions: NewTable[*UnitDefinition]("unitDefinition"),
		Compartments:    NewTable[*Compartment]("compartment"),
		Species:         NewTable[*Species]("species"),
		Parameters:      NewTable[*Parameter]("parameter"),
		GeneProducts:    NewTable[*GeneProduct]("geneProduct"),
		Reactions:       NewTable[*Reaction]("reaction"),
		Objectives:      NewObjectives(),
	}
}

// DefineUnit registers a unit definition, failing with ErrDuplicateID when
// the id is already defined.
func (m *Model) DefineUnit(id string, units ...Unit) (*UnitDefinition, error) {
	definition := &UnitDefinition{ID: id, Units: units}
	if err := m.UnitDefinitions.Insert(definition); err != nil {
		return nil, err
	}
	return definition, nil
}

// ResolveUnit returns the unit definition registered under id.
func (m *Model) ResolveUnit(id string) (*UnitDefinition, error) {
	return m.UnitDefinitions.Get(id)
}

// AddCompartment registers a compartment.
func (m *Model) AddCompartment(compartment *Compartment) error {
	return m.Compartments.Insert(compartment)
}

// AddSpecies registers a species after checking its owning compartment
// resolves.
func (m *Model) AddSpecies(species *Species) error {
	if !m.Compartments.Has(species.Compartment) {
		return NewReferenceError("species", species.ID, species.Compartment, ErrNotFound)
	}
	return m.Species.Insert(species)
}

// AddParameter registers a parameter.
func (m *Model) AddParameter(parameter *Parameter) error {
	return m.Parameters.Insert(parameter)
}

// AddGeneProduct registers a gene product.
func (m *Model) AddGeneProduct(geneProduct *GeneProduct) error {
	return m.GeneProducts.Insert(geneProduct)
}

// AddReaction validates and registers a reaction.  Validation order: id
// uniqueness, bound parameter resolution, bound consistency, species
// reference resolution, stoichiometry positivity and association shape.
func (m *Model) AddReaction(reaction *Reaction) error {
	if m.Reactions.Has(reaction.ID) {
		return NewEntityError("reaction", reaction.ID, ErrDuplicateID)
	}
	if err := m.checkBounds(reaction); err != nil {
		return err
	}
	for _, ref := range reaction.Participants() {
		if !m.Species.Has(ref.Species) {
			return NewReferenceError("reaction", reaction.ID, ref.Species, ErrNotFound)
		}
		if ref.Stoichiometry <= 0 {
			return NewReferenceError("reaction", reaction.ID, ref.Species, ErrInvalidStoichiometry)
		}
	}
	if reaction.Association != nil {
		if err := reaction.Association.Validate(m.GeneProducts.Has); err != nil {
			return err
		}
	}
	return m.Reactions.Insert(reaction)
}

// checkBounds resolves both flux-bound parameters and rejects a finite lower
// bound above a finite upper bound.  Violations are flagged, never clamped.
func (m *Model) checkBounds(reaction *Reaction) error {
	lower, err := m.Parameters.Get(reaction.LowerBound)
	if err != nil {
		return NewReferenceError("reaction", reaction.ID, reaction.LowerBound, ErrNotFound)
	}
	upper, err := m.Parameters.Get(reaction.UpperBound)
	if err != nil {
		return NewReferenceError("reaction", reaction.ID, reaction.UpperBound, ErrNotFound)
	}
	if lower.IsFinite() && upper.IsFinite() && lower.Value > upper.Value {
		return NewEntityError("reaction", reaction.ID, ErrInconsistentBounds)
	}
	return nil
}

// Bounds resolves a reaction's numeric flux bounds.
func (m *Model) Bounds(reaction *Reaction) (lower, upper float64, err error) {
	lowerParam, err := m.Parameters.Get(reaction.LowerBound)
	if err != nil {
		return 0, 0, err
	}
	upperParam, err := m.Parameters.Get(reaction.UpperBound)
	if err != nil {
		return 0, 0, err
	}
	return lowerParam.Value, upperParam.Value, nil
}

// AddObjective validates and registers an objective; every flux objective's
// reaction must resolve.
func (m *Model) AddObjective(objective *Objective) error {
	if !objective.Type.IsValid() {
		return NewEntityError("objective", objective.ID, ErrMalformedDocument)
	}
	for _, fo := range objective.FluxObjectives {
		if !m.Reactions.Has(fo.Reaction) {
			return NewReferenceError("objective", objective.ID, fo.Reaction, ErrUnresolvedReaction)
		}
	}
	return m.Objectives.Table.Insert(objective)
}

// SetActiveObjective selects the active objective.
func (m *Model) SetActiveObjective(id string) error {
	return m.Objectives.SetActive(id)
}

// Validate re-checks every cross-reference invariant.  It is intended for
// utilities that mutate a model in place; a freshly loaded model has already
// passed all of these checks.  The returned slice is empty when the model is
// sound.
func (m *Model) Validate() []error {
	var issues []error
	for species := range m.Species.All() {
		if !m.Compartments.Has(species.Compartment) {
			issues = append(issues, NewReferenceError("species", species.ID, species.Compartment, ErrNotFound))
		}
	}
	for reaction := range m.Reactions.All() {
		if err := m.checkBounds(reaction); err != nil {
			issues = append(issues, err)
		}
		for _, ref := range reaction.Participants() {
			if !m.Species.Has(ref.Species) {
				issues = append(issues, NewReferenceError("reaction", reaction.ID, ref.Species, ErrNotFound))
			}
			if ref.Stoichiometry <= 0 {
				issues = append(issues, NewReferenceError("reaction", reaction.ID, ref.Species, ErrInvalidStoichiometry))
			}
		}
		if reaction.Association != nil {
			if err := reaction.Association.Validate(m.GeneProducts.Has); err != nil {
				issues = append(issues, err)
			}
		}
	}
	for objective := range m.Objectives.Table.All() {
		for _, fo := range objective.FluxObjectives {
			if !m.Reactions.Has(fo.Reaction) {
				issues = append(issues, NewReferenceError("objective", objective.ID, fo.Reaction, ErrUnresolvedReaction))
			}
		}
	}
	if active := m.Objectives.ActiveID; active != "" && !m.Objectives.Table.Has(active) {
		issues = append(issues, NewEntityError("objective", active, ErrNotFound))
	}
	return issues
}

// Clone creates a deep copy of the model, the building block for
// copy-on-write transformations.
func (m *Model) Clone() *Model {
	if m == nil {
		return nil
	}
	return &Model{
		ID:              m.ID,
		MetaID:          m.MetaID,
		Strict:          m.Strict,
		UnitDefinitions: m.UnitDefinitions.clone((*UnitDefinition).Clone),
		Compartments:    m.Compartments.clone((*Compartment).Clone),
		Species:         m.Species.clone((*Species).Clone),
		Parameters:      m.Parameters.clone((*Parameter).Clone),
		GeneProducts:    m.GeneProducts.clone((*GeneProduct).Clone),
		Reactions:       m.Reactions.clone((*Reaction).Clone),
		Objectives:      m.Objectives.Clone(),
	}
}

// Equal reports structural equality: same ids and attribute values,
// irrespective of instance identity.
func (m *Model) Equal(other *Model) bool {
	if m == nil || other == nil {
		return m == other
	}
	this, err := json.Marshal(m)
	if err != nil {
		return false
	}
	that, err := json.Marshal(other)
	if err != nil {
		return false
	}
	return bytes.Equal(this, that)
}
