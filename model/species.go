package model

// Compartment represents a model compartment.  Constant indicates the
// compartment size is fixed for the model's lifetime.
type Compartment struct {
	ID       string `json:"id" yaml:"id"`
	Constant bool   `json:"constant" yaml:"constant"`
}

// EntityID implements Entity.
func (c *Compartment) EntityID() string { return c.ID }

// Clone returns a copy of the compartment.
func (c *Compartment) Clone() *Compartment {
	if c == nil {
		return nil
	}
	ret := *c
	return &ret
}

// Species represents a metabolite.  Compartment must resolve in the owning
// model's compartment table.
type Species struct {
	ID                    string `json:"id" yaml:"id"`
	Name                  string `json:"name,omitempty" yaml:"name,omitempty"`
	Compartment           string `json:"compartment" yaml:"compartment"`
	HasOnlySubstanceUnits bool   `json:"hasOnlySubstanceUnits" yaml:"hasOnlySubstanceUnits"`

	// BoundaryCondition marks the species concentration as fixed/external to
	// any downstream solver.
	BoundaryCondition bool `json:"boundaryCondition" yaml:"boundaryCondition"`
	Constant          bool `json:"constant" yaml:"constant"`

	// ChemicalFormula is free form; the core does not validate chemical
	// correctness.
	ChemicalFormula string `json:"chemicalFormula,omitempty" yaml:"chemicalFormula,omitempty"`
}

// EntityID implements Entity.
func (s *Species) EntityID() string { return s.ID }

// HasFormula reports whether a chemical formula is set.
func (s *Species) HasFormula() bool {
	return s.ChemicalFormula != ""
}

// Clone returns a copy of the species.
func (s *Species) Clone() *Species {
	if s == nil {
		return nil
	}
	ret := *s
	return &ret
}
