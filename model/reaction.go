package model

// SpeciesReference links a reaction to a participating species with a
// strictly positive stoichiometry.  It is used in both reactant and product
// roles.
type SpeciesReference struct {
	Species       string  `json:"species" yaml:"species"`
	Stoichiometry float64 `json:"stoichiometry" yaml:"stoichiometry"`
	Constant      bool    `json:"constant" yaml:"constant"`
}

// Reaction represents a metabolic reaction.  LowerBound and UpperBound are
// parameter ids resolved through the owning model's parameter table so that
// bound sharing across reactions is preserved.
type Reaction struct {
	ID         string `json:"id" yaml:"id"`
	Name       string `json:"name,omitempty" yaml:"name,omitempty"`
	Reversible bool   `json:"reversible" yaml:"reversible"`

	// Fast is deprecated in SBML; preserved but not interpreted.
	Fast bool `json:"fast" yaml:"fast"`

	LowerBound string `json:"lowerFluxBound" yaml:"lowerFluxBound"`
	UpperBound string `json:"upperFluxBound" yaml:"upperFluxBound"`

	Reactants []SpeciesReference `json:"reactants,omitempty" yaml:"reactants,omitempty"`
	Products  []SpeciesReference `json:"products,omitempty" yaml:"products,omitempty"`

	// Association is the optional gene-product association owned exclusively
	// by this reaction.
	Association *GeneProductAssociation `json:"geneProductAssociation,omitempty" yaml:"geneProductAssociation,omitempty"`
}

// EntityID implements Entity.
func (r *Reaction) EntityID() string { return r.ID }

// WithReactant appends a reactant species reference.
func (r *Reaction) WithReactant(species string, stoichiometry float64) *Reaction {
	r.Reactants = append(r.Reactants, SpeciesReference{Species: species, Stoichiometry: stoichiometry, Constant: true})
	return r
}

// WithProduct appends a product species reference.
func (r *Reaction) WithProduct(species string, stoichiometry float64) *Reaction {
	r.Products = append(r.Products, SpeciesReference{Species: species, Stoichiometry: stoichiometry, Constant: true})
	return r
}

// WithBounds sets the lower and upper flux-bound parameter ids.
func (r *Reaction) WithBounds(lower, upper string) *Reaction {
	r.LowerBound = lower
	r.UpperBound = upper
	return r
}

// WithAssociation sets the gene-product association.
func (r *Reaction) WithAssociation(association *GeneProductAssociation) *Reaction {
	r.Association = association
	return r
}

// Participants returns all species references, reactants first.
func (r *Reaction) Participants() []SpeciesReference {
	ret := make([]SpeciesReference, 0, len(r.Reactants)+len(r.Products))
	ret = append(ret, r.Reactants...)
	ret = append(ret, r.Products...)
	return ret
}

// HasReactant reports whether the given species participates as a reactant.
func (r *Reaction) HasReactant(species string) bool {
	for _, ref := range r.Reactants {
		if ref.Species == species {
			return true
		}
	}
	return false
}

// HasProduct reports whether the given species participates as a product.
func (r *Reaction) HasProduct(species string) bool {
	for _, ref := range r.Products {
		if ref.Species == species {
			return true
		}
	}
	return false
}

// IsExchange reports whether the reaction looks like an exchange reaction:
// a single participant on exactly one side of the equation.
func (r *Reaction) IsExchange() bool {
	return (len(r.Reactants) == 1 && len(r.Products) == 0) ||
		(len(r.Reactants) == 0 && len(r.Products) == 1)
}

// Clone returns a deep copy of the reaction.
func (r *Reaction) Clone() *Reaction {
	if r == nil {
		return nil
	}
	ret := *r
	if r.Reactants != nil {
		ret.Reactants = make([]SpeciesReference, len(r.Reactants))
		copy(ret.Reactants, r.Reactants)
	}
	if r.Products != nil {
		ret.Products = make([]SpeciesReference, len(r.Products))
		copy(ret.Products, r.Products)
	}
	ret.Association = r.Association.Clone()
	return &ret
}
