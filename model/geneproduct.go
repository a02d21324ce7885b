package model

// GeneProduct represents a gene or gene product referenced by reaction
// gene-product associations.
type GeneProduct struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
}

// EntityID implements Entity.
func (g *GeneProduct) EntityID() string { return g.ID }

// Clone returns a copy of the gene product.
func (g *GeneProduct) Clone() *GeneProduct {
	if g == nil {
		return nil
	}
	ret := *g
	return &ret
}
