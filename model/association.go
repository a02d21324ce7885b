package model

// AssociationKind tags the variant of a gene-product association node.
type AssociationKind string

const (
	// AssociationLeaf references a single gene product.
	AssociationLeaf AssociationKind = "geneProductRef"
	// AssociationAnd is the conjunction of its children (enzyme complex).
	AssociationAnd AssociationKind = "and"
	// AssociationOr is the disjunction of its children (isozymes).
	AssociationOr AssociationKind = "or"
)

// GeneProductAssociation is a boolean expression tree over gene products.
// A node is either a leaf referencing one gene product or an and/or operator
// with at least two children.  Trees are built strictly from parsed children,
// never from back-references, so cycles cannot occur.
type GeneProductAssociation struct {
	Kind     AssociationKind           `json:"kind" yaml:"kind"`
	Gene     string                    `json:"gene,omitempty" yaml:"gene,omitempty"`
	Children []*GeneProductAssociation `json:"children,omitempty" yaml:"children,omitempty"`
}

// Gene creates a leaf association referencing the given gene product id.
func Gene(id string) *GeneProductAssociation {
	return &GeneProductAssociation{Kind: AssociationLeaf, Gene: id}
}

// And creates a conjunction over the given children.
func And(children ...*GeneProductAssociation) *GeneProductAssociation {
	return &GeneProductAssociation{Kind: AssociationAnd, Children: children}
}

// Or creates a disjunction over the given children.
func Or(children ...*GeneProductAssociation) *GeneProductAssociation {
	return &GeneProductAssociation{Kind: AssociationOr, Children: children}
}

// Validate recursively checks the tree shape and leaf resolution.  resolves
// reports whether a gene-product id exists in the owning model.
func (a *GeneProductAssociation) Validate(resolves func(id string) bool) error {
	switch a.Kind {
	case AssociationLeaf:
		if a.Gene == "" {
			return NewEntityError("geneProductRef", a.Gene, ErrInvalidAssociation)
		}
		if len(a.Children) != 0 {
			return NewEntityError("geneProductRef", a.Gene, ErrInvalidAssociation)
		}
		if resolves != nil && !resolves(a.Gene) {
			return NewEntityError("geneProduct", a.Gene, ErrNotFound)
		}
	case AssociationAnd, AssociationOr:
		// A one-child boolean operator is malformed input.
		if len(a.Children) < 2 {
			return NewEntityError(string(a.Kind), "", ErrInvalidAssociation)
		}
		for _, child := range a.Children {
			if child == nil {
				return NewEntityError(string(a.Kind), "", ErrInvalidAssociation)
			}
			if err := child.Validate(resolves); err != nil {
				return err
			}
		}
	default:
		return NewEntityError(string(a.Kind), "", ErrInvalidAssociation)
	}
	return nil
}

// Evaluate computes the boolean value of the tree against a set of active
// gene ids: a leaf is true iff its gene is active, and/or follow boolean
// conjunction/disjunction.
func (a *GeneProductAssociation) Evaluate(active map[string]bool) bool {
	switch a.Kind {
	case AssociationLeaf:
		return active[a.Gene]
	case AssociationAnd:
		for _, child := range a.Children {
			if !child.Evaluate(active) {
				return false
			}
		}
		return true
	case AssociationOr:
		for _, child := range a.Children {
			if child.Evaluate(active) {
				return true
			}
		}
		return false
	}
	return false
}

// ReferencedGenes returns the distinct gene-product ids referenced by the
// tree, in first-seen traversal order.
func (a *GeneProductAssociation) ReferencedGenes() []string {
	var genes []string
	seen := map[string]bool{}
	var walk func(node *GeneProductAssociation)
	walk = func(node *GeneProductAssociation) {
		if node == nil {
			return
		}
		if node.Kind == AssociationLeaf {
			if !seen[node.Gene] {
				seen[node.Gene] = true
				genes = append(genes, node.Gene)
			}
			return
		}
		for _, child := range node.Children {
			walk(child)
		}
	}
	walk(a)
	return genes
}

// Clone returns a deep copy of the association tree.
func (a *GeneProductAssociation) Clone() *GeneProductAssociation {
	if a == nil {
		return nil
	}
	ret := &GeneProductAssociation{Kind: a.Kind, Gene: a.Gene}
	if a.Children != nil {
		ret.Children = make([]*GeneProductAssociation, len(a.Children))
		for i, child := range a.Children {
			ret.Children[i] = child.Clone()
		}
	}
	return ret
}
