package model

import (
	"errors"
	"fmt"
)

// Common, reusable model errors.  Using sentinel variables allows callers to
// reliably detect error conditions via errors.Is/As instead of brittle string
// comparisons.

var (
	// ErrDuplicateID is returned when an entity with the same id has already
	// been registered in the owning table.
	ErrDuplicateID = errors.New("model: duplicate id")

	// ErrNotFound is returned when an id does not resolve in its owning table.
	ErrNotFound = errors.New("model: not found")

	// ErrInvalidAssociation indicates a malformed gene-product association
	// tree, e.g. an and/or node with fewer than two children.
	ErrInvalidAssociation = errors.New("model: invalid gene-product association")

	// ErrInconsistentBounds is returned when a reaction's lower flux bound
	// exceeds its upper flux bound and both are finite.
	ErrInconsistentBounds = errors.New("model: inconsistent flux bounds")

	// ErrInvalidStoichiometry is returned for zero or negative stoichiometry.
	ErrInvalidStoichiometry = errors.New("model: invalid stoichiometry")

	// ErrUnresolvedReaction is returned when a flux objective references a
	// reaction that does not exist.
	ErrUnresolvedReaction = errors.New("model: unresolved reaction")

	// ErrMalformedDocument covers structural issues below model semantics,
	// e.g. a missing required attribute.
	ErrMalformedDocument = errors.New("model: malformed document")
)

// EntityError decorates a sentinel error with the identity of the offending
// entity so that callers can report failures in terms of model entities
// rather than parse positions.
type EntityError struct {
	// Kind names the entity kind: "species", "reaction", "parameter", ...
	Kind string
	// ID is the id of the entity the failure belongs to.
	ID string
	// Ref optionally names the id the entity failed to resolve.
	Ref string
	// Err is the underlying sentinel error.
	Err error
}

// Error implements the error interface.
func (e *EntityError) Error() string {
	if e.Ref != "" {
		return fmt.Sprintf("%s %q: %v: %q", e.Kind, e.ID, e.Err, e.Ref)
	}
	return fmt.Sprintf("%s %q: %v", e.Kind, e.ID, e.Err)
}

// Unwrap exposes the sentinel for errors.Is/As.
func (e *EntityError) Unwrap() error {
	return e.Err
}

// NewEntityError creates an EntityError for the given entity kind and id.
func NewEntityError(kind, id string, err error) *EntityError {
	return &EntityError{Kind: kind, ID: id, Err: err}
}

// NewReferenceError creates an EntityError for a dangling reference from the
// given entity to ref.
func NewReferenceError(kind, id, ref string, err error) *EntityError {
	return &EntityError{Kind: kind, ID: id, Ref: ref, Err: err}
}
