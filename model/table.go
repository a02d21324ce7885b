package model

import (
	"encoding/json"
	"iter"
)

// Entity is implemented by every id-keyed model entity stored in a Table.
type Entity interface {
	EntityID() string
}

// Table is a generic, id-keyed registry preserving insertion order.  It backs
// the flat entity tables owned by a Model (compartments, species, parameters,
// gene products, unit definitions).
//
// A Table is populated exclusively during loading; after the owning model
// reaches its validated state the table is read-only and therefore safe for
// concurrent lookups without locking.
type Table[T Entity] struct {
	kind  string
	order []string
	items map[string]T
}

// NewTable creates an empty table; kind names the entity kind used in error
// reporting ("species", "parameter", ...).
func NewTable[T Entity](kind string) *Table[T] {
	return &Table[T]{
		kind:  kind,
		items: make(map[string]T),
	}
}

// Insert registers an entity, failing with ErrDuplicateID when its id is
// already taken.
func (t *Table[T]) Insert(entity T) error {
	id := entity.EntityID()
	if _, ok := t.items[id]; ok {
		return NewEntityError(t.kind, id, ErrDuplicateID)
	}
	t.items[id] = entity
	t.order = append(t.order, id)
	return nil
}

// Get returns the entity registered under id or ErrNotFound.
func (t *Table[T]) Get(id string) (T, error) {
	entity, ok := t.items[id]
	if !ok {
		var zero T
		return zero, NewEntityError(t.kind, id, ErrNotFound)
	}
	return entity, nil
}

// Has reports whether id resolves in the table.
func (t *Table[T]) Has(id string) bool {
	_, ok := t.items[id]
	return ok
}

// Len returns the number of registered entities.
func (t *Table[T]) Len() int {
	return len(t.order)
}

// All returns a lazy, restartable sequence over the entities in insertion
// order.
func (t *Table[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, id := range t.order {
			if !yield(t.items[id]) {
				return
			}
		}
	}
}

// IDs returns the entity ids in insertion order.
func (t *Table[T]) IDs() []string {
	ids := make([]string, len(t.order))
	copy(ids, t.order)
	return ids
}

// clone produces a deep copy using the supplied per-entity copier.
func (t *Table[T]) clone(copier func(T) T) *Table[T] {
	if t == nil {
		return nil
	}
	ret := NewTable[T](t.kind)
	for entity := range t.All() {
		_ = ret.Insert(copier(entity))
	}
	return ret
}

// MarshalJSON encodes the table as an ordered array so that two tables with
// the same content always serialise identically.
func (t *Table[T]) MarshalJSON() ([]byte, error) {
	entities := make([]T, 0, len(t.order))
	for entity := range t.All() {
		entities = append(entities, entity)
	}
	return json.Marshal(entities)
}
