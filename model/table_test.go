package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable_InsertGet(t *testing.T) {
	table := NewTable[*Compartment]("compartment")
	assert.NoError(t, table.Insert(&Compartment{ID: "c", Constant: true}))
	assert.NoError(t, table.Insert(&Compartment{ID: "e", Constant: true}))

	err := table.Insert(&Compartment{ID: "c"})
	assert.ErrorIs(t, err, ErrDuplicateID)
	var entityErr *EntityError
	if assert.ErrorAs(t, err, &entityErr) {
		assert.Equal(t, "compartment", entityErr.Kind)
		assert.Equal(t, "c", entityErr.ID)
	}

	compartment, err := table.Get("c")
	assert.NoError(t, err)
	assert.True(t, compartment.Constant)

	_, err = table.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.True(t, table.Has("e"))
	assert.False(t, table.Has("missing"))
	assert.Equal(t, 2, table.Len())
}

func TestTable_Order(t *testing.T) {
	table := NewTable[*Species]("species")
	for _, id := range []string{"b", "a", "c"} {
		assert.NoError(t, table.Insert(&Species{ID: id, Compartment: "c"}))
	}
	assert.Equal(t, []string{"b", "a", "c"}, table.IDs())

	var visited []string
	for species := range table.All() {
		visited = append(visited, species.ID)
	}
	assert.Equal(t, []string{"b", "a", "c"}, visited)
}

func TestTable_MarshalJSON(t *testing.T) {
	table := NewTable[*Compartment]("compartment")
	assert.NoError(t, table.Insert(&Compartment{ID: "e"}))
	assert.NoError(t, table.Insert(&Compartment{ID: "c", Constant: true}))

	data, err := json.Marshal(table)
	assert.NoError(t, err)
	assert.JSONEq(t, `[{"id":"e","constant":false},{"id":"c","constant":true}]`, string(data))
}
