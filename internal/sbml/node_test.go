package sbml

import (
	"math"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
)

const snippet = `<listOfSpecies xmlns:fbc="http://www.sbml.org/sbml/level3/version1/fbc/version2">
  <species id="M_glc_c" compartment="c" constant="false" fbc:chemicalFormula="C6H12O6"/>
  <species id="M_h2o_c" compartment="c" boundaryCondition="true"/>
  <parameter id="plus_inf" value="INF"/>
  <parameter id="bad" value="unbounded" exponent="two"/>
</listOfSpecies>`

func parseSnippet(t *testing.T) *Node {
	t.Helper()
	document := etree.NewDocument()
	assert.NoError(t, document.ReadFromString(snippet))
	return FromElement(document.Root())
}

func TestNode_AttrValue(t *testing.T) {
	root := parseSnippet(t)
	species := root.Child("species")
	if !assert.NotNil(t, species) {
		return
	}
	value, ok := species.AttrValue("id")
	assert.True(t, ok)
	assert.Equal(t, "M_glc_c", value)

	// namespace prefixed attributes resolve by local name
	value, ok = species.AttrValue("chemicalFormula")
	assert.True(t, ok)
	assert.Equal(t, "C6H12O6", value)

	_, ok = species.AttrValue("missing")
	assert.False(t, ok)
	assert.Equal(t, "fallback", species.AttrOrDefault("missing", "fallback"))

	_, err := species.RequiredAttr("missing")
	assert.Error(t, err)
}

func TestNode_BoolAttr(t *testing.T) {
	root := parseSnippet(t)
	species := root.Children("species")
	if !assert.Len(t, species, 2) {
		return
	}
	constant, err := species[0].BoolAttr("constant", true)
	assert.NoError(t, err)
	assert.False(t, constant)

	// absent attribute falls back to the default
	constant, err = species[0].BoolAttr("boundaryCondition", false)
	assert.NoError(t, err)
	assert.False(t, constant)

	boundary, err := species[1].BoolAttr("boundaryCondition", false)
	assert.NoError(t, err)
	assert.True(t, boundary)
}

func TestNode_FloatAttr(t *testing.T) {
	root := parseSnippet(t)
	parameters := root.Children("parameter")
	if !assert.Len(t, parameters, 2) {
		return
	}
	value, ok, err := parameters[0].FloatAttr("value")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, math.IsInf(value, 1))

	_, ok, err = parameters[1].FloatAttr("value")
	assert.True(t, ok)
	assert.Error(t, err)

	_, ok, err = parameters[0].FloatAttr("missing")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestNode_IntAttr(t *testing.T) {
	root := parseSnippet(t)
	parameters := root.Children("parameter")
	if !assert.Len(t, parameters, 2) {
		return
	}
	value, err := parameters[0].IntAttr("exponent", 1)
	assert.NoError(t, err)
	assert.Equal(t, 1, value)

	_, err = parameters[1].IntAttr("exponent", 1)
	assert.Error(t, err)
}

func TestNode_Items(t *testing.T) {
	root := parseSnippet(t)
	var tags []string
	err := root.Items(func(index int, node *Node) error {
		tags = append(tags, node.Name())
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{"species", "species", "parameter", "parameter"}, tags)
}
