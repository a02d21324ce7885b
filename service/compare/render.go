package compare

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gemstack/gemkit/model"
)

// render produces a canonical line-oriented summary of a model, stable
// across loads, suitable for unified diffing.
func render(subject *model.Model) string {
	var b strings.Builder
	fmt.Fprintf(&b, "model %v strict=%v\n", subject.ID, subject.Strict)
	for _, id := range sorted(subject.Compartments.IDs()) {
		fmt.Fprintf(&b, "compartment %v\n", id)
	}
	for _, id := range sorted(subject.Species.IDs()) {
		species, _ := subject.Species.Get(id)
		fmt.Fprintf(&b, "species %v compartment=%v formula=%v\n", id, species.Compartment, species.ChemicalFormula)
	}
	for _, id := range sorted(subject.Reactions.IDs()) {
		reaction, _ := subject.Reactions.Get(id)
		lower, upper, err := subject.Bounds(reaction)
		if err != nil {
			fmt.Fprintf(&b, "reaction %v %v\n", id, equation(reaction))
			continue
		}
		fmt.Fprintf(&b, "reaction %v %v [%v, %v]\n", id, equation(reaction),
			model.FormatValue(lower), model.FormatValue(upper))
	}
	for _, id := range sorted(subject.Objectives.Table.IDs()) {
		objective, _ := subject.Objectives.Table.Get(id)
		active := ""
		if subject.Objectives.ActiveID == id {
			active = " active"
		}
		fmt.Fprintf(&b, "objective %v %v%v\n", id, objective.Type, active)
	}
	return b.String()
}

// equation renders the reaction sides sorted by species id, reversibility as
// the arrow.
func equation(reaction *model.Reaction) string {
	arrow := "-->"
	if reaction.Reversible {
		arrow = "<=>"
	}
	return side(reaction.Reactants) + " " + arrow + " " + side(reaction.Products)
}

func side(refs []model.SpeciesReference) string {
	terms := make([]string, 0, len(refs))
	for _, ref := range refs {
		if ref.Stoichiometry == 1 {
			terms = append(terms, ref.Species)
			continue
		}
		terms = append(terms, fmt.Sprintf("%v %v", model.FormatValue(ref.Stoichiometry), ref.Species))
	}
	sort.Strings(terms)
	return strings.Join(terms, " + ")
}

func sorted(ids []string) []string {
	sort.Strings(ids)
	return ids
}
