package media

import (
	"fmt"
	"sort"

	"github.com/gemstack/gemkit/model"
)

// Media maps exchange-reaction ids to the lower flux bound the medium
// imposes, in the model's flux units.  Negative bounds allow uptake.
type Media map[string]float64

// ReactionIDs returns the exchange-reaction ids in sorted order.
func (m Media) ReactionIDs() []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// apply sets the lower bound of every media exchange reaction on a clone of
// the model.  A bound parameter shared with other reactions is never
// mutated; a dedicated parameter is materialised instead so the remaining
// reactions keep their original bound.
func apply(subject *model.Model, media Media) (*model.Model, error) {
	next := subject.Clone()
	for _, reactionID := range media.ReactionIDs() {
		reaction, err := next.Reactions.Get(reactionID)
		if err != nil {
			return nil, model.NewEntityError("reaction", reactionID, model.ErrNotFound)
		}
		if err := setLowerBound(next, reaction, media[reactionID]); err != nil {
			return nil, err
		}
	}
	if issues := next.Validate(); len(issues) > 0 {
		return nil, issues[0]
	}
	return next, nil
}

func setLowerBound(subject *model.Model, reaction *model.Reaction, value float64) error {
	parameter, err := subject.Parameters.Get(reaction.LowerBound)
	if err != nil {
		return err
	}
	if parameter.Value == value {
		return nil
	}
	if boundUsage(subject, parameter.ID) == 1 {
		parameter.Value = value
		return nil
	}
	dedicated := &model.Parameter{
		ID:       dedicatedBoundID(subject, reaction.ID),
		Value:    value,
		Constant: true,
		SBOTerm:  parameter.SBOTerm,
	}
	if err := subject.AddParameter(dedicated); err != nil {
		return err
	}
	reaction.LowerBound = dedicated.ID
	return nil
}

// boundUsage counts how many bound references resolve to the parameter.
func boundUsage(subject *model.Model, parameterID string) int {
	usage := 0
	for reaction := range subject.Reactions.All() {
		if reaction.LowerBound == parameterID {
			usage++
		}
		if reaction.UpperBound == parameterID {
			usage++
		}
	}
	return usage
}

func dedicatedBoundID(subject *model.Model, reactionID string) string {
	id := reactionID + "_lower_bound"
	for suffix := 2; subject.Parameters.Has(id); suffix++ {
		id = fmt.Sprintf("%v_lower_bound_%v", reactionID, suffix)
	}
	return id
}
