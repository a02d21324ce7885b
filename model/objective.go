package model

// ObjectiveType enumerates the optimisation senses of an objective.
type ObjectiveType string

const (
	ObjectiveMaximize ObjectiveType = "maximize"
	ObjectiveMinimize ObjectiveType = "minimize"
)

// IsValid reports whether the objective type is supported.
func (t ObjectiveType) IsValid() bool {
	return t == ObjectiveMaximize || t == ObjectiveMinimize
}

// FluxObjective weights one reaction's flux within an objective.
type FluxObjective struct {
	Reaction    string  `json:"reaction" yaml:"reaction"`
	Coefficient float64 `json:"coefficient" yaml:"coefficient"`
}

// Objective is a weighted sum of reaction fluxes to maximize or minimize.
type Objective struct {
	ID             string          `json:"id" yaml:"id"`
	Type           ObjectiveType   `json:"type" yaml:"type"`
	FluxObjectives []FluxObjective `json:"fluxObjectives,omitempty" yaml:"fluxObjectives,omitempty"`
}

// EntityID implements Entity.
func (o *Objective) EntityID() string { return o.ID }

// Value computes the weighted sum of the referenced reaction fluxes.
// Reactions absent from the assignment contribute zero.
func (o *Objective) Value(fluxes map[string]float64) float64 {
	total := 0.0
	for _, fo := range o.FluxObjectives {
		total += fo.Coefficient * fluxes[fo.Reaction]
	}
	return total
}

// Clone returns a deep copy of the objective.
func (o *Objective) Clone() *Objective {
	if o == nil {
		return nil
	}
	ret := *o
	if o.FluxObjectives != nil {
		ret.FluxObjectives = make([]FluxObjective, len(o.FluxObjectives))
		copy(ret.FluxObjectives, o.FluxObjectives)
	}
	return &ret
}

// Objectives owns a model's objective table plus the optional active
// objective selection.
type Objectives struct {
	Table    *Table[*Objective] `json:"objectives" yaml:"objectives"`
	ActiveID string             `json:"activeObjective,omitempty" yaml:"activeObjective,omitempty"`
}

// NewObjectives creates an empty objective list.
func NewObjectives() *Objectives {
	return &Objectives{Table: NewTable[*Objective]("objective")}
}

// SetActive selects the active objective, failing with ErrNotFound when the
// id is absent.
func (o *Objectives) SetActive(id string) error {
	if !o.Table.Has(id) {
		return NewEntityError("objective", id, ErrNotFound)
	}
	o.ActiveID = id
	return nil
}

// Active returns the active objective or nil when none is selected.
func (o *Objectives) Active() *Objective {
	if o.ActiveID == "" {
		return nil
	}
	objective, err := o.Table.Get(o.ActiveID)
	if err != nil {
		return nil
	}
	return objective
}

// ActiveObjectiveValue computes the active objective's value for the given
// flux assignment; it is used to validate downstream solver output, not to
// solve.  The call fails with ErrNotFound when no active objective is set.
func (o *Objectives) ActiveObjectiveValue(fluxes map[string]float64) (float64, error) {
	active := o.Active()
	if active == nil {
		return 0, NewEntityError("objective", o.ActiveID, ErrNotFound)
	}
	return active.Value(fluxes), nil
}

// Clone returns a deep copy of the objective list.
func (o *Objectives) Clone() *Objectives {
	if o == nil {
		return nil
	}
	ret := NewObjectives()
	ret.ActiveID = o.ActiveID
	for objective := range o.Table.All() {
		_ = ret.Table.Insert(objective.Clone())
	}
	return ret
}
