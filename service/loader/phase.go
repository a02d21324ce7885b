package loader

// Phase tracks the loader state machine.  Each transition may fail; failure
// halts the load.  PhaseValidated is terminal – re-loading requires a fresh
// parse.
type Phase int

const (
	PhaseEmpty Phase = iota
	PhaseUnitsLoaded
	PhaseEntitiesLoaded
	PhaseReactionsLoaded
	PhaseObjectivesLoaded
	PhaseValidated
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseEmpty:
		return "empty"
	case PhaseUnitsLoaded:
		return "unitsLoaded"
	case PhaseEntitiesLoaded:
		return "entitiesLoaded"
	case PhaseReactionsLoaded:
		return "reactionsLoaded"
	case PhaseObjectivesLoaded:
		return "objectivesLoaded"
	case PhaseValidated:
		return "validated"
	}
	return "unknown"
}

// Warning reports a recoverable load-time issue keyed on model entity
// identity, e.g. a duplicate flux objective entry.
type Warning struct {
	Kind    string `json:"kind"`
	ID      string `json:"id"`
	Message string `json:"message"`
}
