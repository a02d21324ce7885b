package names

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/gemstack/gemkit/model"
	"github.com/gemstack/gemkit/model/types"
)

const name = "names"

// compartment suffixes recognised on species display names
var knownSuffixes = []string{"[c]", "[e]"}

// Service finds and repairs species display names that carry a redundant
// compartment suffix, e.g. "D-Glucose [c]".
type Service struct{}

// New creates a names service
func New() *Service {
	return &Service{}
}

// Name returns the service name
func (s *Service) Name() string {
	return name
}

type FindInput struct {
	Model *model.Model `json:"model"`
}

// FindOutput maps species ids to their suffixed display names, in model
// order.
type FindOutput struct {
	Names map[string]string `json:"names,omitempty"`
}

type FixInput struct {
	Model *model.Model `json:"model"`
}

// FixOutput carries a new model with the suffixes trimmed; Fixed lists the
// affected species ids in model order.
type FixOutput struct {
	Model *model.Model `json:"model"`
	Fixed []string     `json:"fixed,omitempty"`
}

// Methods returns the service methods
func (s *Service) Methods() types.Signatures {
	return []types.Signature{
		{
			Name:        "find",
			Description: "Finds species display names carrying a compartment suffix.",
			Input:       reflect.TypeOf(&FindInput{}),
			Output:      reflect.TypeOf(&FindOutput{}),
		},
		{
			Name:        "fix",
			Description: "Trims compartment suffixes from species display names, returning a new model.",
			Input:       reflect.TypeOf(&FixInput{}),
			Output:      reflect.TypeOf(&FixOutput{}),
		},
	}
}

// Method returns the specified method
func (s *Service) Method(name string) (types.Executable, error) {
	switch strings.ToLower(name) {
	case "find":
		return s.find, nil
	case "fix":
		return s.fix, nil
	default:
		return nil, types.NewMethodNotFoundError(name)
	}
}

func (s *Service) find(ctx context.Context, in, out interface{}) error {
	input, ok := in.(*FindInput)
	if !ok {
		return types.NewInvalidInputError(in)
	}
	output, ok := out.(*FindOutput)
	if !ok {
		return types.NewInvalidOutputError(out)
	}
	for species := range input.Model.Species.All() {
		if HasSuffix(species.Name) {
			if output.Names == nil {
				output.Names = map[string]string{}
			}
			output.Names[species.ID] = species.Name
		}
	}
	return nil
}

func (s *Service) fix(ctx context.Context, in, out interface{}) error {
	input, ok := in.(*FixInput)
	if !ok {
		return types.NewInvalidInputError(in)
	}
	output, ok := out.(*FixOutput)
	if !ok {
		return types.NewInvalidOutputError(out)
	}
	next := input.Model.Clone()
	for species := range next.Species.All() {
		if !HasSuffix(species.Name) {
			continue
		}
		trimmed, err := Trim(species.Name)
		if err != nil {
			return model.NewEntityError("species", species.ID, err)
		}
		species.Name = trimmed
		output.Fixed = append(output.Fixed, species.ID)
	}
	output.Model = next
	return nil
}

// HasSuffix reports whether a display name ends with a recognised
// compartment suffix.
func HasSuffix(displayName string) bool {
	for _, suffix := range knownSuffixes {
		if strings.HasSuffix(displayName, suffix) {
			return true
		}
	}
	return false
}

// Trim removes the compartment suffix and any whitespace preceding it.
func Trim(displayName string) (string, error) {
	for _, suffix := range knownSuffixes {
		if strings.HasSuffix(displayName, suffix) {
			return strings.TrimRight(strings.TrimSuffix(displayName, suffix), " "), nil
		}
	}
	return "", fmt.Errorf("no compartment suffix in %q", displayName)
}
