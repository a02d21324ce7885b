package media

import (
	"context"
	"reflect"
	"strings"

	"github.com/gemstack/gemkit/model"
	"github.com/gemstack/gemkit/model/types"
	"github.com/gemstack/gemkit/service/meta"
	"github.com/viant/afs"
	"github.com/viant/toolbox"
)

const name = "media"

// Service loads growth-media definitions and applies them to models.  A
// medium is a map of exchange-reaction ids to uptake lower bounds; applying
// one produces a new model, the subject is never mutated.
type Service struct {
	metaService *meta.Service
}

// New creates a media service
func New(metaService *meta.Service) *Service {
	if metaService == nil {
		metaService = meta.New(afs.New(), "")
	}
	return &Service{metaService: metaService}
}

// LoadInput locates a media definition document (YAML or JSON).
type LoadInput struct {
	URL string `json:"url"`
}

type LoadOutput struct {
	Media Media `json:"media"`
}

// CleanInput pairs a medium with the model it is meant for.
type CleanInput struct {
	Model *model.Model `json:"model"`
	Media Media        `json:"media"`
}

// CleanOutput carries the medium restricted to exchange reactions the model
// actually has; Removed lists the dropped reaction ids in sorted order.
type CleanOutput struct {
	Media   Media    `json:"media"`
	Removed []string `json:"removed,omitempty"`
}

type ApplyInput struct {
	Model *model.Model `json:"model"`
	Media Media        `json:"media"`
}

// ApplyOutput carries a new model with the medium's uptake bounds in place.
type ApplyOutput struct {
	Model *model.Model `json:"model"`
}

// Name returns the service name
func (s *Service) Name() string {
	return name
}

// Methods returns the service methods
func (s *Service) Methods() types.Signatures {
	return []types.Signature{
		{
			Name:        "load",
			Description: "Loads a media definition from a YAML or JSON document.",
			Input:       reflect.TypeOf(&LoadInput{}),
			Output:      reflect.TypeOf(&LoadOutput{}),
		},
		{
			Name:        "clean",
			Description: "Removes media entries whose exchange reaction is absent from the model.",
			Input:       reflect.TypeOf(&CleanInput{}),
			Output:      reflect.TypeOf(&CleanOutput{}),
		},
		{
			Name:        "apply",
			Description: "Applies a medium's uptake bounds to a model, returning a new model.",
			Input:       reflect.TypeOf(&ApplyInput{}),
			Output:      reflect.TypeOf(&ApplyOutput{}),
		},
	}
}

// Method returns the specified method
func (s *Service) Method(name string) (types.Executable, error) {
	switch strings.ToLower(name) {
	case "load":
		return s.load, nil
	case "clean":
		return s.clean, nil
	case "apply":
		return s.apply, nil
	default:
		return nil, types.NewMethodNotFoundError(name)
	}
}

func (s *Service) load(ctx context.Context, in, out interface{}) error {
	input, ok := in.(*LoadInput)
	if !ok {
		return types.NewInvalidInputError(in)
	}
	output, ok := out.(*LoadOutput)
	if !ok {
		return types.NewInvalidOutputError(out)
	}
	var raw map[string]interface{}
	if err := s.metaService.Load(ctx, input.URL, &raw); err != nil {
		return err
	}
	media := Media{}
	if err := toolbox.DefaultConverter.AssignConverted(&media, raw); err != nil {
		return err
	}
	output.Media = media
	return nil
}

func (s *Service) clean(ctx context.Context, in, out interface{}) error {
	input, ok := in.(*CleanInput)
	if !ok {
		return types.NewInvalidInputError(in)
	}
	output, ok := out.(*CleanOutput)
	if !ok {
		return types.NewInvalidOutputError(out)
	}
	output.Media = Media{}
	for _, reactionID := range input.Media.ReactionIDs() {
		if input.Model.Reactions.Has(reactionID) {
			output.Media[reactionID] = input.Media[reactionID]
			continue
		}
		output.Removed = append(output.Removed, reactionID)
	}
	return nil
}

func (s *Service) apply(ctx context.Context, in, out interface{}) error {
	input, ok := in.(*ApplyInput)
	if !ok {
		return types.NewInvalidInputError(in)
	}
	output, ok := out.(*ApplyOutput)
	if !ok {
		return types.NewInvalidOutputError(out)
	}
	next, err := apply(input.Model, input.Media)
	if err != nil {
		return err
	}
	output.Model = next
	return nil
}
