package gemkit

import (
	"context"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/x"

	"github.com/gemstack/gemkit/extension"
	"github.com/gemstack/gemkit/model"
	"github.com/gemstack/gemkit/model/types"
	"github.com/gemstack/gemkit/service/compare"
	"github.com/gemstack/gemkit/service/curation"
	"github.com/gemstack/gemkit/service/executor"
	"github.com/gemstack/gemkit/service/knockout"
	"github.com/gemstack/gemkit/service/loader"
	"github.com/gemstack/gemkit/service/maintenance"
	"github.com/gemstack/gemkit/service/media"
	"github.com/gemstack/gemkit/service/meta"
	"github.com/gemstack/gemkit/service/names"
	"github.com/gemstack/gemkit/service/summary"
)

type Service struct {
	metaService       *meta.Service
	loader            *loader.Service
	utilities         *extension.Utilities
	executor          executor.Service
	executorOptions   []executor.Option
	extensionTypes    []*x.Type
	extensionServices []types.Service
	metaBaseURL       string
	metaFsOptions     []storage.Option
}

func (s *Service) init(options []Option) {
	for _, option := range options {
		option(s)
	}
	s.ensureBaseSetup()
	s.utilities = extension.NewUtilities(s.extensionTypes...)
	s.utilities.Register(curation.New())
	s.utilities.Register(media.New(s.metaService))
	s.utilities.Register(names.New())
	s.utilities.Register(maintenance.New())
	s.utilities.Register(compare.New())
	s.utilities.Register(knockout.New())
	s.utilities.Register(summary.New())
	for _, service := range s.extensionServices {
		s.utilities.Register(service)
	}
	s.executor = executor.NewService(s.utilities, s.executorOptions...)
	s.loader = loader.New(loader.WithMetaService(s.metaService))
}

func (s *Service) ensureBaseSetup() {
	if s.metaService == nil {
		s.metaService = meta.New(afs.New(), s.metaBaseURL, s.metaFsOptions...)
	}
}

// Loader returns the SBML model loader.
func (s *Service) Loader() *loader.Service {
	return s.loader
}

// Utilities returns the utility registry.
func (s *Service) Utilities() *extension.Utilities {
	return s.utilities
}

// LoadModel loads, cross-references and validates the model at the given
// location.
func (s *Service) LoadModel(ctx context.Context, location string) (*model.Model, []loader.Warning, error) {
	return s.loader.Load(ctx, location)
}

// Execute runs a registered utility method, converting the input into the
// method's typed input when necessary.
func (s *Service) Execute(ctx context.Context, serviceName, methodName string, input interface{}) (interface{}, error) {
	return s.executor.Execute(ctx, serviceName, methodName, input)
}

func (s *Service) RegisterExtensionTypes(types ...*x.Type) {
	for i := range types {
		s.utilities.Types().Register(types[i])
	}
}

func (s *Service) RegisterExtensionServices(services ...types.Service) {
	for i := range services {
		s.utilities.Register(services[i])
	}
}

func New(options ...Option) *Service {
	ret := &Service{}
	ret.init(options)
	return ret
}
