package extension

import (
	"sync"

	"github.com/viant/x"

	"github.com/gemstack/gemkit/model/types"
)

// Utilities provides the model utility registry
type Utilities struct {
	types    *Types
	services map[string]types.Service
	mux      sync.RWMutex
}

func (s *Utilities) Types() *Types {
	return s.types
}

// Lookup returns a utility service by name
func (s *Utilities) Lookup(name string) types.Service {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.services[name]
}

// Register registers a utility service
func (s *Utilities) Register(service types.Service) {
	s.mux.Lock()
	defer s.mux.Unlock()

	if typer, ok := service.(DataTypeIniter); ok {
		typer.InitTypes(s.types)
	}
	s.services[service.Name()] = service
}

// Names returns the registered utility names
func (s *Utilities) Names() []string {
	s.mux.RLock()
	defer s.mux.RUnlock()
	names := make([]string, 0, len(s.services))
	for name := range s.services {
		names = append(names, name)
	}
	return names
}

// DataTypeIniter lets a utility register its types on registration.
type DataTypeIniter interface {
	InitTypes(types *Types)
}

// NewUtilities creates a new utility registry
func NewUtilities(goTypes ...*x.Type) *Utilities {
	ret := &Utilities{
		types:    NewTypes(),
		services: make(map[string]types.Service),
	}
	for _, t := range goTypes {
		if t != nil {
			ret.types.Register(t)
		}
	}
	return ret
}
