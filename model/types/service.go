package types

// Service is implemented by every registrable model utility.  Utilities are
// pure with respect to their subject model: they either return a report or a
// new model, never mutate the one they were given.
type Service interface {
	Name() string
	Methods() Signatures
	Method(name string) (Executable, error)
}

type Proxy func(base Service) Service
