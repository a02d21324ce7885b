package executor

import (
	"context"
	"fmt"
	"reflect"

	"github.com/viant/structology/conv"

	"github.com/gemstack/gemkit/extension"
)

// Listener is invoked once a utility method completes (regardless of whether
// it returned an error or not).  Implementations can log, collect metrics or
// perform any other side-effects they require.
type Listener func(service, method string, input, output interface{})

// Option is used to customise the executor instance.
type Option func(*service)

// WithListener overrides the listener invoked after every executed utility.
// Passing nil disables the callback entirely.
func WithListener(l Listener) Option {
	return func(s *service) {
		s.listener = l
	}
}

// Service invokes model utilities.
type Service interface {
	Execute(ctx context.Context, serviceName, methodName string, input interface{}) (interface{}, error)
}

// service is the concrete implementation of Service.
type service struct {
	utilities *extension.Utilities
	converter *conv.Converter
	listener  Listener
}

// Execute looks up the utility method, converts the supplied input into the
// method's typed input when necessary and returns the typed output.
func (s *service) Execute(ctx context.Context, serviceName, methodName string, input interface{}) (interface{}, error) {
	utility := s.utilities.Lookup(serviceName)
	if utility == nil {
		return nil, fmt.Errorf("%w: %v", ErrServiceNotFound, serviceName)
	}
	signature := utility.Methods().Lookup(methodName)
	if signature == nil {
		return nil, fmt.Errorf("%w: %v.%v", ErrMethodNotFound, serviceName, methodName)
	}
	method, err := utility.Method(methodName)
	if err != nil {
		return nil, err
	}

	typedInput, err := s.typedValue(signature.Input, input)
	if err != nil {
		return nil, fmt.Errorf("failed to convert input for %v.%v: %w", serviceName, methodName, err)
	}
	output := newInstance(signature.Output)

	if err = method(ctx, typedInput, output); err != nil {
		return nil, err
	}
	if s.listener != nil {
		s.listener(serviceName, methodName, typedInput, output)
	}
	return output, nil
}

// typedValue converts a value to the specified type; values already of the
// target type pass through unchanged.
func (s *service) typedValue(aType reflect.Type, value interface{}) (interface{}, error) {
	if value != nil && reflect.TypeOf(value) == aType {
		return value, nil
	}
	instance := newInstance(aType)
	if value == nil {
		return instance, nil
	}
	err := s.converter.Convert(value, instance)
	return instance, err
}

func newInstance(aType reflect.Type) interface{} {
	if aType.Kind() == reflect.Ptr {
		return reflect.New(aType.Elem()).Interface()
	}
	return reflect.New(aType).Interface()
}

// NewService creates a new executor service instance.
func NewService(utilities *extension.Utilities, opts ...Option) Service {
	options := conv.DefaultOptions()
	options.ClonePointerData = true
	options.IgnoreUnmapped = true
	options.AccessUnexported = true

	s := &service{
		utilities: utilities,
		converter: conv.NewConverter(options),
	}

	for _, o := range opts {
		o(s)
	}

	return s
}
