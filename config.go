package gemkit

import "fmt"

// Config is a serialisable representation of the facade configuration. It
// can be populated from JSON or YAML. The zero-value is useful – all nested
// fields inherit their package defaults.
type Config struct {
	Meta    MetaConfig    `json:"meta" yaml:"meta"`
	Tracing TracingConfig `json:"tracing" yaml:"tracing"`
}

type MetaConfig struct {
	// BaseURL is prepended to relative model and media locations.
	BaseURL string `json:"baseURL" yaml:"baseURL"`
}

type TracingConfig struct {
	ServiceName string `json:"serviceName" yaml:"serviceName"`
	Version     string `json:"version" yaml:"version"`
	// OutputFile receives exported spans; empty means stdout.
	OutputFile string `json:"outputFile" yaml:"outputFile"`
}

// DefaultConfig returns a Config populated with the package defaults.
// Callers may modify the returned struct before passing it to NewFromConfig.
func DefaultConfig() *Config {
	return &Config{
		Tracing: TracingConfig{
			ServiceName: "gemkit",
		},
	}
}

// Validate returns an error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.Tracing.OutputFile != "" && c.Tracing.ServiceName == "" {
		return fmt.Errorf("tracing.serviceName must be set when tracing.outputFile is used")
	}
	return nil
}

// NewFromConfig builds a service from a serialisable configuration; extra
// options are applied after the configuration.
func NewFromConfig(config *Config, options ...Option) (*Service, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	base := []Option{WithMetaBaseURL(config.Meta.BaseURL)}
	if config.Tracing.ServiceName != "" {
		base = append(base, WithTracing(config.Tracing.ServiceName, config.Tracing.Version, config.Tracing.OutputFile))
	}
	return New(append(base, options...)...), nil
}
