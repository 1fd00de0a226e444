package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config represents the settings that can be supplied to the utraverse
// binary through a YAML file. Command line flags take precedence over any
// value loaded from the file.
type Config struct {
	Benchmark BenchmarkConfig `yaml:"benchmark"`
	Store     StoreConfig     `yaml:"store"`
	Server    ServerConfig    `yaml:"server"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// BenchmarkConfig holds the workload parameters.
type BenchmarkConfig struct {
	// Vertices and Edges are pointers so that an explicit zero can be told
	// apart from a missing value, which triggers the interactive prompt.
	Vertices      *int  `yaml:"vertices"`
	Edges         *int  `yaml:"edges"`
	Start         int   `yaml:"start"`
	Seed          int64 `yaml:"seed"`
	ReductionSize int   `yaml:"reduction_size"`
	Workers       int   `yaml:"workers"`
	Repeats       int   `yaml:"repeats"`
}

// StoreConfig selects the measurement store.
type StoreConfig struct {
	// Supported schemes: in-memory:// and postgresql://.
	URI string `yaml:"uri"`
}

// ServerConfig holds the settings used in serve mode.
type ServerConfig struct {
	ListenAddr string `yaml:"listen_addr"`

	// A nil MetricsAddr keeps the default address while an explicit empty
	// string disables the metrics endpoint.
	MetricsAddr *string `yaml:"metrics_addr"`

	MaxVertices      int `yaml:"max_vertices"`
	MaxReductionSize int `yaml:"max_reduction_size"`
	MaxRepeats       int `yaml:"max_repeats"`
	MaxWorkers       int `yaml:"max_workers"`
}

// LoggingConfig defines the logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // Any level understood by logrus.ParseLevel.
	Format string `yaml:"format"` // "text" or "json".
}

// LoadConfig loads configuration from a YAML file.
func LoadConfig(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate checks that every configured value is usable.
func (c *Config) Validate() error {
	var err error

	b := c.Benchmark
	if b.Vertices != nil && *b.Vertices < 0 {
		err = multierror.Append(err, fmt.Errorf("invalid value for benchmark.vertices: %d", *b.Vertices))
	}

	if b.Edges != nil && *b.Edges < 0 {
		err = multierror.Append(err, fmt.Errorf("invalid value for benchmark.edges: %d", *b.Edges))
	}

	if b.Start < 0 {
		err = multierror.Append(err, fmt.Errorf("invalid value for benchmark.start: %d", b.Start))
	}

	if b.ReductionSize < 0 {
		err = multierror.Append(err, fmt.Errorf("invalid value for benchmark.reduction_size: %d", b.ReductionSize))
	}

	if b.Workers < 0 {
		err = multierror.Append(err, fmt.Errorf("invalid value for benchmark.workers: %d", b.Workers))
	}

	if b.Repeats < 0 {
		err = multierror.Append(err, fmt.Errorf("invalid value for benchmark.repeats: %d", b.Repeats))
	}

	for name, limit := range map[string]int{
		"max_vertices":       c.Server.MaxVertices,
		"max_reduction_size": c.Server.MaxReductionSize,
		"max_repeats":        c.Server.MaxRepeats,
		"max_workers":        c.Server.MaxWorkers,
	} {
		if limit < 0 {
			err = multierror.Append(err, fmt.Errorf("invalid value for server.%s: %d", name, limit))
		}
	}

	if c.Logging.Level != "" {
		if _, lvlErr := logrus.ParseLevel(c.Logging.Level); lvlErr != nil {
			err = multierror.Append(err, fmt.Errorf("invalid value for logging.level: %w", lvlErr))
		}
	}

	switch strings.ToLower(c.Logging.Format) {
	case "", "text", "json":
	default:
		err = multierror.Append(err, fmt.Errorf("invalid value for logging.format: %q", c.Logging.Format))
	}

	return err
}

// ConfigureLogger applies the logging settings to l. Empty settings leave
// the logger untouched.
func (c LoggingConfig) ConfigureLogger(l *logrus.Logger) error {
	if c.Level != "" {
		lvl, err := logrus.ParseLevel(c.Level)
		if err != nil {
			return err
		}

		l.SetLevel(lvl)
	}

	if strings.EqualFold(c.Format, "json") {
		l.SetFormatter(new(logrus.JSONFormatter))
	}

	return nil
}
