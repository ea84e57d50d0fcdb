// Package config holds the settings of the hopcroftkarp command: where the
// graph comes from, how it is encoded, which augmenting-path strategy to use
// and how to log and export metrics.
//
// Settings are resolved in three layers, later ones winning:
//
//	Default()  →  YAML file (Load)  →  command-line flags
//
// Validate reports every invalid field at once.
package config

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/bimatch/matching"
	"github.com/katalvlaran/bimatch/reader"
)

// Sentinel errors reported by Validate.
var (
	ErrInvalidFormat   = errors.New("config: invalid input format")
	ErrInvalidStrategy = errors.New("config: invalid strategy")
	ErrInvalidLogLevel = errors.New("config: invalid log level")
)

// StdinPath selects standard input as the graph source.
const StdinPath = "-"

// Config is the full command configuration.
type Config struct {
	// Input is a file path or StdinPath.
	Input string `yaml:"input"`
	// Format is one of matrix, edges, yaml.
	Format string `yaml:"format"`
	// Strategy is iterative or recursive.
	Strategy string `yaml:"strategy"`
	// PrintPairs also prints the matched pairs after the size.
	PrintPairs bool `yaml:"print_pairs"`
	// LogLevel is a zap level name (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
	// MetricsFile, when set, receives Prometheus text exposition after the run.
	MetricsFile string `yaml:"metrics_file"`
}

// Default returns the configuration matching the original program: read a
// matrix from stdin and print only the size.
func Default() Config {
	return Config{
		Input:    StdinPath,
		Format:   string(reader.FormatMatrix),
		Strategy: matching.Iterative.String(),
		LogLevel: zapcore.WarnLevel.String(),
	}
}

// Load reads a YAML file over the defaults. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every field and combines all problems into one error.
func (c Config) Validate() error {
	var err error
	if _, ferr := reader.ParseFormat(c.Format); ferr != nil {
		err = multierr.Append(err, fmt.Errorf("%w: %w", ErrInvalidFormat, ferr))
	}
	if _, serr := matching.ParseStrategy(c.Strategy); serr != nil {
		err = multierr.Append(err, fmt.Errorf("%w: %w", ErrInvalidStrategy, serr))
	}
	if _, lerr := zapcore.ParseLevel(c.LogLevel); lerr != nil {
		err = multierr.Append(err, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel))
	}

	return err
}

// InputFormat returns the parsed Format. Call Validate first.
func (c Config) InputFormat() reader.Format {
	f, _ := reader.ParseFormat(c.Format)
	return f
}

// MatchingStrategy returns the parsed Strategy. Call Validate first.
func (c Config) MatchingStrategy() matching.Strategy {
	s, _ := matching.ParseStrategy(c.Strategy)
	return s
}

// Logger builds a console zap logger writing to stderr at LogLevel.
func (c Config) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	return zc.Build()
}
