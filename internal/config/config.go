// Package config loads the parameters of the growth factor benchmark from config files, environment variables and
// command line flags, in increasing order of precedence.
package config

import (
	"path/filepath"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/spf13/cast"
	flag "github.com/spf13/pflag"

	"github.com/iotaledger/hive.go/ierrors"
)

const (
	// EnvPrefix is the prefix of the environment variables that are mapped onto parameters,
	// e.g. GROWTHBENCH_REPORT_PATH sets report.path.
	EnvPrefix = "GROWTHBENCH_"

	// FlagConfig is the name of the flag that points to an optional JSON or YAML config file.
	FlagConfig = "config"
)

var (
	// ErrUnknownConfigFormat is returned if the format of the config file is unknown.
	ErrUnknownConfigFormat = ierrors.New("unknown config file format")
	// ErrInvalidParameter is returned if a loaded parameter is out of range.
	ErrInvalidParameter = ierrors.New("invalid parameter")
)

// DefaultGrowthFactors are the factors 1.1, 1.2, ..., 2.0.
var DefaultGrowthFactors = []string{"1.1", "1.2", "1.3", "1.4", "1.5", "1.6", "1.7", "1.8", "1.9", "2.0"}

// Config holds the parameters of a benchmark run.
type Config struct {
	// GrowthFactors are the growth factors that are benchmarked.
	GrowthFactors []string `koanf:"factors"`
	// Pushes is the amount of elements pushed onto every stack.
	Pushes int `koanf:"pushes"`
	// Rounds is the amount of times every case is repeated.
	Rounds int `koanf:"rounds"`
	// Workers is the amount of cases that run in parallel.
	Workers int `koanf:"workers"`
	// Baselines enables the cases for container/list and the gods array stack.
	Baselines bool `koanf:"baselines"`

	Report ReportConfig `koanf:"report"`
	Log    LogConfig    `koanf:"log"`
}

// ReportConfig configures where the results are stored.
type ReportConfig struct {
	// Path is the file the results are written to, no file is written if it is empty.
	Path string `koanf:"path"`
	// Format is one of yaml, toml or json. It is derived from the extension of Path if empty.
	Format string `koanf:"format"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level string `koanf:"level"`
}

// NewFlagSet returns the flags of the benchmark with their default values.
func NewFlagSet() *flag.FlagSet {
	flagSet := flag.NewFlagSet("growthbench", flag.ContinueOnError)
	flagSet.SortFlags = false

	flagSet.String(FlagConfig, "", "path to a JSON or YAML config file")
	flagSet.StringSlice("factors", DefaultGrowthFactors, "growth factors to benchmark")
	flagSet.Int("pushes", 100_000, "amount of elements pushed onto every stack")
	flagSet.Int("rounds", 1, "amount of repetitions of every case")
	flagSet.Int("workers", 1, "amount of cases that run in parallel")
	flagSet.Bool("baselines", true, "benchmark container/list and the gods array stack as well")
	flagSet.String("report.path", "", "file the results are written to")
	flagSet.String("report.format", "", "format of the report file (yaml, toml or json)")
	flagSet.String("log.level", "info", "log level (trace, debug, info, warning, error)")

	return flagSet
}

// Load parses the given command line arguments and merges them with the config file and the environment variables.
func Load(args []string) (*Config, error) {
	flagSet := NewFlagSet()
	if err := flagSet.Parse(args); err != nil {
		return nil, err
	}

	k := koanf.New(".")

	if filePath, _ := flagSet.GetString(FlagConfig); filePath != "" {
		parser, err := fileParser(filePath)
		if err != nil {
			return nil, err
		}

		if err := k.Load(file.Provider(filePath), parser); err != nil {
			return nil, ierrors.Wrapf(err, "failed to load config file %s", filePath)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil); err != nil {
		return nil, ierrors.Wrap(err, "failed to load environment variables")
	}

	// defaults of flags are only used for keys that were not set by the file or the environment
	if err := k.Load(posflag.Provider(flagSet, ".", k), nil); err != nil {
		return nil, ierrors.Wrap(err, "failed to load flags")
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, ierrors.Wrap(err, "failed to unmarshal config")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Factors returns the parsed growth factors.
func (c *Config) Factors() ([]float32, error) {
	factors := make([]float32, 0, len(c.GrowthFactors))
	for _, rawFactor := range c.GrowthFactors {
		factor, err := cast.ToFloat32E(strings.TrimSpace(rawFactor))
		if err != nil {
			return nil, ierrors.Wrapf(ErrInvalidParameter, "growth factor %q: %s", rawFactor, err)
		}

		if factor < 1 {
			return nil, ierrors.Wrapf(ErrInvalidParameter, "growth factor %v must be >= 1", factor)
		}

		factors = append(factors, factor)
	}

	return factors, nil
}

func (c *Config) validate() error {
	if len(c.GrowthFactors) == 0 {
		return ierrors.Wrap(ErrInvalidParameter, "at least one growth factor is required")
	}

	if _, err := c.Factors(); err != nil {
		return err
	}

	for name, value := range map[string]int{"pushes": c.Pushes, "rounds": c.Rounds, "workers": c.Workers} {
		if value <= 0 {
			return ierrors.Wrapf(ErrInvalidParameter, "%s must be positive, got %d", name, value)
		}
	}

	return nil
}

func fileParser(filePath string) (koanf.Parser, error) {
	switch filepath.Ext(filePath) {
	case ".json":
		return json.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, ierrors.Wrapf(ErrUnknownConfigFormat, "file %s", filePath)
	}
}
