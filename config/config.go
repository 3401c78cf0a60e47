// Package config resolves the primes command options from flags,
// PRIMES_* environment variables and an optional config file.
//
// Precedence, highest first: explicitly set flag, environment variable,
// config file, flag default.
package config

import (
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/primes/sieve"
)

// EnvPrefix prefixes every environment variable, e.g. PRIMES_END.
const EnvPrefix = "PRIMES"

// Flag keys, shared by pflag, viper and the mapstructure tags below.
const (
	KeyStart     = "start"
	KeyEnd       = "end"
	KeyNth       = "nth"
	KeyAlgorithm = "algorithm"
	KeyVerbose   = "verbose"
	KeyCompare   = "compare"
	KeyWorkers   = "workers"
	KeyLogLevel  = "log-level"
	KeyConfig    = "config"
	KeyVersion   = "version"
)

// ErrInvalidConfig is returned for option values that cannot be used.
var ErrInvalidConfig = errors.New("config: invalid option")

// Config is the resolved set of options for one invocation.
type Config struct {
	Start      int    `mapstructure:"start"`
	End        int    `mapstructure:"end"`
	Nth        int    `mapstructure:"nth"`
	Algorithm  string `mapstructure:"algorithm"`
	Verbose    bool   `mapstructure:"verbose"`
	Compare    bool   `mapstructure:"compare"`
	Workers    int    `mapstructure:"workers"`
	LogLevel   string `mapstructure:"log-level"`
	ConfigFile string `mapstructure:"config"`
	Version    bool   `mapstructure:"version"`
}

// NewFlagSet declares every option with its default and shorthand.
// Usage and parse errors are written to out.
func NewFlagSet(name string, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	fs.IntP(KeyStart, "s", 2, "lower bound of the range (inclusive)")
	fs.IntP(KeyEnd, "e", 100, "upper bound of the range (inclusive)")
	fs.IntP(KeyNth, "n", 0, "print the nth prime (zero-based) below one million; 0 disables")
	fs.StringP(KeyAlgorithm, "a", sieve.Default.String(), "algorithms: brute, eratosthenes, euler, sundaram, atkin")
	fs.BoolP(KeyVerbose, "v", false, "print every prime instead of only the count")
	fs.BoolP(KeyCompare, "c", false, "run all algorithms and check that they agree")
	fs.IntP(KeyWorkers, "w", len(sieve.Algorithms()), "worker pool size for --compare")
	fs.String(KeyLogLevel, "info", "log level: debug, info, warn, error")
	fs.String(KeyConfig, "", "optional config file (yaml, json or toml)")
	fs.Bool(KeyVersion, false, "print the version and exit")

	return fs
}

// Load parses args (without the program name) and merges environment and
// config file values. It returns flag.ErrHelp untouched when help was
// requested.
func Load(args []string, out io.Writer) (*Config, error) {
	fs := NewFlagSet("primes", out)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, flag.ErrHelp
		}

		return nil, errors.Wrap(err, "config: parse flags")
	}

	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return nil, errors.Wrap(err, "config: bind flags")
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString(KeyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.WithSecondaryError(errors.Wrapf(ErrInvalidConfig, "read %s", path), err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.WithSecondaryError(errors.Wrap(ErrInvalidConfig, "decode"), err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects option values no run could use, including nth together
// with compare: a comparison prints no single sequence to index. Negative
// bounds are left to the sieve, which reports them as sieve.ErrInvalidRange.
func (c *Config) Validate() error {
	if c.Nth < 0 {
		return errors.Wrapf(ErrInvalidConfig, "nth must be non-negative, got %d", c.Nth)
	}
	if c.Nth != 0 && c.Compare {
		return errors.Wrap(ErrInvalidConfig, "nth cannot be combined with compare")
	}
	if c.Workers < 1 {
		return errors.Wrapf(ErrInvalidConfig, "workers must be positive, got %d", c.Workers)
	}
	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Level parses LogLevel; an empty value means info.
func (c *Config) Level() (zapcore.Level, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return lvl, errors.Wrapf(ErrInvalidConfig, "log level %q", c.LogLevel)
	}

	return lvl, nil
}

// EffectiveEnd is the upper bound to sieve: NthBound when an nth prime is
// requested, End otherwise.
func (c *Config) EffectiveEnd() int {
	if c.Nth != 0 {
		return sieve.NthBound
	}

	return c.End
}

// ResolvedAlgorithm maps Algorithm to a sieve.Algorithm; known reports
// whether the name was recognized or fell back to sieve.Default.
func (c *Config) ResolvedAlgorithm() (alg sieve.Algorithm, known bool) {
	return sieve.ParseAlgorithm(c.Algorithm)
}
