// Package config resolves run settings from defaults, an optional config
// file, GOREP_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mouse-blink/gorep/internal/logging"
	m "github.com/mouse-blink/gorep/internal/model"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "GOREP"

// Setting keys. They double as flag names and config file keys.
const (
	KeyOnFileError = "on-file-error"
	KeySyntax      = "syntax"
	KeyLogLevel    = "log-level"
	KeyQuiet       = "quiet"
	KeyLock        = "lock"
)

// ErrInvalidConfig is returned when a setting has an unsupported value.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the resolved settings of one run.
type Config struct {
	OnFileError m.FileErrorPolicy
	Syntax      m.Syntax
	LogLevel    string
	Quiet       bool
	Lock        bool
}

// DefaultConfig returns the settings used when nothing overrides them.
func DefaultConfig() Config {
	return Config{
		OnFileError: m.PolicySkip,
		Syntax:      m.SyntaxRE2,
		LogLevel:    "info",
		Quiet:       false,
		Lock:        false,
	}
}

// RegisterFlags adds the setting flags to fs with their default values.
func RegisterFlags(fs *pflag.FlagSet) {
	defaults := DefaultConfig()

	fs.String(KeyOnFileError, string(defaults.OnFileError), "what to do with unreadable files and directories: skip or abort")
	fs.String(KeySyntax, string(defaults.Syntax), "regular expression syntax: re2 or perl")
	fs.String(KeyLogLevel, defaults.LogLevel, "log level: debug, info, warn or error")
	fs.BoolP(KeyQuiet, "q", defaults.Quiet, "do not print the summary table")
	fs.Bool(KeyLock, defaults.Lock, "hold an advisory lock on <outputFile>.lock while writing")
}

// Load resolves the configuration. Precedence is flag, environment, config
// file, default. configFile may be empty. flags may be nil.
func Load(flags *pflag.FlagSet, configFile string) (Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault(KeyOnFileError, string(defaults.OnFileError))
	v.SetDefault(KeySyntax, string(defaults.Syntax))
	v.SetDefault(KeyLogLevel, defaults.LogLevel)
	v.SetDefault(KeyQuiet, defaults.Quiet)
	v.SetDefault(KeyLock, defaults.Lock)

	if configFile != "" {
		v.SetConfigFile(configFile)

		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("%w: failed to read config file %s: %w", ErrInvalidConfig, configFile, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	cfg := Config{
		OnFileError: m.FileErrorPolicy(strings.ToLower(v.GetString(KeyOnFileError))),
		Syntax:      m.Syntax(strings.ToLower(v.GetString(KeySyntax))),
		LogLevel:    strings.ToLower(v.GetString(KeyLogLevel)),
		Quiet:       v.GetBool(KeyQuiet),
		Lock:        v.GetBool(KeyLock),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks that every setting has a supported value.
func (c Config) Validate() error {
	if !c.OnFileError.Valid() {
		return fmt.Errorf("%w: %s must be %q or %q, got %q",
			ErrInvalidConfig, KeyOnFileError, m.PolicySkip, m.PolicyAbort, c.OnFileError)
	}

	if !c.Syntax.Valid() {
		return fmt.Errorf("%w: %s must be %q or %q, got %q",
			ErrInvalidConfig, KeySyntax, m.SyntaxRE2, m.SyntaxPerl, c.Syntax)
	}

	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, KeyLogLevel, err)
	}

	return nil
}
