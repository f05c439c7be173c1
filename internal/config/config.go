// Package config provides configuration management for ghwatch.
//
// Configuration is loaded from three sources with the following precedence
// (highest to lowest):
//  1. CLI flags
//  2. Environment variables (GHWATCH_ prefix)
//  3. Config file (.ghwatch.yaml)
package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/cli/go-gh/v2/pkg/auth"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmgilman/ghwatch/errors"
	"github.com/jmgilman/ghwatch/github"
)

// Supported providers.
const (
	ProviderSDK = "sdk"
	ProviderCLI = "cli"
	ProviderGH  = "gh"
)

// Supported output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Supported log levels.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Supported log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// DefaultHost is the GitHub host used when none is configured.
const DefaultHost = "github.com"

// Config represents the global configuration for ghwatch.
type Config struct {
	// Provider selects the transport: sdk, cli or gh.
	Provider string `mapstructure:"provider" json:"provider" yaml:"provider"`

	// Token authenticates the sdk and gh providers. The cli provider always
	// uses the gh login.
	Token string `mapstructure:"token" json:"-" yaml:"-"`

	// Host is the GitHub host, e.g. github.com or an Enterprise host.
	Host string `mapstructure:"host" json:"host" yaml:"host"`

	// BaseURL overrides the API root for the sdk provider.
	BaseURL string `mapstructure:"base-url" json:"baseUrl,omitempty" yaml:"base-url,omitempty"`

	// User and Repo form the default scope.
	User string `mapstructure:"user" json:"user,omitempty" yaml:"user,omitempty"`
	Repo string `mapstructure:"repo" json:"repo,omitempty" yaml:"repo,omitempty"`

	// Output controls how results are printed.
	// Valid values: text, json, yaml.
	Output string `mapstructure:"output" json:"output" yaml:"output"`

	// LogLevel controls the verbosity of log output.
	// Valid values: debug, info, warn, error.
	LogLevel string `mapstructure:"log-level" json:"logLevel" yaml:"log-level"`

	// LogFormat controls the format of log output.
	// Valid values: text, json.
	LogFormat string `mapstructure:"log-format" json:"logFormat" yaml:"log-format"`

	// ConfigFile is the resolved path to the config file used.
	// Set after Load, not read from config itself.
	ConfigFile string `mapstructure:"-" json:"-" yaml:"-"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Provider:  ProviderSDK,
		Host:      DefaultHost,
		Output:    OutputText,
		LogLevel:  LogLevelInfo,
		LogFormat: LogFormatText,
	}
}

// Validate checks that all config values are valid.
func (c *Config) Validate() error {
	switch c.Provider {
	case ProviderSDK, ProviderCLI, ProviderGH:
	default:
		return invalid("provider", c.Provider, "sdk, cli, gh")
	}

	switch c.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return invalid("output", c.Output, "text, json, yaml")
	}

	switch c.LogLevel {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
	default:
		return invalid("log-level", c.LogLevel, "debug, info, warn, error")
	}

	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return invalid("log-format", c.LogFormat, "text, json")
	}

	return nil
}

// Scope returns the default scope described by User and Repo. Repo may be
// given as "owner/name", in which case its owner overrides User.
func (c *Config) Scope() (github.Scope, error) {
	scope := github.Scope{User: c.User}
	if c.Repo == "" {
		return scope, nil
	}

	if strings.Contains(c.Repo, "/") {
		parsed, err := github.ParseScope(c.Repo)
		if err != nil {
			return github.Scope{}, errors.Wrap(err, errors.CodeInvalidConfig, "invalid repo setting")
		}
		return parsed, nil
	}

	scope.Repo = c.Repo
	return scope, nil
}

// ResolveToken returns the configured token, falling back to the token gh
// would use for Host (GH_TOKEN, GITHUB_TOKEN, or the gh config).
func (c *Config) ResolveToken() string {
	if c.Token != "" {
		return c.Token
	}
	token, _ := auth.TokenForHost(c.Host)
	return token
}

// Load initialises configuration from flags, environment variables, and an
// optional config file. A fresh viper instance is used on every call so that
// Load is safe for concurrent tests.
func Load(cmd *cobra.Command, configFile string) (*Config, error) {
	v := viper.New()

	setDefaults(v)
	configureEnv(v)

	if err := configureFile(v, configFile); err != nil {
		return nil, err
	}

	if err := bindFlags(v, cmd); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidConfig, "failed to unmarshal config")
	}

	cfg.ConfigFile = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults registers default values in viper.
func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("provider", d.Provider)
	v.SetDefault("host", d.Host)
	v.SetDefault("output", d.Output)
	v.SetDefault("log-level", d.LogLevel)
	v.SetDefault("log-format", d.LogFormat)
	v.SetDefault("token", "")
	v.SetDefault("base-url", "")
	v.SetDefault("user", "")
	v.SetDefault("repo", "")
}

// configureEnv sets up environment variable support.
func configureEnv(v *viper.Viper) {
	v.SetEnvPrefix("GHWATCH")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
}

// configureFile sets up the config file source.
func configureFile(v *viper.Viper, configFile string) error {
	if configFile != "" {
		v.SetConfigFile(configFile)

		if err := v.ReadInConfig(); err != nil {
			err := errors.Wrap(err, errors.CodeInvalidConfig, "failed to read config file")
			return errors.WithContext(err, "path", configFile)
		}

		return nil
	}

	// Auto-discovery mode.
	v.SetConfigName(".ghwatch")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "ghwatch"))
	}

	if err := v.ReadInConfig(); err != nil {
		// No config file found is fine in auto-discovery.
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}

		return errors.Wrap(err, errors.CodeInvalidConfig, "failed to parse config file")
	}

	return nil
}

// bindFlags walks from cmd up to the root and binds all PersistentFlags.
func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	if cmd == nil {
		return nil
	}

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return errors.Wrap(err, errors.CodeInternal, "failed to bind flags")
	}

	for c := cmd; c != nil; c = c.Parent() {
		if err := v.BindPFlags(c.PersistentFlags()); err != nil {
			return errors.Wrap(err, errors.CodeInternal, "failed to bind persistent flags")
		}
	}

	return nil
}

func invalid(field, value, allowed string) error {
	err := errors.Newf(errors.CodeInvalidConfig, "invalid %s %q: must be one of %s", field, value, allowed)
	return errors.WithContext(err, "field", field)
}

type ctxKey struct{}

// NewContext returns a child context carrying cfg.
func NewContext(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext extracts a Config from ctx, falling back to Default().
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(ctxKey{}).(*Config); ok {
		return cfg
	}

	return Default()
}
