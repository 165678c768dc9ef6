// Package config loads CLI settings from flags, environment, .env files and
// an optional .javadoclink.yaml file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvPrefix      = "JAVADOCLINK"
	ConfigFileName = ".javadoclink"

	DefaultVersion = "17"
	DefaultModule  = "java.base"
)

// Keys understood in config files and as JAVADOCLINK_* environment variables.
const (
	KeyVersion    = "version"
	KeyBaseURL    = "base_url"
	KeyModule     = "module"
	KeyPublicDocs = "public_docs"
	KeyBaseURLs   = "base_urls"
	KeyLogLevel   = "log_level"
	KeyLogFormat  = "log_format"
	KeyOutput     = "output"
)

// Config is the resolved CLI configuration.
type Config struct {
	Version    string
	BaseURL    string
	Module     string
	PublicDocs bool
	BaseURLs   map[string]string
	LogLevel   string
	LogFormat  string
	Output     string

	// File is the config file that was read, if any.
	File string
}

// Options control where configuration is looked up.
type Options struct {
	// File forces a config file instead of searching the working and home directories.
	File string

	// Dir is the directory searched for .env and .javadoclink.yaml; defaults to cwd.
	Dir string

	// Flags are bound with highest precedence. Flag names use dashes for underscores.
	Flags *pflag.FlagSet
}

// Load resolves configuration with precedence flags > env > .env > file > defaults.
func Load(opts Options) (*Config, error) {
	dir := opts.Dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve working directory: %w", err)
		}
		dir = wd
	}

	if err := loadEnvFile(filepath.Join(dir, ".env")); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyVersion, DefaultVersion)
	v.SetDefault(KeyModule, DefaultModule)
	v.SetDefault(KeyBaseURL, "")
	v.SetDefault(KeyPublicDocs, false)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "auto")
	v.SetDefault(KeyOutput, "")

	if opts.File != "" {
		v.SetConfigFile(opts.File)
	} else {
		v.SetConfigName(ConfigFileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.File != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if opts.Flags != nil {
		if err := bindFlags(v, opts.Flags); err != nil {
			return nil, err
		}
	}

	cfg := &Config{
		Version:    strings.TrimSpace(v.GetString(KeyVersion)),
		BaseURL:    strings.TrimSpace(v.GetString(KeyBaseURL)),
		Module:     strings.TrimSpace(v.GetString(KeyModule)),
		PublicDocs: v.GetBool(KeyPublicDocs),
		BaseURLs:   normalizeBaseURLs(v.GetStringMapString(KeyBaseURLs)),
		LogLevel:   v.GetString(KeyLogLevel),
		LogFormat:  v.GetString(KeyLogFormat),
		Output:     v.GetString(KeyOutput),
		File:       v.ConfigFileUsed(),
	}
	return cfg, nil
}

func loadEnvFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to inspect %s: %w", path, err)
	}
	// Existing environment variables win over .env entries.
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for _, key := range []string{KeyVersion, KeyBaseURL, KeyModule, KeyPublicDocs, KeyLogLevel, KeyLogFormat, KeyOutput} {
		name := strings.ReplaceAll(key, "_", "-")
		if key == KeyPublicDocs {
			name = "public"
		}
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind --%s flag: %w", name, err)
		}
	}
	return nil
}

// viper lower-cases map keys; version identifiers are already lower case.
func normalizeBaseURLs(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for version, url := range in {
		version = strings.TrimSpace(version)
		url = strings.TrimSpace(url)
		if version == "" || url == "" {
			continue
		}
		out[version] = url
	}
	return out
}

// BaseURLFor returns the base URL for version: an explicit base URL wins, then
// the configured per-version table, then the public documentation root when
// PublicDocs is set.
func (c *Config) BaseURLFor(version string) string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	if url, ok := c.BaseURLs[version]; ok {
		return url
	}
	if c.PublicDocs {
		return DefaultBaseURLs[version]
	}
	return ""
}
