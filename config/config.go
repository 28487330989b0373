// Copyright 2026 The Cryptokit Contributors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the cryptokit settings from defaults, an optional YAML
// file, CRYPTOKIT_* environment variables and command line flags, in that order
// of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/mitchellh/go-homedir"
	"github.com/scanhound/cryptokit/cryptoutil"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"
)

const (
	EnvPrefix      = "CRYPTOKIT"
	DefaultIDBytes = 16

	KeyStrategy     = "strategy"
	KeyTextEncoding = "text-encoding"
	KeyIDBytes      = "id-bytes"
	KeyLogLevel     = "log-level"

	defaultFileName = ".cryptokit"
)

var logLevels = []string{"debug", "info", "warn", "error"}

// Config holds the settings shared by the library and the command line tool.
type Config struct {
	Strategy     string `json:"strategy" yaml:"strategy" mapstructure:"strategy" jsonschema:"title=Strategy,description=Digest engine selection,enum=auto,enum=platform,enum=pure,default=auto"`
	TextEncoding string `json:"text-encoding" yaml:"text-encoding" mapstructure:"text-encoding" jsonschema:"title=Text encoding,description=How text is turned into bytes before hashing,enum=utf8,enum=legacy-utf16,default=utf8"`
	IDBytes      int    `json:"id-bytes" yaml:"id-bytes" mapstructure:"id-bytes" jsonschema:"title=Identifier bytes,description=Random bytes in identifiers when no length is given,minimum=1,default=16"`
	LogLevel     string `json:"log-level" yaml:"log-level" mapstructure:"log-level" jsonschema:"title=Log level,enum=debug,enum=info,enum=warn,enum=error,default=info"`
}

// Defaults returns the configuration used when nothing else is set.
func Defaults() Config {
	return Config{
		Strategy:     string(cryptoutil.StrategyAuto),
		TextEncoding: string(cryptoutil.EncodingUTF8),
		IDBytes:      DefaultIDBytes,
		LogLevel:     "info",
	}
}

// Validate checks every field and reports all problems at once.
func (c Config) Validate() error {
	var errs []error
	if _, err := cryptoutil.ParseStrategy(c.Strategy); err != nil {
		errs = append(errs, err)
	}

	if _, err := cryptoutil.ParseTextEncoding(c.TextEncoding); err != nil {
		errs = append(errs, err)
	}

	if c.IDBytes < 1 {
		errs = append(errs, cryptoutil.ErrInvalidIDLength{Length: c.IDBytes})
	}

	if !validLogLevel(c.LogLevel) {
		errs = append(errs, fmt.Errorf("unknown log level %q, expected one of %s", c.LogLevel, strings.Join(logLevels, ", ")))
	}

	return errors.Join(errs...)
}

// StrategyValue returns the parsed strategy. Call Validate first.
func (c Config) StrategyValue() cryptoutil.Strategy {
	s, _ := cryptoutil.ParseStrategy(c.Strategy)
	return s
}

// TextEncodingValue returns the parsed text encoding. Call Validate first.
func (c Config) TextEncodingValue() cryptoutil.TextEncoding {
	e, _ := cryptoutil.ParseTextEncoding(c.TextEncoding)
	return e
}

func validLogLevel(level string) bool {
	for _, l := range logLevels {
		if strings.EqualFold(l, level) {
			return true
		}
	}

	return false
}

// SetDefaults registers the defaults on v.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault(KeyStrategy, d.Strategy)
	v.SetDefault(KeyTextEncoding, d.TextEncoding)
	v.SetDefault(KeyIDBytes, d.IDBytes)
	v.SetDefault(KeyLogLevel, d.LogLevel)
}

// BindFlags adds the configuration flags to fs and binds them to v.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	d := Defaults()
	fs.String(KeyStrategy, d.Strategy, "digest engine: auto, platform or pure")
	fs.String(KeyTextEncoding, d.TextEncoding, "text encoding: utf8 or legacy-utf16")
	fs.Int(KeyIDBytes, d.IDBytes, "random bytes in generated identifiers")
	fs.String(KeyLogLevel, d.LogLevel, "log level: debug, info, warn or error")

	for _, key := range []string{KeyStrategy, KeyTextEncoding, KeyIDBytes, KeyLogLevel} {
		if err := v.BindPFlag(key, fs.Lookup(key)); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", key, err)
		}
	}

	return nil
}

// NewViper returns a viper instance with defaults and CRYPTOKIT_* environment
// binding set up.
func NewViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// ReadFile reads configPath into v. With an empty path $HOME/.cryptokit.yaml is
// used when it exists. It returns the file that was read, if any.
func ReadFile(v *viper.Viper, configPath string) (string, error) {
	if configPath == "" {
		home, err := homedir.Dir()
		if err != nil {
			return "", nil
		}

		candidate := filepath.Join(home, defaultFileName+".yaml")
		if _, err := os.Stat(candidate); err != nil {
			return "", nil
		}

		configPath = candidate
	}

	expanded, err := homedir.Expand(configPath)
	if err != nil {
		return "", fmt.Errorf("failed to expand config path %s: %w", configPath, err)
	}

	v.SetConfigFile(expanded)
	if err := v.ReadInConfig(); err != nil {
		return "", fmt.Errorf("error reading config file %s: %w", expanded, err)
	}

	return expanded, nil
}

// FromViper decodes and validates the settings held by v.
func FromViper(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return c, nil
}

// Load builds a configuration from defaults, configPath (or the file in the home
// directory) and the environment.
func Load(configPath string) (Config, error) {
	v := NewViper()
	if _, err := ReadFile(v, configPath); err != nil {
		return Config{}, err
	}

	return FromViper(v)
}

// Marshal renders c as YAML.
func Marshal(c Config) ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}

	return out, nil
}

// Schema returns the JSON schema of the configuration file.
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		DoNotReference:            true,
		ExpandedStruct:            true,
		AllowAdditionalProperties: false,
	}

	schema := reflector.Reflect(&Config{})
	schema.ID = "https://scanhound.dev/schemas/cryptokit-config.json"
	schema.Title = "cryptokit configuration"
	schema.Description = "Settings read from .cryptokit.yaml, CRYPTOKIT_* variables and flags"
	return schema
}
