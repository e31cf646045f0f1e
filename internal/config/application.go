// Copyright (C) 2026 FCB2B Project
//
// This file is part of fcb2b-go.
//
// fcb2b-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// fcb2b-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with fcb2b-go.  If not, see <https://www.gnu.org/licenses/>.

package config

import (
	"path"
	"reflect"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/hashicorp/go-multierror"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fcb2b-project/fcb2b-go/internal"
	"github.com/fcb2b-project/fcb2b-go/pkg/client"
	"github.com/fcb2b-project/fcb2b-go/pkg/errors"
	"github.com/fcb2b-project/fcb2b-go/pkg/protocol"
	"github.com/fcb2b-project/fcb2b-go/pkg/transport"
)

// DefaultServicesURL is the service directory the tester points at when no
// other source configures one.
const DefaultServicesURL = "https://des.buckwold.com/danciko/bwl/dancik-b2b/services"

var ErrApplicationConfigNotFound = errors.New("application config not found")

type defaultValueLoader interface {
	loadDefaultValues(*viper.Viper)
}

type parser interface {
	parseConfigValues() error
}

// CliOnlyOptions carries values that can only arrive via command line flags,
// never from a config file or the environment.
type CliOnlyOptions struct {
	ConfigPath string
	Verbosity  int
}

type Application struct {
	ConfigPath  string         `yaml:",omitempty" json:"configPath"` // the location where the application config was read from (either from -c or discovered while loading)
	ServicesURL string         `yaml:"services-url" json:"services-url" mapstructure:"services-url"` // the fcB2B service directory endpoint
	APIKey      string         `yaml:"api-key" json:"api-key" mapstructure:"api-key"`                // the apiKey query parameter value; "anonymous" for anonymous access
	SecretKey   string         `yaml:"secret-key" json:"secret-key" mapstructure:"secret-key"`       // the shared HMAC secret; required for signing
	Timeout     time.Duration  `yaml:"timeout" json:"timeout" mapstructure:"timeout"`                // HTTP timeout for catalog and service calls
	Quiet       bool           `yaml:"quiet" json:"quiet" mapstructure:"quiet"`                      // -q, suppress all non-error output
	NoColor     bool           `yaml:"no-color" json:"no-color" mapstructure:"no-color"`             // disable ANSI color in terminal output
	CliOptions  CliOnlyOptions `yaml:"-" json:"-"`
	Log         logging        `yaml:"log" json:"log" mapstructure:"log"`
}

func newApplicationConfig(v *viper.Viper, cliOpts CliOnlyOptions) *Application {
	config := &Application{
		CliOptions: cliOpts,
	}
	config.loadDefaultValues(v)

	return config
}

// LoadApplicationConfig resolves the effective configuration from defaults,
// discovered or explicit config files, environment variables, and bound
// flags. The user may not have a config file at all, and this is OK.
func LoadApplicationConfig(v *viper.Viper, cliOpts CliOnlyOptions) (*Application, error) {
	config := newApplicationConfig(v, cliOpts)

	if err := readConfig(v, cliOpts.ConfigPath); err != nil && err != ErrApplicationConfigNotFound {
		return nil, err
	}

	if err := v.Unmarshal(config); err != nil {
		return nil, errors.NewConfigError("", "unable to parse application config", err)
	}
	config.ConfigPath = v.ConfigFileUsed()

	if err := config.parseConfigValues(); err != nil {
		return nil, err
	}

	return config, nil
}

// loadDefaultValues loads the default configuration values into the viper
// instance, before the config values are read and parsed.
func (cfg Application) loadDefaultValues(v *viper.Viper) {
	v.SetDefault("services-url", DefaultServicesURL)
	v.SetDefault("api-key", protocol.AnonymousAPIKey)
	v.SetDefault("secret-key", "")
	v.SetDefault("timeout", transport.DefaultTimeout)
	v.SetDefault("quiet", false)
	v.SetDefault("no-color", false)

	// for each field in the configuration struct, see if the field implements
	// the defaultValueLoader interface and invoke it if it does
	value := reflect.ValueOf(cfg)
	for i := 0; i < value.NumField(); i++ {
		// note: the defaultValueLoader method receiver is NOT a pointer receiver.
		if loadable, ok := value.Field(i).Interface().(defaultValueLoader); ok {
			loadable.loadDefaultValues(v)
		}
	}
}

func (cfg *Application) parseConfigValues() error {
	if err := cfg.validate(); err != nil {
		return err
	}

	// for each field in the configuration struct, see if the field implements
	// the parser interface. the app config is a pointer, so we need to grab
	// the elements explicitly (to traverse the address)
	value := reflect.ValueOf(cfg).Elem()
	for i := 0; i < value.NumField(); i++ {
		// note: since the interface method of parser is a pointer receiver we
		// need to get the value of the field as a pointer.
		if parsable, ok := value.Field(i).Addr().Interface().(parser); ok {
			if err := parsable.parseConfigValues(); err != nil {
				return err
			}
		}
	}
	return nil
}

// validate reports every structural problem in one pass rather than one per
// run.
func (cfg *Application) validate() error {
	var result *multierror.Error

	if url := strings.TrimSpace(cfg.ServicesURL); url != "" && !strings.Contains(url, "://") {
		result = multierror.Append(result, errors.NewConfigError("services-url", "must be an absolute URL", nil))
	}
	if cfg.Timeout < 0 {
		result = multierror.Append(result, errors.NewConfigError("timeout", "must not be negative", nil))
	}

	return result.ErrorOrNil()
}

// LogLevel resolves the effective log level name from the quiet flag,
// verbosity count, and configured level, in that order of precedence.
func (cfg *Application) LogLevel() string {
	switch {
	case cfg.Quiet:
		return "error"
	case cfg.CliOptions.Verbosity > 1:
		return "trace"
	case cfg.CliOptions.Verbosity == 1:
		return "debug"
	case cfg.Log.Level != "":
		return cfg.Log.Level
	}
	return "info"
}

// ToClientConfig maps the application configuration onto the client's
// configuration surface.
func (cfg Application) ToClientConfig() client.Config {
	return client.Config{
		ServicesURL: cfg.ServicesURL,
		APIKey:      cfg.APIKey,
		SecretKey:   cfg.SecretKey,
		Timeout:     cfg.Timeout,
	}
}

func (cfg Application) String() string {
	// the shared secret must never reach logs or terminals
	redacted := cfg
	if redacted.SecretKey != "" {
		redacted.SecretKey = "******"
	}

	// yaml is pretty human friendly (at least when compared to json)
	appCfgStr, err := yaml.Marshal(&redacted)
	if err != nil {
		return err.Error()
	}

	return string(appCfgStr)
}

// readConfig attempts to read the given config path from disk or discover an
// alternate store location
func readConfig(v *viper.Viper, configPath string) error {
	v.AutomaticEnv()
	v.SetEnvPrefix(internal.ApplicationName)
	// allow for nested options to be specified via environment variables
	// e.g. log.level = FCB2B_LOG_LEVEL
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	// use explicitly the given user config
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return errors.NewConfigError("", "unable to read application config "+configPath, err)
		}
		// don't fall through to other options if the config path was explicitly provided
		return nil
	}

	// start searching for valid configs in order...

	// 1. look for .<appname>.yaml (in the current directory)
	v.AddConfigPath(".")
	v.SetConfigName("." + internal.ApplicationName)
	if err := v.ReadInConfig(); err == nil {
		return nil
	} else if !isNotFound(err) {
		return errors.NewConfigError("", "unable to parse config "+v.ConfigFileUsed(), err)
	}

	// 2. look for .<appname>/config.yaml (in the current directory)
	v.AddConfigPath("." + internal.ApplicationName)
	v.SetConfigName("config")
	if err := v.ReadInConfig(); err == nil {
		return nil
	} else if !isNotFound(err) {
		return errors.NewConfigError("", "unable to parse config "+v.ConfigFileUsed(), err)
	}

	// 3. look for ~/.<appname>.yaml
	home, err := homedir.Dir()
	if err == nil {
		v.AddConfigPath(home)
		v.SetConfigName("." + internal.ApplicationName)
		if err := v.ReadInConfig(); err == nil {
			return nil
		} else if !isNotFound(err) {
			return errors.NewConfigError("", "unable to parse config "+v.ConfigFileUsed(), err)
		}
	}

	// 4. look for <appname>/config.yaml in xdg locations (starting with xdg
	// home config dir, then moving upwards)
	v.AddConfigPath(path.Join(xdg.ConfigHome, internal.ApplicationName))
	for _, dir := range xdg.ConfigDirs {
		v.AddConfigPath(path.Join(dir, internal.ApplicationName))
	}
	v.SetConfigName("config")
	if err := v.ReadInConfig(); err == nil {
		return nil
	} else if !isNotFound(err) {
		return errors.NewConfigError("", "unable to parse config "+v.ConfigFileUsed(), err)
	}

	return ErrApplicationConfigNotFound
}

func isNotFound(err error) bool {
	_, ok := err.(viper.ConfigFileNotFoundError)
	return ok
}
