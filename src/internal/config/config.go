package config

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/disk2iso/disk2iso-web/src/internal/errors"
	"github.com/disk2iso/disk2iso-web/src/internal/log"
)

// DefaultConfigPath is used when no -config flag is given. A missing file at
// this path is not an error: built-in defaults apply.
const DefaultConfigPath = "/opt/disk2iso/conf/disk2iso-web.toml"

var (
	scopeRegexp = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]*$`)
)

const (
	BACKEND_SHELL  = "shell"
	BACKEND_FILE   = "file"
	BACKEND_MEMORY = "memory"
)

const (
	SCRIPT_TMPL_LIBRARY  = "library"
	SCRIPT_TMPL_SCOPE    = "scope"
	SCRIPT_TMPL_KEY      = "key"
	SCRIPT_TMPL_VALUE    = "value"
	RESTART_TMPL_SERVICE = "service"
)

// Default returns the built-in configuration of a standard installation.
func Default() *Config {
	return &Config{
		General: GeneralConfig{
			InstallDir: "/opt/disk2iso",
			Scope:      "disk2iso",
			Backend:    BACKEND_SHELL,
		},
		Shell: ShellConfig{
			Shell:        "/bin/bash",
			Library:      "lib/libsettings.sh",
			ReadScript:   "source {{library}}\nconfig_get_value_conf {{scope}} {{key}}",
			WriteScript:  "source {{library}}\nconfig_set_value_conf {{scope}} {{key}} {{value}}",
			ReadTimeout:  Duration(5 * time.Second),
			WriteTimeout: Duration(5 * time.Second),
		},
		File: FileConfig{
			ConfDir: "conf",
		},
		Restart: RestartConfig{
			Command: []string{"/usr/bin/systemctl", "restart", "{{service}}"},
			Timeout: Duration(10 * time.Second),
		},
		API: APIConfig{
			BindAddress: "0.0.0.0:8080",
			PrivateOnly: false,
		},
		_absConfigFilePath: DefaultConfigPath,
	}
}

// LoadConfig reads configPath on top of the defaults. Files ending in .yaml
// or .yml are decoded as YAML, everything else as TOML.
func LoadConfig(configPath string) (*Config, error) {
	configFile := filepath.Clean(configPath)

	if !filepath.IsAbs(configFile) {
		if path, err := filepath.Abs(configFile); err != nil {
			return nil, errors.NewConfigError("failed to get absolute path", err)
		} else {
			configFile = path
		}
	}

	config := Default()
	config._absConfigFilePath = configFile

	if _, err := os.Stat(configFile); stderrors.Is(err, os.ErrNotExist) {
		if configFile == DefaultConfigPath {
			log.Debugf("Configuration file %s not found, using built-in defaults", configFile)
			return config, nil
		}
		log.Errorf("Configuration file not found: %s", configFile)
		return nil, errors.NewConfigError(fmt.Sprintf("configuration file not found: %s", configFile), err)
	}

	content, err := os.ReadFile(configFile)
	if err != nil {
		return nil, errors.NewConfigError("failed to read config file", err)
	}

	if isYAML(configFile) {
		if err := yaml.Unmarshal(content, config); err != nil {
			return nil, errors.NewConfigError("failed to parse config file", err)
		}
	} else if err := toml.Unmarshal(content, config); err != nil {
		var derr *toml.DecodeError
		if stderrors.As(err, &derr) {
			log.Errorf("%s", derr.String())
			row, col := derr.Position()
			log.Errorf("Error at line %d, column %d", row, col)
			return nil, errors.NewConfigError(fmt.Sprintf("failed to parse config file at line %d, column %d", row, col), err)
		}
		return nil, errors.NewConfigError("failed to parse config file", err)
	}

	log.Debugf("Configuration file path: %s", configFile)
	log.Debugf("Config backend: %s (scope %s)", config.General.Backend, config.General.Scope)

	return config, nil
}

// LoadAndValidate loads configPath and validates the result.
func LoadAndValidate(configPath string) (*Config, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.ValidateConfig(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SerializeConfig encodes the effective configuration as TOML.
func (c *Config) SerializeConfig() (*bytes.Buffer, error) {
	buf := bytes.Buffer{}
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return &buf, nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
