package config

import (
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/disk2iso/disk2iso-web/src/internal/utils"
)

type Config struct {
	// General holds installation-wide settings.
	General GeneralConfig `toml:"general" yaml:"general"`
	// Shell configures the libsettings.sh backend.
	Shell ShellConfig `toml:"shell" yaml:"shell"`
	// File configures the direct conf-file backend.
	File FileConfig `toml:"file" yaml:"file"`
	// Restart configures how dependent services are restarted.
	Restart RestartConfig `toml:"restart" yaml:"restart"`
	// API configures the HTTP server.
	API APIConfig `toml:"api" yaml:"api"`

	_absConfigFilePath string
}

type GeneralConfig struct {
	// InstallDir is the disk2iso installation root. Relative paths elsewhere are resolved against it (default: /opt/disk2iso).
	InstallDir string `toml:"install_dir" yaml:"install_dir" json:"install_dir" validate:"required"`
	// Scope is the config scope passed to the backend, usually the conf file name without extension (default: disk2iso).
	Scope string `toml:"scope" yaml:"scope" json:"scope" validate:"required,scope_name"`
	// Backend selects the config store transport: shell, file or memory (default: shell).
	Backend string `toml:"backend" yaml:"backend" json:"backend" validate:"required,oneof=shell file memory"`
}

type ShellConfig struct {
	// Shell is the interpreter used to run scripts (default: /bin/bash).
	Shell string `toml:"shell" yaml:"shell" json:"shell" validate:"required"`
	// Library is the settings library sourced by the scripts (default: lib/libsettings.sh).
	Library string `toml:"library" yaml:"library" json:"library" validate:"required"`
	// ReadScript prints the value of a key. Available variables: {{library}}, {{scope}}, {{key}}.
	ReadScript string `toml:"read_script" yaml:"read_script" json:"read_script" validate:"required,template=library scope key"`
	// WriteScript stores a value. Available variables: {{library}}, {{scope}}, {{key}}, {{value}}.
	WriteScript string `toml:"write_script" yaml:"write_script" json:"write_script" validate:"required,template=library scope key value"`
	// ReadTimeout bounds a single read (default: 5s).
	ReadTimeout Duration `toml:"read_timeout" yaml:"read_timeout" json:"read_timeout" validate:"gt=0"`
	// WriteTimeout bounds a single write (default: 5s).
	WriteTimeout Duration `toml:"write_timeout" yaml:"write_timeout" json:"write_timeout" validate:"gt=0"`
}

type FileConfig struct {
	// ConfDir holds <scope>.conf (default: conf).
	ConfDir string `toml:"conf_dir" yaml:"conf_dir" json:"conf_dir" validate:"required"`
}

type RestartConfig struct {
	// Command is the restart argv. Available variables: {{service}}.
	Command []string `toml:"command" yaml:"command" json:"command" validate:"required,min=1,dive,required,template=service"`
	// Timeout bounds a single restart request (default: 10s).
	Timeout Duration `toml:"timeout" yaml:"timeout" json:"timeout" validate:"gt=0"`
}

type APIConfig struct {
	// BindAddress is the listen address of the HTTP API (default: 0.0.0.0:8080).
	BindAddress string `toml:"bind_address" yaml:"bind_address" json:"bind_address" validate:"required,listen_address"`
	// PrivateOnly rejects requests from outside private networks (default: false).
	PrivateOnly bool `toml:"private_only" yaml:"private_only" json:"private_only"`
}

// Duration is a time.Duration written as a string such as "5s".
type Duration time.Duration

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d Duration) String() string {
	return time.Duration(d).String()
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	return d.UnmarshalText([]byte(node.Value))
}

func (d Duration) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

func (c *Config) GetConfigDir() string {
	return filepath.Dir(c._absConfigFilePath)
}

func (c *Config) GetConfigFilePath() string {
	return c._absConfigFilePath
}

func (c *Config) GetAbsLibraryPath() string {
	return utils.GetAbsolutePath(c.Shell.Library, c.General.InstallDir)
}

func (c *Config) GetAbsConfDir() string {
	return utils.GetAbsolutePath(c.File.ConfDir, c.General.InstallDir)
}
