package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func memoryConfig() *Config {
	cfg := Default()
	cfg.General.Backend = BACKEND_MEMORY
	return cfg
}

func requireFieldError(t *testing.T, err error, fieldPath string) {
	t.Helper()
	if err == nil {
		t.Fatalf("Expected validation error for %s, got none", fieldPath)
	}
	ve, ok := err.(ValidationErrors)
	if !ok {
		t.Fatalf("Expected ValidationErrors, got %T", err)
	}
	for _, e := range ve {
		if e.FieldPath == fieldPath {
			return
		}
	}
	t.Errorf("Expected error on %s, got: %v", fieldPath, err)
}

func TestValidateConfig_Success(t *testing.T) {
	if err := memoryConfig().ValidateConfig(); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
}

func TestValidateConfig_ShellLibrary(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(tmpDir, "lib"), 0755); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	cfg.General.InstallDir = tmpDir
	requireFieldError(t, cfg.ValidateConfig(), "shell.library")

	if err := os.WriteFile(filepath.Join(tmpDir, "lib", "libsettings.sh"), []byte("# stub\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := cfg.ValidateConfig(); err != nil {
		t.Errorf("Expected no error once the library exists, got: %v", err)
	}
}

func TestValidateConfig_FieldErrors(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *Config)
		fieldPath string
	}{
		{"unknown backend", func(c *Config) { c.General.Backend = "sqlite" }, "general.backend"},
		{"relative install dir", func(c *Config) { c.General.InstallDir = "opt/disk2iso" }, "general.install_dir"},
		{"scope with separator", func(c *Config) { c.General.Scope = "../disk2iso" }, "general.scope"},
		{"empty restart command", func(c *Config) { c.Restart.Command = nil }, "restart.command"},
		{"unknown restart variable", func(c *Config) { c.Restart.Command = []string{"systemctl", "restart", "{{unit}}"} }, "restart.command[2]"},
		{"zero restart timeout", func(c *Config) { c.Restart.Timeout = 0 }, "restart.timeout"},
		{"bind address without port", func(c *Config) { c.API.BindAddress = "0.0.0.0" }, "api.bind_address"},
		{"bind address bad port", func(c *Config) { c.API.BindAddress = "0.0.0.0:99999" }, "api.bind_address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := memoryConfig()
			tt.mutate(cfg)
			requireFieldError(t, cfg.ValidateConfig(), tt.fieldPath)
		})
	}
}

func TestValidateConfig_ShellScripts(t *testing.T) {
	tmpDir := t.TempDir()
	library := filepath.Join(tmpDir, "libsettings.sh")
	if err := os.WriteFile(library, []byte("# stub\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	cfg.Shell.Library = library
	cfg.Shell.ReadScript = "source {{library}}\nconfig_get_value_conf {{scope}} {{key}} {{value}}"
	cfg.Shell.WriteScript = "source {{library}}\nconfig_set_value_conf {{scope}} {{key}} {{value"

	err := cfg.ValidateConfig()
	requireFieldError(t, err, "shell.read_script")
	requireFieldError(t, err, "shell.write_script")
	if !strings.Contains(err.Error(), "{{library}}, {{scope}}, {{key}}") {
		t.Errorf("Expected allowed variables in message, got: %v", err)
	}
}

func TestValidateConfig_FileBackendScriptsIgnored(t *testing.T) {
	cfg := Default()
	cfg.General.Backend = BACKEND_FILE
	cfg.General.InstallDir = t.TempDir()
	cfg.Shell.ReadScript = "{{nonsense}}"

	if err := cfg.ValidateConfig(); err != nil {
		t.Errorf("Expected shell section to be ignored for the file backend, got: %v", err)
	}
}

func TestValidationErrors_Error(t *testing.T) {
	ve := ValidationErrors{
		{FieldPath: "general.backend", Message: "must be one of: shell file memory"},
		{ItemName: "disk2iso", FieldPath: "general.scope", Message: "field is required"},
	}

	want := "validation failed with 2 error(s):\n" +
		"  1. general.backend: must be one of: shell file memory\n" +
		"  2. [disk2iso] general.scope: field is required\n"
	if ve.Error() != want {
		t.Errorf("Error() = %q, want %q", ve.Error(), want)
	}
}

func TestCheckTemplate(t *testing.T) {
	tests := []struct {
		tmpl    string
		allowed []string
		wantErr bool
	}{
		{"systemctl restart {{service}}", []string{"service"}, false},
		{"no variables", []string{"service"}, false},
		{"{{service}} {{other}}", []string{"service"}, true},
		{"{{service", []string{"service"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.tmpl, func(t *testing.T) {
			err := checkTemplate(tt.tmpl, tt.allowed)
			if (err != nil) != tt.wantErr {
				t.Errorf("checkTemplate(%q) error = %v, wantErr %v", tt.tmpl, err, tt.wantErr)
			}
		})
	}
}
