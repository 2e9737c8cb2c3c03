package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/l3aro/intcalc/internal/log"
	"github.com/l3aro/intcalc/pkg/formatter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME and the working directory at empty temp dirs and clears
// INTCALC_* variables.
func isolate(t *testing.T) (home, project string) {
	t.Helper()
	home = t.TempDir()
	project = t.TempDir()
	t.Setenv("HOME", home)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(project))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	for _, k := range []string{
		"INTCALC_FORMAT", "INTCALC_XML_DECLARATION", "INTCALC_XML_INDENT",
		"INTCALC_LOG_LEVEL", "INTCALC_LOG_JSON",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	return home, project
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"Format", cfg.Format, "xml"},
		{"XMLDeclaration", cfg.XMLDeclaration, true},
		{"XMLIndent", cfg.XMLIndent, ""},
		{"LogLevel", cfg.LogLevel, "error"},
		{"LogJSON", cfg.LogJSON, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("DefaultConfig().%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}

	require.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(c *Config)
		wantErr     bool
		errContains string
	}{
		{"defaults", func(c *Config) {}, false, ""},
		{"json format", func(c *Config) { c.Format = "json" }, false, ""},
		{"msgpack format", func(c *Config) { c.Format = "msgpack" }, false, ""},
		{"unknown format", func(c *Config) { c.Format = "csv" }, true, "invalid format"},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, true, "invalid log level"},
		{"tab indent", func(c *Config) { c.XMLIndent = "\t" }, false, ""},
		{"bad indent", func(c *Config) { c.XMLIndent = "--" }, true, "xml_indent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: json\nxml_indent: \"  \"\nlog_level: debug\n"), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "  ", cfg.XMLIndent)
	assert.Equal(t, log.DebugLevel, cfg.Level())
	assert.True(t, cfg.XMLDeclaration, "unset keys keep defaults")
}

func TestLoadFromFile_Errors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	_, err := LoadFromFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("format: [unterminated"), 0644))
	_, err = LoadFromFile(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("format: csv\n"), 0644))
	_, err = LoadFromFile(invalid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestLoad_Priority(t *testing.T) {
	home, _ := isolate(t)

	global := filepath.Join(home, ".intcalc", "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(global), 0755))
	require.NoError(t, os.WriteFile(global, []byte("format: yaml\nlog_level: info\n"), 0644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Format)
	assert.Equal(t, "info", cfg.LogLevel)

	// Project file overrides global.
	require.NoError(t, os.MkdirAll(".intcalc", 0755))
	require.NoError(t, os.WriteFile(ProjectConfigFilePath(), []byte("format: text\n"), 0644))

	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, "info", cfg.LogLevel, "global value survives when project omits it")

	// Environment overrides both.
	t.Setenv("INTCALC_FORMAT", "JSON")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Format)
}

func TestLoad_NoFiles(t *testing.T) {
	isolate(t)
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestApplyEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("INTCALC_FORMAT", "msgpack")
	t.Setenv("INTCALC_XML_DECLARATION", "no")
	t.Setenv("INTCALC_XML_INDENT", "\t")
	t.Setenv("INTCALC_LOG_LEVEL", "error")
	t.Setenv("INTCALC_LOG_JSON", "yes")

	cfg := DefaultConfig()
	applyEnvOverrides(cfg)

	assert.Equal(t, "msgpack", cfg.Format)
	assert.False(t, cfg.XMLDeclaration)
	assert.Equal(t, "\t", cfg.XMLIndent)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.True(t, cfg.LogJSON)
}

func TestSave_RoundTrip(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "nested", "dir", "config.yaml")

	cfg := DefaultConfig()
	cfg.Format = "text"
	cfg.XMLDeclaration = false
	require.NoError(t, cfg.Save(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestFormatterOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.XMLIndent = "  "
	assert.Equal(t, formatter.Options{Declaration: true, Indent: "  "}, cfg.FormatterOptions())
}

func TestLevel_Fallback(t *testing.T) {
	cfg := &Config{LogLevel: "nonsense"}
	assert.Equal(t, log.WarnLevel, cfg.Level())
}
