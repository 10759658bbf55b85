package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "inventory.yaml")
	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvPath, EnvLogLevel, EnvLogOutput, EnvCurrency, EnvStats} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("", Overrides{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("config mismatch:\n%s", diff)
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	p := writeFile(t, "log_level: debug\ncurrency: \"€\"\nstats: true\n")
	t.Setenv(EnvLogLevel, "error")

	cfg, err := Load(p, Overrides{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := Config{LogLevel: "error", LogOutput: "stderr", Currency: "€", Stats: true}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch:\n%s", diff)
	}
}

func TestLoad_PathFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvPath, writeFile(t, "log_output: /tmp/inventory.log\n"))

	cfg, err := Load("", Overrides{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogOutput != "/tmp/inventory.log" {
		t.Fatalf("log_output=%q", cfg.LogOutput)
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(writeFile(t, ""), Overrides{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("cfg=%+v", cfg)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		file string
		env  map[string]string
	}{
		{name: "unknown field", file: "colour: red\n"},
		{name: "bad level in file", file: "log_level: loud\n"},
		{name: "bad stats env", env: map[string]string{EnvStats: "maybe"}},
		{name: "bad level env", env: map[string]string{EnvLogLevel: "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			path := ""
			if tt.file != "" {
				path = writeFile(t, tt.file)
			}
			if _, err := Load(path, Overrides{}); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), Overrides{}); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func strp(v string) *string { return &v }
func boolp(v bool) *bool     { return &v }

func TestLoad_OverridesWin(t *testing.T) {
	clearEnv(t)
	p := writeFile(t, "log_level: debug\ncurrency: \"€\"\n")
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvStats, "true")

	cfg, err := Load(p, Overrides{LogLevel: strp("info"), Currency: strp("£"), Stats: boolp(false)})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := Config{LogLevel: "info", LogOutput: "stderr", Currency: "£", Stats: false}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch:\n%s", diff)
	}
}

func TestLoad_OverrideReplacesBadEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvLogLevel, "loud")
	t.Setenv(EnvStats, "maybe")

	cfg, err := Load("", Overrides{LogLevel: strp("debug"), Stats: boolp(true)})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != "debug" || !cfg.Stats {
		t.Fatalf("cfg=%+v", cfg)
	}
}

func TestLoad_BadOverride(t *testing.T) {
	clearEnv(t)
	if _, err := Load("", Overrides{LogLevel: strp("loud")}); err == nil {
		t.Fatal("expected error for bad log level override")
	}
}
