package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func assertDefaults(t *testing.T, cfg Config) {
	t.Helper()
	if cfg.HTTP.Address != ":8080" {
		t.Fatalf("address=%q", cfg.HTTP.Address)
	}
	if cfg.HTTP.ReadHeaderTimeout != 5*time.Second || cfg.HTTP.ShutdownTimeout != 10*time.Second {
		t.Fatalf("timeouts=%s/%s", cfg.HTTP.ReadHeaderTimeout, cfg.HTTP.ShutdownTimeout)
	}
	if cfg.HTTP.MaxBodyBytes != 1<<20 {
		t.Fatalf("max body=%d", cfg.HTTP.MaxBodyBytes)
	}
	if cfg.Store.Path != "data/todos.json" || !cfg.Store.Validate || cfg.Store.Memory {
		t.Fatalf("store=%#v", cfg.Store)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Fatalf("log=%#v", cfg.Log)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	assertDefaults(t, cfg)
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestLoadMissingFileFallsBackToEnv(t *testing.T) {
	t.Setenv("TODO_STORE_PATH", "/tmp/elsewhere.json")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Store.Path != "/tmp/elsewhere.json" {
		t.Fatalf("path=%q", cfg.Store.Path)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
http:
  address: "127.0.0.1:9000"
  shutdown_timeout: 2s
store:
  path: /var/lib/todo/todos.json
log:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTP.Address != "127.0.0.1:9000" || cfg.HTTP.ShutdownTimeout != 2*time.Second {
		t.Fatalf("http=%#v", cfg.HTTP)
	}
	if cfg.HTTP.ReadHeaderTimeout != 5*time.Second {
		t.Fatalf("default not applied: %s", cfg.HTTP.ReadHeaderTimeout)
	}
	if cfg.Store.Path != "/var/lib/todo/todos.json" {
		t.Fatalf("path=%q", cfg.Store.Path)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Fatalf("log=%#v", cfg.Log)
	}
}

func TestLoadTOMLWithEnvOverride(t *testing.T) {
	path := writeConfig(t, "config.toml", `
[http]
address = ":7000"
read_header_timeout = "3s"

[store]
memory = true
`)
	t.Setenv("TODO_HTTP_ADDRESS", ":7001")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTP.Address != ":7001" {
		t.Fatalf("env did not override file: %q", cfg.HTTP.Address)
	}
	if cfg.HTTP.ReadHeaderTimeout != 3*time.Second {
		t.Fatalf("read header timeout=%s", cfg.HTTP.ReadHeaderTimeout)
	}
	if !cfg.Store.Memory {
		t.Fatalf("expected memory store")
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := writeConfig(t, "config.yaml", "http: [unterminated")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error")
	}
}

func TestValidate(t *testing.T) {
	base, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{name: "empty address", mutate: func(c *Config) { c.HTTP.Address = " " }, want: "http.address"},
		{name: "zero body", mutate: func(c *Config) { c.HTTP.MaxBodyBytes = 0 }, want: "max_body_bytes"},
		{name: "empty path", mutate: func(c *Config) { c.Store.Path = "" }, want: "store.path"},
		{name: "bad level", mutate: func(c *Config) { c.Log.Level = "loud" }, want: "log.level"},
		{name: "bad format", mutate: func(c *Config) { c.Log.Format = "xml" }, want: "log.format"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("err=%v want mention of %q", err, tc.want)
			}
		})
	}

	memory := base
	memory.Store.Memory = true
	memory.Store.Path = ""
	if err := memory.Validate(); err != nil {
		t.Fatalf("memory store without path: %v", err)
	}
}

func TestFlagsApplyOnlyChanged(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags := BindFlags(fs)
	if err := fs.Parse([]string{"--addr", ":1234", "--memory"}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	flags.Apply(&cfg)

	if cfg.HTTP.Address != ":1234" || !cfg.Store.Memory {
		t.Fatalf("flags not applied: %#v", cfg)
	}
	if cfg.Store.Path != "data/todos.json" || cfg.Log.Level != "info" {
		t.Fatalf("unset flags overrode config: %#v", cfg)
	}
	if flags.ConfigPath != "config.yaml" {
		t.Fatalf("config path=%q", flags.ConfigPath)
	}
}

func TestWriteTOMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg.Store.Path = "custom.json"

	var buf bytes.Buffer
	if err := WriteTOML(&buf, cfg); err != nil {
		t.Fatalf("write: %v", err)
	}
	out := buf.String()
	for _, want := range []string{`address = ":8080"`, `read_header_timeout = "5s"`, `path = "custom.json"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}

	path := writeConfig(t, "printed.toml", out)
	again, err := Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if again != cfg {
		t.Fatalf("round trip mismatch:\n got %#v\nwant %#v", again, cfg)
	}
}
