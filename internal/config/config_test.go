package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  host: "127.0.0.1"
  port: 9000
sources:
  document: "official/JV-Link4901.html"
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Host != "127.0.0.1" || cfg.Server.Port != 9000 {
		t.Errorf("unexpected server config: %+v", cfg.Server)
	}
	wantDoc := filepath.Join(dir, "official", "JV-Link4901.html")
	if cfg.Sources.Document != wantDoc {
		t.Errorf("document = %s, want %s", cfg.Sources.Document, wantDoc)
	}
	wantWB := filepath.Join(dir, "design", "source-docs", "JV-Data4901.xlsx")
	if cfg.Sources.Workbook != wantWB {
		t.Errorf("workbook should default relative to the config dir: got %s, want %s", cfg.Sources.Workbook, wantWB)
	}
	if cfg.Debug {
		t.Error("debug should default to false when unset")
	}
}

func TestLoad_debugTrue(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
debug: true
server:
  host: "localhost"
  port: 8080
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Debug {
		t.Error("debug should be true when set in config")
	}
}

func TestLoad_expandPathRelativeToConfigDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
output:
  specs_dir: "./out/specs"
  catalog_path: "gen/catalog_gen.go"
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	wantSpecs := filepath.Join(dir, "out", "specs")
	if cfg.Output.SpecsDir != wantSpecs {
		t.Errorf("specs_dir = %s, want %s", cfg.Output.SpecsDir, wantSpecs)
	}
	wantCatalog := filepath.Join(dir, "gen", "catalog_gen.go")
	if cfg.Output.CatalogPath != wantCatalog {
		t.Errorf("catalog_path = %s, want %s", cfg.Output.CatalogPath, wantCatalog)
	}
}

func TestLoad_absolutePathKept(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
sources:
  workbook: "/srv/docs/JV-Data4901.xlsx"
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Sources.Workbook != "/srv/docs/JV-Data4901.xlsx" {
		t.Errorf("absolute workbook path changed: %s", cfg.Sources.Workbook)
	}
}

func TestLoad_invalidPort(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: 70000
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for out-of-range port")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)
	if cfg.Server.Host != "localhost" {
		t.Errorf("default host: got %s", cfg.Server.Host)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("default port: got %d", cfg.Server.Port)
	}
	if cfg.Sources.Document != "design/source-docs/JV-Link4901.html" {
		t.Errorf("default document: got %s", cfg.Sources.Document)
	}
	if cfg.Sources.Workbook != "design/source-docs/JV-Data4901.xlsx" {
		t.Errorf("default workbook: got %s", cfg.Sources.Workbook)
	}
	if cfg.Output.SpecsDir != "design/specs" {
		t.Errorf("default specs_dir: got %s", cfg.Output.SpecsDir)
	}
	if cfg.Output.CatalogPath != "pkg/jvlink/catalog_gen.go" {
		t.Errorf("default catalog_path: got %s", cfg.Output.CatalogPath)
	}
	if cfg.Search.DefaultLimit != 10 || cfg.Search.MaxLimit != 100 {
		t.Errorf("default search limits: got %+v", cfg.Search)
	}
	if cfg.Watch.DebounceMillis != 400 {
		t.Errorf("default debounce: got %d", cfg.Watch.DebounceMillis)
	}
}

func TestWatchConfig_Debounce(t *testing.T) {
	w := &WatchConfig{DebounceMillis: 250}
	if got := w.Debounce(); got != 250*time.Millisecond {
		t.Errorf("Debounce() = %v, want 250ms", got)
	}
}

func TestValidate_limitOrdering(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Search.DefaultLimit = 200
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when default_limit exceeds max_limit")
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "saved.yaml")
	cfg := &Config{
		Server: ServerConfig{Host: "localhost", Port: 9090},
	}
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Server.Port != 9090 {
		t.Errorf("loaded port: got %d", loaded.Server.Port)
	}
}
