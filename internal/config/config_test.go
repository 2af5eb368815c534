package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xab-mack/quorum/internal/model"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, path, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if path != "" {
		t.Fatalf("found unexpected config at %s", path)
	}
	if cfg.Context != string(model.ContextGeneral) || cfg.LineTolerance != 0 {
		t.Fatalf("defaults wrong: %+v", cfg)
	}
}

func TestLoadSearchesUpward(t *testing.T) {
	root := t.TempDir()
	want := writeConfig(t, root, "context: ECOMMERCE\nlineTolerance: 2\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	cfg, path, err := Load(nested)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if path != want {
		t.Fatalf("path = %s, want %s", path, want)
	}
	if cfg.Context != "ECOMMERCE" || cfg.LineTolerance != 2 {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"suppression_without_reason", "suppressions:\n  - category: checkout\n"},
		{"suppression_without_selector", "suppressions:\n  - reason: why\n"},
		{"half_pair", "contradictions:\n  - a: only one side\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tt.content)
			if _, _, err := Load(dir); err == nil {
				t.Fatal("invalid config accepted")
			}
		})
	}
}

func TestProjectContext(t *testing.T) {
	cfg := Default()

	pctx, known := cfg.ProjectContext("ECOMMERCE")
	if !known {
		t.Fatal("ECOMMERCE unknown")
	}
	if !pctx.InScope("checkout") {
		t.Error("checkout out of scope for ECOMMERCE")
	}
	if pctx.InScope("ai-disclosure") {
		t.Error("ai-disclosure in scope for ECOMMERCE")
	}

	pctx, known = cfg.ProjectContext("GENERAL")
	if !known || !pctx.InScope("anything") {
		t.Error("GENERAL must keep every category in scope")
	}
}

// Unknown context types fail open: no category filtering, flagged unknown.
func TestProjectContextUnknownFallsOpen(t *testing.T) {
	cfg := Default()
	pctx, known := cfg.ProjectContext("SPACESHIP")
	if known {
		t.Fatal("SPACESHIP recognized")
	}
	if !pctx.InScope("anything") {
		t.Fatal("unknown context filtered categories")
	}
}

func TestProjectContextOverrides(t *testing.T) {
	cfg := Default()
	cfg.Contexts = map[string][]string{"ECOMMERCE": {"only-this"}}
	pctx, known := cfg.ProjectContext("ECOMMERCE")
	if !known {
		t.Fatal("overridden context unknown")
	}
	if !pctx.InScope("only-this") || pctx.InScope("checkout") {
		t.Fatal("override not applied")
	}
}

func TestDefaultYAMLParses(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, DefaultYAML)
	cfg, _, err := Load(dir)
	if err != nil {
		t.Fatalf("default yaml invalid: %v", err)
	}
	if cfg.Context != string(model.ContextGeneral) {
		t.Fatalf("default context = %s", cfg.Context)
	}
}
