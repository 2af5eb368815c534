package engine

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xab-mack/quorum/internal/model"
)

func TestLoadResolutions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resolutions.json")
	content := `[{"groupKey":"cart.ts:42","verdict":"CONFIRMED","reasoning":"reproduced"}]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := LoadResolutions(path)
	if err != nil {
		t.Fatalf("LoadResolutions: %v", err)
	}
	if len(got) != 1 || got[0].GroupKey != "cart.ts:42" || got[0].Verdict != model.VerdictConfirmed {
		t.Fatalf("unexpected resolutions: %+v", got)
	}
}

func TestLoadResolutionsMissingFile(t *testing.T) {
	got, err := LoadResolutions(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil || got != nil {
		t.Fatalf("missing file should be empty, got %v, %v", got, err)
	}
}

func TestLoadResolutionsRejectsBadVerdict(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resolutions.json")
	if err := os.WriteFile(path, []byte(`[{"groupKey":"k","verdict":"MAYBE"}]`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadResolutions(path); err == nil {
		t.Fatal("bad verdict accepted")
	}
}

func TestWriteResolutionStubs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stubs.json")
	groups := []*model.FindingGroup{
		{Key: "b.ts:2", Consensus: model.ConsensusDisputed},
		{Key: "a.ts:1", Consensus: model.ConsensusDisputed},
		{Key: "c.ts:3", Consensus: model.ConsensusConfirmed},
	}
	if err := WriteResolutionStubs(path, groups); err != nil {
		t.Fatalf("WriteResolutionStubs: %v", err)
	}
	if _, err := LoadResolutions(path); err == nil {
		t.Fatal("stubs with empty verdicts should not load as valid resolutions")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	if !strings.Contains(text, "a.ts:1") || !strings.Contains(text, "b.ts:2") {
		t.Fatalf("stubs missing disputed keys: %s", text)
	}
	if strings.Contains(text, "c.ts:3") {
		t.Fatalf("undisputed group in stubs: %s", text)
	}
}
