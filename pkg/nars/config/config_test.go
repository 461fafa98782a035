package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	l := &Loader{}
	cfg, err := l.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Memory.ConceptCapacity != 10000 {
		t.Fatalf("expected default concept capacity, got %d", cfg.Memory.ConceptCapacity)
	}
	if cfg.Memory.ConceptLimits.MaxBeliefs != 28 {
		t.Fatalf("expected default belief cap, got %d", cfg.Memory.ConceptLimits.MaxBeliefs)
	}
}

func TestLoadOverridesNamedFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "engine.yaml")
	doc := "concept_bag_size: 42\ncycles_per_step: 7\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	l := &Loader{Path: path}
	cfg, err := l.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Memory.ConceptCapacity != 42 {
		t.Fatalf("expected overridden concept capacity, got %d", cfg.Memory.ConceptCapacity)
	}
	if cfg.CyclesPerStep != 7 {
		t.Fatalf("expected overridden cycles per step, got %d", cfg.CyclesPerStep)
	}
}

func TestLoadMissingFileErrors(t *testing.T) {
	l := &Loader{Path: "/nonexistent/engine.yaml"}
	if _, err := l.Load(); err == nil {
		t.Fatalf("expected an error for a missing config file")
	}
}

func TestLoadRuleTableResource(t *testing.T) {
	dir := t.TempDir()
	rulesPath := filepath.Join(dir, "rules.yaml")
	rulesDoc := "rules:\n  custom: |\n    <S --> P> |- <P --> S> .conversion\n"
	if err := os.WriteFile(rulesPath, []byte(rulesDoc), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	path := filepath.Join(dir, "engine.yaml")
	doc := "rule_table_path: " + rulesPath + "\nrule_table_keys: [rules.custom]\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg, err := (&Loader{Path: path}).Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Memory.RuleTable) != 1 || cfg.Memory.RuleTable[0].Name != "conversion" {
		t.Fatalf("expected the custom rule table, got %+v", cfg.Memory.RuleTable)
	}
}
