// Package config loads a YAML document describing engine tunables — bag
// capacities, concept table limits, cycles and promotions per step,
// forgetting rates, and a rule-table path with its block keys (spec.md §6
// "Defaults") — and assembles a reasoner.Config from it.
// Grounded on the teacher's pkg/korel/config package: the same
// "YAML struct mirrors a resource, Loader assembles runtime components"
// shape, down to the "if unset, fall back to the compiled default" rule
// config.Loader.Load applies per field.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/narscore/pkg/nars/narserr"
	"github.com/cognicore/narscore/pkg/nars/reasoner"
	"github.com/cognicore/narscore/pkg/nars/rule"
)

// Document is the on-disk shape of an engine configuration file. Every
// field is optional; a zero value falls back to the compiled-in default
// from the package it configures.
type Document struct {
	ConceptBagSize      int      `yaml:"concept_bag_size"`
	TaskLinkBagSize     int      `yaml:"task_link_bag_size"`
	TermLinkBagSize     int      `yaml:"term_link_bag_size"`
	NovelTaskBagSize    int      `yaml:"novel_task_bag_size"`
	ConceptBeliefsMax   int      `yaml:"concept_beliefs_max"`
	ConceptQuestionsMax int      `yaml:"concept_questions_max"`
	ConceptGoalsMax     int      `yaml:"concept_goals_max"`
	CyclesPerStep       int      `yaml:"cycles_per_step"`
	PromotePerStep      int      `yaml:"promote_per_step"`
	ConceptForgetRate   float64  `yaml:"concept_forget_rate"`
	TaskLinkForgetRate  float64  `yaml:"task_link_forget_rate"`
	TermLinkForgetRate  float64  `yaml:"term_link_forget_rate"`
	RuleTablePath       string   `yaml:"rule_table_path"`
	RuleTableKeys       []string `yaml:"rule_table_keys"`
}

// Loader reads a Document from disk and assembles a reasoner.Config,
// mirroring config.Loader's one-field-per-resource shape in the teacher
// repo.
type Loader struct {
	Path string
}

// Load reads l.Path, applying spec.md §6 defaults for every field the
// document leaves unset, and returns the assembled reasoner.Config.
func (l *Loader) Load() (reasoner.Config, error) {
	cfg := reasoner.DefaultConfig()
	if l.Path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(l.Path)
	if err != nil {
		return reasoner.Config{}, fmt.Errorf("config: read %s: %w", l.Path, err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return reasoner.Config{}, fmt.Errorf("%w: %s: %v", narserr.ErrInvalidConfig, l.Path, err)
	}

	applyDocument(&cfg, doc)

	if doc.RuleTablePath != "" {
		text, err := os.ReadFile(doc.RuleTablePath)
		if err != nil {
			return reasoner.Config{}, fmt.Errorf("config: read rule table %s: %w", doc.RuleTablePath, err)
		}
		keys := doc.RuleTableKeys
		if len(keys) == 0 {
			keys = rule.BuiltinKeys
		}
		table, err := rule.LoadResource(text, keys...)
		if err != nil {
			return reasoner.Config{}, fmt.Errorf("config: parse rule table %s: %w", doc.RuleTablePath, err)
		}
		cfg.Memory.RuleTable = table
	}

	return cfg, nil
}

func applyDocument(cfg *reasoner.Config, doc Document) {
	if doc.ConceptBagSize > 0 {
		cfg.Memory.ConceptCapacity = doc.ConceptBagSize
	}
	if doc.NovelTaskBagSize > 0 {
		cfg.Memory.NovelTaskCapacity = doc.NovelTaskBagSize
	}
	if doc.TaskLinkBagSize > 0 {
		cfg.Memory.ConceptLimits.TaskLinkCapacity = doc.TaskLinkBagSize
	}
	if doc.TermLinkBagSize > 0 {
		cfg.Memory.ConceptLimits.TermLinkCapacity = doc.TermLinkBagSize
	}
	if doc.ConceptBeliefsMax > 0 {
		cfg.Memory.ConceptLimits.MaxBeliefs = doc.ConceptBeliefsMax
	}
	if doc.ConceptQuestionsMax > 0 {
		cfg.Memory.ConceptLimits.MaxQuestions = doc.ConceptQuestionsMax
	}
	if doc.ConceptGoalsMax > 0 {
		cfg.Memory.ConceptLimits.MaxGoals = doc.ConceptGoalsMax
	}
	if doc.CyclesPerStep > 0 {
		cfg.CyclesPerStep = doc.CyclesPerStep
	}
	if doc.PromotePerStep > 0 {
		cfg.PromotePerStep = doc.PromotePerStep
	}
	if doc.ConceptForgetRate > 0 {
		cfg.Memory.ConceptForgetRate = doc.ConceptForgetRate
	}
	if doc.TaskLinkForgetRate > 0 {
		cfg.Memory.TaskLinkForgetRate = doc.TaskLinkForgetRate
	}
	if doc.TermLinkForgetRate > 0 {
		cfg.Memory.TermLinkForgetRate = doc.TermLinkForgetRate
	}
}
