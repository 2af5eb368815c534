// Package config loads .quorum.yaml and carries the static context-to-category
// relevance table.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/xab-mack/quorum/internal/engine"
	"github.com/xab-mack/quorum/internal/model"
)

const FileName = ".quorum.yaml"

// DefaultYAML is the commented config written by `quorum init`.
const DefaultYAML = `# quorum configuration
# Project context used for relevance filtering. One of:
# SAAS, ECOMMERCE, HEALTHCARE, SOCIAL_UGC, STATIC_CONTENT, AI_ML, GENERAL
context: GENERAL

# Line window for grouping findings at the same artifact. 0 = exact match.
lineTolerance: 0

# Extra or overriding category sets per context type.
# contexts:
#   ECOMMERCE: [checkout, payments, pci, pricing, inventory]

# Phrase pairs considered mutually exclusive; two analyzers matching opposite
# sides of a pair at the same location dispute the group.
# contradictions:
#   - a: "never empty"
#     b: "out-of-bounds"

# Optional Go file exporting
#   Contradicts(titleA, rationaleA, titleB, rationaleB string) bool
# predicatePath: contradicts.go

# Manual exclusions. Reason is mandatory; suppressed groups stay in the
# exclusion table of the report.
# suppressions:
#   - category: ai-disclosure
#     artifact: legacy/
#     reason: accepted risk, tracked in AUD-112
`

// Pair is one mutually exclusive phrase pair for the built-in contradiction
// predicate.
type Pair struct {
	A string `yaml:"a"`
	B string `yaml:"b"`
}

type Config struct {
	Context        string               `yaml:"context"`
	LineTolerance  int                  `yaml:"lineTolerance"`
	Contexts       map[string][]string  `yaml:"contexts,omitempty"`
	Contradictions []Pair               `yaml:"contradictions,omitempty"`
	PredicatePath  string               `yaml:"predicatePath,omitempty"`
	Suppressions   []engine.Suppression `yaml:"suppressions,omitempty"`
}

func Default() Config {
	return Config{Context: string(model.ContextGeneral), LineTolerance: 0}
}

// Load searches upward from startDir for .quorum.yaml. A missing file is not
// an error; defaults apply.
func Load(startDir string) (Config, string, error) {
	cfg := Default()
	dir := startDir
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			b, err := os.ReadFile(candidate)
			if err != nil {
				return cfg, candidate, err
			}
			if err := yaml.Unmarshal(b, &cfg); err != nil {
				return cfg, candidate, fmt.Errorf("parse %s: %w", candidate, err)
			}
			if err := validate(cfg); err != nil {
				return cfg, candidate, fmt.Errorf("%s: %w", candidate, err)
			}
			return cfg, candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir { // reached root
			break
		}
		dir = parent
	}
	return cfg, "", nil
}

func validate(cfg Config) error {
	for i, s := range cfg.Suppressions {
		if s.Reason == "" {
			return fmt.Errorf("suppressions[%d]: reason is required", i)
		}
		if s.Category == "" && s.Artifact == "" {
			return fmt.Errorf("suppressions[%d]: category or artifact is required", i)
		}
	}
	for i, p := range cfg.Contradictions {
		if p.A == "" || p.B == "" {
			return fmt.Errorf("contradictions[%d]: both phrases are required", i)
		}
	}
	return nil
}

// builtinCategories maps each context type to its in-scope category tags.
// GENERAL is absent: it means no filtering at all.
var builtinCategories = map[model.ContextType][]string{
	model.ContextSaaS: {
		"auth", "session-management", "api-security", "multi-tenancy",
		"billing", "data-retention", "rate-limiting",
	},
	model.ContextEcommerce: {
		"checkout", "payments", "pci", "pricing", "inventory",
		"cart-integrity", "refund-policy",
	},
	model.ContextHealthcare: {
		"phi", "hipaa", "consent", "audit-trail", "data-retention",
		"access-control",
	},
	model.ContextSocialUGC: {
		"moderation", "ugc", "privacy", "ai-disclosure", "abuse-reporting",
		"minor-safety",
	},
	model.ContextStaticContent: {
		"accessibility", "seo", "performance", "caching", "legal-notices",
	},
	model.ContextAIML: {
		"ai-disclosure", "model-bias", "data-provenance", "prompt-injection",
		"training-data-rights",
	},
}

// ContextTypes lists known context types in display order.
func ContextTypes() []model.ContextType {
	return []model.ContextType{
		model.ContextSaaS, model.ContextEcommerce, model.ContextHealthcare,
		model.ContextSocialUGC, model.ContextStaticContent, model.ContextAIML,
		model.ContextGeneral,
	}
}

// Categories returns the in-scope categories for a context type, nil for
// GENERAL or unknown types (everything in scope).
func (c Config) Categories(t model.ContextType) []string {
	if override, ok := c.Contexts[string(t)]; ok {
		return override
	}
	return builtinCategories[t]
}

// ProjectContext resolves the context label into the filtering context. An
// unknown type falls back to GENERAL semantics (fail open on relevance); the
// second return reports whether the label was recognized.
func (c Config) ProjectContext(label string) (model.ProjectContext, bool) {
	t := model.ContextType(label)
	if t == "" {
		t = model.ContextType(c.Context)
	}
	known := t == model.ContextGeneral
	if _, ok := builtinCategories[t]; ok {
		known = true
	}
	if _, ok := c.Contexts[string(t)]; ok {
		known = true
	}
	pctx := model.ProjectContext{Type: t}
	if !known {
		return pctx, false
	}
	cats := c.Categories(t)
	if len(cats) > 0 {
		pctx.RelevantCategories = make(map[string]struct{}, len(cats))
		for _, cat := range cats {
			pctx.RelevantCategories[cat] = struct{}{}
		}
	}
	return pctx, true
}
