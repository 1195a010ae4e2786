// Package rulepack provides the versioned rule-pack model and its loader.
// A rule-pack is the static definition of one output format: required
// sections, style dos/donts, structural hints, compliance-rule identifiers,
// and optional named modes with alternate section sets. Packs are loaded
// once from embedded assets and cached immutably for the process lifetime.
package rulepack

// Mode is a named alternate required-section set within one rule-pack.
type Mode struct {
	Description      string   `yaml:"description" json:"description"`
	RequiredSections []string `yaml:"required_sections" json:"requiredSections"`
}

// RulePack is the typed definition of one output format/version.
type RulePack struct {
	ID               string            `yaml:"id" json:"id"`
	Version          string            `yaml:"version" json:"version"`
	Name             string            `yaml:"name" json:"name"`
	RequiredSections []string          `yaml:"required_sections" json:"requiredSections"`
	DefaultTone      string            `yaml:"default_tone" json:"defaultTone"`
	Dos              []string          `yaml:"dos" json:"dos"`
	Donts            []string          `yaml:"donts" json:"donts"`
	StructureHints   map[string]string `yaml:"structure_hints" json:"structureHints,omitempty"`
	ComplianceRules  []string          `yaml:"compliance_rules" json:"complianceRules,omitempty"`
	Modes            map[string]Mode   `yaml:"modes" json:"modes,omitempty"`
}

// EffectiveSections resolves the required-section list for an optional
// mode name. An undeclared or unknown mode falls back to the pack's
// default list; callers never get an empty result for a valid pack.
func (p *RulePack) EffectiveSections(mode string) []string {
	if mode != "" {
		if m, ok := p.Modes[mode]; ok && len(m.RequiredSections) > 0 {
			return m.RequiredSections
		}
	}
	return p.RequiredSections
}
