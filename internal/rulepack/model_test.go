package rulepack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveSections_ModeResolution(t *testing.T) {
	pack := &RulePack{
		RequiredSections: []string{"x", "y", "z"},
		Modes: map[string]Mode{
			"press":  {RequiredSections: []string{"a", "b"}},
			"policy": {RequiredSections: []string{"c", "d"}},
		},
	}

	assert.Equal(t, []string{"a", "b"}, pack.EffectiveSections("press"))
	assert.Equal(t, []string{"c", "d"}, pack.EffectiveSections("policy"))
	assert.Equal(t, []string{"x", "y", "z"}, pack.EffectiveSections("foo"))
	assert.Equal(t, []string{"x", "y", "z"}, pack.EffectiveSections(""))
}

func TestEffectiveSections_NoModes(t *testing.T) {
	pack := &RulePack{RequiredSections: []string{"summary"}}

	assert.Equal(t, []string{"summary"}, pack.EffectiveSections("anything"))
}
