package rulepack

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minsu/prompt-generator/internal/apperr"
	"github.com/minsu/prompt-generator/internal/types"
)

func TestStore_Load_PressRelease(t *testing.T) {
	store := NewStore()

	pack, err := store.Load(types.FormatPressRelease, "")
	require.NoError(t, err)

	assert.Equal(t, "press_release", pack.ID)
	assert.Equal(t, "1.0", pack.Version)
	assert.Equal(t, "보도자료", pack.Name)
	assert.Equal(t, []string{"headline", "subhead", "lede", "body", "quote", "contact"}, pack.RequiredSections)
	assert.Equal(t, "public_official", pack.DefaultTone)
	assert.NotEmpty(t, pack.Dos)
	assert.NotEmpty(t, pack.Donts)
	assert.Contains(t, pack.ComplianceRules, "sources_required")
}

func TestStore_Load_Cached(t *testing.T) {
	store := NewStore()

	first, err := store.Load(types.FormatReport, "1.0")
	require.NoError(t, err)
	second, err := store.Load(types.FormatReport, "1.0")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, store.Size())
}

func TestStore_Load_UnknownFormat(t *testing.T) {
	store := NewStore()

	_, err := store.Load(types.Format("novel"), "")
	require.Error(t, err)

	var appErr *apperr.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperr.KindRulePackNotFound, appErr.Kind)
}

func TestStore_Load_UnknownVersion(t *testing.T) {
	store := NewStore()

	_, err := store.Load(types.FormatSpeech, "9.9")
	require.Error(t, err)
	assert.Equal(t, apperr.KindRulePackNotFound, apperr.KindOf(err))
}

func TestStore_Formats(t *testing.T) {
	store := NewStore()

	formats := store.Formats()
	assert.Len(t, formats, 6)
	assert.Contains(t, formats, types.FormatPressRelease)
	assert.Contains(t, formats, types.FormatMediaBrief)
}

func TestStore_AllPacksSatisfySchema(t *testing.T) {
	store := NewStore()

	for _, format := range types.AllFormats() {
		pack, err := store.Load(format, "")
		require.NoError(t, err, "format %s", format)
		assert.NotEmpty(t, pack.RequiredSections, "format %s", format)
		assert.NotEmpty(t, pack.DefaultTone, "format %s", format)
	}
}

func TestValidateShape_MissingSections(t *testing.T) {
	doc := map[string]any{
		"id":           "broken",
		"version":      "1.0",
		"name":         "깨진 형식",
		"default_tone": "public_official",
		"dos":          []any{},
		"donts":        []any{},
	}

	err := validateShape(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required_sections")
}

func TestValidateShape_EmptySections(t *testing.T) {
	doc := map[string]any{
		"id":                "broken",
		"version":           "1.0",
		"name":              "깨진 형식",
		"required_sections": []any{},
		"default_tone":      "public_official",
		"dos":               []any{},
		"donts":             []any{},
	}

	err := validateShape(doc)
	require.Error(t, err)
}
