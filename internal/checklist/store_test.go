package checklist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minsu/prompt-generator/internal/apperr"
	"github.com/minsu/prompt-generator/internal/types"
)

func TestStore_Load_AllPairs(t *testing.T) {
	store := NewStore()

	for _, format := range types.AllFormats() {
		for _, level := range types.AllLevels() {
			cl, err := store.Load(format, level, "")
			require.NoError(t, err, "%s/%s", format, level)
			assert.NotEmpty(t, cl.Categories, "%s/%s", format, level)
			assert.NotEmpty(t, cl.Flatten(), "%s/%s", format, level)
		}
	}
	assert.Equal(t, 18, store.Size())
}

func TestStore_Load_Cached(t *testing.T) {
	store := NewStore()

	first, err := store.Load(types.FormatSpeech, types.LevelBasic, "")
	require.NoError(t, err)
	second, err := store.Load(types.FormatSpeech, types.LevelBasic, "1.0")
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestStore_Load_UnknownVersion(t *testing.T) {
	store := NewStore()

	_, err := store.Load(types.FormatSpeech, types.LevelBasic, "7.7")
	require.Error(t, err)
	assert.Equal(t, apperr.KindRulePackNotFound, apperr.KindOf(err))
}
