package tokens

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minsu/prompt-generator/internal/apperr"
	"github.com/minsu/prompt-generator/internal/types"
)

func TestEstimate_Empty(t *testing.T) {
	assert.Equal(t, 0, Estimate(""))
}

func TestEstimate_Latin(t *testing.T) {
	// 8 latin chars at 1/4 -> 2 tokens
	assert.Equal(t, 2, Estimate("abcdefgh"))
}

func TestEstimate_Hangul(t *testing.T) {
	// 5 hangul syllables at 1/2.5 -> 2 tokens
	assert.Equal(t, 2, Estimate("가나다라마"))
}

func TestEstimate_Mixed_RoundsUp(t *testing.T) {
	// 1 hangul (0.4) + 1 latin (0.25) = 0.65 -> 1
	assert.Equal(t, 1, Estimate("가a"))
}

func TestEstimate_HangulDenserThanLatin(t *testing.T) {
	hangul := strings.Repeat("가", 100)
	latin := strings.Repeat("a", 100)
	assert.Greater(t, Estimate(hangul), Estimate(latin))
}

func TestGovernor_Allowances(t *testing.T) {
	g := NewGovernor()

	assert.Equal(t, 240, g.Allowance(types.LevelBasic))
	assert.Equal(t, 480, g.Allowance(types.LevelIntermediate))
	assert.Equal(t, 720, g.Allowance(types.LevelAdvanced))
	assert.Equal(t, 60, g.ReservedTokens(types.LevelBasic))
}

func TestGovernor_Check_UnderBudget(t *testing.T) {
	g := NewGovernor()

	// 500 latin chars -> 125 tokens, well under basic's 240 allowance
	payload := strings.Repeat("a", 500)
	estimated, err := g.Check(payload, types.LevelBasic)
	require.NoError(t, err)
	assert.Equal(t, 125, estimated)
}

func TestGovernor_Check_OverBudget(t *testing.T) {
	g := NewGovernor()

	// 1000 latin chars -> 250 tokens, over basic's 240 allowance
	payload := strings.Repeat("a", 1000)
	estimated, err := g.Check(payload, types.LevelBasic)
	require.Error(t, err)
	assert.Equal(t, 250, estimated)
	assert.Equal(t, apperr.KindTokenLimitExceeded, apperr.KindOf(err))

	appErr := apperr.AsError(err)
	assert.Equal(t, 250, appErr.Details["estimatedTokens"])
	assert.Equal(t, 240, appErr.Details["allowance"])
	assert.NotEmpty(t, appErr.Details["suggestions"])
}

func TestGovernor_Monotonicity(t *testing.T) {
	g := NewGovernor()

	small := strings.Repeat("a", 200)  // 50 tokens
	large := strings.Repeat("a", 1000) // 250 tokens
	require.Less(t, Estimate(small), Estimate(large))

	_, errSmall := g.Check(small, types.LevelBasic)
	_, errLarge := g.Check(large, types.LevelBasic)
	assert.NoError(t, errSmall)
	assert.Error(t, errLarge)
}

func TestGovernor_HardCap(t *testing.T) {
	g := NewGovernor()

	assert.NoError(t, g.CheckHardCap(700))
	err := g.CheckHardCap(701)
	require.Error(t, err)
	assert.Equal(t, apperr.KindTokenLimitExceeded, apperr.KindOf(err))
}
