package tokens

import (
	"math"

	"github.com/minsu/prompt-generator/internal/apperr"
	"github.com/minsu/prompt-generator/internal/types"
)

// Default budget configuration. Ceilings are configuration values, never
// derived at runtime.
const (
	DefaultReservedFraction = 0.2
	DefaultHardInputCap     = 700
)

// DefaultCeilings maps each detail level to its approximate-token ceiling.
func DefaultCeilings() map[types.Level]int {
	return map[types.Level]int{
		types.LevelBasic:        300,
		types.LevelIntermediate: 600,
		types.LevelAdvanced:     900,
	}
}

// Governor enforces the pre-call token budget. A payload over its level
// allowance is rejected, never silently truncated.
type Governor struct {
	ceilings map[types.Level]int
	reserved float64
	hardCap  int
}

// NewGovernor creates a governor with the default ceilings, reserved
// completion fraction, and hard input cap.
func NewGovernor() *Governor {
	return &Governor{
		ceilings: DefaultCeilings(),
		reserved: DefaultReservedFraction,
		hardCap:  DefaultHardInputCap,
	}
}

// Ceiling returns the configured token ceiling for a level.
func (g *Governor) Ceiling(level types.Level) int {
	return g.ceilings[level]
}

// ReservedTokens returns the part of a level's ceiling held back for the
// external model's completion.
func (g *Governor) ReservedTokens(level types.Level) int {
	return g.Ceiling(level) - g.Allowance(level)
}

// Allowance returns the input-side budget for a level: the ceiling minus
// the reserved completion fraction, rounded down.
func (g *Governor) Allowance(level types.Level) int {
	return int(math.Floor(float64(g.ceilings[level]) * (1 - g.reserved)))
}

// Check estimates the combined payload and rejects it when it exceeds the
// level allowance. Returns the estimate either way so callers can report
// it. This failure is surfaced to the caller and never retried.
func (g *Governor) Check(payload string, level types.Level) (int, error) {
	estimated := Estimate(payload)
	allowance := g.Allowance(level)
	if estimated > allowance {
		return estimated, apperr.New(apperr.KindTokenLimitExceeded, "요청 내용이 선택한 수준의 분량 한도를 초과했습니다.").
			WithDetail("estimatedTokens", estimated).
			WithDetail("allowance", allowance).
			WithDetail("suggestions", []string{
				"주제를 더 짧게 요약해 주세요.",
				"배경 정보를 줄여 주세요.",
				"더 낮은 상세 수준을 선택해 주세요.",
			})
	}
	return estimated, nil
}

// CheckHardCap is the second, stricter gate applied immediately before
// dispatch. It bounds what is ever sent to the external model even when a
// level allowance has been misconfigured to something larger.
func (g *Governor) CheckHardCap(estimated int) error {
	if estimated > g.hardCap {
		return apperr.New(apperr.KindTokenLimitExceeded, "요청 내용이 호출당 입력 한도를 초과했습니다.").
			WithDetail("estimatedTokens", estimated).
			WithDetail("hardCap", g.hardCap)
	}
	return nil
}
