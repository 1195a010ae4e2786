// Package pipeline orchestrates one prompt-generation request end to end:
// rule-pack lookup, payload assembly, budget checks, the external model
// call, quality validation with the one-retry policy, and usage logging.
package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/minsu/prompt-generator/internal/assembly"
	"github.com/minsu/prompt-generator/internal/checklist"
	"github.com/minsu/prompt-generator/internal/llm"
	"github.com/minsu/prompt-generator/internal/rulepack"
	"github.com/minsu/prompt-generator/internal/tokens"
	"github.com/minsu/prompt-generator/internal/types"
	"github.com/minsu/prompt-generator/internal/validation"
)

// Generator wires the core subsystems. All dependencies are injected at
// construction; there is no package-level state, so a fresh Generator per
// test is cheap.
type Generator struct {
	rulepacks  *rulepack.Store
	checklists *checklist.Store
	governor   *tokens.Governor
	usage      *tokens.UsageLogger
	client     llm.Client
	validator  *validation.Validator
	logger     *zap.Logger
	now        func() time.Time
}

// New creates a generator over the given stores and model client.
func New(
	rulepacks *rulepack.Store,
	checklists *checklist.Store,
	governor *tokens.Governor,
	usage *tokens.UsageLogger,
	client llm.Client,
	validator *validation.Validator,
	logger *zap.Logger,
) *Generator {
	return &Generator{
		rulepacks:  rulepacks,
		checklists: checklists,
		governor:   governor,
		usage:      usage,
		client:     client,
		validator:  validator,
		logger:     logger,
		now:        time.Now,
	}
}

// Generate runs one request. The request must already be validated. On a
// quality-gate failure exactly one regeneration with the same instruction
// payload is attempted; a second failure still returns the result with
// warnings attached, because the caller always receives some output.
// Call failures (timeout, provider errors) are never retried here.
func (g *Generator) Generate(ctx context.Context, req *types.GenerateRequest, requestID string) (*types.GenerateResponse, error) {
	start := g.now()
	if requestID == "" {
		requestID = uuid.New().String()
	}

	pack, err := g.rulepacks.Load(req.Format, "")
	if err != nil {
		return nil, err
	}

	tone := req.Tone
	if tone == "" {
		tone = pack.DefaultTone
	}
	if req.Options != nil && req.Options.CustomTone != "" {
		tone = req.Options.CustomTone
	}
	strict := req.Options != nil && req.Options.StrictMode

	instruction := assembly.BuildInstruction(assembly.InstructionParams{
		Pack:                   pack,
		Level:                  req.Level,
		Tone:                   tone,
		Mode:                   req.Mode,
		AdditionalRequirements: req.AdditionalRequirements,
		StrictMode:             strict,
		TokenCeiling:           g.governor.Ceiling(req.Level),
	})
	task := assembly.BuildTask(assembly.TaskParams{
		Format:                 req.Format,
		Level:                  req.Level,
		Topic:                  req.Topic,
		Context:                req.Context,
		Tone:                   tone,
		Mode:                   req.Mode,
		AdditionalRequirements: req.AdditionalRequirements,
	})
	payload := assembly.Combine(instruction, task)

	estimated, err := g.governor.Check(payload, req.Level)
	if err != nil {
		return nil, err
	}
	if err := g.governor.CheckHardCap(estimated); err != nil {
		return nil, err
	}

	cl, err := g.checklists.Load(req.Format, req.Level, "")
	if err != nil {
		// The checklist degrades the score detail, not the request.
		g.logger.Warn("checklist unavailable",
			zap.String("request_id", requestID),
			zap.Error(err))
		cl = nil
	}

	result, outcome, err := g.callAndValidate(ctx, payload, req.Format, cl, requestID, estimated)
	if err != nil {
		return nil, err
	}

	resp := &types.GenerateResponse{
		Prompt: result.Text,
		Metadata: types.GenerateMetadata{
			Format:                req.Format,
			Level:                 req.Level,
			TokenCount:            estimated,
			EstimatedOutputTokens: g.governor.ReservedTokens(req.Level),
			RulePackID:            pack.ID,
			ToneUsed:              tone,
			GeneratedAt:           g.now().UTC(),
			ProcessingTimeMs:      g.now().Sub(start).Milliseconds(),
			RequestID:             requestID,
		},
		Validation: types.ValidationResult{
			Passed:    outcome.IsValid,
			Score:     outcome.Score,
			Checklist: outcome.Checklist,
		},
		RulePack: types.RulePackInfo{
			ID:               pack.ID,
			Version:          pack.Version,
			RequiredSections: pack.EffectiveSections(req.Mode),
			ComplianceRules:  pack.ComplianceRules,
		},
	}
	if req.Options.WarningsEnabled() {
		resp.Validation.Warnings = outcome.Warnings
		resp.Validation.Suggestions = outcome.Errors
	}
	return resp, nil
}

// callAndValidate performs the model call, scores the output, and applies
// the one-retry policy on a validation failure.
func (g *Generator) callAndValidate(
	ctx context.Context,
	payload string,
	format types.Format,
	cl *checklist.Checklist,
	requestID string,
	estimated int,
) (*llm.Result, validation.Outcome, error) {
	result, err := g.client.Generate(ctx, payload)
	if err != nil {
		return nil, validation.Outcome{}, err
	}
	g.usage.Record(requestID, g.client.Model(), estimated,
		result.Usage.PromptTokens, result.Usage.CompletionTokens, result.Usage.TotalTokens)

	outcome := g.validator.Evaluate(result.Text, format, cl)
	if outcome.IsValid {
		return result, outcome, nil
	}

	g.logger.Info("quality gate failed, regenerating once",
		zap.String("request_id", requestID),
		zap.Int("score", outcome.Score),
		zap.Strings("errors", outcome.Errors))

	retried, err := g.client.Generate(ctx, payload)
	if err != nil {
		// The regeneration call failed; fall back to the first result
		// rather than turning a soft failure into a hard one.
		g.logger.Warn("regeneration call failed, returning first result",
			zap.String("request_id", requestID),
			zap.Error(err))
		return result, outcome, nil
	}
	g.usage.Record(requestID, g.client.Model(), estimated,
		retried.Usage.PromptTokens, retried.Usage.CompletionTokens, retried.Usage.TotalTokens)

	retriedOutcome := g.validator.Evaluate(retried.Text, format, cl)
	if retriedOutcome.IsValid || retriedOutcome.Score >= outcome.Score {
		return retried, retriedOutcome, nil
	}
	return result, outcome, nil
}
