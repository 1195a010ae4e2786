package types

import "time"

// GenerateMetadata describes how one prompt was produced.
type GenerateMetadata struct {
	Format                Format    `json:"format"`
	Level                 Level     `json:"level"`
	TokenCount            int       `json:"tokenCount"`
	EstimatedOutputTokens int       `json:"estimatedOutputTokens"`
	RulePackID            string    `json:"rulepackId"`
	ToneUsed              string    `json:"toneUsed"`
	GeneratedAt           time.Time `json:"generatedAt"`
	ProcessingTimeMs      int64     `json:"processingTimeMs"`
	RequestID             string    `json:"requestId"`
}

// ChecklistResult is the checklist half of a validation outcome.
type ChecklistResult struct {
	Passed []string `json:"passed"`
	Failed []string `json:"failed"`
	Total  int      `json:"total"`
	Score  int      `json:"score"`
}

// ValidationResult is the combined quality-gate outcome attached to a
// generate response or returned from /api/validate.
type ValidationResult struct {
	Passed      bool             `json:"passed"`
	Score       int              `json:"score"`
	Checklist   *ChecklistResult `json:"checklist,omitempty"`
	Warnings    []string         `json:"warnings,omitempty"`
	Suggestions []string         `json:"suggestions,omitempty"`
}

// RulePackInfo is the rule-pack summary echoed back on success.
type RulePackInfo struct {
	ID               string   `json:"id"`
	Version          string   `json:"version"`
	RequiredSections []string `json:"requiredSections"`
	ComplianceRules  []string `json:"complianceRules"`
}

// GenerateResponse is the success payload for one generation request.
type GenerateResponse struct {
	Prompt     string           `json:"prompt"`
	Metadata   GenerateMetadata `json:"metadata"`
	Validation ValidationResult `json:"validation"`
	RulePack   RulePackInfo     `json:"rulepack"`
}

// ErrorBody is the structured error payload for every failure.
type ErrorBody struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
	RequestID string         `json:"requestId,omitempty"`
}

// ErrorResponse wraps ErrorBody to match the response envelope.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}
