package tokens

import "go.uber.org/zap"

// PriceTable maps a model name to its per-1K-token prompt and completion
// prices in USD. Optional; with no entry the usage log omits cost.
type PriceTable map[string]Price

// Price is the per-1K-token pricing for one model.
type Price struct {
	PromptPer1K     float64
	CompletionPer1K float64
}

// UsageLogger records actual token usage after each external call. The log
// is append-only and has no effect on admission decisions; it exists for
// offline tuning of the estimator and ceilings.
type UsageLogger struct {
	logger *zap.Logger
	prices PriceTable
}

// NewUsageLogger creates a usage logger writing to the given zap logger.
func NewUsageLogger(logger *zap.Logger, prices PriceTable) *UsageLogger {
	return &UsageLogger{logger: logger, prices: prices}
}

// Record logs one call's actual usage alongside the pre-call estimate.
func (u *UsageLogger) Record(requestID, model string, estimated, prompt, completion, total int) {
	fields := []zap.Field{
		zap.String("request_id", requestID),
		zap.String("model", model),
		zap.Int("estimated_tokens", estimated),
		zap.Int("prompt_tokens", prompt),
		zap.Int("completion_tokens", completion),
		zap.Int("total_tokens", total),
	}
	if price, ok := u.prices[model]; ok {
		cost := float64(prompt)/1000*price.PromptPer1K + float64(completion)/1000*price.CompletionPer1K
		fields = append(fields, zap.Float64("estimated_cost_usd", cost))
	}
	u.logger.Info("token usage", fields...)
}
