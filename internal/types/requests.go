package types

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/minsu/prompt-generator/internal/apperr"
)

// GenerateOptions is the optional behavior bag on a generate request.
// IncludeWarnings defaults to true when the bag is absent.
type GenerateOptions struct {
	IncludeWarnings *bool  `json:"includeWarnings,omitempty"`
	StrictMode      bool   `json:"strictMode,omitempty"`
	CustomTone      string `json:"customTone,omitempty" validate:"max=50"`
}

// WarningsEnabled resolves the IncludeWarnings default.
func (o *GenerateOptions) WarningsEnabled() bool {
	if o == nil || o.IncludeWarnings == nil {
		return true
	}
	return *o.IncludeWarnings
}

// GenerateRequest is one prompt-generation request. All size and count
// bounds are enforced here, before any processing happens.
type GenerateRequest struct {
	Topic                  string           `json:"topic" validate:"required,min=1,max=200"`
	Format                 Format           `json:"format" validate:"required"`
	Level                  Level            `json:"level" validate:"required"`
	Context                string           `json:"context,omitempty" validate:"max=500"`
	Tone                   string           `json:"tone,omitempty" validate:"max=50"`
	Mode                   string           `json:"mode,omitempty" validate:"max=50"`
	AdditionalRequirements []string         `json:"additionalRequirements,omitempty" validate:"max=5,dive,max=100"`
	Options                *GenerateOptions `json:"options,omitempty"`
}

// ValidateContentRequest asks for the quality gate to be run against
// arbitrary content without generating anything.
type ValidateContentRequest struct {
	Content          string `json:"content" validate:"required,min=1"`
	Format           Format `json:"format" validate:"required"`
	Level            Level  `json:"level" validate:"required"`
	IncludeChecklist bool   `json:"includeChecklist,omitempty"`
}

var validate = validator.New()

// Validate normalizes and bounds-checks the request. Violating input is
// rejected with an invalid_input kind before any processing.
func (r *GenerateRequest) Validate() error {
	r.Topic = strings.TrimSpace(r.Topic)
	r.Context = strings.TrimSpace(r.Context)
	if r.Tone == "" {
		r.Tone = DefaultTone
	}
	if err := validate.Struct(r); err != nil {
		return apperr.Wrap(apperr.KindInvalidInput, "입력 값이 올바르지 않습니다.", err).
			WithDetail("fields", fieldErrors(err))
	}
	if !r.Format.Valid() {
		return apperr.New(apperr.KindInvalidInput, "지원하지 않는 문서 형식입니다.").
			WithDetail("format", string(r.Format))
	}
	if !r.Level.Valid() {
		return apperr.New(apperr.KindInvalidInput, "지원하지 않는 상세 수준입니다.").
			WithDetail("level", string(r.Level))
	}
	for i, req := range r.AdditionalRequirements {
		r.AdditionalRequirements[i] = strings.TrimSpace(req)
	}
	return nil
}

// Validate bounds-checks a content-validation request.
func (r *ValidateContentRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return apperr.Wrap(apperr.KindInvalidInput, "입력 값이 올바르지 않습니다.", err).
			WithDetail("fields", fieldErrors(err))
	}
	if !r.Format.Valid() {
		return apperr.New(apperr.KindInvalidInput, "지원하지 않는 문서 형식입니다.").
			WithDetail("format", string(r.Format))
	}
	if !r.Level.Valid() {
		return apperr.New(apperr.KindInvalidInput, "지원하지 않는 상세 수준입니다.").
			WithDetail("level", string(r.Level))
	}
	return nil
}

// fieldErrors flattens validator errors into field→tag pairs safe to
// return to the caller.
func fieldErrors(err error) map[string]string {
	fields := make(map[string]string)
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
	}
	return fields
}
