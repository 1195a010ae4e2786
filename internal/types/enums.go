// Package types provides type definitions for structured data used
// throughout the prompt generator system.
package types

// Format identifies one of the supported output document formats.
type Format string

// The closed format set. Each format has a versioned rule-pack asset.
const (
	FormatPressRelease    Format = "press_release"
	FormatSpeech          Format = "speech"
	FormatSNSPost         Format = "sns_post"
	FormatOfficialInquiry Format = "official_inquiry"
	FormatReport          Format = "report"
	FormatMediaBrief      Format = "media_brief"
)

var formatNames = map[Format]string{
	FormatPressRelease:    "보도자료",
	FormatSpeech:          "연설문",
	FormatSNSPost:         "SNS 게시물",
	FormatOfficialInquiry: "공식 질의서",
	FormatReport:          "보고서",
	FormatMediaBrief:      "언론 동향 브리핑",
}

// AllFormats returns the supported formats in a stable order.
func AllFormats() []Format {
	return []Format{
		FormatPressRelease,
		FormatSpeech,
		FormatSNSPost,
		FormatOfficialInquiry,
		FormatReport,
		FormatMediaBrief,
	}
}

// Valid reports whether f is one of the known formats.
func (f Format) Valid() bool {
	_, ok := formatNames[f]
	return ok
}

// DisplayName returns the Korean display name for the format, or the raw
// identifier for an unknown format.
func (f Format) DisplayName() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return string(f)
}

// Level is one of three detail tiers controlling verbosity and the token
// ceiling applied to the assembled payload.
type Level string

// Detail levels.
const (
	LevelBasic        Level = "basic"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

var levelNames = map[Level]string{
	LevelBasic:        "초급",
	LevelIntermediate: "중급",
	LevelAdvanced:     "고급",
}

// AllLevels returns the detail levels in ascending order.
func AllLevels() []Level {
	return []Level{LevelBasic, LevelIntermediate, LevelAdvanced}
}

// Valid reports whether l is one of the known levels.
func (l Level) Valid() bool {
	_, ok := levelNames[l]
	return ok
}

// DisplayName returns the Korean display name for the level, or the raw
// identifier for an unknown level.
func (l Level) DisplayName() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return string(l)
}

// DefaultTone is the tone applied when a request does not specify one.
const DefaultTone = "public_official"

var toneNames = map[string]string{
	"public_official": "격식 있는 공직자",
	"professional":    "전문적이고 객관적인",
	"friendly":        "친근하고 부드러운",
	"urgent":          "긴급하고 단호한",
}

// ToneDisplayName resolves a tone identifier to its Korean description.
// Unknown identifiers are returned verbatim so custom tones pass through.
func ToneDisplayName(tone string) string {
	if name, ok := toneNames[tone]; ok {
		return name
	}
	return tone
}
