package validation

import (
	"fmt"
	"strings"

	"github.com/minsu/prompt-generator/internal/checklist"
	"github.com/minsu/prompt-generator/internal/types"
)

const totalChecks = 7

// invalidScoreCap bounds the overall score whenever a hard check fails:
// structural completeness cannot compensate for a leaked meta-instruction
// or a missing role.
const invalidScoreCap = 60

// Outcome is the combined quality-gate result for one generated text.
type Outcome struct {
	IsValid   bool
	Errors    []string
	Warnings  []string
	Checklist *types.ChecklistResult
	Score     int
}

// Validator runs the scorecard with one phrase configuration.
type Validator struct {
	cfg Config
}

// New creates a validator. Zero-value fields in cfg fall back to defaults.
func New(cfg Config) *Validator {
	def := DefaultConfig()
	if len(cfg.RolePhrases) == 0 {
		cfg.RolePhrases = def.RolePhrases
	}
	if len(cfg.RoleNouns) == 0 {
		cfg.RoleNouns = def.RoleNouns
	}
	if len(cfg.LeakPhrases) == 0 {
		cfg.LeakPhrases = def.LeakPhrases
	}
	if len(cfg.GenericPhrases) == 0 {
		cfg.GenericPhrases = def.GenericPhrases
	}
	if cfg.MinSpecificLength == 0 {
		cfg.MinSpecificLength = def.MinSpecificLength
	}
	if len(cfg.StructureWords) == 0 {
		cfg.StructureWords = def.StructureWords
	}
	if len(cfg.GuidanceWords) == 0 {
		cfg.GuidanceWords = def.GuidanceWords
	}
	if len(cfg.ImperativeForms) == 0 {
		cfg.ImperativeForms = def.ImperativeForms
	}
	return &Validator{cfg: cfg}
}

// Evaluate scores generated text against the seven-point structural
// scorecard and, when a checklist is supplied, against its flattened
// items. Checks 1 and 2 failing are hard errors; the rest are warnings.
func (v *Validator) Evaluate(text string, format types.Format, cl *checklist.Checklist) Outcome {
	out := Outcome{}
	passed := 0

	pass := func(ok bool, hard bool, message string) {
		if ok {
			passed++
			return
		}
		if hard {
			out.Errors = append(out.Errors, message)
		} else {
			out.Warnings = append(out.Warnings, message)
		}
	}

	pass(v.hasRoleDefinition(text), true, "역할 정의가 없습니다. 프롬프트는 작성자 역할을 지정해야 합니다.")
	pass(!v.hasLeakPhrase(text), true, "프롬프트 생성 과정을 드러내는 메타 지시문이 포함되어 있습니다.")
	pass(v.isTopicSpecific(text), false, "내용이 일반적이거나 분량이 부족합니다. 주제 특화 정도를 확인하세요.")
	pass(v.namesFormat(text, format), false, fmt.Sprintf("문서 형식(%s)이 본문에 명시되지 않았습니다.", format.DisplayName()))
	pass(containsAny(text, v.cfg.StructureWords), false, "구조에 대한 안내가 없습니다.")
	pass(containsAny(text, v.cfg.GuidanceWords), false, "작성 원칙이나 제약에 대한 안내가 없습니다.")
	pass(containsAny(text, v.cfg.ImperativeForms), false, "실행을 지시하는 맺음 문장이 없습니다.")

	out.IsValid = len(out.Errors) == 0
	out.Score = (passed*100 + totalChecks/2) / totalChecks
	if !out.IsValid && out.Score > invalidScoreCap {
		out.Score = invalidScoreCap
	}

	if cl != nil {
		out.Checklist = scoreChecklist(text, cl)
	}

	return out
}

// hasRoleDefinition requires a first-person role-assignment phrase and a
// role noun to co-occur.
func (v *Validator) hasRoleDefinition(text string) bool {
	return containsAny(text, v.cfg.RolePhrases) && containsAny(text, v.cfg.RoleNouns)
}

func (v *Validator) hasLeakPhrase(text string) bool {
	return containsAny(text, v.cfg.LeakPhrases)
}

// isTopicSpecific rejects generic qualifiers and uses a length threshold
// as a proxy for specificity.
func (v *Validator) isTopicSpecific(text string) bool {
	if containsAny(text, v.cfg.GenericPhrases) {
		return false
	}
	return len([]rune(text)) > v.cfg.MinSpecificLength
}

func (v *Validator) namesFormat(text string, format types.Format) bool {
	return strings.Contains(text, format.DisplayName())
}

// scoreChecklist counts the flattened items whose concept appears in the
// text, via the single shared matching heuristic.
func scoreChecklist(text string, cl *checklist.Checklist) *types.ChecklistResult {
	result := &types.ChecklistResult{}
	items := cl.Flatten()
	result.Total = len(items)
	for _, item := range items {
		if checklist.ContainsConcept(text, item) {
			result.Passed = append(result.Passed, item)
		} else {
			result.Failed = append(result.Failed, item)
		}
	}
	if result.Total > 0 {
		result.Score = (len(result.Passed)*100 + result.Total/2) / result.Total
	}
	return result
}

func containsAny(text string, phrases []string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range phrases {
		if strings.Contains(lower, strings.ToLower(phrase)) {
			return true
		}
	}
	return false
}
