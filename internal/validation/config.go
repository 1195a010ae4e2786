// Package validation runs the quality gate over model-generated prompt
// text: a seven-point structural scorecard plus checklist-based concept
// scoring. A prompt that leaks its own generation process or lacks a role
// definition is invalid regardless of how structurally complete it is.
package validation

// Config holds the phrase lists and thresholds the scorecard matches
// against. The lists are configuration data so deployments can extend
// them, but the defaults are the reference lists and must not be padded
// with inferred additions.
type Config struct {
	// RolePhrases are first-person role-assignment openers; one must
	// appear together with a RoleNoun for check 1 to pass.
	RolePhrases []string
	// RoleNouns are writer-class role words.
	RoleNouns []string
	// LeakPhrases reveal the text is about generating a prompt rather
	// than being one. Any occurrence is a hard error.
	LeakPhrases []string
	// GenericPhrases mark a prompt as generic rather than topic-specific.
	GenericPhrases []string
	// MinSpecificLength is the minimum character count used as a proxy
	// for topic specificity.
	MinSpecificLength int
	// StructureWords indicate structural guidance is present.
	StructureWords []string
	// GuidanceWords indicate writing principles or constraints.
	GuidanceWords []string
	// ImperativeForms are closing-instruction verb forms meaning
	// write/create/generate.
	ImperativeForms []string
}

// DefaultConfig returns the reference deployment's phrase lists.
func DefaultConfig() Config {
	return Config{
		RolePhrases: []string{
			"당신은",
			"귀하는",
		},
		RoleNouns: []string{
			"전문가",
			"작성자",
			"담당자",
			"기자",
			"연설문가",
			"전문 기고가",
		},
		LeakPhrases: []string{
			"프롬프트를 생성하세요",
			"프롬프트를 생성해",
			"위 내용을 출력",
			"위의 프롬프트를",
			"작성용 프롬프트를 만들",
			"프롬프트 생성 지침",
		},
		GenericPhrases: []string{
			"일반적인 내용으로",
			"적절히 작성",
			"알아서 작성",
			"어떤 주제든",
		},
		MinSpecificLength: 500,
		StructureWords: []string{
			"구조",
			"구성",
			"섹션",
			"형식",
		},
		GuidanceWords: []string{
			"원칙",
			"지침",
			"요구사항",
			"유의사항",
		},
		ImperativeForms: []string{
			"작성하세요",
			"작성하십시오",
			"작성해 주세요",
			"생성하세요",
			"만들어 주세요",
		},
	}
}
