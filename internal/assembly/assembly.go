package assembly

import (
	"fmt"
	"strings"

	"github.com/minsu/prompt-generator/internal/rulepack"
	"github.com/minsu/prompt-generator/internal/types"
)

// InstructionParams are the explicit inputs to BuildInstruction. Every
// optional field has a zero-value default; nothing is threaded implicitly.
type InstructionParams struct {
	Pack                   *rulepack.RulePack
	Level                  types.Level
	Tone                   string
	Mode                   string
	AdditionalRequirements []string
	StrictMode             bool
	TokenCeiling           int
}

// TaskParams are the explicit inputs to BuildTask.
type TaskParams struct {
	Format                 types.Format
	Level                  types.Level
	Topic                  string
	Context                string
	Tone                   string
	Mode                   string
	AdditionalRequirements []string
}

// BuildInstruction composes the system-level instruction payload. Block
// order is fixed; optional blocks affect only presence, never ordering.
func BuildInstruction(p InstructionParams) string {
	var b strings.Builder
	name := p.Pack.Name

	// (a) role statement
	fmt.Fprintf(&b, "당신은 %s 작성용 프롬프트를 전문적으로 생성하는 프롬프트 엔지니어링 전문가입니다.\n", name)
	fmt.Fprintf(&b, "아래 규칙에 따라, 주어진 주제에 맞는 %s 작성 프롬프트를 만들어야 합니다.\n\n", name)

	// (b) effective required sections
	b.WriteString("## 필수 구성 요소\n")
	b.WriteString("생성하는 프롬프트는 다음 구성 요소를 모두 작성하도록 지시해야 합니다.\n")
	for i, key := range p.Pack.EffectiveSections(p.Mode) {
		fmt.Fprintf(&b, "%d. %s", i+1, SectionName(key))
		if hint, ok := p.Pack.StructureHints[key]; ok {
			fmt.Fprintf(&b, " (%s)", hint)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// (c) dos
	b.WriteString("## 작성 원칙\n")
	for _, do := range p.Pack.Dos {
		fmt.Fprintf(&b, "- %s\n", do)
	}
	b.WriteString("\n")

	// (d) donts
	b.WriteString("## 금지 사항\n")
	for _, dont := range p.Pack.Donts {
		fmt.Fprintf(&b, "- %s\n", dont)
	}
	b.WriteString("\n")

	// (e) generic meta-guidance, level ceiling interpolated
	b.WriteString("## 프롬프트 생성 지침\n")
	b.WriteString("- 주제를 분석하여 해당 분야의 핵심 쟁점을 파악하십시오.\n")
	b.WriteString("- 주제에 어울리는 전문적인 작성자 역할(페르소나)을 프롬프트 안에 정의하십시오.\n")
	b.WriteString("- 해당 분야에서 반드시 짚어야 할 질문들을 프롬프트에 반영하십시오.\n")
	b.WriteString("- 관련 전문 용어를 프롬프트에 명시하십시오.\n")
	fmt.Fprintf(&b, "- 요청된 상세 수준(%s)에 맞게 지시의 깊이를 조정하십시오.\n", p.Level.DisplayName())
	fmt.Fprintf(&b, "- 어조는 '%s' 스타일을 유지하도록 지시하십시오.\n", types.ToneDisplayName(p.Tone))
	fmt.Fprintf(&b, "- 최종 문서의 전체 분량은 약 %d 토큰 이내로 제한하도록 지시하십시오.\n", p.TokenCeiling)
	b.WriteString("\n")

	// (f) compliance rules
	if len(p.Pack.ComplianceRules) > 0 {
		b.WriteString("## 준수 규정\n")
		for _, id := range p.Pack.ComplianceRules {
			fmt.Fprintf(&b, "- %s\n", ComplianceDescription(id))
		}
		b.WriteString("\n")
	}

	// (g) additional requirements
	if len(p.AdditionalRequirements) > 0 {
		b.WriteString("## 추가 요구사항\n")
		for _, req := range p.AdditionalRequirements {
			fmt.Fprintf(&b, "- %s\n", req)
		}
		b.WriteString("\n")
	}

	// (h) strict mode
	if p.StrictMode {
		b.WriteString("모든 사실 관계는 출처를 명시하고 검증 가능한 정보만 포함하도록 지시하십시오.\n\n")
	}

	// (i) closing instruction
	b.WriteString("출력은 설명이나 머리말 없이, 바로 복사하여 사용할 수 있는 프롬프트 본문만 작성하십시오.")

	return b.String()
}

// BuildTask composes the user-level task payload naming the concrete
// topic, level, and optional context.
func BuildTask(p TaskParams) string {
	var b strings.Builder

	fmt.Fprintf(&b, "다음 주제에 대한 %s 작성용 맞춤 프롬프트를 %s 수준으로 생성해 주세요.\n\n",
		p.Format.DisplayName(), p.Level.DisplayName())
	fmt.Fprintf(&b, "주제: %s\n", p.Topic)
	if p.Context != "" {
		fmt.Fprintf(&b, "배경 정보: %s\n", p.Context)
	}
	if p.Tone != "" {
		fmt.Fprintf(&b, "어조: %s\n", types.ToneDisplayName(p.Tone))
	}
	if p.Mode != "" {
		fmt.Fprintf(&b, "작성 유형: %s\n", p.Mode)
	}
	if len(p.AdditionalRequirements) > 0 {
		b.WriteString("추가 요구사항:\n")
		for _, req := range p.AdditionalRequirements {
			fmt.Fprintf(&b, "- %s\n", req)
		}
	}
	b.WriteString("\n해당 분야의 전문 용어와 고려사항이 프롬프트에 반영되도록 작성해 주세요.")

	return b.String()
}

// Combine joins the two payloads the way they are sent to the model, and
// the way the budget governor estimates them.
func Combine(instruction, task string) string {
	return instruction + "\n\n" + task
}
