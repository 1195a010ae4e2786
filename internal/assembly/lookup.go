// Package assembly builds the two textual payloads sent to the external
// model: the instruction payload (system-level guidance) and the task
// payload (the concrete request). Both builders are pure ordered string
// composition; for a fixed input the output is byte-identical across calls.
package assembly

// sectionNames maps rule-pack section keys to their Korean display names.
// Unknown keys display verbatim.
var sectionNames = map[string]string{
	"headline":          "제목",
	"subhead":           "부제",
	"lede":              "리드 문단",
	"body":              "본문",
	"quote":             "인용문",
	"contact":           "담당자 연락처",
	"policy_background": "정책 배경",
	"policy_detail":     "정책 내용",
	"expected_effect":   "기대 효과",
	"event_info":        "행사 개요",
	"participation":     "참여 안내",
	"opening":           "서두 인사",
	"audience_greeting": "청중 호명",
	"main_message":      "핵심 메시지",
	"supporting_points": "근거와 사례",
	"closing":           "맺음말",
	"congratulation":    "축하 인사",
	"significance":      "의의",
	"hook":              "도입 문장",
	"key_info":          "핵심 정보",
	"call_to_action":    "참여 유도",
	"hashtags":          "해시태그",
	"recipient":         "수신처",
	"purpose":           "질의 목적",
	"background":        "배경",
	"questions":         "질의 항목",
	"deadline":          "회신 기한",
	"sender":            "발신 정보",
	"summary":           "핵심 요약",
	"current_status":    "현황",
	"analysis":          "분석",
	"recommendation":    "건의 사항",
	"appendix":          "부록",
	"key_issues":        "주요 쟁점",
	"period":            "조사 기간",
	"headline_summary":  "주요 보도 요약",
	"coverage_analysis": "보도량 분석",
	"tone_assessment":   "논조 평가",
	"watch_points":      "주시 쟁점",
}

// complianceDescriptions maps compliance-rule identifiers to the sentence
// rendered into the instruction payload. Unknown identifiers render as-is;
// they are tolerated, not errors.
var complianceDescriptions = map[string]string{
	"sources_required":   "모든 인용 자료와 통계에 출처를 명시하도록 지시할 것",
	"privacy_protection": "개인정보가 노출되지 않도록 지시할 것",
	"quote_attribution":  "인용문에는 발언자의 실명과 직함을 붙이도록 지시할 것",
	"no_speculation":     "확인되지 않은 사실을 단정적으로 쓰지 않도록 지시할 것",
	"fact_verification":  "핵심 사실 관계를 교차 확인하도록 지시할 것",
	"legal_basis":        "관련 법령과 조항을 정확히 인용하도록 지시할 것",
}

// SectionName resolves a section key to its display name, returning the
// key verbatim when unknown.
func SectionName(key string) string {
	if name, ok := sectionNames[key]; ok {
		return name
	}
	return key
}

// ComplianceDescription resolves a compliance-rule identifier, returning
// the identifier verbatim when unknown.
func ComplianceDescription(id string) string {
	if desc, ok := complianceDescriptions[id]; ok {
		return desc
	}
	return id
}
