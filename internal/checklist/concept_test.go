package checklist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSurfaceForms_Quoted(t *testing.T) {
	forms := SurfaceForms(`"헤드라인" 작성 지시가 있는가`)
	assert.Contains(t, forms, "헤드라인")
}

func TestSurfaceForms_Parenthetical(t *testing.T) {
	forms := SurfaceForms("제목(헤드라인) 작성 지시가 있는가")
	assert.Contains(t, forms, "헤드라인")
}

func TestSurfaceForms_ParticleStripped(t *testing.T) {
	forms := SurfaceForms("육하원칙을 담도록 했는가")
	assert.Contains(t, forms, "육하원칙")
}

func TestContainsConcept_Found(t *testing.T) {
	text := "첫 문단에는 육하원칙에 따라 핵심 사실을 정리하고, 제목은 25자 이내로 작성하세요."

	assert.True(t, ContainsConcept(text, "육하원칙을 담도록 했는가"))
	assert.True(t, ContainsConcept(text, "제목(헤드라인) 작성 지시가 있는가"))
}

func TestContainsConcept_NotFound(t *testing.T) {
	text := "이 글은 날씨에 대한 내용입니다."

	assert.False(t, ContainsConcept(text, "인용문에 직함과 소속을 넣도록 했는가"))
}

func TestContainsConcept_CaseInsensitive(t *testing.T) {
	assert.True(t, ContainsConcept("call TO action 안내 포함", "참여 방법(call to action)을 안내하도록 했는가"))
}
