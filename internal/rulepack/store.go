package rulepack

import (
	"embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/minsu/prompt-generator/internal/apperr"
	"github.com/minsu/prompt-generator/internal/types"
)

//go:embed assets/*.yaml
var packFiles embed.FS

// DefaultVersion is the version resolved when a request does not name one.
const DefaultVersion = "1.0"

// Store loads and caches rule-packs keyed by (format, version). Entries
// are write-once: a race to populate the same key is harmless because
// re-parsing the same asset yields an equivalent value.
type Store struct {
	mu    sync.RWMutex
	cache map[string]*RulePack
}

// NewStore creates an empty rule-pack store.
func NewStore() *Store {
	return &Store{cache: make(map[string]*RulePack)}
}

// Load returns the rule-pack for a format and version. Version "" resolves
// to DefaultVersion. The returned pack is shared and must not be mutated.
func (s *Store) Load(format types.Format, version string) (*RulePack, error) {
	if version == "" {
		version = DefaultVersion
	}
	key := string(format) + "@" + version

	s.mu.RLock()
	pack, ok := s.cache[key]
	s.mu.RUnlock()
	if ok {
		return pack, nil
	}

	data, err := packFiles.ReadFile(assetPath(format, version))
	if err != nil {
		return nil, apperr.New(apperr.KindRulePackNotFound, "요청한 문서 형식의 규칙을 찾을 수 없습니다.").
			WithDetail("format", string(format)).
			WithDetail("version", version)
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, apperr.Wrap(apperr.KindRulePackMalformed, "문서 형식 규칙 파일이 손상되었습니다.", err).
			WithDetail("format", string(format))
	}
	if err := validateShape(doc); err != nil {
		return nil, apperr.Wrap(apperr.KindRulePackMalformed, "문서 형식 규칙이 스키마를 만족하지 않습니다.", err).
			WithDetail("format", string(format))
	}

	pack = &RulePack{}
	if err := yaml.Unmarshal(data, pack); err != nil {
		return nil, apperr.Wrap(apperr.KindRulePackMalformed, "문서 형식 규칙 파일이 손상되었습니다.", err).
			WithDetail("format", string(format))
	}

	s.mu.Lock()
	if existing, ok := s.cache[key]; ok {
		pack = existing
	} else {
		s.cache[key] = pack
	}
	s.mu.Unlock()

	return pack, nil
}

// Formats enumerates the formats that have a default-version asset.
func (s *Store) Formats() []types.Format {
	var out []types.Format
	for _, f := range types.AllFormats() {
		if _, err := packFiles.ReadFile(assetPath(f, DefaultVersion)); err == nil {
			out = append(out, f)
		}
	}
	return out
}

// Size reports the number of cached packs, for the health probe.
func (s *Store) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cache)
}

func assetPath(format types.Format, version string) string {
	return fmt.Sprintf("assets/%s_%s.yaml", format, version)
}
