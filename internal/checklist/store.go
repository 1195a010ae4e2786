package checklist

import (
	"embed"
	"fmt"
	"sync"

	"github.com/minsu/prompt-generator/internal/apperr"
	"github.com/minsu/prompt-generator/internal/types"
)

//go:embed assets/*.md
var checklistFiles embed.FS

// DefaultVersion is the version resolved when a request does not name one.
const DefaultVersion = "1.0"

// Store parses and caches checklists keyed by (format, level, version).
// Entries are write-once; a populate race is harmless because parsing the
// same asset yields an equivalent value.
type Store struct {
	mu    sync.RWMutex
	cache map[string]*Checklist
}

// NewStore creates an empty checklist store.
func NewStore() *Store {
	return &Store{cache: make(map[string]*Checklist)}
}

// Load returns the checklist for a (format, level) pair. Version ""
// resolves to DefaultVersion. The returned checklist is shared and must
// not be mutated.
func (s *Store) Load(format types.Format, level types.Level, version string) (*Checklist, error) {
	if version == "" {
		version = DefaultVersion
	}
	key := fmt.Sprintf("%s/%s@%s", format, level, version)

	s.mu.RLock()
	cl, ok := s.cache[key]
	s.mu.RUnlock()
	if ok {
		return cl, nil
	}

	data, err := checklistFiles.ReadFile(fmt.Sprintf("assets/%s_%s_%s.md", format, level, version))
	if err != nil {
		return nil, apperr.New(apperr.KindRulePackNotFound, "요청한 형식과 수준의 체크리스트를 찾을 수 없습니다.").
			WithDetail("format", string(format)).
			WithDetail("level", string(level)).
			WithDetail("version", version)
	}

	cl = Parse(string(data))

	s.mu.Lock()
	if existing, ok := s.cache[key]; ok {
		cl = existing
	} else {
		s.cache[key] = cl
	}
	s.mu.Unlock()

	return cl, nil
}

// Size reports the number of cached checklists, for the health probe.
func (s *Store) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cache)
}
