package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/minsu/prompt-generator/internal/apperr"
	"github.com/minsu/prompt-generator/internal/checklist"
	"github.com/minsu/prompt-generator/internal/server/middleware"
	"github.com/minsu/prompt-generator/internal/types"
)

// handleGenerate produces one prompt for a generation request.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req types.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, r, apperr.Wrap(apperr.KindInvalidInput, "요청 본문을 해석할 수 없습니다.", err))
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, r, err)
		return
	}

	resp, err := s.generator.Generate(r.Context(), &req, middleware.GetRequestID(r.Context()))
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleValidate runs the quality gate over caller-supplied content
// without generating anything.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req types.ValidateContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, r, apperr.Wrap(apperr.KindInvalidInput, "요청 본문을 해석할 수 없습니다.", err))
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, r, err)
		return
	}

	var cl *checklist.Checklist
	if req.IncludeChecklist {
		loaded, err := s.checklists.Load(req.Format, req.Level, "")
		if err != nil {
			s.logger.Warn("checklist unavailable",
				zap.String("request_id", middleware.GetRequestID(r.Context())),
				zap.Error(err))
		} else {
			cl = loaded
		}
	}

	outcome := s.validator.Evaluate(req.Content, req.Format, cl)
	s.jsonResponse(w, http.StatusOK, types.ValidationResult{
		Passed:      outcome.IsValid,
		Score:       outcome.Score,
		Checklist:   outcome.Checklist,
		Warnings:    outcome.Warnings,
		Suggestions: outcome.Errors,
	})
}

type rulePackSummary struct {
	Format      types.Format `json:"format"`
	DisplayName string       `json:"displayName"`
	Version     string       `json:"version"`
	Modes       []string     `json:"modes,omitempty"`
}

type levelSummary struct {
	Level       types.Level `json:"level"`
	DisplayName string      `json:"displayName"`
}

// handleListRulePacks enumerates the selectable generation options:
// every loadable rule-pack plus the supported detail levels.
func (s *Server) handleListRulePacks(w http.ResponseWriter, r *http.Request) {
	formats := s.rulepacks.Formats()
	packs := make([]rulePackSummary, 0, len(formats))
	for _, f := range formats {
		pack, err := s.rulepacks.Load(f, "")
		if err != nil {
			s.logger.Warn("rule pack skipped", zap.String("format", string(f)), zap.Error(err))
			continue
		}
		summary := rulePackSummary{
			Format:      f,
			DisplayName: f.DisplayName(),
			Version:     pack.Version,
		}
		for name := range pack.Modes {
			summary.Modes = append(summary.Modes, name)
		}
		packs = append(packs, summary)
	}

	levels := make([]levelSummary, 0, len(types.AllLevels()))
	for _, l := range types.AllLevels() {
		levels = append(levels, levelSummary{Level: l, DisplayName: l.DisplayName()})
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"rulepacks": packs,
		"levels":    levels,
	})
}

// handleGetRulePack returns the full definition of one rule-pack.
func (s *Server) handleGetRulePack(w http.ResponseWriter, r *http.Request) {
	format := types.Format(r.PathValue("format"))
	if !format.Valid() {
		s.errorResponse(w, r, apperr.New(apperr.KindInvalidInput, "지원하지 않는 문서 형식입니다.").
			WithDetail("format", string(format)))
		return
	}

	pack, err := s.rulepacks.Load(format, r.URL.Query().Get("version"))
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, pack)
}

// handleGetChecklist returns the review checklist for one (format, level)
// pair. ?flat=1 collapses categories into a single item list; ?category=
// narrows to the first category whose label contains the given substring.
func (s *Server) handleGetChecklist(w http.ResponseWriter, r *http.Request) {
	format := types.Format(r.PathValue("format"))
	if !format.Valid() {
		s.errorResponse(w, r, apperr.New(apperr.KindInvalidInput, "지원하지 않는 문서 형식입니다.").
			WithDetail("format", string(format)))
		return
	}
	level := types.Level(r.PathValue("level"))
	if !level.Valid() {
		s.errorResponse(w, r, apperr.New(apperr.KindInvalidInput, "지원하지 않는 상세 수준입니다.").
			WithDetail("level", string(level)))
		return
	}

	cl, err := s.checklists.Load(format, level, r.URL.Query().Get("version"))
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}

	if substr := r.URL.Query().Get("category"); substr != "" {
		items := cl.ByCategory(substr)
		if items == nil {
			s.errorResponse(w, r, apperr.New(apperr.KindInvalidInput, "해당하는 점검 분류가 없습니다.").
				WithDetail("category", substr))
			return
		}
		s.jsonResponse(w, http.StatusOK, map[string]any{
			"title":    cl.Title,
			"category": substr,
			"items":    items,
		})
		return
	}

	if flat, _ := strconv.ParseBool(r.URL.Query().Get("flat")); flat {
		s.jsonResponse(w, http.StatusOK, map[string]any{
			"title":      cl.Title,
			"categories": cl.Labels(),
			"items":      cl.Flatten(),
		})
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"title":      cl.Title,
		"format":     format,
		"level":      level,
		"categories": cl.Categories,
	})
}
