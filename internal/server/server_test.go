package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/minsu/prompt-generator/internal/config"
	"github.com/minsu/prompt-generator/internal/llm"
	"github.com/minsu/prompt-generator/internal/types"
)

type fakeClient struct {
	text  string
	err   error
	calls int
}

func (f *fakeClient) Generate(ctx context.Context, prompt string) (*llm.Result, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &llm.Result{
		Text:  f.text,
		Usage: llm.Usage{PromptTokens: 350, CompletionTokens: 400, TotalTokens: 750},
	}, nil
}

func (f *fakeClient) Model() string { return "fake-model" }
func (f *fakeClient) Close() error  { return nil }

func newTestServer(t *testing.T, client llm.Client) *Server {
	t.Helper()
	cfg := &config.Config{Port: 0, Env: "test", JWTSecret: "test-secret"}
	s, err := newWithClient(cfg, zap.NewNop(), client)
	require.NoError(t, err)
	t.Cleanup(s.limiter.Stop)
	return s
}

func doJSON(s *Server, method, target string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)
	return rec
}

func TestGenerateEndpoint_Success(t *testing.T) {
	client := &fakeClient{text: "생성된 프롬프트 본문"}
	s := newTestServer(t, client)

	rec := doJSON(s, http.MethodPost, "/api/generate", types.GenerateRequest{
		Topic:  "청년 창업 지원 정책 발표",
		Format: types.FormatPressRelease,
		Level:  types.LevelIntermediate,
	})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Limit"))
	assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Remaining"))

	var resp types.GenerateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "생성된 프롬프트 본문", resp.Prompt)
	assert.Equal(t, types.FormatPressRelease, resp.Metadata.Format)
	assert.NotEmpty(t, resp.Metadata.RequestID)
	assert.Equal(t, "press_release", resp.RulePack.ID)
	assert.Positive(t, resp.Metadata.TokenCount)
}

func TestGenerateEndpoint_MissingTopic(t *testing.T) {
	s := newTestServer(t, &fakeClient{text: "x"})

	rec := doJSON(s, http.MethodPost, "/api/generate", types.GenerateRequest{
		Format: types.FormatPressRelease,
		Level:  types.LevelBasic,
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp types.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "invalid_input", resp.Error.Code)
	assert.NotEmpty(t, resp.Error.RequestID)
}

func TestGenerateEndpoint_UnknownFormat(t *testing.T) {
	s := newTestServer(t, &fakeClient{text: "x"})

	rec := doJSON(s, http.MethodPost, "/api/generate", map[string]any{
		"topic":  "주제",
		"format": "memo",
		"level":  "basic",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp types.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "invalid_input", resp.Error.Code)
	assert.Equal(t, "memo", resp.Error.Details["format"])
}

func TestGenerateEndpoint_MalformedBody(t *testing.T) {
	s := newTestServer(t, &fakeClient{text: "x"})

	req := httptest.NewRequest(http.MethodPost, "/api/generate", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateEndpoint_BurstLimit(t *testing.T) {
	s := newTestServer(t, &fakeClient{text: "본문"})

	body := types.GenerateRequest{
		Topic:  "주민 참여 예산제 안내",
		Format: types.FormatPressRelease,
		Level:  types.LevelIntermediate,
	}
	for i := 0; i < 5; i++ {
		rec := doJSON(s, http.MethodPost, "/api/generate", body)
		require.Equal(t, http.StatusOK, rec.Code, "request %d", i+1)
	}

	rec := doJSON(s, http.MethodPost, "/api/generate", body)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	var resp types.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "rate_limit_exceeded", resp.Error.Code)
}

func TestValidateEndpoint(t *testing.T) {
	s := newTestServer(t, &fakeClient{text: "x"})

	rec := doJSON(s, http.MethodPost, "/api/validate", types.ValidateContentRequest{
		Content: "짧은 본문",
		Format:  types.FormatPressRelease,
		Level:   types.LevelBasic,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var result types.ValidationResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.False(t, result.Passed)
	assert.Positive(t, result.Score)
	assert.NotEmpty(t, result.Suggestions)
}

func TestListRulePacksEndpoint(t *testing.T) {
	s := newTestServer(t, &fakeClient{text: "x"})

	rec := doJSON(s, http.MethodGet, "/api/rulepacks", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		RulePacks []rulePackSummary `json:"rulepacks"`
		Levels    []levelSummary    `json:"levels"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.RulePacks, 6)
	assert.Len(t, resp.Levels, 3)
}

func TestGetRulePackEndpoint(t *testing.T) {
	s := newTestServer(t, &fakeClient{text: "x"})

	rec := doJSON(s, http.MethodGet, "/api/rulepacks/press_release", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var pack struct {
		ID               string   `json:"id"`
		RequiredSections []string `json:"requiredSections"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pack))
	assert.Equal(t, "press_release", pack.ID)
	assert.Contains(t, pack.RequiredSections, "headline")

	rec = doJSON(s, http.MethodGet, "/api/rulepacks/memo", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetChecklistEndpoint(t *testing.T) {
	s := newTestServer(t, &fakeClient{text: "x"})

	rec := doJSON(s, http.MethodGet, "/api/checklists/press_release/intermediate?flat=1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var flat struct {
		Title string   `json:"title"`
		Items []string `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &flat))
	assert.NotEmpty(t, flat.Title)
	assert.NotEmpty(t, flat.Items)

	rec = doJSON(s, http.MethodGet, "/api/checklists/press_release/expert", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t, &fakeClient{text: "x"})

	rec := doJSON(s, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var health struct {
		Status string `json:"status"`
		Model  string `json:"model"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "fake-model", health.Model)
}
