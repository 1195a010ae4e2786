package server

import (
	"net/http"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/minsu/prompt-generator/internal/types"
)

type probeResult struct {
	OK        bool   `json:"ok"`
	LatencyMs int64  `json:"latencyMs"`
	Error     string `json:"error,omitempty"`
}

// handleHealth reports service liveness plus the readiness of the two
// embedded asset stores. Probes run concurrently; a failing probe degrades
// the status and the response code, it does not abort the report.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	var packProbe, checklistProbe probeResult

	var g errgroup.Group
	g.Go(func() error {
		start := time.Now()
		_, err := s.rulepacks.Load(types.FormatPressRelease, "")
		packProbe = probe(start, err)
		return nil
	})
	g.Go(func() error {
		start := time.Now()
		_, err := s.checklists.Load(types.FormatPressRelease, types.LevelIntermediate, "")
		checklistProbe = probe(start, err)
		return nil
	})
	_ = g.Wait()

	status := "healthy"
	code := http.StatusOK
	if !packProbe.OK || !checklistProbe.OK {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	s.jsonResponse(w, code, map[string]any{
		"status":        status,
		"uptimeSeconds": int64(time.Since(s.startedAt).Seconds()),
		"model":         s.llmClient.Model(),
		"probes": map[string]probeResult{
			"rulepacks":  packProbe,
			"checklists": checklistProbe,
		},
		"caches": map[string]int{
			"rulepacks":  s.rulepacks.Size(),
			"checklists": s.checklists.Size(),
			"ratelimit":  s.limiter.Size(),
		},
		"memory": map[string]uint64{
			"allocBytes":      mem.Alloc,
			"totalAllocBytes": mem.TotalAlloc,
			"numGC":           uint64(mem.NumGC),
		},
	})
}

func probe(start time.Time, err error) probeResult {
	p := probeResult{OK: err == nil, LatencyMs: time.Since(start).Milliseconds()}
	if err != nil {
		p.Error = err.Error()
	}
	return p
}
