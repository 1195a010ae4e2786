package server

import (
	"net/http"
	"strconv"

	"github.com/minsu/prompt-generator/internal/apperr"
)

// limitRecorder captures the downstream status so failed requests can be
// refunded against policies that only count successes.
type limitRecorder struct {
	http.ResponseWriter
	status int
}

func (r *limitRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withRateLimit admits or rejects a request against the named policies.
// The surfaced headers always describe the most restrictive policy.
func (s *Server) withRateLimit(next http.Handler, policies ...string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity := s.identities.Resolve(r)
		decision := s.limiter.Check(identity, policies...)

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(decision.Reset.Unix(), 10))

		if !decision.Allowed {
			w.Header().Set("Retry-After", strconv.Itoa(decision.RetryAfterSeconds))
			s.errorResponse(w, r, apperr.New(apperr.KindRateLimitExceeded,
				"요청이 너무 많습니다. 잠시 후 다시 시도해 주세요.").
				WithDetail("policy", decision.Policy).
				WithDetail("retryAfterSeconds", decision.RetryAfterSeconds))
			return
		}

		rec := &limitRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		// Refund only touches policies that do not count failures.
		if rec.status >= http.StatusBadRequest {
			s.limiter.Refund(identity, policies...)
		}
	})
}
