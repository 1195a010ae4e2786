package ratelimit

import (
	"net"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// IdentityResolver derives the caller identity used as the window key.
// The client IP is primary; when a verifiable session token accompanies
// the request, its subject is appended so sessions behind a shared NAT get
// independent windows.
type IdentityResolver struct {
	jwtSecret []byte
}

// NewIdentityResolver creates a resolver. An empty secret disables session
// token parsing and identities are IP-only.
func NewIdentityResolver(jwtSecret []byte) *IdentityResolver {
	return &IdentityResolver{jwtSecret: jwtSecret}
}

// Resolve returns the identity key for one request.
func (r *IdentityResolver) Resolve(req *http.Request) string {
	ip := clientIP(req)
	if sub := r.sessionSubject(req); sub != "" {
		return ip + "#" + sub
	}
	return ip
}

// sessionSubject extracts the subject from a Bearer token when it verifies
// against the configured secret. Invalid or unverifiable tokens are
// ignored rather than rejected; the limiter is not an authentication layer.
func (r *IdentityResolver) sessionSubject(req *http.Request) string {
	if len(r.jwtSecret) == 0 {
		return ""
	}
	auth := req.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	raw := strings.TrimPrefix(auth, "Bearer ")

	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return r.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return ""
	}
	sub, err := token.Claims.GetSubject()
	if err != nil {
		return ""
	}
	return sub
}

// clientIP prefers the first X-Forwarded-For hop, then X-Real-IP, then the
// connection's remote address.
func clientIP(req *http.Request) string {
	if fwd := req.Header.Get("X-Forwarded-For"); fwd != "" {
		parts := strings.Split(fwd, ",")
		if ip := strings.TrimSpace(parts[0]); ip != "" {
			return ip
		}
	}
	if real := req.Header.Get("X-Real-IP"); real != "" {
		return real
	}
	host, _, err := net.SplitHostPort(req.RemoteAddr)
	if err != nil {
		return req.RemoteAddr
	}
	return host
}
