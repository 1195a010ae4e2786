// Package ratelimit provides fixed-window rate limiting with multiple
// simultaneously active named policies. A request is admitted only when
// every checked policy allows it.
package ratelimit

import (
	"math"
	"sync"
	"time"
)

// Policy defines one fixed-window limit. CountFailed controls whether a
// request that later fails still consumes budget; policies with
// CountFailed=false are refunded via Refund.
type Policy struct {
	Name        string
	Window      time.Duration
	MaxRequests int
	CountFailed bool
}

// entry is the window state for one (policy, identity) key.
type entry struct {
	mu    sync.Mutex
	count int
	reset time.Time
	first time.Time
}

// Decision is the outcome of checking one request against one policy, or
// the most restrictive outcome across several.
type Decision struct {
	Allowed           bool
	Policy            string
	Limit             int
	Remaining         int
	Reset             time.Time
	RetryAfterSeconds int
}

// Limiter holds the window store for all policies. Correctness does not
// depend on the periodic sweep: any read of an expired entry reinitializes
// it in place.
type Limiter struct {
	policies []Policy
	mu       sync.RWMutex
	entries  map[string]*entry

	sweepTicker *time.Ticker
	sweepStop   chan struct{}

	now func() time.Time
}

// NewLimiter creates a limiter over the given policies. sweepInterval of 0
// disables the background sweep.
func NewLimiter(policies []Policy, sweepInterval time.Duration) *Limiter {
	l := &Limiter{
		policies: policies,
		entries:  make(map[string]*entry),
		now:      time.Now,
	}
	if sweepInterval > 0 {
		l.sweepTicker = time.NewTicker(sweepInterval)
		l.sweepStop = make(chan struct{})
		go l.sweepLoop()
	}
	return l
}

// Check evaluates the identity against every named policy. When names is
// empty, all configured policies apply. The composite decision is the
// logical AND of the per-policy decisions; the surfaced Decision is the
// most restrictive one (smallest remaining).
func (l *Limiter) Check(identity string, names ...string) Decision {
	var most *Decision
	allowed := true
	for _, p := range l.selectPolicies(names) {
		d := l.checkPolicy(p, identity)
		if !d.Allowed {
			allowed = false
		}
		if most == nil || d.Remaining < most.Remaining {
			most = &d
		}
	}
	if most == nil {
		return Decision{Allowed: true}
	}
	most.Allowed = allowed
	return *most
}

// Refund returns one unit of budget to every checked policy that does not
// count failed requests. Called by the request boundary when a request
// fails after admission.
func (l *Limiter) Refund(identity string, names ...string) {
	now := l.now()
	for _, p := range l.selectPolicies(names) {
		if p.CountFailed {
			continue
		}
		e := l.getEntry(p.Name + "|" + identity)
		e.mu.Lock()
		if now.Before(e.reset) && e.count > 0 {
			e.count--
		}
		e.mu.Unlock()
	}
}

func (l *Limiter) checkPolicy(p Policy, identity string) Decision {
	e := l.getEntry(p.Name + "|" + identity)
	now := l.now()

	e.mu.Lock()
	if e.first.IsZero() || now.After(e.reset) {
		// First request for the key, or the window expired: reinitialize
		// unconditionally, no partial carry-over.
		if e.first.IsZero() {
			e.first = now
		}
		e.reset = now.Add(p.Window)
		e.count = 1
	} else {
		e.count++
	}
	count := e.count
	reset := e.reset
	e.mu.Unlock()

	d := Decision{
		Policy:    p.Name,
		Limit:     p.MaxRequests,
		Allowed:   count <= p.MaxRequests,
		Remaining: max(0, p.MaxRequests-count),
		Reset:     reset,
	}
	if !d.Allowed {
		d.RetryAfterSeconds = int(math.Ceil(reset.Sub(now).Seconds()))
	}
	return d
}

func (l *Limiter) selectPolicies(names []string) []Policy {
	if len(names) == 0 {
		return l.policies
	}
	var out []Policy
	for _, p := range l.policies {
		for _, n := range names {
			if p.Name == n {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

func (l *Limiter) getEntry(key string) *entry {
	l.mu.RLock()
	e, ok := l.entries[key]
	l.mu.RUnlock()
	if ok {
		return e
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if e, ok := l.entries[key]; ok {
		return e
	}
	e = &entry{}
	l.entries[key] = e
	return e
}

func (l *Limiter) sweepLoop() {
	for {
		select {
		case <-l.sweepTicker.C:
			l.sweep()
		case <-l.sweepStop:
			return
		}
	}
}

// sweep drops expired entries to bound memory. Purely an optimization.
func (l *Limiter) sweep() {
	now := l.now()
	l.mu.Lock()
	defer l.mu.Unlock()
	for key, e := range l.entries {
		e.mu.Lock()
		expired := now.After(e.reset)
		e.mu.Unlock()
		if expired {
			delete(l.entries, key)
		}
	}
}

// Size reports the number of live window entries.
func (l *Limiter) Size() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// Stop halts the background sweep goroutine.
func (l *Limiter) Stop() {
	if l.sweepTicker != nil {
		l.sweepTicker.Stop()
	}
	if l.sweepStop != nil {
		close(l.sweepStop)
	}
}
