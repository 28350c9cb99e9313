package forms

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// SubmitGuard hands out one-time submission tokens. Every rendered editor carries
// a fresh token and a mutation is only performed for the first request presenting
// it, so a double click or a resubmitted POST cannot write twice.
type SubmitGuard struct {
	mu     sync.Mutex
	ttl    time.Duration
	now    func() time.Time
	issued map[string]time.Time
}

func NewSubmitGuard(ttl time.Duration) *SubmitGuard {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &SubmitGuard{ttl: ttl, now: time.Now, issued: make(map[string]time.Time)}
}

// Issue returns a new token valid for the guard's TTL.
func (g *SubmitGuard) Issue() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	for tok, exp := range g.issued {
		if now.After(exp) {
			delete(g.issued, tok)
		}
	}
	tok := uuid.NewString()
	g.issued[tok] = now.Add(g.ttl)
	return tok
}

// Consume accepts a token once. Unknown, expired and already used tokens are rejected.
func (g *SubmitGuard) Consume(token string) bool {
	if token == "" {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	exp, ok := g.issued[token]
	if !ok {
		return false
	}
	delete(g.issued, token)
	return !g.now().After(exp)
}
