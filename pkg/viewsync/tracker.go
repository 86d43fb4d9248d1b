// Package viewsync discards responses to superseded map views.
//
// A client issues a token for every query it sends and applies a response only while its
// token is still the latest one issued:
//
//	tok := tracker.Issue()
//	resp := fetch(bbox, zoom, tok)
//	tracker.Apply(tok, func() { render(resp) })
//
// The server echoes the token back in meta.requestToken.
package viewsync

import (
	"strconv"
	"strings"
	"sync"
)

// Token identifies one issued query. Zero is never issued.
type Token uint64

// String formats the token for a requestToken query parameter
func (t Token) String() string {
	return strconv.FormatUint(uint64(t), 10)
}

// ParseToken reads a requestToken value. Blank, zero and non-numeric values are rejected.
func ParseToken(s string) (Token, bool) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return Token(n), true
}

// Tracker issues strictly increasing tokens and remembers the latest one
type Tracker struct {
	mu     sync.Mutex
	latest Token
}

// NewTracker creates a tracker with no token issued
func NewTracker() *Tracker {
	return &Tracker{}
}

// Issue returns a token greater than every token issued before
func (t *Tracker) Issue() Token {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.latest++
	return t.latest
}

// Latest returns the most recently issued token, or 0
func (t *Tracker) Latest() Token {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.latest
}

// IsCurrent reports whether tok is the latest issued token
func (t *Tracker) IsCurrent(tok Token) bool {
	return tok != 0 && tok == t.Latest()
}

// Apply runs fn if tok is still the latest token and reports whether it ran.
// No token can be issued while fn runs, so fn never applies a superseded view.
func (t *Tracker) Apply(tok Token, fn func()) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if tok == 0 || tok != t.latest {
		return false
	}
	fn()
	return true
}
