package argxs

import (
	"strings"

	"github.com/dzonerzy/go-argxs/internal/charset"
)

// matchStatus is the outcome of matching a flag token against the table
type matchStatus uint8

const (
	matchBound matchStatus = iota
	matchUnknown
	matchMalformed
)

// longMatch is the result of matchLong. name is the name part as written,
// kept for diagnostics when the match fails.
type longMatch struct {
	slot     slot
	name     string
	value    string
	hasValue bool
}

// matchLong matches a long flag body (the token without its leading "--").
// Arity is not checked here.
func (t *FlagTable) matchLong(body string) (longMatch, matchStatus) {
	m := longMatch{name: body}

	if eq := strings.IndexByte(body, '='); eq != -1 {
		// an '=' must introduce a non-empty, alphanumeric-led value
		if eq+1 >= len(body) || !charset.IsAlnum(body[eq+1]) {
			m.name = body[:eq]
			return m, matchMalformed
		}
		m.name = body[:eq]
		m.value = strings.Clone(body[eq+1:])
		m.hasValue = true
	}

	s, ok := t.lookupLong(m.name)
	if !ok {
		return m, matchUnknown
	}
	m.slot = s
	return m, matchBound
}

// matchShort matches a short flag token ("-c"). Grouped ids and inline
// values are not supported, so anything longer than two bytes is malformed.
func (t *FlagTable) matchShort(token string) (slot, matchStatus) {
	if len(token) != 2 {
		return slot{}, matchMalformed
	}
	s, ok := t.lookupShort(token[1])
	if !ok {
		return slot{}, matchUnknown
	}
	return s, matchBound
}
