package argxs

import (
	"github.com/dzonerzy/go-argxs/internal/charset"
	"github.com/dzonerzy/go-argxs/internal/fuzzy"
)

// ParseState represents the current state of the parse state machine
type ParseState int

const (
	StateCollecting     ParseState = iota // flags and positionals are recognized
	StatePositionalOnly                   // after "--", every token is positional
	StateHalted                           // a fatal error was recorded
)

// Parser classifies an argument vector against a validated FlagTable.
// A Parser holds configuration only; every Parse call runs on private state,
// so one Parser may be used from several goroutines.
type Parser struct {
	table        *FlagTable
	suggestFlags bool
	maxDistance  int
}

// NewParser creates a parser for table
func NewParser(table *FlagTable) *Parser {
	return &Parser{
		table:        table,
		suggestFlags: false, // disabled by default - user must opt-in
		maxDistance:  2,
	}
}

// SuggestFlags enables/disables "did you mean" suggestions for unknown long flags
func (p *Parser) SuggestFlags(enabled bool) *Parser {
	p.suggestFlags = enabled
	return p
}

// MaxDistance sets the maximum edit distance for suggestions
func (p *Parser) MaxDistance(distance int) *Parser {
	p.maxDistance = distance
	return p
}

// Table returns the table the parser matches against
func (p *Parser) Table() *FlagTable {
	return p.table
}

// Parse classifies argv[1:]; argv[0] is the program name and is never looked at.
//
// The returned result is never nil. On failure err is the same *ParseError as
// result.Err, and the result holds whatever was recognized before it.
func (p *Parser) Parse(argv []string) (*ParseResult, error) {
	ps := pass{
		parser:   p,
		argv:     argv,
		state:    StateCollecting,
		result:   &ParseResult{},
		peekedAt: -1,
	}
	ps.run()

	if ps.result.Err != nil {
		return ps.result, ps.result.Err
	}
	return ps.result, nil
}

// Parse is shorthand for NewParser(table).Parse(argv)
func Parse(table *FlagTable, argv []string) (*ParseResult, error) {
	return NewParser(table).Parse(argv)
}

// pass is the state of a single left-to-right walk over argv
type pass struct {
	parser *Parser
	argv   []string
	pos    int
	state  ParseState
	result *ParseResult

	// classification of the lookahead token, so a token inspected as a
	// potential value is not classified again on its own turn
	peekedAt int
	peeked   TokenKind
}

func (ps *pass) run() {
	for ps.pos = 1; ps.pos < len(ps.argv) && ps.state != StateHalted; ps.pos++ {
		ps.step(ps.argv[ps.pos])
	}
}

// step handles a single token based on parser state
func (ps *pass) step(token string) {
	if ps.state == StatePositionalOnly {
		ps.result.Args = append(ps.result.Args, token)
		return
	}

	switch ps.classify(ps.pos) {
	case TokenEndOfOptions:
		ps.state = StatePositionalOnly
	case TokenPositional:
		ps.result.Args = append(ps.result.Args, token)
	case TokenLongFlag:
		ps.longFlag(token)
	case TokenShortFlag:
		ps.shortFlag(token)
	case TokenMalformed:
		ps.fail(newParseError(ErrorTypeMalformedFlag, ps.pos, token))
	}
}

func (ps *pass) classify(i int) TokenKind {
	if i == ps.peekedAt {
		return ps.peeked
	}
	return Classify(ps.argv[i])
}

// longFlag handles --name and --name=value
func (ps *pass) longFlag(token string) {
	at := ps.pos
	m, status := ps.parser.table.matchLong(token[2:])

	switch status {
	case matchMalformed:
		e := newParseError(ErrorTypeMalformedFlag, at, token)
		e.Name = m.name
		ps.fail(e)
		return
	case matchUnknown:
		e := newParseError(ErrorTypeUnknownFlag, at, token)
		e.Name = m.name
		if ps.parser.suggestFlags {
			e.Suggestion = fuzzy.FindBestFlag(m.name, ps.parser.table.names, ps.parser.maxDistance)
		}
		ps.fail(e)
		return
	case matchBound:
	}

	flag := m.slot.flag
	switch flag.Arity {
	case ArityNone:
		if m.hasValue {
			ps.failFlag(ErrorTypeUnnecessaryArgument, at, flag)
			return
		}
	case ArityRequired:
		if !m.hasValue {
			value, ok := ps.takeValue()
			if !ok {
				ps.failFlag(ErrorTypeArgExpected, at, flag)
				return
			}
			m.value, m.hasValue = value, true
		}
	case ArityOptional:
		// only an attached value binds; a following token stays positional
	}

	ps.record(m.slot, m.value, m.hasValue, at)
}

// shortFlag handles -c, optionally followed by its value token
func (ps *pass) shortFlag(token string) {
	at := ps.pos
	s, status := ps.parser.table.matchShort(token)

	switch status {
	case matchMalformed:
		e := newParseError(ErrorTypeMalformedFlag, at, token)
		e.Name = charset.String(token[1])
		ps.fail(e)
		return
	case matchUnknown:
		e := newParseError(ErrorTypeUnknownFlag, at, token)
		e.Name = charset.String(token[1])
		ps.fail(e)
		return
	case matchBound:
	}

	var value string
	var hasValue bool
	switch s.flag.Arity {
	case ArityNone:
	case ArityRequired:
		if value, hasValue = ps.takeValue(); !hasValue {
			ps.failFlag(ErrorTypeArgExpected, at, s.flag)
			return
		}
	case ArityOptional:
		value, hasValue = ps.takeValue()
	}

	ps.record(s, value, hasValue, at)
}

// takeValue consumes the next token as a value, but only if it classifies as
// a positional. "-d -H" therefore leaves "-H" to be parsed as a flag.
func (ps *pass) takeValue() (string, bool) {
	next := ps.pos + 1
	if next >= len(ps.argv) {
		return "", false
	}
	ps.peekedAt, ps.peeked = next, Classify(ps.argv[next])
	if ps.peeked != TokenPositional {
		return "", false
	}
	ps.pos = next
	return ps.argv[next], true
}

func (ps *pass) record(s slot, value string, hasValue bool, at int) {
	ps.result.Flags = append(ps.result.Flags, SeenFlag{
		Flag:     s.flag,
		Index:    s.index,
		Value:    value,
		HasValue: hasValue,
		Position: at,
	})
}

func (ps *pass) failFlag(typ ErrorType, at int, flag *FlagSpec) {
	e := newParseError(typ, at, ps.argv[at])
	e.Flag = flag
	e.Name = flag.Name
	ps.fail(e)
}

func (ps *pass) fail(e *ParseError) {
	ps.result.Err = e.finish()
	ps.state = StateHalted
}
