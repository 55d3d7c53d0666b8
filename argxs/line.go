package argxs

import (
	"fmt"

	"github.com/google/shlex"
)

// ParseString splits line using shell-like quoting rules and parses the
// resulting vector. The first word of line is the program name.
//
// A line that cannot be split (for example an unterminated quote) returns a
// nil result and a wrapped shlex error.
func (p *Parser) ParseString(line string) (*ParseResult, error) {
	argv, err := shlex.Split(line)
	if err != nil {
		return nil, fmt.Errorf("argxs: split command line: %w", err)
	}
	return p.Parse(argv)
}
