package argxs

import (
	"github.com/dzonerzy/go-argxs/internal/charset"
)

// TokenKind is the classification of a single argv element
type TokenKind uint8

const (
	TokenPositional   TokenKind = iota // anything not flag-shaped
	TokenLongFlag                      // --name, --name=value
	TokenShortFlag                     // -c
	TokenEndOfOptions                  // --
	TokenMalformed                     // flag-shaped prefix, invalid structure
)

// String returns a human readable token kind
func (k TokenKind) String() string {
	switch k {
	case TokenPositional:
		return "positional"
	case TokenLongFlag:
		return "long flag"
	case TokenShortFlag:
		return "short flag"
	case TokenEndOfOptions:
		return "end of options"
	case TokenMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// IsFlag reports whether the kind is flag-shaped, i.e. anything but a positional
func (k TokenKind) IsFlag() bool {
	return k != TokenPositional
}

// Classify looks only at the leading bytes of token. It never allocates.
func Classify(token string) TokenKind {
	if len(token) == 0 || token[0] != '-' {
		return TokenPositional
	}

	if len(token) >= 2 && token[1] == '-' {
		if len(token) == 2 {
			return TokenEndOfOptions
		}
		if charset.IsAlnum(token[2]) {
			return TokenLongFlag
		}
		return TokenMalformed
	}

	// a lone "-" falls through here as malformed
	if len(token) >= 2 && charset.IsAlnum(token[1]) {
		return TokenShortFlag
	}
	return TokenMalformed
}
