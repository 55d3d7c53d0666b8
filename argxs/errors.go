package argxs

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrorType represents error categories for flag declaration and parsing.
// These categories drive exit-code mapping (via ExitCodeManager).
type ErrorType string

const (
	ErrorTypeProgrammer          ErrorType = "programmer_error"
	ErrorTypeMalformedFlag       ErrorType = "malformed_flag"
	ErrorTypeUnknownFlag         ErrorType = "unknown_flag"
	ErrorTypeArgExpected         ErrorType = "arg_expected"
	ErrorTypeUnnecessaryArgument ErrorType = "unnecessary_argument"
)

// Description returns a short, fixed description of the category
func (t ErrorType) Description() string {
	switch t { // exhaustive over ErrorType
	case ErrorTypeProgrammer:
		return "invalid flag declarations"
	case ErrorTypeMalformedFlag:
		return "malformed flag"
	case ErrorTypeUnknownFlag:
		return "undefined flag"
	case ErrorTypeArgExpected:
		return "argument expected"
	case ErrorTypeUnnecessaryArgument:
		return "unnecessary argument"
	default:
		return string(t)
	}
}

// ProgrammerError reports an inconsistent flag table. It is detected before
// any argv is touched and should be treated as a startup defect.
type ProgrammerError struct {
	Position int      // index of the offending spec in the declaration list
	Spec     FlagSpec // copy of the offending spec
	Reason   string
}

func newProgrammerError(position int, spec FlagSpec, reason string) *ProgrammerError {
	return &ProgrammerError{Position: position, Spec: spec, Reason: reason}
}

func (e *ProgrammerError) Error() string {
	return fmt.Sprintf("argxs: flag declaration %d (name %q, id %q): %s",
		e.Position, e.Spec.Name, rune(e.Spec.ID), e.Reason)
}

// ParseError is the single fatal error of a parse pass.
type ParseError struct {
	Type       ErrorType
	Index      int       // argv index of the offending token
	Token      string    // argv[Index]
	Flag       *FlagSpec // implicated flag for ArgExpected and UnnecessaryArgument
	Name       string    // flag name or id as written, for UnknownFlag and MalformedFlag
	Suggestion string    // closest declared long name, for UnknownFlag when enabled
	Message    string
}

func (e *ParseError) Error() string {
	return e.Message
}

func newParseError(typ ErrorType, index int, token string) *ParseError {
	return &ParseError{Type: typ, Index: index, Token: token}
}

// finish builds the message once all fields are known
func (e *ParseError) finish() *ParseError {
	var msg string
	switch e.Type {
	case ErrorTypeMalformedFlag:
		msg = "malformed flag: " + e.Token
	case ErrorTypeUnknownFlag:
		msg = "unknown flag: " + e.Token
	case ErrorTypeArgExpected:
		msg = "flag requires a value: " + e.Flag.Long()
	case ErrorTypeUnnecessaryArgument:
		msg = "flag does not take a value: " + e.Flag.Long()
	default:
		msg = e.Type.Description()
	}
	e.Message = msg + " (argv[" + strconv.Itoa(e.Index) + "])"
	return e
}

// ErrorTypeOf returns the category of err, or "" if err is not an argxs error.
func ErrorTypeOf(err error) ErrorType {
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return parseErr.Type
	}
	var progErr *ProgrammerError
	if errors.As(err, &progErr) {
		return ErrorTypeProgrammer
	}
	return ""
}
