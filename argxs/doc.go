// Package argxs classifies a process argument vector against a declared
// table of flags.
//
// A FlagTable is declared once, validated once and shared read-only:
//
//	var flags = argxs.MustFlagTable(
//		argxs.FlagSpec{Name: "document", ID: 'd', Arity: argxs.ArityRequired},
//		argxs.FlagSpec{Name: "depth", ID: 'D', Arity: argxs.ArityOptional},
//		argxs.FlagSpec{Name: "help", ID: 'H', Arity: argxs.ArityNone},
//		argxs.Final,
//	)
//
//	res, err := argxs.Parse(flags, os.Args)
//	if err != nil {
//		os.Exit(argxs.NewExitCodes().Resolve(err))
//	}
//
// # Token Grammar
//
//   - "--" ends option recognition; every later token is positional
//   - "--name" and "--name=value" are long flags
//   - "-c" is a short flag, c being a single letter or digit
//   - anything else is a positional argument
//
// Values attached with '=' must start with a letter or digit. A flag with
// required arity and no attached value takes the next token as its value,
// provided that token is not itself flag-shaped. Short flags with optional
// arity do the same; long flags with optional arity only accept attached
// values. Short flags cannot be grouped (-abc) nor carry inline values (-dfile).
//
// # Errors
//
// Parsing stops at the first invalid token. The returned *ParseResult keeps
// every flag and positional recognized before it, and its Err field carries
// the category, the argv index and, where relevant, the flag involved.
// Inconsistent declarations are reported by NewFlagTable as a
// *ProgrammerError before any argument is looked at.
package argxs
