package argxs

// ParseResult is the output of one parse pass. Flags and Args keep argv
// order. Err is nil on success; otherwise it holds the single fatal error and
// Flags/Args hold everything recognized strictly before the offending token.
type ParseResult struct {
	Flags []SeenFlag
	Args  []string
	Err   *ParseError
}

// OK reports whether the pass completed without a fatal error
func (r *ParseResult) OK() bool {
	return r.Err == nil
}

// Has reports whether the flag with the given long name was seen at least once
func (r *ParseResult) Has(name string) bool {
	for i := range r.Flags {
		if r.Flags[i].Flag.Name == name {
			return true
		}
	}
	return false
}

// Count returns how many times the flag with the given long name was seen
func (r *ParseResult) Count(name string) int {
	n := 0
	for i := range r.Flags {
		if r.Flags[i].Flag.Name == name {
			n++
		}
	}
	return n
}

// Value returns the last value bound to the named flag.
func (r *ParseResult) Value(name string) (string, bool) {
	for i := len(r.Flags) - 1; i >= 0; i-- {
		if f := &r.Flags[i]; f.Flag.Name == name && f.HasValue {
			return f.Value, true
		}
	}
	return "", false
}

// Values returns every value bound to the named flag, in argv order
func (r *ParseResult) Values(name string) []string {
	var out []string
	for i := range r.Flags {
		if f := &r.Flags[i]; f.Flag.Name == name && f.HasValue {
			out = append(out, f.Value)
		}
	}
	return out
}

// Arg returns the i-th positional argument, or "" if there is none
func (r *ParseResult) Arg(i int) string {
	if i < 0 || i >= len(r.Args) {
		return ""
	}
	return r.Args[i]
}
