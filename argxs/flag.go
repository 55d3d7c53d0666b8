package argxs

// Arity describes whether a flag's value is forbidden, mandatory or optional
type Arity uint8

const (
	ArityNone     Arity = iota // --help
	ArityRequired              // --document=report.txt, --document report.txt, -d report.txt
	ArityOptional              // --depth, --depth=3, -D, -D 3
)

// String returns the arity name used in diagnostics
func (a Arity) String() string {
	switch a {
	case ArityNone:
		return "none"
	case ArityRequired:
		return "required"
	case ArityOptional:
		return "optional"
	default:
		return "unknown"
	}
}

// FlagSpec declares one flag: its long name (--name), its short id (-c) and its arity.
// A FlagSpec with an empty Name is the table sentinel.
type FlagSpec struct {
	Name  string
	ID    byte
	Arity Arity
}

// Final terminates a declaration list. Specs after it are ignored.
var Final = FlagSpec{}

// IsFinal reports whether f is the sentinel
func (f *FlagSpec) IsFinal() bool {
	return f.Name == ""
}

// RequiresValue returns true if the flag must be given a value
func (f *FlagSpec) RequiresValue() bool {
	return f.Arity == ArityRequired
}

// AcceptsValue returns true if the flag may be given a value
func (f *FlagSpec) AcceptsValue() bool {
	return f.Arity != ArityNone
}

// Long returns the flag as written in long form, e.g. "--document"
func (f *FlagSpec) Long() string {
	return "--" + f.Name
}

// Short returns the flag as written in short form, e.g. "-d"
func (f *FlagSpec) Short() string {
	return "-" + string(rune(f.ID))
}

// SeenFlag is one matched occurrence of a declared flag.
type SeenFlag struct {
	Flag     *FlagSpec // points into the FlagTable's own copy of the declarations
	Index    int       // position of Flag within the FlagTable
	Value    string    // bound value, valid when HasValue
	HasValue bool
	Position int // argv index of the flag token
}
