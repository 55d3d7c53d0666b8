package argxs

import (
	"github.com/dzonerzy/go-argxs/internal/charset"
)

// slot is one indexed declaration: the spec, its table index and the
// precomputed length of its long name.
type slot struct {
	flag    *FlagSpec
	index   int
	nameLen int
}

// FlagTable is a validated, read-only set of flag declarations.
// It is safe for concurrent use by any number of parsers.
type FlagTable struct {
	specs []FlagSpec // own copy, never reallocated after construction
	long  []slot     // declaration order, scanned for long flags
	short [charset.Size]slot
	names []string // long names in declaration order, for suggestions
}

// NewFlagTable validates specs and builds the lookup index. Declaration stops at
// the first sentinel (a spec with an empty Name) if there is one.
//
// Any inconsistency in the declarations is reported as a *ProgrammerError.
func NewFlagTable(specs ...FlagSpec) (*FlagTable, error) {
	n := 0
	for n < len(specs) && !specs[n].IsFinal() {
		n++
	}

	t := &FlagTable{
		specs: make([]FlagSpec, n),
		long:  make([]slot, n),
		names: make([]string, n),
	}
	copy(t.specs, specs[:n])

	for i := range t.specs {
		spec := &t.specs[i]

		if !charset.IsAlnumString(spec.Name) {
			return nil, newProgrammerError(i, *spec, "flag name must be alphanumeric")
		}
		key := charset.Slot(spec.ID)
		if key == charset.NoSlot {
			return nil, newProgrammerError(i, *spec, "flag id must be a single alphanumeric character")
		}
		if spec.Arity > ArityOptional {
			return nil, newProgrammerError(i, *spec, "unknown arity")
		}
		if prev := t.short[key].flag; prev != nil {
			return nil, newProgrammerError(i, *spec, "duplicate flag id, already used by --"+prev.Name)
		}
		for j := 0; j < i; j++ {
			if t.long[j].nameLen == len(spec.Name) && t.long[j].flag.Name == spec.Name {
				return nil, newProgrammerError(i, *spec, "duplicate flag name")
			}
		}

		s := slot{flag: spec, index: i, nameLen: len(spec.Name)}
		t.short[key] = s
		t.long[i] = s
		t.names[i] = spec.Name
	}

	return t, nil
}

// MustFlagTable is like NewFlagTable but panics if the declarations are invalid.
// It simplifies initialization of package-level tables.
func MustFlagTable(specs ...FlagSpec) *FlagTable {
	t, err := NewFlagTable(specs...)
	if err != nil {
		panic(err)
	}
	return t
}

// Len returns the number of declared flags
func (t *FlagTable) Len() int { return len(t.specs) }

// Flag returns the i-th declared flag, or nil if i is out of range
func (t *FlagTable) Flag(i int) *FlagSpec {
	if i < 0 || i >= len(t.specs) {
		return nil
	}
	return &t.specs[i]
}

// Short performs O(1) lookup by short id
func (t *FlagTable) Short(id byte) *FlagSpec {
	s, ok := t.lookupShort(id)
	if !ok {
		return nil
	}
	return s.flag
}

// Lookup finds a flag by its exact long name
func (t *FlagTable) Lookup(name string) *FlagSpec {
	s, ok := t.lookupLong(name)
	if !ok {
		return nil
	}
	return s.flag
}

// Names returns the declared long names in declaration order
func (t *FlagTable) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

func (t *FlagTable) lookupShort(id byte) (slot, bool) {
	key := charset.Slot(id)
	if key == charset.NoSlot || t.short[key].flag == nil {
		return slot{}, false
	}
	return t.short[key], true
}

// lookupLong requires the whole name to match: a prefix or an extension of a
// declared name never matches. First match in declaration order wins.
func (t *FlagTable) lookupLong(name string) (slot, bool) {
	for _, s := range t.long {
		if s.nameLen == len(name) && s.flag.Name == name {
			return s, true
		}
	}
	return slot{}, false
}
