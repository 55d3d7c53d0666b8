package argxs

// ExitCodeDefaults holds common default codes.
type ExitCodeDefaults struct {
	Success         int // default: 0
	GeneralError    int // default: 1
	MisusageError   int // default: 2, every user-input category
	ProgrammerError int // default: 70 (EX_SOFTWARE)
}

func defaultExitDefaults() ExitCodeDefaults {
	return ExitCodeDefaults{Success: 0, GeneralError: 1, MisusageError: 2, ProgrammerError: 70}
}

// ExitCodeManager maps argxs errors to process exit codes. The library never
// exits on its own; hosts call Resolve and decide.
type ExitCodeManager struct {
	codesByType map[ErrorType]int
	defaults    ExitCodeDefaults
}

// NewExitCodes returns a manager using the default codes.
func NewExitCodes() *ExitCodeManager {
	return &ExitCodeManager{
		codesByType: make(map[ErrorType]int),
		defaults:    defaultExitDefaults(),
	}
}

// Define overrides the exit code used for a specific error category.
func (e *ExitCodeManager) Define(typ ErrorType, code int) *ExitCodeManager {
	e.codesByType[typ] = code
	return e
}

// Default replaces the manager's default codes. Categories overridden with
// Define keep their override.
func (e *ExitCodeManager) Default(d ExitCodeDefaults) *ExitCodeManager {
	e.defaults = d
	return e
}

// Resolve converts an error to an exit code.
// Precedence:
//  1. nil → Success
//  2. category override (Define)
//  3. category default (MisusageError or ProgrammerError)
//  4. GeneralError
func (e *ExitCodeManager) Resolve(err error) int {
	if err == nil {
		return e.defaults.Success
	}

	typ := ErrorTypeOf(err)
	if code, ok := e.codesByType[typ]; ok {
		return code
	}

	switch typ { // exhaustive over ErrorType
	case ErrorTypeProgrammer:
		return e.defaults.ProgrammerError
	case ErrorTypeMalformedFlag, ErrorTypeUnknownFlag, ErrorTypeArgExpected, ErrorTypeUnnecessaryArgument:
		return e.defaults.MisusageError
	default:
		return e.defaults.GeneralError
	}
}
