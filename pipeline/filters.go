package pipeline

// MessageLevel orders the severities an InvalidElement or diagnostic
// message can carry.
type MessageLevel int

const (
	LevelDebug MessageLevel = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelFatal
	// LevelNone is not a message's own level; it is a filter threshold
	// meaning "never", used by MessageFilters.
	LevelNone
)

func (l MessageLevel) String() string {
	switch l {
	case LevelDebug:
		return "Debug"
	case LevelInfo:
		return "Info"
	case LevelWarning:
		return "Warning"
	case LevelError:
		return "Error"
	case LevelFatal:
		return "Fatal"
	case LevelNone:
		return "None"
	default:
		return "Unknown"
	}
}

// MessageFilters controls whether a diagnostic at a given level aborts
// the operation (FailOn) or is surfaced to the caller (Render). Both
// thresholds are inclusive lower bounds: a message at or above the
// threshold matches. LevelNone as a threshold means the filter never
// matches, regardless of message level.
type MessageFilters struct {
	FailOn MessageLevel
	Render MessageLevel
}

// DefaultMessageFilters fails the operation on Error or above and
// renders nothing to the caller, matching laika's default, quiet
// behavior.
func DefaultMessageFilters() MessageFilters {
	return MessageFilters{FailOn: LevelError, Render: LevelNone}
}

// ForVisualDebugging never fails the operation but renders every message
// at Info or above, so InvalidElement nodes and diagnostics are visible
// in the output tree for inspection.
func ForVisualDebugging() MessageFilters {
	return MessageFilters{FailOn: LevelNone, Render: LevelInfo}
}

// CustomMessageFilters builds an arbitrary threshold pair.
func CustomMessageFilters(failOn, render MessageLevel) MessageFilters {
	return MessageFilters{FailOn: failOn, Render: render}
}

// ShouldFail reports whether a message at level should abort the
// operation.
func (f MessageFilters) ShouldFail(level MessageLevel) bool {
	return f.FailOn != LevelNone && level >= f.FailOn
}

// ShouldRender reports whether a message at level should be surfaced in
// the output tree (e.g. kept as an InvalidElement rather than dropped or
// silently ignored).
func (f MessageFilters) ShouldRender(level MessageLevel) bool {
	return f.Render != LevelNone && level >= f.Render
}
