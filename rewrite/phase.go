// Package rewrite implements laika's bottom-up document rewriting engine:
// a sequence of phases (Build, Resolve, Render) each apply their rules to
// every block and span, children before parents, replacing or removing
// nodes as rules direct.
//
// Grounded on the teacher's walker.Action (Continue/SkipChildren/Stop)
// generalized from a read-only visitor into a tree-transforming one, and
// on overlay.Applier's sequential action application
// (Update/Remove/no-match) generalized from JSONPath-targeted overlay
// actions into Retain/Replace/Remove per-node rewrite rules.
package rewrite

// PhaseKind names one of the three points in the document pipeline at
// which rewrite rules run.
type PhaseKind int

const (
	// PhaseBuild runs immediately after parsing, before configuration is
	// resolved: rules here cannot see resolved Config values.
	PhaseBuild PhaseKind = iota
	// PhaseResolve runs after the document's configuration header has been
	// resolved against its ancestors: rules here may read Config.
	PhaseResolve
	// PhaseRender runs once per output format, immediately before
	// rendering: rules here may specialize output per format.
	PhaseRender
)

func (k PhaseKind) String() string {
	switch k {
	case PhaseBuild:
		return "Build"
	case PhaseResolve:
		return "Resolve"
	case PhaseRender:
		return "Render"
	default:
		return "Unknown"
	}
}

// Phase identifies one rewrite pass: its kind, and for PhaseRender, which
// output format it is specific to ("" means it applies to every format).
type Phase struct {
	Kind   PhaseKind
	Format string
}

// Build is the PhaseBuild phase.
func Build() Phase { return Phase{Kind: PhaseBuild} }

// Resolve is the PhaseResolve phase.
func Resolve() Phase { return Phase{Kind: PhaseResolve} }

// Render is the PhaseRender phase specific to format.
func Render(format string) Phase { return Phase{Kind: PhaseRender, Format: format} }

// AppliesTo reports whether this phase description matches a render pass
// for the given format (PhaseRender phases with an empty Format match
// every format; PhaseBuild/PhaseResolve never match a render pass).
func (p Phase) AppliesTo(renderFormat string) bool {
	if p.Kind != PhaseRender {
		return false
	}
	return p.Format == "" || p.Format == renderFormat
}
