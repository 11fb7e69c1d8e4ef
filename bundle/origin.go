// Package bundle implements laika's extension bundle merge: ordered
// composition of markup/config/template/theme contributions supplied by
// libraries, parsers, themes, and end users into one effective
// configuration for a parse/render/rewrite operation.
//
// Grounded on the teacher's overlay package (ordered overlay actions
// applied to a base document, later actions winning) generalized from
// JSONPath-targeted overlays on one OAS document into named-origin
// bundles of parser/config/rewrite contributions merged across many
// extension sources.
package bundle

// Origin identifies where an ExtensionBundle came from, which determines
// both its default merge priority and where the processExtension pre-pass
// looks for something to adjust.
type Origin int

const (
	// Library bundles ship with laika itself or a third-party extension
	// library; they have the lowest default priority.
	Library Origin = iota
	// Parser bundles are contributed by the active markup/template/
	// stylesheet parser.
	Parser
	// Theme bundles style rendered output.
	Theme
	// Mixed bundles combine more than one of the above concerns and sit
	// between Theme and User in priority.
	Mixed
	// User bundles are supplied directly by the operation's caller and
	// have the highest default priority.
	User
)

func (o Origin) String() string {
	switch o {
	case Library:
		return "Library"
	case Parser:
		return "Parser"
	case Theme:
		return "Theme"
	case Mixed:
		return "Mixed"
	case User:
		return "User"
	default:
		return "Unknown"
	}
}

// rank gives Origin's position in the fixed merge order Library, Parser,
// Theme, Mixed, User (ascending priority).
func (o Origin) rank() int { return int(o) }
