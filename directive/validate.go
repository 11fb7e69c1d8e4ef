package directive

import (
	"fmt"
	"strings"

	"github.com/erraggy/laika/laikaerrors"
)

// Validate checks occ against spec, returning either a populated
// ParsedDirective or a *laikaerrors.InvalidElement describing the first
// class of mismatch found: duplicate field keys, a missing required
// argument or field, an unrecognized field, or a body shape mismatch.
//
// Validate returns at the first mismatch it finds, so an occurrence with
// several problems reports only one of them.
func Validate(spec Spec, occ Occurrence) (*ParsedDirective, *laikaerrors.InvalidElement) {
	if dupes := duplicateFieldKeys(occ.FieldOrder); len(dupes) > 0 {
		return nil, invalid(occ, fmt.Sprintf("duplicate field(s) in @:%s: %s", spec.Name, strings.Join(dupes, ", ")))
	}

	parsed := &ParsedDirective{
		Name:      spec.Name,
		Arguments: make(map[string]string),
		Fields:    make(map[string]string),
	}

	argIdx := 0
	knownFields := make(map[string]bool)
	var bodyKind BodyKind = BodyNone
	haveBody := false

	for _, part := range spec.Parts {
		switch part.Kind {
		case KindArgument:
			if argIdx >= len(occ.Arguments) {
				return nil, invalid(occ, fmt.Sprintf("@:%s missing required argument %q", spec.Name, part.Name))
			}
			parsed.Arguments[part.Name] = occ.Arguments[argIdx]
			argIdx++
		case KindOptArgument:
			if argIdx < len(occ.Arguments) {
				parsed.Arguments[part.Name] = occ.Arguments[argIdx]
				argIdx++
			}
		case KindField:
			knownFields[part.Name] = true
			v, ok := occ.Fields[part.Name]
			if !ok {
				return nil, invalid(occ, fmt.Sprintf("@:%s missing required field %q", spec.Name, part.Name))
			}
			parsed.Fields[part.Name] = v
		case KindOptField:
			knownFields[part.Name] = true
			if v, ok := occ.Fields[part.Name]; ok {
				parsed.Fields[part.Name] = v
			}
		case KindBody:
			bodyKind = part.Body
			haveBody = true
		}
	}

	if argIdx < len(occ.Arguments) {
		return nil, invalid(occ, fmt.Sprintf("@:%s given %d argument(s), expected at most %d", spec.Name, len(occ.Arguments), argIdx))
	}
	for key := range occ.Fields {
		if !knownFields[key] {
			return nil, invalid(occ, fmt.Sprintf("@:%s does not accept field %q", spec.Name, key))
		}
	}
	if !haveBody && occ.Body != "" {
		return nil, invalid(occ, fmt.Sprintf("@:%s does not accept body content", spec.Name))
	}
	if haveBody && bodyKind == BodyContent {
		parsed.BodyText = occ.Body
	}
	// Block/span body parsing is performed by the calling parser (it alone
	// has access to the block/inline grammars); Validate only records that
	// a body was expected, leaving BodyBlocks/BodySpans for the caller to
	// populate once it has parsed occ.Body under the right grammar.

	return parsed, nil
}

func invalid(occ Occurrence, message string) *laikaerrors.InvalidElement {
	return &laikaerrors.InvalidElement{Message: message, Source: occ.Source}
}
