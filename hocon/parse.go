package hocon

import (
	"strconv"
	"strings"

	"github.com/erraggy/laika/laikaerrors"
	txt "github.com/erraggy/laika/text"
)

// ParseDocument parses raw HOCON (or JSON, a strict subset) text into an
// unresolved ObjectBuilder, alongside every structural syntax error the
// parser records with its position (e.g. a missing field key or an
// unterminated array), so a single parse reports all of them at once.
// Problems inside a field's value (e.g. a field with no value, or an
// unterminated string) are not returned here: they stay in the tree as
// InvalidBuilder/InvalidString nodes and are reported as
// laikaerrors.InvalidFields when the tree is resolved.
func ParseDocument(description string, source string) (*ObjectBuilder, []laikaerrors.ParserFailure) {
	p := &docParser{source: source, origin: Origin{Description: description}}
	cur := txt.NewCursor(source)
	cur = p.skipWhitespaceAndComments(cur)

	// A document may omit the enclosing braces (root-object shorthand).
	wrapped := cur
	hasBrace := !cur.AtEnd()
	if hasBrace {
		if r, ok := cur.Char(0); ok && r == '{' {
			wrapped = cur.Consume(1)
		} else {
			hasBrace = false
		}
	}

	obj, next := p.parseObjectBody(wrapped, hasBrace)
	if hasBrace {
		next = p.skipWhitespaceAndComments(next)
		if r, ok := next.Char(0); ok && r == '}' {
			next = next.Consume(1)
		} else {
			p.fail(next, "expected closing '}'")
		}
	}
	next = p.skipWhitespaceAndComments(next)
	if !next.AtEnd() {
		p.fail(next, "unexpected trailing content")
	}
	return obj, p.errors
}

type docParser struct {
	source string
	origin Origin
	errors []laikaerrors.ParserFailure
}

func (p *docParser) fail(at txt.SourceCursor, message string) {
	p.errors = append(p.errors, laikaerrors.ParserFailure{Message: message, Position: at.Position()})
}

func (p *docParser) originAt(_ txt.SourceCursor) Origin {
	return p.origin
}

func (p *docParser) skipWhitespaceAndComments(c txt.SourceCursor) txt.SourceCursor {
	for {
		for !c.AtEnd() {
			r, _ := c.Char(0)
			if r != ' ' && r != '\t' && r != '\n' && r != '\r' && r != ',' {
				break
			}
			c = c.Consume(1)
		}
		if c.AtEnd() {
			return c
		}
		rest := c.Remaining()
		if strings.HasPrefix(rest, "//") || strings.HasPrefix(rest, "#") {
			idx := strings.IndexByte(rest, '\n')
			if idx < 0 {
				return c.ConsumeBytes(len(rest))
			}
			c = c.ConsumeBytes(idx + 1)
			continue
		}
		return c
	}
}

// parseObjectBody parses a sequence of fields/includes up to (but not
// consuming) the closing brace, or end of input when braceless.
func (p *docParser) parseObjectBody(c txt.SourceCursor, braced bool) (*ObjectBuilder, txt.SourceCursor) {
	obj := &ObjectBuilder{origin: p.origin}
	for {
		c = p.skipWhitespaceAndComments(c)
		if c.AtEnd() {
			return obj, c
		}
		if braced {
			if r, ok := c.Char(0); ok && r == '}' {
				return obj, c
			}
		}

		if strings.HasPrefix(c.Remaining(), "include") {
			field, next, ok := p.parseInclude(c)
			if ok {
				obj = obj.WithField(field)
				c = next
				continue
			}
		}

		key, next, ok := p.parseKeyPath(c)
		if !ok {
			p.fail(c, "expected field key")
			// Recovery: skip to next separator to avoid an infinite loop.
			next = p.skipToFieldBoundary(c)
			if next.Offset() == c.Offset() {
				return obj, next
			}
			c = next
			continue
		}
		c = p.skipInlineWhitespace(next)

		var val BuilderValue
		if r, ok := c.Char(0); ok && r == '{' {
			// "key { ... }" path-concatenation shorthand (no '=' needed).
			val, c = p.parseValue(c)
		} else if strings.HasPrefix(c.Remaining(), "=") || strings.HasPrefix(c.Remaining(), ":") {
			c = c.Consume(1)
			c = p.skipInlineWhitespace(c)
			val, c = p.parseValue(c)
		} else if strings.HasPrefix(c.Remaining(), "+=") {
			c = c.ConsumeBytes(2)
			c = p.skipInlineWhitespace(c)
			appended, rest := p.parseValue(c)
			val = &ArrayBuilder{Elements: []BuilderValue{appended}, origin: p.origin}
			c = rest
			if existing, has := obj.Get(key.String()); has {
				val = NewMergedValue(p.origin, existing, val)
			}
		} else {
			p.fail(c, "expected '=', ':', or '{' after field key")
			next = p.skipToFieldBoundary(c)
			if next.Offset() == c.Offset() {
				return obj, next
			}
			c = next
			continue
		}

		obj = mergeFieldInto(obj, wrapInPath(key.Segments(), val, p.origin))
	}
}

func (p *docParser) skipToFieldBoundary(c txt.SourceCursor) txt.SourceCursor {
	for !c.AtEnd() {
		r, _ := c.Char(0)
		if r == ',' || r == '\n' || r == '}' {
			return c
		}
		c = c.Consume(1)
	}
	return c
}

func (p *docParser) skipInlineWhitespace(c txt.SourceCursor) txt.SourceCursor {
	for !c.AtEnd() {
		r, _ := c.Char(0)
		if r != ' ' && r != '\t' {
			break
		}
		c = c.Consume(1)
	}
	return c
}

func (p *docParser) parseInclude(c txt.SourceCursor) (Field, txt.SourceCursor, bool) {
	origin := p.origin
	c = c.ConsumeBytes(len("include"))
	c = p.skipInlineWhitespace(c)

	required := false
	if strings.HasPrefix(c.Remaining(), "required(") {
		required = true
		c = c.ConsumeBytes(len("required("))
	}

	kind := ""
	for _, k := range []string{"file(", "classpath(", "url("} {
		if strings.HasPrefix(c.Remaining(), k) {
			kind = strings.TrimSuffix(k, "(")
			c = c.ConsumeBytes(len(k))
			break
		}
	}

	locStart := c
	quoted, next, ok := p.parseQuotedString(c)
	if !ok {
		p.fail(locStart, "expected quoted string naming include resource")
		return Field{}, c, false
	}
	c = next
	if kind != "" {
		if r, ok := c.Char(0); ok && r == ')' {
			c = c.Consume(1)
		}
	}
	if required {
		if r, ok := c.Char(0); ok && r == ')' {
			c = c.Consume(1)
		}
	}

	res := IncludeResource{Kind: kind, Required: required, Location: quoted}
	// include directives don't have a key: they're injected as a
	// synthetic field under a reserved key that the resolver special-cases
	// and merges into the surrounding object rather than nesting under it.
	return Field{Key: includeFieldKey, Value: &IncludeBuilder{Resource: res, origin: origin}}, c, true
}

// includeFieldKey is never a legal HOCON identifier (HOCON keys cannot
// contain '$'), so it cannot collide with a real user field.
const includeFieldKey = "$include"

func (p *docParser) parseKeyPath(c txt.SourceCursor) (Key, txt.SourceCursor, bool) {
	c = p.skipInlineWhitespace(c)
	var b strings.Builder
	start := c
	for !c.AtEnd() {
		r, _ := c.Char(0)
		if r == '"' {
			str, next, ok := p.parseQuotedString(c)
			if !ok {
				break
			}
			b.WriteString(str)
			c = next
			continue
		}
		if r == '=' || r == ':' || r == '{' || r == '}' || r == ',' || r == '\n' || r == '+' {
			break
		}
		b.WriteRune(r)
		c = c.Consume(1)
	}
	raw := strings.TrimRight(b.String(), " \t")
	if raw == "" {
		return Key{}, start, false
	}
	return ParseKeyPath(raw), c, true
}

// parseValue parses a self-concatenation: one or more value atoms on the
// same logical line joined by whitespace, per §4.2's concatenation rule.
func (p *docParser) parseValue(c txt.SourceCursor) (BuilderValue, txt.SourceCursor) {
	var parts []ConcatPart
	for {
		c = p.skipInlineWhitespace(c)
		if c.AtEnd() {
			break
		}
		r, _ := c.Char(0)
		if r == ',' || r == '\n' || r == '}' || r == ')' {
			break
		}
		atom, next := p.parseAtom(c)
		if next.Offset() == c.Offset() {
			break
		}
		parts = append(parts, ConcatPart{Value: atom})
		c = next
	}
	if len(parts) == 0 {
		return &InvalidBuilder{Message: "expected a value", origin: p.origin}, c
	}
	if len(parts) == 1 {
		return parts[0].Value, c
	}
	return &ConcatValue{Parts: parts, origin: p.origin}, c
}

func (p *docParser) parseAtom(c txt.SourceCursor) (BuilderValue, txt.SourceCursor) {
	origin := p.origin
	if c.AtEnd() {
		return &InvalidBuilder{Message: "unexpected end of input", origin: origin}, c
	}
	r, _ := c.Char(0)
	switch {
	case r == '{':
		inner, next := p.parseObjectBody(c.Consume(1), true)
		next = p.skipWhitespaceAndComments(next)
		if rr, ok := next.Char(0); ok && rr == '}' {
			next = next.Consume(1)
		} else {
			p.fail(next, "expected closing '}'")
		}
		return inner, next
	case r == '[':
		return p.parseArray(c)
	case r == '"':
		if strings.HasPrefix(c.Remaining(), `"""`) {
			return p.parseTripleQuoted(c)
		}
		s, next, ok := p.parseQuotedString(c)
		if !ok {
			return &InvalidString{Raw: c.Remaining(), Message: "unterminated string", origin: origin}, next
		}
		return &ResolvedBuilder{Value: NewStringValue(s, origin), origin: origin}, next
	case strings.HasPrefix(c.Remaining(), "${?"):
		return p.parseSubstitution(c, true)
	case strings.HasPrefix(c.Remaining(), "${"):
		return p.parseSubstitution(c, false)
	default:
		return p.parseUnquoted(c)
	}
}

func (p *docParser) parseSubstitution(c txt.SourceCursor, optional bool) (BuilderValue, txt.SourceCursor) {
	origin := p.origin
	skip := 2
	if optional {
		skip = 3
	}
	c = c.ConsumeBytes(skip)
	start := c
	for !c.AtEnd() {
		r, _ := c.Char(0)
		if r == '}' {
			break
		}
		c = c.Consume(1)
	}
	path := start.Input()[start.Offset():c.Offset()]
	if !c.AtEnd() {
		c = c.Consume(1) // closing '}'
	}
	return &SubstitutionValue{Path: ParseKeyPath(path), Optional: optional, origin: origin}, c
}

func (p *docParser) parseArray(c txt.SourceCursor) (BuilderValue, txt.SourceCursor) {
	origin := p.origin
	c = c.Consume(1) // '['
	var elements []BuilderValue
	for {
		c = p.skipWhitespaceAndComments(c)
		if c.AtEnd() {
			p.fail(c, "unterminated array")
			break
		}
		if r, ok := c.Char(0); ok && r == ']' {
			c = c.Consume(1)
			break
		}
		val, next := p.parseValue(c)
		if next.Offset() == c.Offset() {
			p.fail(c, "expected array element")
			break
		}
		elements = append(elements, val)
		c = next
	}
	return &ArrayBuilder{Elements: elements, origin: origin}, c
}

func (p *docParser) parseQuotedString(c txt.SourceCursor) (string, txt.SourceCursor, bool) {
	if r, ok := c.Char(0); !ok || r != '"' {
		return "", c, false
	}
	c = c.Consume(1)
	var b strings.Builder
	for {
		if c.AtEnd() {
			return b.String(), c, false
		}
		r, _ := c.Char(0)
		if r == '"' {
			return b.String(), c.Consume(1), true
		}
		if r == '\\' {
			next, ok := c.Char(1)
			if !ok {
				return b.String(), c, false
			}
			c = c.Consume(2)
			switch next {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			case '"', '\\', '/':
				b.WriteRune(next)
			default:
				b.WriteRune(next)
			}
			continue
		}
		b.WriteRune(r)
		c = c.Consume(1)
	}
}

func (p *docParser) parseTripleQuoted(c txt.SourceCursor) (BuilderValue, txt.SourceCursor) {
	origin := p.origin
	c = c.ConsumeBytes(3)
	idx := strings.Index(c.Remaining(), `"""`)
	if idx < 0 {
		p.fail(c, "unterminated triple-quoted string")
		return &InvalidString{Raw: c.Remaining(), Message: "unterminated triple-quoted string", origin: origin}, c.ConsumeBytes(len(c.Remaining()))
	}
	text := c.Remaining()[:idx]
	return &ResolvedBuilder{Value: NewStringValue(text, origin), origin: origin}, c.ConsumeBytes(idx + 3)
}

func (p *docParser) parseUnquoted(c txt.SourceCursor) (BuilderValue, txt.SourceCursor) {
	origin := p.origin
	start := c
	for !c.AtEnd() {
		r, _ := c.Char(0)
		if strings.ContainsRune(",{}[]:=\n\t\"", r) {
			break
		}
		if r == ' ' {
			// Allow internal spaces (unquoted strings may contain them) but
			// stop at a run of trailing whitespace before a comment/newline;
			// simplest correct approximation: stop only at the listed
			// delimiters above and trim trailing space from the token.
		}
		c = c.Consume(1)
	}
	raw := strings.TrimRight(start.Input()[start.Offset():c.Offset()], " \t")
	if raw == "" {
		return &InvalidBuilder{Message: "expected a value", origin: origin}, c
	}
	if len(raw) < len(start.Input()[start.Offset():c.Offset()]) {
		// rewind cursor to just past the trimmed raw token
		c = start.ConsumeBytes(len(raw))
	}
	switch raw {
	case "null":
		return &ResolvedBuilder{Value: NewNullValue(origin), origin: origin}, c
	case "true", "yes", "on":
		return &ResolvedBuilder{Value: NewBoolValue(true, origin), origin: origin}, c
	case "false", "no", "off":
		return &ResolvedBuilder{Value: NewBoolValue(false, origin), origin: origin}, c
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return &ResolvedBuilder{Value: NewLongValue(n, origin), origin: origin}, c
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return &ResolvedBuilder{Value: NewDoubleValue(f, origin), origin: origin}, c
	}
	return &ResolvedBuilder{Value: NewStringValue(raw, origin), origin: origin}, c
}
