package directive

import (
	"strings"

	txt "github.com/erraggy/laika/text"
)

// ParseFenced parses the canonical directive syntax:
//
//	@:name arg1 arg2 field="value" { body content } @:@
//	@:name arg1 field="value"
//
// The body (delimited by `{ ... }`) is optional; a directive with no body
// part simply ends after its arguments/fields. Returns the Occurrence and
// the cursor just past the directive, or ok=false if the input does not
// begin with "@:".
func ParseFenced(in txt.SourceCursor) (Occurrence, txt.SourceCursor, bool) {
	start := in
	if !strings.HasPrefix(in.Remaining(), "@:") {
		return Occurrence{}, in, false
	}
	c := in.Consume(2)

	name, c, ok := scanIdentifier(c)
	if !ok {
		return Occurrence{}, in, false
	}

	occ := Occurrence{Name: name, Fields: map[string]string{}}
	c = skipSpaces(c)

	for {
		r, atEnd := peek(c)
		if atEnd || r == '{' || r == '\n' {
			break
		}
		tok, next, matched := scanToken(c)
		if !matched {
			break
		}
		if key, value, isField := splitField(tok); isField {
			occ.Fields[key] = value
			occ.FieldOrder = append(occ.FieldOrder, key)
		} else {
			occ.Arguments = append(occ.Arguments, tok)
		}
		c = skipSpaces(next)
	}

	if r, atEnd := peek(c); !atEnd && r == '{' {
		c = c.Consume(1)
		idx := strings.Index(c.Remaining(), "}")
		if idx < 0 {
			occ.Body = c.Remaining()
			c = c.ConsumeBytes(len(c.Remaining()))
		} else {
			occ.Body = c.Remaining()[:idx]
			c = c.ConsumeBytes(idx + 1)
		}
		c = skipSpaces(c)
		if strings.HasPrefix(c.Remaining(), "@:@") {
			c = c.ConsumeBytes(3)
		}
	}

	occ.Source = start.Input()[start.Offset():c.Offset()]
	return occ, c, true
}

// ParseLegacy parses the deprecated directive syntax, accepted as an
// input grammar alongside the canonical one but never emitted:
//
//	:name attr="value" : body content until end of line
func ParseLegacy(in txt.SourceCursor) (Occurrence, txt.SourceCursor, bool) {
	start := in
	r, atEnd := peek(in)
	if atEnd || r != ':' {
		return Occurrence{}, in, false
	}
	c := in.Consume(1)
	name, c, ok := scanIdentifier(c)
	if !ok {
		return Occurrence{}, in, false
	}

	occ := Occurrence{Name: name, Fields: map[string]string{}}
	c = skipSpaces(c)

	for {
		r, atEnd := peek(c)
		if atEnd || r == ':' || r == '\n' {
			break
		}
		tok, next, matched := scanToken(c)
		if !matched {
			break
		}
		if key, value, isField := splitField(tok); isField {
			occ.Fields[key] = value
			occ.FieldOrder = append(occ.FieldOrder, key)
		} else {
			occ.Arguments = append(occ.Arguments, tok)
		}
		c = skipSpaces(next)
	}

	if r, atEnd := peek(c); !atEnd && r == ':' {
		c = c.Consume(1)
		c = skipSpaces(c)
		idx := strings.IndexByte(c.Remaining(), '\n')
		if idx < 0 {
			occ.Body = c.Remaining()
			c = c.ConsumeBytes(len(c.Remaining()))
		} else {
			occ.Body = c.Remaining()[:idx]
			c = c.ConsumeBytes(idx)
		}
	}

	occ.Source = start.Input()[start.Offset():c.Offset()]
	return occ, c, true
}

func peek(c txt.SourceCursor) (rune, bool) {
	r, ok := c.Char(0)
	return r, !ok
}

func skipSpaces(c txt.SourceCursor) txt.SourceCursor {
	for {
		r, atEnd := peek(c)
		if atEnd || (r != ' ' && r != '\t') {
			return c
		}
		c = c.Consume(1)
	}
}

func scanIdentifier(c txt.SourceCursor) (string, txt.SourceCursor, bool) {
	start := c
	for {
		r, atEnd := peek(c)
		if atEnd || !(isLetter(r) || isDigit(r) || r == '_' || r == '-') {
			break
		}
		c = c.Consume(1)
	}
	if c.Offset() == start.Offset() {
		return "", start, false
	}
	return start.Input()[start.Offset():c.Offset()], c, true
}

func isLetter(r rune) bool { return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') }
func isDigit(r rune) bool  { return r >= '0' && r <= '9' }

// scanToken scans one whitespace-delimited token, honoring quoted values
// inside a `key="..."` field so embedded spaces don't split it.
func scanToken(c txt.SourceCursor) (string, txt.SourceCursor, bool) {
	start := c
	for {
		r, atEnd := peek(c)
		if atEnd || r == ' ' || r == '\t' || r == '\n' || r == '{' || r == ':' {
			break
		}
		if r == '"' {
			c = c.Consume(1)
			for {
				r2, atEnd2 := peek(c)
				if atEnd2 {
					break
				}
				c = c.Consume(1)
				if r2 == '"' {
					break
				}
			}
			continue
		}
		c = c.Consume(1)
	}
	if c.Offset() == start.Offset() {
		return "", start, false
	}
	return start.Input()[start.Offset():c.Offset()], c, true
}

func splitField(tok string) (key, value string, ok bool) {
	idx := strings.IndexByte(tok, '=')
	if idx < 0 {
		return "", "", false
	}
	key = tok[:idx]
	value = strings.Trim(tok[idx+1:], `"`)
	return key, value, true
}
