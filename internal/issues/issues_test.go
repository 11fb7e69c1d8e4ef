package issues

import (
	"testing"

	"github.com/erraggy/laika/internal/severity"
	"github.com/stretchr/testify/assert"
)

func TestIssue_String(t *testing.T) {
	i := Issue{Path: "line 3", Message: "legacy directive syntax", Severity: severity.Info}
	assert.Equal(t, "info line 3: legacy directive syntax", i.String())
}

func TestIssue_String_WithContext(t *testing.T) {
	i := Issue{
		Path:     "line 7",
		Message:  "ambiguous substitution",
		Severity: severity.Warning,
		Context:  "assumed `{{name}}` refers to `${name}`",
	}
	assert.Contains(t, i.String(), "assumed `{{name}}`")
}
