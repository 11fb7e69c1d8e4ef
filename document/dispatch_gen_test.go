package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlockTag(t *testing.T) {
	assert.Equal(t, "Paragraph", BlockTag(Paragraph{}))
	assert.Equal(t, "Heading", BlockTag(Heading{}))
	assert.Equal(t, "CodeBlock", BlockTag(CodeBlock{}))
	assert.Equal(t, "List", BlockTag(List{}))
	assert.Equal(t, "BlockSequence", BlockTag(BlockSequence{}))
	assert.Equal(t, "InvalidBlock", BlockTag(InvalidBlock{}))
}

func TestSpanTag(t *testing.T) {
	assert.Equal(t, "Text", SpanTag(Text{}))
	assert.Equal(t, "Emphasized", SpanTag(Emphasized{}))
	assert.Equal(t, "Strong", SpanTag(Strong{}))
	assert.Equal(t, "Literal", SpanTag(Literal{}))
	assert.Equal(t, "SpanLink", SpanTag(SpanLink{}))
	assert.Equal(t, "InvalidSpan", SpanTag(InvalidSpan{}))
	assert.Equal(t, "TemplateVariable", SpanTag(TemplateVariable{}))
	assert.Equal(t, "TemplateDirectiveCall", SpanTag(TemplateDirectiveCall{}))
}

func TestTemplateSpanTag(t *testing.T) {
	assert.Equal(t, "TemplateVariable", TemplateSpanTag(TemplateVariable{}))
	assert.Equal(t, "TemplateDirectiveCall", TemplateSpanTag(TemplateDirectiveCall{}))
}
