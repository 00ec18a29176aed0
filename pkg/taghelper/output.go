package taghelper

import (
	"io"
	"strings"
)

// Content accumulates markup for one slot of an Output.
type Content struct {
	builder  strings.Builder
	modified bool
}

// AppendHTML appends markup without escaping.
func (c *Content) AppendHTML(markup string) *Content {
	c.builder.WriteString(markup)
	c.modified = true
	return c
}

// AppendFragment appends a fragment produced by a builder.
func (c *Content) AppendFragment(fragment Fragment) *Content {
	return c.AppendHTML(string(fragment))
}

// Append appends text, escaping it first.
func (c *Content) Append(text string) *Content {
	return c.AppendHTML(EscapeText(text))
}

// SetHTML replaces the slot contents with markup.
func (c *Content) SetHTML(markup string) *Content {
	c.builder.Reset()
	return c.AppendHTML(markup)
}

// Clear empties the slot.
func (c *Content) Clear() *Content {
	c.builder.Reset()
	c.modified = true
	return c
}

// IsEmpty reports whether the slot holds no markup.
func (c *Content) IsEmpty() bool {
	return c.builder.Len() == 0
}

// IsModified reports whether any helper touched the slot.
func (c *Content) IsModified() bool {
	return c.modified
}

func (c *Content) String() string {
	return c.builder.String()
}

// Output is the mutable accumulator for an element's rendered form. The host
// seeds Content with the element's original body; helpers add markup around it.
type Output struct {
	TagName     string
	Attributes  Attributes
	PreContent  Content
	Content     Content
	PostContent Content

	suppressed bool
}

// NewOutput builds an accumulator seeded with the element's tag, attributes and
// original body markup.
func NewOutput(tagName string, attrs Attributes, body string) *Output {
	out := &Output{
		TagName:    tagName,
		Attributes: attrs.Clone(),
	}
	out.Content.builder.WriteString(body)
	return out
}

// SuppressOutput drops the element and every content slot from the document.
func (o *Output) SuppressOutput() {
	o.suppressed = true
}

// IsSuppressed reports whether SuppressOutput was called.
func (o *Output) IsSuppressed() bool {
	return o.suppressed
}

// WriteTo renders the element: start tag, PreContent, Content, PostContent and
// end tag. An empty TagName renders only the content slots.
func (o *Output) WriteTo(w io.Writer) (int64, error) {
	if o.suppressed {
		return 0, nil
	}
	var builder strings.Builder
	if o.TagName != "" {
		builder.WriteString("<")
		builder.WriteString(o.TagName)
		for _, attr := range o.Attributes {
			builder.WriteString(" ")
			builder.WriteString(attr.Name)
			builder.WriteString(`="`)
			builder.WriteString(EscapeAttr(attr.Value))
			builder.WriteString(`"`)
		}
		builder.WriteString(">")
	}
	builder.WriteString(o.PreContent.String())
	builder.WriteString(o.Content.String())
	builder.WriteString(o.PostContent.String())
	if o.TagName != "" {
		builder.WriteString("</")
		builder.WriteString(o.TagName)
		builder.WriteString(">")
	}
	n, err := io.WriteString(w, builder.String())
	return int64(n), err
}

// String renders the element to a string.
func (o *Output) String() string {
	var builder strings.Builder
	_, _ = o.WriteTo(&builder)
	return builder.String()
}
