package taghelper

import (
	"context"
	"strings"
)

// DefaultOrder is the execution order assigned to helpers that do not need to
// run before or after their peers. Lower values run first.
const DefaultOrder = 0

// Helper rewrites an element matched by the host pipeline.
type Helper interface {
	Name() string
	Order() int
	Process(ctx context.Context, tc *Context, out *Output) error
}

// HelperFunc adapts a function into a Helper with the provided name and order.
type HelperFunc struct {
	HelperName  string
	HelperOrder int
	Fn          func(ctx context.Context, tc *Context, out *Output) error
}

func (h HelperFunc) Name() string { return h.HelperName }

func (h HelperFunc) Order() int { return h.HelperOrder }

func (h HelperFunc) Process(ctx context.Context, tc *Context, out *Output) error {
	if h.Fn == nil {
		return nil
	}
	return h.Fn(ctx, tc, out)
}

// Target selects the elements a helper is bound to. Element matching is case
// insensitive; every attribute listed must be present on the element.
type Target struct {
	Element    string
	Attributes []string
}

// Matches reports whether the element and its attributes satisfy the target.
func (t Target) Matches(element string, attrs Attributes) bool {
	if normalizeName(element) != normalizeName(t.Element) {
		return false
	}
	for _, name := range t.Attributes {
		if !attrs.Has(name) {
			return false
		}
	}
	return true
}

func (t Target) key() string {
	names := make([]string, 0, len(t.Attributes))
	for _, name := range t.Attributes {
		names = append(names, normalizeName(name))
	}
	return normalizeName(t.Element) + "[" + strings.Join(names, ",") + "]"
}

// Fragment is already-escaped markup meant to be concatenated into a larger
// document without a wrapping root element.
type Fragment string

// IsEmpty reports whether the fragment holds no markup.
func (f Fragment) IsEmpty() bool { return f == "" }

func (f Fragment) String() string { return string(f) }

// Context exposes read-only information about the element being processed.
type Context struct {
	TagName    string
	Attributes Attributes
	// Values holds attribute values resolved by the host, keyed by attribute
	// name. Only attributes named by a matched Target are resolved.
	Values map[string]any
	// UniqueID identifies the element within a single document pass.
	UniqueID string
	// Items is shared between every helper running on the same element.
	Items map[string]any
}

// Value returns the resolved value bound to an attribute.
func (c *Context) Value(name string) (any, bool) {
	if c == nil || c.Values == nil {
		return nil, false
	}
	value, ok := c.Values[normalizeName(name)]
	return value, ok
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
