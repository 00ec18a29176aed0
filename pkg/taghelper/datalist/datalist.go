// Package datalist populates <datalist> elements with <option> children built
// from an attribute-bound list of strings.
package datalist

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-taghelpers/pkg/taghelper"
)

const (
	// HelperName identifies the helper in a registry.
	HelperName = "datalist"
	// ElementName is the element the helper targets.
	ElementName = "datalist"
	// DefaultAttribute carries the list expression on the element.
	DefaultAttribute = "th-list"
	// DefaultOrder runs the helper ahead of default-order helpers so their
	// output composes after the generated options.
	DefaultOrder = -1000
)

// Build renders one self-closing option element per value, in input order.
// Absent or empty input yields no fragment.
func Build(values taghelper.Optional[[]string]) (taghelper.Fragment, bool) {
	list, ok := values.Get()
	if !ok || len(list) == 0 {
		return "", false
	}

	var builder strings.Builder
	for _, value := range list {
		builder.WriteString(`<option value="`)
		builder.WriteString(taghelper.EscapeAttr(value))
		builder.WriteString(`" />`)
		builder.WriteString("\n")
	}
	return taghelper.Fragment(builder.String()), true
}

// Option configures a Helper.
type Option func(*Helper)

// WithAttribute overrides the attribute that carries the list.
func WithAttribute(name string) Option {
	return func(h *Helper) {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			h.attribute = strings.ToLower(trimmed)
		}
	}
}

// WithOrder overrides the execution order.
func WithOrder(order int) Option {
	return func(h *Helper) {
		h.order = order
	}
}

// WithList binds a fixed list, bypassing host attribute resolution.
func WithList(values []string) Option {
	return func(h *Helper) {
		if values == nil {
			h.List = taghelper.None[[]string]()
			return
		}
		h.List = taghelper.Some(append([]string(nil), values...))
	}
}

// Helper appends generated options to the tail of a <datalist> element.
type Helper struct {
	// List takes precedence over the host-resolved attribute value when set.
	List taghelper.Optional[[]string]

	attribute string
	order     int
}

var _ taghelper.Helper = (*Helper)(nil)

// New constructs a Helper bound to DefaultAttribute.
func New(options ...Option) *Helper {
	h := &Helper{
		attribute: DefaultAttribute,
		order:     DefaultOrder,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(h)
	}
	return h
}

// Register binds a new Helper to <datalist> elements carrying its attribute.
func Register(reg *taghelper.Registry, options ...Option) (*Helper, error) {
	if reg == nil {
		return nil, taghelper.InvalidArgument("registry")
	}
	h := New(options...)
	if err := reg.Register(h.Target(), h); err != nil {
		return nil, err
	}
	return h, nil
}

func (h *Helper) Name() string { return HelperName }

func (h *Helper) Order() int { return h.order }

// Attribute returns the attribute name the helper reads the list from.
func (h *Helper) Attribute() string { return h.attribute }

// Target returns the registry target for this helper.
func (h *Helper) Target() taghelper.Target {
	return taghelper.Target{
		Element:    ElementName,
		Attributes: []string{h.attribute},
	}
}

// Process appends the option fragment to out.PostContent. Output is left
// untouched when there is nothing to emit.
func (h *Helper) Process(_ context.Context, tc *taghelper.Context, out *taghelper.Output) error {
	if tc == nil {
		return taghelper.InvalidArgument("context")
	}
	if out == nil {
		return taghelper.InvalidArgument("output")
	}

	values, err := h.values(tc)
	if err != nil {
		return err
	}

	fragment, ok := Build(values)
	if !ok {
		return nil
	}
	out.PostContent.AppendFragment(fragment)
	return nil
}

func (h *Helper) values(tc *taghelper.Context) (taghelper.Optional[[]string], error) {
	if h.List.IsPresent() {
		return h.List, nil
	}

	raw, ok := tc.Value(h.attribute)
	if !ok {
		return taghelper.None[[]string](), nil
	}
	values, err := taghelper.StringList(raw)
	if errors.Is(err, taghelper.ErrNotList) {
		return taghelper.None[[]string](), fmt.Errorf("datalist: attribute %q resolved to %T, want []string", h.attribute, raw)
	}
	if err != nil {
		return taghelper.None[[]string](), fmt.Errorf("datalist: attribute %q: %w", h.attribute, err)
	}
	return values, nil
}
