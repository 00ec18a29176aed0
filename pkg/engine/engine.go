package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"

	"github.com/goliatone/go-taghelpers/pkg/render/template"
	"github.com/goliatone/go-taghelpers/pkg/taghelper"
)

// Option configures a Processor before construction.
type Option func(*Processor)

// WithResolver overrides how bound attribute text is turned into values.
func WithResolver(resolver Resolver) Option {
	return func(p *Processor) {
		if resolver != nil {
			p.resolver = resolver
		}
	}
}

// WithSanitizer runs the final document through a bluemonday policy.
func WithSanitizer(policy *bluemonday.Policy) Option {
	return func(p *Processor) {
		p.sanitizer = policy
	}
}

// WithTemplate sets the template renderer used by Render and RenderString.
func WithTemplate(renderer template.TemplateRenderer) Option {
	return func(p *Processor) {
		p.templates = renderer
	}
}

// Processor applies registered tag helpers to HTML documents. It holds no
// per-document state and is safe for concurrent use when its registry is.
type Processor struct {
	registry  *taghelper.Registry
	resolver  Resolver
	sanitizer *bluemonday.Policy
	templates template.TemplateRenderer
}

// New constructs a Processor backed by the supplied registry.
func New(registry *taghelper.Registry, options ...Option) (*Processor, error) {
	if registry == nil {
		return nil, taghelper.InvalidArgument("registry")
	}
	p := &Processor{
		registry: registry,
		resolver: ResolvePath,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
	return p, nil
}

// Render executes the named template with data and processes the result.
func (p *Processor) Render(ctx context.Context, name string, data map[string]any, w io.Writer) error {
	if ctx == nil {
		return taghelper.InvalidArgument("context")
	}
	if p.templates == nil {
		return errors.New("engine: template renderer not configured")
	}
	rendered, err := p.templates.RenderTemplate(name, data)
	if err != nil {
		return fmt.Errorf("engine: render template %q: %w", name, err)
	}
	return p.Process(ctx, strings.NewReader(rendered), w, data)
}

// RenderString executes inline template content with data and processes the
// result.
func (p *Processor) RenderString(ctx context.Context, content string, data map[string]any, w io.Writer) error {
	if ctx == nil {
		return taghelper.InvalidArgument("context")
	}
	if p.templates == nil {
		return errors.New("engine: template renderer not configured")
	}
	rendered, err := p.templates.RenderString(content, data)
	if err != nil {
		return fmt.Errorf("engine: render template string: %w", err)
	}
	return p.Process(ctx, strings.NewReader(rendered), w, data)
}

// Process reads an HTML document from r, applies helpers and writes the result
// to w.
func (p *Processor) Process(ctx context.Context, r io.Reader, w io.Writer, data map[string]any) error {
	if ctx == nil {
		return taghelper.InvalidArgument("context")
	}
	if r == nil {
		return taghelper.InvalidArgument("reader")
	}
	if w == nil {
		return taghelper.InvalidArgument("writer")
	}

	pass := &documentPass{processor: p, data: data}

	if p.sanitizer == nil {
		return pass.run(ctx, r, w)
	}

	var buf bytes.Buffer
	if err := pass.run(ctx, r, &buf); err != nil {
		return err
	}
	if _, err := w.Write(p.sanitizer.SanitizeBytes(buf.Bytes())); err != nil {
		return fmt.Errorf("engine: write sanitized output: %w", err)
	}
	return nil
}

// ProcessString is a convenience wrapper around Process.
func (p *Processor) ProcessString(ctx context.Context, document string, data map[string]any) (string, error) {
	var out strings.Builder
	if err := p.Process(ctx, strings.NewReader(document), &out, data); err != nil {
		return "", err
	}
	return out.String(), nil
}

type documentPass struct {
	processor *Processor
	data      map[string]any
	counter   int
}

func (d *documentPass) run(ctx context.Context, r io.Reader, w io.Writer) error {
	z := html.NewTokenizer(r)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return fmt.Errorf("engine: tokenize: %w", err)
			}
			return nil
		case html.StartTagToken, html.SelfClosingTagToken:
			raw := append([]byte(nil), z.Raw()...)
			token := z.Token()
			if !d.processor.registry.Handles(token.Data) {
				if _, err := w.Write(raw); err != nil {
					return err
				}
				continue
			}

			attrs := toAttributes(token.Attr)
			bindings := d.processor.registry.Match(token.Data, attrs)
			if len(bindings) == 0 {
				if _, err := w.Write(raw); err != nil {
					return err
				}
				continue
			}

			body := ""
			if tt == html.StartTagToken {
				collected, err := collectBody(z, token.Data)
				if err != nil {
					return err
				}
				body, err = d.processBody(ctx, collected)
				if err != nil {
					return err
				}
			}

			if err := d.apply(ctx, token.Data, attrs, body, bindings, w); err != nil {
				return err
			}
		default:
			if _, err := w.Write(z.Raw()); err != nil {
				return err
			}
		}
	}
}

// processBody runs helpers over nested elements inside a matched element.
func (d *documentPass) processBody(ctx context.Context, body string) (string, error) {
	if body == "" {
		return "", nil
	}
	var out strings.Builder
	if err := d.run(ctx, strings.NewReader(body), &out); err != nil {
		return "", err
	}
	return out.String(), nil
}

func (d *documentPass) apply(ctx context.Context, tag string, attrs taghelper.Attributes, body string, bindings []taghelper.Binding, w io.Writer) error {
	d.counter++

	tc := &taghelper.Context{
		TagName:    tag,
		Attributes: attrs.Clone(),
		Values:     make(map[string]any),
		UniqueID:   fmt.Sprintf("%s-%d", tag, d.counter),
		Items:      make(map[string]any),
	}

	rendered := attrs.Clone()
	for _, binding := range bindings {
		for _, name := range binding.Target.Attributes {
			key := strings.ToLower(strings.TrimSpace(name))
			if _, done := tc.Values[key]; done {
				continue
			}
			expression, _ := attrs.Get(key)
			value, err := d.processor.resolver(expression, d.data)
			if err != nil {
				return fmt.Errorf("engine: resolve %s on <%s>: %w", key, tag, err)
			}
			tc.Values[key] = value
			rendered.Remove(key)
		}
	}

	out := taghelper.NewOutput(tag, rendered, body)
	for _, binding := range bindings {
		if err := binding.Helper.Process(ctx, tc, out); err != nil {
			return &taghelper.HelperError{
				Helper:  binding.Helper.Name(),
				Element: tag,
				Err:     err,
			}
		}
	}

	if _, err := out.WriteTo(w); err != nil {
		return fmt.Errorf("engine: write <%s>: %w", tag, err)
	}
	return nil
}

// collectBody consumes tokens up to the end tag closing the element and
// returns the raw markup in between. An unterminated element takes the rest of
// the document.
func collectBody(z *html.Tokenizer, tag string) (string, error) {
	var body bytes.Buffer
	depth := 0
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return "", fmt.Errorf("engine: tokenize <%s> body: %w", tag, err)
			}
			return body.String(), nil
		case html.StartTagToken:
			if name, _ := z.TagName(); string(name) == tag {
				depth++
			}
		case html.EndTagToken:
			if name, _ := z.TagName(); string(name) == tag {
				if depth == 0 {
					return body.String(), nil
				}
				depth--
			}
		}
		body.Write(z.Raw())
	}
}

func toAttributes(attrs []html.Attribute) taghelper.Attributes {
	if len(attrs) == 0 {
		return nil
	}
	out := make(taghelper.Attributes, 0, len(attrs))
	for _, attr := range attrs {
		name := attr.Key
		if attr.Namespace != "" {
			name = attr.Namespace + ":" + attr.Key
		}
		out = append(out, taghelper.Attribute{Name: name, Value: attr.Val})
	}
	return out
}
