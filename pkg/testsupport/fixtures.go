package testsupport

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents. Tests can assert
// the renderer returns and writes the same payload without duplicating buffer
// setup.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}

// OptionValues parses markup as the body of a <datalist> and returns the value
// attribute of every <option> in document order. Options without a value
// attribute are reported as "<missing>".
func OptionValues(t *testing.T, markup string) []string {
	t.Helper()

	parent := &html.Node{
		Type:     html.ElementNode,
		Data:     "datalist",
		DataAtom: atom.Datalist,
	}
	nodes, err := html.ParseFragment(strings.NewReader(markup), parent)
	if err != nil {
		t.Fatalf("parse fragment: %v", err)
	}

	var values []string
	for _, node := range nodes {
		collectOptions(node, &values)
	}
	return values
}

// DocumentOptionValues parses a full document and returns the option values of
// the first <datalist> with the given id.
func DocumentOptionValues(t *testing.T, document, id string) []string {
	t.Helper()

	root, err := html.Parse(strings.NewReader(document))
	if err != nil {
		t.Fatalf("parse document: %v", err)
	}
	list := findByID(root, "datalist", id)
	if list == nil {
		t.Fatalf("datalist %q not found in:\n%s", id, document)
	}
	var values []string
	for child := list.FirstChild; child != nil; child = child.NextSibling {
		collectOptions(child, &values)
	}
	return values
}

func collectOptions(node *html.Node, values *[]string) {
	if node.Type == html.ElementNode && node.DataAtom == atom.Option {
		value := "<missing>"
		for _, attr := range node.Attr {
			if attr.Key == "value" {
				value = attr.Val
				break
			}
		}
		*values = append(*values, value)
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		collectOptions(child, values)
	}
}

func findByID(node *html.Node, tag, id string) *html.Node {
	if node.Type == html.ElementNode && node.Data == tag {
		for _, attr := range node.Attr {
			if attr.Key == "id" && attr.Val == id {
				return node
			}
		}
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if found := findByID(child, tag, id); found != nil {
			return found
		}
	}
	return nil
}
