package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-taghelpers/pkg/taghelper"
)

func TestResolvePath(t *testing.T) {
	data := map[string]any{
		"colors": []string{"red"},
		"form": map[string]any{
			"sizes":  []any{"s", 1, 2.5, nil},
			"labels": map[string][]string{"en": {"one"}},
		},
		"title": "scalar",
	}

	cases := []struct {
		name string
		expr string
		want any
	}{
		{name: "top level", expr: "colors", want: taghelper.Some([]string{"red"})},
		{name: "nested any list", expr: " form.sizes ", want: taghelper.Some([]string{"s", "1", "2.5", ""})},
		{name: "typed map", expr: "form.labels.en", want: taghelper.Some([]string{"one"})},
		{name: "missing", expr: "form.missing", want: taghelper.None[[]string]()},
		{name: "through scalar", expr: "title.x", want: taghelper.None[[]string]()},
		{name: "empty", expr: "", want: taghelper.None[[]string]()},
		{name: "scalar passthrough", expr: "title", want: "scalar"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ResolvePath(tc.expr, data)
			if err != nil {
				t.Fatalf("resolve: %v", err)
			}
			if diff := cmp.Diff(tc.want, got, cmp.AllowUnexported(taghelper.Optional[[]string]{})); diff != "" {
				t.Fatalf("resolve mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolvePath_InvalidPath(t *testing.T) {
	if _, err := ResolvePath("form..sizes", nil); err == nil {
		t.Fatalf("expected invalid path error")
	}
}
