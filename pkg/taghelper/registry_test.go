package taghelper_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-taghelpers/pkg/taghelper"
)

func namedHelper(name string, order int) taghelper.Helper {
	return taghelper.HelperFunc{
		HelperName:  name,
		HelperOrder: order,
		Fn: func(context.Context, *taghelper.Context, *taghelper.Output) error {
			return nil
		},
	}
}

func TestRegistry_MatchOrdersByPriorityThenRegistration(t *testing.T) {
	reg := taghelper.NewRegistry()
	reg.MustRegister(taghelper.Target{Element: "datalist"}, namedHelper("static", taghelper.DefaultOrder))
	reg.MustRegister(taghelper.Target{Element: "datalist", Attributes: []string{"th-list"}}, namedHelper("list", -1000))
	reg.MustRegister(taghelper.Target{Element: "datalist"}, namedHelper("late", 10))
	reg.MustRegister(taghelper.Target{Element: "datalist"}, namedHelper("static-2", taghelper.DefaultOrder))
	reg.MustRegister(taghelper.Target{Element: "select"}, namedHelper("select", -5000))

	bindings := reg.Match("datalist", taghelper.Attributes{{Name: "th-list", Value: "colors"}})
	got := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		got = append(got, binding.Helper.Name())
	}

	want := []string{"list", "static", "static-2", "late"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("binding order mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_RequiresAllTargetAttributes(t *testing.T) {
	reg := taghelper.NewRegistry()
	reg.MustRegister(taghelper.Target{Element: "datalist", Attributes: []string{"th-list", "th-extra"}}, namedHelper("both", 0))

	if got := reg.Match("datalist", taghelper.Attributes{{Name: "th-list"}}); len(got) != 0 {
		t.Fatalf("expected no match with a missing attribute, got %d", len(got))
	}
	if got := reg.Match("datalist", taghelper.Attributes{{Name: "TH-EXTRA"}, {Name: "th-list"}}); len(got) != 1 {
		t.Fatalf("expected match with all attributes, got %d", len(got))
	}
}

func TestRegistry_RegisterValidation(t *testing.T) {
	reg := taghelper.NewRegistry()

	cases := []struct {
		name    string
		target  taghelper.Target
		helper  taghelper.Helper
		wantErr string
	}{
		{name: "nil helper", target: taghelper.Target{Element: "datalist"}, wantErr: "helper is required"},
		{name: "empty name", target: taghelper.Target{Element: "datalist"}, helper: namedHelper(" ", 0), wantErr: "name is required"},
		{name: "empty element", target: taghelper.Target{}, helper: namedHelper("x", 0), wantErr: "element is required"},
		{name: "empty attribute", target: taghelper.Target{Element: "datalist", Attributes: []string{""}}, helper: namedHelper("x", 0), wantErr: "empty target attribute"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := reg.Register(tc.target, tc.helper)
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestRegistry_DuplicateTarget(t *testing.T) {
	reg := taghelper.NewRegistry()
	target := taghelper.Target{Element: "datalist", Attributes: []string{"th-list"}}
	if err := reg.Register(target, namedHelper("list", 0)); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := reg.Register(taghelper.Target{Element: "DataList", Attributes: []string{"TH-LIST"}}, namedHelper("list", 0)); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
	if err := reg.Register(taghelper.Target{Element: "input", Attributes: []string{"th-list"}}, namedHelper("list", 0)); err != nil {
		t.Fatalf("same helper on another element should register: %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("expected MustRegister to panic")
		}
	}()
	reg.MustRegister(target, namedHelper("list", 0))
}

func TestRegistry_Introspection(t *testing.T) {
	reg := taghelper.NewRegistry()
	reg.MustRegister(taghelper.Target{Element: "select"}, namedHelper("b", 0))
	reg.MustRegister(taghelper.Target{Element: "datalist"}, namedHelper("a", 0))
	reg.MustRegister(taghelper.Target{Element: "input"}, namedHelper("a", 0))

	if diff := cmp.Diff([]string{"a", "b"}, reg.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"datalist", "input", "select"}, reg.Elements()); diff != "" {
		t.Fatalf("elements mismatch (-want +got):\n%s", diff)
	}
	if !reg.Has("a") || reg.Has("missing") {
		t.Fatalf("unexpected Has results")
	}
	if !reg.Handles("DATALIST") || reg.Handles("div") {
		t.Fatalf("unexpected Handles results")
	}
}
