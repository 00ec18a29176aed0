package config_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-taghelpers/pkg/config"
	"github.com/goliatone/go-taghelpers/pkg/taghelper"
	"github.com/goliatone/go-taghelpers/pkg/taghelper/datalist"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	want := config.Config{
		AttributePrefix:   "th-",
		TemplateExtension: ".tpl",
		Helpers: map[string]config.HelperConfig{
			"datalist": {Attribute: "th-list"},
		},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("default config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_YAMLAndJSON(t *testing.T) {
	order := -50
	fsys := fstest.MapFS{
		"taghelpers.yaml": {Data: []byte(`
attributePrefix: x-
sanitize: true
templateDir: ./templates
helpers:
  Datalist:
    attribute: X-Options
    order: -50
`)},
		"taghelpers.json": {Data: []byte(`{"helpers":{"datalist":{"disabled":true}}}`)},
	}

	cfg, err := config.Load(fsys, "taghelpers.yaml")
	if err != nil {
		t.Fatalf("load yaml: %v", err)
	}
	want := config.Config{
		AttributePrefix:   "x-",
		Sanitize:          true,
		TemplateDir:       "./templates",
		TemplateExtension: ".tpl",
		Helpers: map[string]config.HelperConfig{
			"datalist": {Attribute: "x-options", Order: &order},
		},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("yaml config mismatch (-want +got):\n%s", diff)
	}

	cfg, err = config.Load(fsys, "taghelpers.json")
	if err != nil {
		t.Fatalf("load json: %v", err)
	}
	if !cfg.Helpers["datalist"].Disabled {
		t.Fatalf("expected datalist disabled: %+v", cfg.Helpers)
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name    string
		data    string
		wantErr string
	}{
		{name: "empty", data: "  ", wantErr: "is empty"},
		{name: "malformed", data: "helpers: [", wantErr: "parse"},
		{name: "unknown helper", data: `{"helpers":{"select":{"attribute":"th-x"}}}`, wantErr: `unknown helper "select"`},
		{name: "prefix", data: `{"helpers":{"datalist":{"attribute":"list"}}}`, wantErr: "must start with"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.data), "test")
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestConfig_Registry(t *testing.T) {
	order := 5
	cfg := config.Default()
	cfg.Helpers["datalist"] = config.HelperConfig{Attribute: "th-options", Order: &order}

	reg, err := cfg.Registry()
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	bindings := reg.Match("datalist", taghelper.Attributes{{Name: "th-options", Value: "x"}})
	if len(bindings) != 1 {
		t.Fatalf("expected one binding, got %d", len(bindings))
	}
	if bindings[0].Helper.Order() != order {
		t.Fatalf("expected order %d, got %d", order, bindings[0].Helper.Order())
	}

	cfg.Helpers["datalist"] = config.HelperConfig{Disabled: true}
	reg, err = cfg.Registry()
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	if reg.Has(datalist.HelperName) {
		t.Fatalf("disabled helper should not be registered")
	}
}
