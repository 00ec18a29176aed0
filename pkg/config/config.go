// Package config loads processor settings from JSON or YAML files and turns
// them into a populated taghelper registry.
package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-taghelpers/pkg/taghelper"
	"github.com/goliatone/go-taghelpers/pkg/taghelper/datalist"
)

// DefaultAttributePrefix namespaces helper attributes so they never collide
// with standard HTML attributes.
const DefaultAttributePrefix = "th-"

// Config describes which helpers run and how the host processes documents.
type Config struct {
	AttributePrefix   string                  `json:"attributePrefix" yaml:"attributePrefix"`
	Helpers           map[string]HelperConfig `json:"helpers" yaml:"helpers"`
	Sanitize          bool                    `json:"sanitize" yaml:"sanitize"`
	TemplateDir       string                  `json:"templateDir" yaml:"templateDir"`
	TemplateExtension string                  `json:"templateExtension" yaml:"templateExtension"`
}

// HelperConfig overrides a single helper's binding.
type HelperConfig struct {
	Attribute string `json:"attribute" yaml:"attribute"`
	Order     *int   `json:"order,omitempty" yaml:"order,omitempty"`
	Disabled  bool   `json:"disabled" yaml:"disabled"`
}

// Default returns the built-in configuration: the datalist helper bound to
// th-list.
func Default() Config {
	cfg := Config{
		AttributePrefix:   DefaultAttributePrefix,
		TemplateExtension: ".tpl",
	}
	cfg.normalize()
	return cfg
}

// Load reads and parses a configuration file from fsys.
func Load(fsys fs.FS, path string) (Config, error) {
	if fsys == nil {
		return Config{}, taghelper.InvalidArgument("fsys")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes JSON first and falls back to YAML. Missing values take their
// defaults and the result is validated.
func Parse(data []byte, source string) (Config, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Config{}, fmt.Errorf("config: file %s is empty", source)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		cfg = Config{}
		if yamlErr := yaml.Unmarshal(data, &cfg); yamlErr != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", source, yamlErr)
		}
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", source, err)
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.AttributePrefix = strings.ToLower(strings.TrimSpace(c.AttributePrefix))
	if c.AttributePrefix == "" {
		c.AttributePrefix = DefaultAttributePrefix
	}
	if strings.TrimSpace(c.TemplateExtension) == "" {
		c.TemplateExtension = ".tpl"
	}

	helpers := make(map[string]HelperConfig, len(c.Helpers)+1)
	for name, helper := range c.Helpers {
		helper.Attribute = strings.ToLower(strings.TrimSpace(helper.Attribute))
		helpers[strings.ToLower(strings.TrimSpace(name))] = helper
	}
	dl := helpers[datalist.HelperName]
	if dl.Attribute == "" {
		dl.Attribute = c.AttributePrefix + "list"
	}
	helpers[datalist.HelperName] = dl
	c.Helpers = helpers
}

// Validate checks helper names and attribute prefixes.
func (c Config) Validate() error {
	names := make([]string, 0, len(c.Helpers))
	for name := range c.Helpers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		helper := c.Helpers[name]
		if name != datalist.HelperName {
			return fmt.Errorf("unknown helper %q", name)
		}
		if helper.Disabled {
			continue
		}
		if helper.Attribute == "" {
			return fmt.Errorf("helper %q: attribute is required", name)
		}
		if !strings.HasPrefix(helper.Attribute, c.AttributePrefix) {
			return fmt.Errorf("helper %q: attribute %q must start with %q", name, helper.Attribute, c.AttributePrefix)
		}
	}
	return nil
}

// Registry builds a registry with every enabled helper registered.
func (c Config) Registry() (*taghelper.Registry, error) {
	reg := taghelper.NewRegistry()

	dl, ok := c.Helpers[datalist.HelperName]
	if !ok || dl.Disabled {
		return reg, nil
	}
	options := []datalist.Option{datalist.WithAttribute(dl.Attribute)}
	if dl.Order != nil {
		options = append(options, datalist.WithOrder(*dl.Order))
	}
	if _, err := datalist.Register(reg, options...); err != nil {
		return nil, fmt.Errorf("config: register %s: %w", datalist.HelperName, err)
	}
	return reg, nil
}
