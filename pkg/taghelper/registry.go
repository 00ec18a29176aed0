package taghelper

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Binding pairs a registered helper with the target that activated it.
type Binding struct {
	Target Target
	Helper Helper

	order int
}

// Registry maps element + attribute targets to helpers. Lookups return helpers
// sorted by Order(), lowest first; ties fall back to registration order.
type Registry struct {
	mu       sync.RWMutex
	bindings []Binding
	keys     map[string]struct{}
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		keys: make(map[string]struct{}),
	}
}

// Register binds a helper to a target. A helper name may be bound to several
// targets, but registering the same name for the same target twice fails.
func (r *Registry) Register(target Target, helper Helper) error {
	if helper == nil {
		return fmt.Errorf("taghelper: helper is required")
	}
	name := strings.TrimSpace(helper.Name())
	if name == "" {
		return fmt.Errorf("taghelper: helper name is required")
	}
	if normalizeName(target.Element) == "" {
		return fmt.Errorf("taghelper: target element is required for helper %q", name)
	}
	for _, attr := range target.Attributes {
		if normalizeName(attr) == "" {
			return fmt.Errorf("taghelper: empty target attribute for helper %q", name)
		}
	}

	key := name + "@" + target.key()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.keys[key]; exists {
		return fmt.Errorf("taghelper: helper %q already registered for %s", name, target.key())
	}
	r.keys[key] = struct{}{}
	r.bindings = append(r.bindings, Binding{
		Target: Target{
			Element:    normalizeName(target.Element),
			Attributes: append([]string(nil), target.Attributes...),
		},
		Helper: helper,
		order:  len(r.bindings),
	})
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(target Target, helper Helper) {
	if err := r.Register(target, helper); err != nil {
		panic(err)
	}
}

// Match returns the bindings that apply to an element, in execution order.
func (r *Registry) Match(element string, attrs Attributes) []Binding {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	var matched []Binding
	for _, binding := range r.bindings {
		if binding.Target.Matches(element, attrs) {
			matched = append(matched, binding)
		}
	}
	r.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		oi, oj := matched[i].Helper.Order(), matched[j].Helper.Order()
		if oi == oj {
			return matched[i].order < matched[j].order
		}
		return oi < oj
	})
	return matched
}

// Handles reports whether any helper is bound to the element name. The host
// uses it to skip attribute inspection for unrelated tags.
func (r *Registry) Handles(element string) bool {
	if r == nil {
		return false
	}
	key := normalizeName(element)
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, binding := range r.bindings {
		if binding.Target.Element == key {
			return true
		}
	}
	return false
}

// Has reports whether a helper with the given name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, binding := range r.bindings {
		if binding.Helper.Name() == name {
			return true
		}
	}
	return false
}

// Names returns a sorted list of distinct helper names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{}, len(r.bindings))
	names := make([]string, 0, len(r.bindings))
	for _, binding := range r.bindings {
		name := binding.Helper.Name()
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Elements returns the sorted element names with at least one binding.
func (r *Registry) Elements() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	var elements []string
	for _, binding := range r.bindings {
		if _, ok := seen[binding.Target.Element]; ok {
			continue
		}
		seen[binding.Target.Element] = struct{}{}
		elements = append(elements, binding.Target.Element)
	}
	sort.Strings(elements)
	return elements
}
