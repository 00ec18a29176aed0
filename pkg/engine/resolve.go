package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-taghelpers/pkg/taghelper"
)

// Resolver turns the raw text of a bound attribute into the value handed to
// helpers through taghelper.Context.Values.
type Resolver func(expression string, data map[string]any) (any, error)

// ResolvePath treats the attribute text as a dotted path into data
// ("colors", "form.options.colors"). Lists resolve to
// taghelper.Optional[[]string]; a missing path or nil value resolves to an
// absent list. Any other value is returned unchanged for the helper to judge.
func ResolvePath(expression string, data map[string]any) (any, error) {
	path := strings.TrimSpace(expression)
	if path == "" {
		return taghelper.None[[]string](), nil
	}

	segments := strings.Split(path, ".")
	for idx, segment := range segments {
		segments[idx] = strings.TrimSpace(segment)
		if segments[idx] == "" {
			return nil, fmt.Errorf("engine: invalid path %q", expression)
		}
	}

	var current any = data
	for _, segment := range segments {
		next, ok := lookup(current, segment)
		if !ok {
			return taghelper.None[[]string](), nil
		}
		current = next
	}
	return normalizeList(current)
}

func lookup(value any, key string) (any, bool) {
	switch v := value.(type) {
	case map[string]any:
		out, ok := v[key]
		return out, ok
	case map[string][]string:
		out, ok := v[key]
		return out, ok
	case map[string]string:
		out, ok := v[key]
		return out, ok
	default:
		return nil, false
	}
}

func normalizeList(value any) (any, error) {
	list, err := taghelper.StringList(value)
	if errors.Is(err, taghelper.ErrNotList) {
		return value, nil
	}
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	return list, nil
}
