package taghelper

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrNotList is returned by StringList for values that are not lists.
var ErrNotList = errors.New("taghelper: value is not a list")

// StringList normalises a resolved attribute value into an optional list of
// strings. nil is absent; []string, []any of scalars and Optional[[]string]
// are accepted. Scalars inside []any are formatted with fmt.Sprint and nil
// items become empty strings.
func StringList(value any) (Optional[[]string], error) {
	switch v := value.(type) {
	case nil:
		return None[[]string](), nil
	case Optional[[]string]:
		return v, nil
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return Some(out), nil
	case []any:
		out := make([]string, 0, len(v))
		for idx, item := range v {
			text, err := scalarString(item)
			if err != nil {
				return None[[]string](), fmt.Errorf("list item %d: %w", idx, err)
			}
			out = append(out, text)
		}
		return Some(out), nil
	default:
		return None[[]string](), fmt.Errorf("%w: got %T", ErrNotList, value)
	}
}

func scalarString(item any) (string, error) {
	if item == nil {
		return "", nil
	}
	switch reflect.ValueOf(item).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct, reflect.Func, reflect.Chan:
		return "", fmt.Errorf("unsupported value of type %T", item)
	default:
		return fmt.Sprint(item), nil
	}
}
