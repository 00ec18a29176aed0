package taghelper

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument marks contract violations by the host, such as a nil
// context or output handle.
var ErrInvalidArgument = errors.New("taghelper: invalid argument")

// InvalidArgument returns an error wrapping ErrInvalidArgument for the named
// parameter.
func InvalidArgument(name string) error {
	return fmt.Errorf("%w: %s is required", ErrInvalidArgument, name)
}

// HelperError decorates a failure raised by a helper with the helper name and
// the element being processed.
type HelperError struct {
	Helper  string
	Element string
	Err     error
}

func (e *HelperError) Error() string {
	return fmt.Sprintf("taghelper: helper %q on <%s>: %v", e.Helper, e.Element, e.Err)
}

func (e *HelperError) Unwrap() error {
	return e.Err
}
