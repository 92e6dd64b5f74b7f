package calendar

import (
	"errors"
	"fmt"
)

// ErrDateFormat is matched by every DateFormatError.
var ErrDateFormat = errors.New("invalid date")

// DateFormatError reports a date string that is malformed or lies outside
// the supported range.
type DateFormatError struct {
	Value  string
	Reason string
}

func (e *DateFormatError) Error() string {
	return fmt.Sprintf("invalid date %q: %s", e.Value, e.Reason)
}

// Is lets errors.Is(err, ErrDateFormat) match.
func (e *DateFormatError) Is(target error) bool {
	return target == ErrDateFormat
}
