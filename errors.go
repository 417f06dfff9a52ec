package dataviz

import (
	"errors"
	"fmt"
)

var (
	ErrDegenerateDomain   = errors.New("degenerate domain")
	ErrChildCountMismatch = errors.New("child count mismatch")
	ErrUnknownChart       = errors.New("unknown chart type")
	ErrNotReady           = errors.New("chart not allocated")
)

type CountError struct {
	Want int
	Got  int
}

func (e *CountError) Error() string {
	return fmt.Sprintf("%s: %d elements allocated, got %d", ErrChildCountMismatch, e.Want, e.Got)
}

func (e *CountError) Unwrap() error {
	return ErrChildCountMismatch
}

func checkCount(want, got int) error {
	if want == got {
		return nil
	}
	return &CountError{
		Want: want,
		Got:  got,
	}
}

// ChartError reports the failure of one chart of a page.
type ChartError struct {
	Kind  string
	Index int
	Err   error
}

func (e *ChartError) Error() string {
	return fmt.Sprintf("chart %s (#%d): %s", e.Kind, e.Index, e.Err)
}

func (e *ChartError) Unwrap() error {
	return e.Err
}
