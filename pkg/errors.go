package pkg

import (
	"errors"
	"fmt"
)

var (
	ErrConfigRead  = errors.New("config read error")
	ErrImageLoad   = errors.New("image load error")
	ErrDisplayInit = errors.New("display init error")
	ErrRender      = errors.New("display render error")
	ErrArgument    = errors.New("argument error")
)

// ExitError carries the process exit code for a failed run.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func argumentError(msg string) error {
	return &ExitError{Code: 2, Message: fmt.Sprintf("%v: %s", ErrArgument, msg), Err: ErrArgument}
}

// exitError maps a failure to its exit code. Argument errors exit 2,
// everything else 1.
func exitError(err error) *ExitError {
	var e *ExitError
	if errors.As(err, &e) {
		return e
	}
	code := 1
	if errors.Is(err, ErrArgument) {
		code = 2
	}
	return &ExitError{Code: code, Message: err.Error(), Err: err}
}

// wrapIf tags err with sentinel unless it already carries it.
func wrapIf(err, sentinel error) error {
	if errors.Is(err, sentinel) {
		return err
	}
	return fmt.Errorf("%w: %v", sentinel, err)
}
