package directory

import (
	"errors"
	"fmt"

	"github.com/jfmyers9/radionet/pkg/radionet"
)

// Status tells a successful result apart from the two ways a call can fail.
type Status int

const (
	StatusOK       Status = iota // Value holds the answer, possibly an empty list
	StatusNotFound               // The station or stream does not exist
	StatusFailed                 // The directory could not be reached or answered with nothing
)

// String returns a human-readable representation of the Status
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNotFound:
		return "not found"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is what every Client read method returns instead of an error.
type Result[T any] struct {
	Value  T
	Status Status
}

// OK reports whether the call succeeded.
func (r Result[T]) OK() bool {
	return r.Status == StatusOK
}

// Sentinel errors used between the directory components.
var (
	// ErrNotFound means no station matches an id or slug.
	ErrNotFound = errors.New("directory: station not found")

	// ErrUnavailable means the remote call failed or returned nothing.
	ErrUnavailable = errors.New("directory: remote unavailable")
)

// classify maps an SDK error onto ErrNotFound or ErrUnavailable, keeping
// the original error in the chain.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrUnavailable) {
		return err
	}
	if errors.Is(err, radionet.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return fmt.Errorf("%w: %w", ErrUnavailable, err)
}

// resultOf converts a value/error pair into a Result.
func resultOf[T any](v T, err error) Result[T] {
	switch {
	case err == nil:
		return Result[T]{Value: v, Status: StatusOK}
	case errors.Is(err, ErrNotFound):
		return Result[T]{Value: v, Status: StatusNotFound}
	default:
		return Result[T]{Value: v, Status: StatusFailed}
	}
}
