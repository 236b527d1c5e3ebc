package algofht

import (
	"errors"
	"fmt"

	m "github.com/cwbudde/algo-fht/internal/math"
)

// Sentinel errors returned by transform operations.
var (
	// ErrInvalidSize is returned when the transform size (vector length or
	// column count) is not a positive power of 2.
	ErrInvalidSize = errors.New("algofht: invalid transform size")

	// ErrInvalidType is returned when a buffer passed to TransformAny or
	// TransformRowsAny does not hold float64 values.
	ErrInvalidType = errors.New("algofht: invalid element type")

	// ErrInvalidShape is returned when a buffer has the wrong number of
	// dimensions for the entry point, or a jagged row set is not rectangular.
	ErrInvalidShape = errors.New("algofht: invalid shape")

	// ErrNilSlice is returned when a nil slice or matrix is passed.
	ErrNilSlice = errors.New("algofht: nil slice")

	// ErrLengthMismatch is returned when a slice is shorter than the plan's
	// size or a matrix view addresses elements past the end of its data.
	ErrLengthMismatch = errors.New("algofht: slice length mismatch")

	// ErrInvalidStride is returned when a stride parameter is invalid
	// for the given data layout (e.g., stride < 1 or overflows index computation).
	ErrInvalidStride = errors.New("algofht: invalid stride")

	// ErrInvalidStrategy is returned for an unknown KernelStrategy value.
	ErrInvalidStrategy = errors.New("algofht: invalid kernel strategy")
)

// ValidationError carries the observed value that violated a precondition.
// It unwraps to one of the sentinel errors above. The buffer is never
// modified when a ValidationError is returned.
type ValidationError struct {
	Op   string // entry point, e.g. "Transform"
	Err  error  // sentinel
	Size int    // observed transform size, when relevant
	Type string // observed Go type, for ErrInvalidType and ErrInvalidShape
	Dims int    // observed dimensionality, for ErrInvalidShape
	// Detail describes the violation when the fields above do not.
	Detail string
}

func (e *ValidationError) Error() string {
	switch {
	case errors.Is(e.Err, ErrInvalidSize):
		lo, hi := m.NearestPowersOf2(e.Size)
		if e.Size < 1 {
			return fmt.Sprintf("%s: %v: size %d, want a power of 2 >= 1", e.Op, e.Err, e.Size)
		}

		return fmt.Sprintf("%s: %v: size %d is not a power of 2 (nearest %d or %d)", e.Op, e.Err, e.Size, lo, hi)
	case errors.Is(e.Err, ErrInvalidType):
		return fmt.Sprintf("%s: %v: got %s, want float64 elements", e.Op, e.Err, e.Type)
	case errors.Is(e.Err, ErrInvalidShape) && e.Detail == "":
		return fmt.Sprintf("%s: %v: got %d-D %s", e.Op, e.Err, e.Dims, e.Type)
	case e.Detail != "":
		return fmt.Sprintf("%s: %v: %s", e.Op, e.Err, e.Detail)
	default:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func sizeError(op string, n int) error {
	return &ValidationError{Op: op, Err: ErrInvalidSize, Size: n}
}

func typeError(op string, v any) error {
	return &ValidationError{Op: op, Err: ErrInvalidType, Type: fmt.Sprintf("%T", v)}
}

func shapeError(op string, v any, dims int) error {
	return &ValidationError{Op: op, Err: ErrInvalidShape, Type: fmt.Sprintf("%T", v), Dims: dims}
}

func opError(op string, err error, format string, args ...any) error {
	return &ValidationError{Op: op, Err: err, Detail: fmt.Sprintf(format, args...)}
}
