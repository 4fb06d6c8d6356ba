package geometry

import "github.com/pkg/errors"

// Precondition breaches deep inside the algorithms (an empty polygon handed to
// FastBall, say) are programming errors, so they panic rather than thread an
// error through every call. The public API recovers to convert to an error.

// Wraps the panic value so that recovery can tell our own panics apart from
// runtime errors, which also satisfy the error interface.
type GeometryError struct {
	error
}

func (e GeometryError) Unwrap() error {
	return e.error
}

// Panic with a GeometryError.
func fatalf(format string, args ...interface{}) {
	panic(GeometryError{errors.Errorf(format, args...)})
}

// Converts a recovered GeometryError into an error. Any other panic value is
// re-raised.
func HandleGeometryPanicRecover(r interface{}) error {
	if r != nil {
		if geometryError, ok := r.(GeometryError); ok {
			return geometryError.error
		}
		panic(r)
	}
	return nil
}
