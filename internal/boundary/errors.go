package boundary

import "errors"

var (
	// ErrUnknownCondition indicates a boundary condition name that is not
	// one of open, periodic or shear.
	ErrUnknownCondition = errors.New("boundary: unknown boundary condition")
)
