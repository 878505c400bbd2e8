package pyvista

import "errors"

// Error kinds reported by dataset and filter methods. Every error returned
// by this package wraps exactly one of these sentinels, so callers can
// classify failures with errors.Is without matching message text.
var (
	// ErrArgumentType reports an argument whose kind or shape is wrong for
	// the operation: a field with the wrong component count, an array bound
	// to the wrong association, a point array where a cell array is needed.
	ErrArgumentType = errors.New("pyvista: invalid argument type")

	// ErrInvalidValue reports a semantically invalid parameter: malformed
	// bounds or ranges, an unknown axis, a resolution below the minimum, an
	// inplace request on a type-changing filter.
	ErrInvalidValue = errors.New("pyvista: invalid value")

	// ErrMissingData reports that a required named array does not exist and
	// no suitable active array could stand in for it.
	ErrMissingData = errors.New("pyvista: missing data array")

	// ErrIncompatible reports dataset state that an operation's
	// preconditions reject: non-coincident grids in a concatenation,
	// mismatched array sets, an open surface where a closed one is required.
	ErrIncompatible = errors.New("pyvista: incompatible dataset state")

	// ErrUnsupported reports an operation the receiving dataset variant
	// does not implement.
	ErrUnsupported = errors.New("pyvista: operation not supported")
)
