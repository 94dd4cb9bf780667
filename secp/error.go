package secp

// ErrorKind identifies a kind of error. It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind
// when determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrPointInvalidLen is returned when a point encoding is not
	// PointSize bytes.
	ErrPointInvalidLen = ErrorKind("ErrPointInvalidLen")

	// ErrPointInvalidFormat is returned when a point encoding has an
	// unknown prefix byte.
	ErrPointInvalidFormat = ErrorKind("ErrPointInvalidFormat")

	// ErrPointXTooBig is returned when the X coordinate of a point encoding
	// is not less than the field prime.
	ErrPointXTooBig = ErrorKind("ErrPointXTooBig")

	// ErrPointNotOnCurve is returned when the X coordinate of a point
	// encoding has no matching Y on the curve.
	ErrPointNotOnCurve = ErrorKind("ErrPointNotOnCurve")

	// ErrScalarInvalidLen is returned when a scalar encoding is not
	// ScalarSize bytes.
	ErrScalarInvalidLen = ErrorKind("ErrScalarInvalidLen")

	// ErrScalarZero is returned when inverting the zero scalar.
	ErrScalarZero = ErrorKind("ErrScalarZero")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to secp256k1 encodings or arithmetic.
// It has full support for errors.Is and errors.As, so the caller can
// ascertain the specific reason for the error by checking the underlying
// error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
