package address

import "fmt"

// ErrorKind identifies a kind of address decoding error. It is the
// machine-readable signal; the Description on Error is diagnostic only.
type ErrorKind string

// These constants are used to identify a specific ErrorKind.
const (
	// ErrEmpty is returned when the input string is empty.
	ErrEmpty = ErrorKind("ErrEmpty")

	// ErrTooShort is returned when the input decodes to fewer bytes or
	// groups than the scheme's minimum.
	ErrTooShort = ErrorKind("ErrTooShort")

	// ErrTooLong is returned when the input exceeds the scheme's maximum
	// length.
	ErrTooLong = ErrorKind("ErrTooLong")

	// ErrInvalidCharacter is returned when a character is outside the
	// alphabet of the scheme being decoded.
	ErrInvalidCharacter = ErrorKind("ErrInvalidCharacter")

	// ErrMixedCase is returned when a bech32 string mixes upper and lower
	// case characters.
	ErrMixedCase = ErrorKind("ErrMixedCase")

	// ErrNoSeparator is returned when a bech32 string has no separator
	// character or an empty human-readable prefix before it.
	ErrNoSeparator = ErrorKind("ErrNoSeparator")

	// ErrChecksumMismatch is returned when the recomputed checksum differs
	// from the one embedded in the address.
	ErrChecksumMismatch = ErrorKind("ErrChecksumMismatch")

	// ErrUnknownVersion is returned when a Base58Check string carries a
	// valid checksum but a version byte that is not a recognized mainnet
	// address scheme.
	ErrUnknownVersion = ErrorKind("ErrUnknownVersion")

	// ErrUnsupportedWitnessVersion is returned when a segwit address is
	// structurally valid but its witness version (2-16) has no named
	// address type yet.
	ErrUnsupportedWitnessVersion = ErrorKind("ErrUnsupportedWitnessVersion")

	// ErrInvalidWitnessVersion is returned when the witness version group
	// exceeds 16.
	ErrInvalidWitnessVersion = ErrorKind("ErrInvalidWitnessVersion")

	// ErrInvalidProgramLength is returned when a witness program or
	// Base58Check payload has a length the witness version does not allow.
	ErrInvalidProgramLength = ErrorKind("ErrInvalidProgramLength")

	// ErrPaddingError is returned when regrouping 5-bit groups into bytes
	// leaves non-zero or excess padding bits.
	ErrPaddingError = ErrorKind("ErrPaddingError")

	// ErrNotRecognized is returned when the input matches neither the
	// Base58Check nor the bech32 decode path.
	ErrNotRecognized = ErrorKind("ErrNotRecognized")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an address decoding error. It has full support for
// errors.Is and errors.As, so the caller can check the specific kind with
// errors.Is(err, address.ErrChecksumMismatch).
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error kind.
func (e Error) Unwrap() error {
	return e.Err
}

// Kind returns the ErrorKind carried by the error.
func (e Error) Kind() ErrorKind {
	kind, _ := e.Err.(ErrorKind)
	return kind
}

// decodeError creates an Error given a set of arguments.
func decodeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}

// decodeErrorf creates an Error with a formatted description.
func decodeErrorf(kind ErrorKind, format string, args ...interface{}) Error {
	return Error{Err: kind, Description: fmt.Sprintf(format, args...)}
}

// errKind extracts the ErrorKind from any error returned by this package.
// It returns an empty kind for foreign errors.
func errKind(err error) ErrorKind {
	if e, ok := err.(Error); ok {
		return e.Kind()
	}
	if kind, ok := err.(ErrorKind); ok {
		return kind
	}
	return ""
}
