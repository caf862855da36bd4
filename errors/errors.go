package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind classifies why an address was rejected.
type Kind string

// The address was empty after trimming whitespace
const Empty Kind = "Empty"

// The address is shorter than any supported address
const TooShort Kind = "TooShort"

// The chain is not one of the supported chains
const UnsupportedChain Kind = "UnsupportedChain"

// The address does not start with a prefix recognized for the chain
const InvalidPrefix Kind = "InvalidPrefix"

// The address (or its decoded payload) has the wrong length
const InvalidLength Kind = "InvalidLength"

// A character outside of the hex, Base58 or Bech32 alphabet was found
const InvalidCharacter Kind = "InvalidCharacter"

// The Base58Check digest or Bech32 polymod did not match
const ChecksumMismatch Kind = "ChecksumMismatch"

// A Bech32 string mixed upper and lower case characters
const MixedCase Kind = "MixedCase"

// A Bech32 string did not contain exactly one usable separator
const InvalidSeparator Kind = "InvalidSeparator"

// The Bech32 human-readable part belongs to another chain or network
const WrongHumanReadablePart Kind = "WrongHumanReadablePart"

// The version byte does not belong to the chain
const InvalidVersion Kind = "InvalidVersion"

// The segwit witness version or program is malformed
const InvalidWitnessProgram Kind = "InvalidWitnessProgram"

// Category groups kinds the way they are reported to users.
type Category string

const (
	CategoryInput       Category = "input"
	CategoryFormat      Category = "format"
	CategoryChecksum    Category = "checksum"
	CategoryUnsupported Category = "unsupported"
)

func (kind Kind) Category() Category {
	switch kind {
	case Empty, TooShort:
		return CategoryInput
	case ChecksumMismatch, WrongHumanReadablePart:
		return CategoryChecksum
	case UnsupportedChain:
		return CategoryUnsupported
	default:
		return CategoryFormat
	}
}

type Error struct {
	Kind    Kind
	Message string
}

var _ error = &Error{}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func Errorf(kind Kind, format string, args ...interface{}) error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// KindOf returns the kind of the first *Error in err's chain, or "" if there is none.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

func InvalidPrefixf(format string, args ...interface{}) error {
	return Errorf(InvalidPrefix, format, args...)
}

func InvalidLengthf(format string, args ...interface{}) error {
	return Errorf(InvalidLength, format, args...)
}

func InvalidCharacterf(format string, args ...interface{}) error {
	return Errorf(InvalidCharacter, format, args...)
}

func ChecksumMismatchf(format string, args ...interface{}) error {
	return Errorf(ChecksumMismatch, format, args...)
}

func InvalidVersionf(format string, args ...interface{}) error {
	return Errorf(InvalidVersion, format, args...)
}

func InvalidWitnessProgramf(format string, args ...interface{}) error {
	return Errorf(InvalidWitnessProgram, format, args...)
}
