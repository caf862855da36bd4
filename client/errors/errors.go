package errors

import (
	stderrors "errors"
	"fmt"
)

type Status string

// The explorer could not be reached or the connection failed
const NetworkError Status = "NetworkError"

// The request did not finish before the deadline
const Timeout Status = "Timeout"

// The explorer rejected the request because of its rate limit
const RateLimited Status = "RateLimited"

// The explorer has no record of the address
const AddressNotFound Status = "AddressNotFound"

// The explorer answered with an error or a body that could not be decoded
const BadResponse Status = "BadResponse"

// No client is configured for the chain or provider
const Unsupported Status = "Unsupported"

// No outcome for this error known
const UnknownError Status = "UnknownError"

type Error struct {
	Status  Status
	Message string
	// HTTP status code of the response, 0 if there was none
	StatusCode int
}

var _ error = &Error{}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (%d): %s", e.Status, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Status, e.Message)
}

func Errorf(status Status, format string, args ...interface{}) error {
	return &Error{
		Status:  status,
		Message: fmt.Sprintf(format, args...),
	}
}

// HttpErrorf records the status code of a failed response.
func HttpErrorf(statusCode int, status Status, format string, args ...interface{}) error {
	return &Error{
		Status:     status,
		Message:    fmt.Sprintf(format, args...),
		StatusCode: statusCode,
	}
}

func NetworkErrorf(format string, args ...interface{}) error {
	return Errorf(NetworkError, format, args...)
}

func Timeoutf(format string, args ...interface{}) error {
	return Errorf(Timeout, format, args...)
}

func BadResponsef(format string, args ...interface{}) error {
	return Errorf(BadResponse, format, args...)
}

func Unsupportedf(format string, args ...interface{}) error {
	return Errorf(Unsupported, format, args...)
}

// StatusOf returns the status of the first *Error in err's chain, or UnknownError.
func StatusOf(err error) Status {
	var clientErr *Error
	if stderrors.As(err, &clientErr) {
		return clientErr.Status
	}
	return UnknownError
}
