package failure

import (
	"errors"
	"net/http"
)

// Failure is an error the caller is allowed to see, paired with its HTTP status.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	InvalidIDParam = &Failure{Code: http.StatusBadRequest, Message: "invalid id parameter"}
	ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}
)

func (e *Failure) Error() string {
	return e.Message
}

func newFailure(code int, message string) error {
	return &Failure{Code: code, Message: message}
}

// BadRequest turns a decoding or validation error into a 400. A nil err stays nil.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return newFailure(http.StatusBadRequest, err.Error())
}

func BadRequestFromString(msg string) error {
	return newFailure(http.StatusBadRequest, msg)
}

func Unauthorized(msg string) error {
	return newFailure(http.StatusUnauthorized, msg)
}

func NotFound(msg string) error {
	return newFailure(http.StatusNotFound, msg)
}

func Conflict(msg string) error {
	return newFailure(http.StatusConflict, msg)
}

// GetCode returns the status of a Failure or Rejection anywhere in the chain, 500 otherwise.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	var rejection *Rejection
	if errors.As(err, &rejection) {
		return rejection.Code()
	}

	return http.StatusInternalServerError
}

// GetMessage returns the text safe to show to a caller. Database rejections expose only their
// kind (or tailored detail), everything else its own message.
func GetMessage(err error) string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Message
	}

	var rejection *Rejection
	if errors.As(err, &rejection) {
		return rejection.Message()
	}

	return err.Error()
}
