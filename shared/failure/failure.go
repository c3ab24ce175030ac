package failure

import (
	"errors"
	"net/http"
)

// Failure is a classified error. Codes follow HTTP status semantics: 400 input, 401 credentials,
// 403 permission, 404 missing, 409 conflict, 500 everything else.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	InvalidCredentials      = &Failure{Code: http.StatusUnauthorized, Message: "invalid credentials"}
	ForbiddenError          = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}
	ResourceRestrictedError = &Failure{Code: http.StatusForbidden, Message: "You don't manage this hotel"}
	NoSuchRoom              = &Failure{Code: http.StatusNotFound, Message: "no such room"}
	RoomUnavailable         = &Failure{Code: http.StatusConflict, Message: "room unavailable"}
	DuplicateRepair         = &Failure{Code: http.StatusConflict, Message: "duplicate repair request"}
)

func (e *Failure) Error() string {
	return e.Message
}

func newFailure(code int, message string) error {
	return &Failure{Code: code, Message: message}
}

// BadRequest classifies err as an input error. A nil err stays nil.
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

func Forbidden(msg string) error {
	return newFailure(http.StatusForbidden, msg)
}

// NotFound reports a missing entity; msg is shown to the user as is.
func NotFound(msg string) error {
	return newFailure(http.StatusNotFound, msg)
}

func Conflict(msg string) error {
	return newFailure(http.StatusConflict, msg)
}

// InternalError classifies err as a store or system error. A nil err stays nil.
func InternalError(err error) error {
	if err == nil {
		return nil
	}

	return newFailure(http.StatusInternalServerError, err.Error())
}

// GetCode returns the code of the first Failure in err's chain, 500 when there is none.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// IsUserFacing reports whether err is a classified failure whose message can be shown as is.
func IsUserFacing(err error) bool {
	return GetCode(err) < http.StatusInternalServerError
}
