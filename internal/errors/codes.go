package errors

import "net/http"

// Code represents an error code
type Code string

// General error codes
const (
	CodeOK              Code = "OK"
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeNotFound        Code = "NOT_FOUND"
	CodeInternal        Code = "INTERNAL"
	CodeUnavailable     Code = "UNAVAILABLE"
)

// Generation error codes
const (
	// CodeRulesUnavailable means the standing rules document could not be
	// located when an external generation call was about to be made. This is
	// a configuration fault, not a transient condition.
	CodeRulesUnavailable Code = "RULES_UNAVAILABLE"

	// CodeValidationViolation means a candidate payload broke one of the
	// game-balance rules. Raised against externally generated payloads;
	// never against placeholder output.
	CodeValidationViolation Code = "VALIDATION_VIOLATION"

	// CodeGenerationFailure collapses any failure while talking to or
	// parsing the external generator's reply, including a validation
	// violation on the parsed reply. Callers may retry or fall back.
	CodeGenerationFailure Code = "GENERATION_FAILURE"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// HTTPStatus returns the corresponding HTTP status code
func (c Code) HTTPStatus() int {
	switch c {
	case CodeOK:
		return http.StatusOK
	case CodeInvalidArgument:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeInternal:
		return http.StatusInternalServerError
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	case CodeRulesUnavailable:
		return http.StatusInternalServerError
	case CodeValidationViolation:
		return http.StatusUnprocessableEntity
	case CodeGenerationFailure:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
