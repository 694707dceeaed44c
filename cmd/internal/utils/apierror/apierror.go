package apierror

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the JSON-serializable error every route returns on
// failure. Code carries the HTTP status to respond with.
type ErrorResponse interface {
	error
	Code() int
}

type simpleError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
}

func (s *simpleError) Error() string {
	return s.Message
}

func (s *simpleError) Code() int {
	return s.StatusCode
}

func NewSimple(code int, message string) ErrorResponse {
	return &simpleError{StatusCode: code, Message: message}
}

func NewMissingParamError(param string) ErrorResponse {
	return NewSimple(400, fmt.Sprintf("Missing required parameter '%s'", param))
}

func NewInvalidParamTypeError(param, expected string) ErrorResponse {
	return NewSimple(400, fmt.Sprintf("Parameter '%s' must be of type %s", param, expected))
}

var (
	InternalServerError   = NewSimple(500, "Internal server error")
	MalformedBodyError    = NewSimple(400, "Malformed request body")
	NotFoundError         = NewSimple(404, "Not found")
	InvalidAuthTokenError = NewSimple(401, "Missing or invalid auth token")

	UserAlreadyExistsError   = NewSimple(409, "A user with this email already exists")
	CredentialsMismatchError = NewSimple(401, "Email or password is incorrect")

	ClientNotFoundError   = NewSimple(404, "Client not found")
	OrderNotFoundError    = NewSimple(404, "Service order not found")
	ScheduleNotFoundError = NewSimple(404, "Schedule not found")
	ProductNotFoundError  = NewSimple(404, "Product not found")

	InvalidStatusError     = NewSimple(400, "Unknown status value")
	DateInPastError        = NewSimple(400, "Date must not be in the past")
	ScheduleConflictError  = NewSimple(409, "Another schedule overlaps this time slot")
	InsufficientStockError = NewSimple(409, "Insufficient stock for this adjustment")
)

type validationError struct {
	StatusCode int      `json:"-"`
	Message    string   `json:"message"`
	Fields     []string `json:"fields"`
}

func (v *validationError) Error() string {
	return v.Message
}

func (v *validationError) Code() int {
	return v.StatusCode
}

// FromValidationError converts a validator.Struct failure into a 400
// response listing the offending fields. Anything else becomes a 500.
func FromValidationError(err error) ErrorResponse {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return InternalServerError
	}

	fields := make([]string, len(verrs))
	for i, fe := range verrs {
		fields[i] = fmt.Sprintf("%s: failed '%s' validation", fe.Field(), fe.Tag())
	}

	return &validationError{
		StatusCode: 400,
		Message:    "Request validation failed",
		Fields:     fields,
	}
}
