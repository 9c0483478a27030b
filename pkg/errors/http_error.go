package errors

import "net/http"

// HTTPError is an error that already knows the HTTP status it should be rendered with.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError with the given status code and client-facing message.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

func NewBadRequestError(message string) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, message)
}

func NewNotFoundError(message string) *HTTPError {
	return NewHTTPError(http.StatusNotFound, message)
}

func NewConflictError(message string) *HTTPError {
	return NewHTTPError(http.StatusConflict, message)
}

func NewUnprocessableEntityError(message string) *HTTPError {
	return NewHTTPError(http.StatusUnprocessableEntity, message)
}

func NewTooManyRequestsError(message string) *HTTPError {
	return NewHTTPError(http.StatusTooManyRequests, message)
}
