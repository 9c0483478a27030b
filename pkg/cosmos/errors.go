package cosmos

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
)

var (
	ErrNotFound           = errors.New("cosmos: resource not found")
	ErrConflict           = errors.New("cosmos: resource already exists")
	ErrPreconditionFailed = errors.New("cosmos: precondition failed")
	ErrInvalidConfig      = errors.New("cosmos: invalid config")
)

// Error is a failed response from the Cosmos DB service.
type Error struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *Error) Error() string {
	return fmt.Sprintf("cosmos: %d %s: %s", e.StatusCode, e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match the status-based sentinels.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrConflict:
		return e.StatusCode == http.StatusConflict
	case ErrPreconditionFailed:
		return e.StatusCode == http.StatusPreconditionFailed
	}
	return false
}

// IsClientError reports whether err is a 4xx rejection by the service.
func IsClientError(err error) bool {
	var cErr *Error
	if !errors.As(err, &cErr) {
		return false
	}
	return cErr.StatusCode >= 400 && cErr.StatusCode < 500
}

// classify converts SDK response errors into *Error. Transport errors pass through unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var respErr *azcore.ResponseError
	if errors.As(err, &respErr) {
		return &Error{
			StatusCode: respErr.StatusCode,
			Code:       respErr.ErrorCode,
			Message:    err.Error(),
			Err:        err,
		}
	}
	return err
}
