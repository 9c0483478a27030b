package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "item-store-api/pkg/errors"
)

// OK sends 200 JSON with data as the whole body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Message sends 200 with a {"message": ...} body.
func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, MessageResp{Message: msg})
}

// Error sends the status carried by an *errors.HTTPError, or 500 for anything else.
func Error(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if !errors.As(err, &httpErr) {
		InternalError(c, err)
		return
	}

	c.JSON(httpErr.StatusCode, Resp{
		ErrorCode: httpErr.StatusCode,
		Detail:    httpErr.Message,
	})
}

// ValidationError sends 422 with the per-field problems in Errors.
func ValidationError(c *gin.Context, detail string, fields any) {
	c.JSON(http.StatusUnprocessableEntity, Resp{
		ErrorCode: http.StatusUnprocessableEntity,
		Detail:    detail,
		Errors:    fields,
	})
}

// InternalError sends 500 internal server error. The cause is never echoed to the client.
func InternalError(c *gin.Context, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Detail:    DefaultErrorMessage,
	})
}
