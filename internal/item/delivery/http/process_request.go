package http

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"item-store-api/pkg/response"
)

const validationDetail = "Request validation failed"

// fieldError describes one rejected request field.
type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// processCreateReq binds and validates the create item request body.
func (h *handler) processCreateReq(c *gin.Context) (itemBaseReq, bool) {
	var req itemBaseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.abortValidation(c, err)
		return req, false
	}
	return req, true
}

// processAddressReq binds the item_id path param and the category query param.
func (h *handler) processAddressReq(c *gin.Context) (addressReq, bool) {
	var req addressReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.abortValidation(c, err)
		return req, false
	}
	req.ID = c.Param("item_id")
	return req, true
}

// processListReq binds the category path param.
func (h *handler) processListReq(c *gin.Context) (listReq, bool) {
	var req listReq
	if err := c.ShouldBindUri(&req); err != nil {
		h.abortValidation(c, err)
		return req, false
	}
	return req, true
}

// processUpdateReq binds and validates the update item request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, bool) {
	var req updateReq
	if err := c.ShouldBindJSON(&req.itemBaseReq); err != nil {
		h.abortValidation(c, err)
		return req, false
	}
	req.ID = c.Param("item_id")
	return req, true
}

func (h *handler) abortValidation(c *gin.Context, err error) {
	h.l.Debugf(c.Request.Context(), "item.delivery.http: invalid request: %v", err)
	response.ValidationError(c, validationDetail, fieldErrors(err))
}

// fieldErrors flattens binding errors into a per-field list.
func fieldErrors(err error) []fieldError {
	var (
		verrs   validator.ValidationErrors
		typeErr *json.UnmarshalTypeError
		synErr  *json.SyntaxError
	)
	switch {
	case errors.As(err, &verrs):
		out := make([]fieldError, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, fieldError{
				Field:   jsonName(fe),
				Message: fmt.Sprintf("failed on the '%s' rule", fe.Tag()),
			})
		}
		return out
	case errors.As(err, &typeErr):
		return []fieldError{{
			Field:   typeErr.Field,
			Message: fmt.Sprintf("expected %s, got %s", typeErr.Type.String(), typeErr.Value),
		}}
	case errors.As(err, &synErr):
		return []fieldError{{Field: "body", Message: "malformed JSON"}}
	default:
		return []fieldError{{Field: "body", Message: err.Error()}}
	}
}

var fieldNames = map[string]string{
	"Name":        "name",
	"Category":    "category",
	"Description": "description",
	"Price":       "price",
	"Quantity":    "quantity",
}

func jsonName(fe validator.FieldError) string {
	if name, ok := fieldNames[fe.StructField()]; ok {
		return name
	}
	return fe.Field()
}
