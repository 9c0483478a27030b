package http

import (
	"github.com/gin-gonic/gin"

	"item-store-api/pkg/response"
)

// Create godoc
// @Summary     Create an item
// @Description Creates a new item. The id and timestamps are assigned by the server.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       body body itemBaseReq true "Item data"
// @Success     200  {object} itemResp
// @Failure     400  {object} response.Resp "Store rejected the write"
// @Failure     422  {object} response.Resp "Validation error"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /items/ [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, ok := h.processCreateReq(c)
	if !ok {
		return
	}

	output, err := h.uc.Create(ctx, req.toCreateInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newItemResp(output.Item))
}

// Detail godoc
// @Summary     Get an item
// @Description Returns one item by id within its category.
// @Tags        Items
// @Produce     json
// @Param       item_id  path  string true "Item ID"
// @Param       category query string true "Item category (partition key)"
// @Success     200 {object} itemResp
// @Failure     404 {object} response.Resp "Item not found"
// @Failure     422 {object} response.Resp "Validation error"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /items/{item_id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	req, ok := h.processAddressReq(c)
	if !ok {
		return
	}

	output, err := h.uc.Detail(ctx, req.toDetailInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newItemResp(output.Item))
}

// ListByCategory godoc
// @Summary     List items of a category
// @Description Returns every item in the category. An unknown category yields an empty list.
// @Tags        Items
// @Produce     json
// @Param       category path string true "Item category"
// @Success     200 {array}  itemResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /items/category/{category} [GET]
func (h *handler) ListByCategory(c *gin.Context) {
	ctx := c.Request.Context()

	req, ok := h.processListReq(c)
	if !ok {
		return
	}

	output, err := h.uc.ListByCategory(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Update godoc
// @Summary     Update an item
// @Description Overwrites name, description, price and quantity. The category in the body locates the item.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       item_id path string      true "Item ID"
// @Param       body    body itemBaseReq true "Item data"
// @Success     200 {object} itemResp
// @Failure     404 {object} response.Resp "Item not found"
// @Failure     409 {object} response.Resp "Concurrent modification"
// @Failure     422 {object} response.Resp "Validation error"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /items/{item_id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, ok := h.processUpdateReq(c)
	if !ok {
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newItemResp(output.Item))
}

// Delete godoc
// @Summary     Delete an item
// @Description Permanently removes an item by id within its category.
// @Tags        Items
// @Produce     json
// @Param       item_id  path  string true "Item ID"
// @Param       category query string true "Item category (partition key)"
// @Success     200 {object} response.MessageResp
// @Failure     404 {object} response.Resp "Item not found"
// @Failure     422 {object} response.Resp "Validation error"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /items/{item_id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	req, ok := h.processAddressReq(c)
	if !ok {
		return
	}

	if err := h.uc.Delete(ctx, req.toDeleteInput()); err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.Message(c, deletedMessage)
}
