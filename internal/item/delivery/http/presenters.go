package http

import (
	"encoding/json"
	"math"
	"reflect"
	"time"

	"item-store-api/internal/item"
)

// --- Request DTOs ---

// itemBaseReq is the client-writable part of an Item. Name, Price and Quantity are pointers so
// that "" and 0 pass the required check while a missing field does not. Category is the partition
// key and must be non-empty.
type itemBaseReq struct {
	Name        *string      `json:"name"        binding:"required"`
	Category    string       `json:"category"    binding:"required"`
	Description *string      `json:"description"`
	Price       *float64     `json:"price"       binding:"required"`
	Quantity    *wholeNumber `json:"quantity"    binding:"required"`
}

func (r itemBaseReq) toCreateInput() item.CreateItemInput {
	return item.CreateItemInput{
		Name:        *r.Name,
		Category:    r.Category,
		Description: r.Description,
		Price:       *r.Price,
		Quantity:    int(*r.Quantity),
	}
}

// wholeNumber is an int that also accepts integral JSON floats such as 5.0.
type wholeNumber int

func (n *wholeNumber) UnmarshalJSON(b []byte) error {
	var f float64
	if err := json.Unmarshal(b, &f); err != nil || f != math.Trunc(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return &json.UnmarshalTypeError{Value: string(b), Type: reflect.TypeOf(0), Field: "quantity"}
	}
	*n = wholeNumber(f)
	return nil
}

// ---

type addressReq struct {
	ID       string `json:"-"` // populated from URI param
	Category string `form:"category" binding:"required"`
}

func (r addressReq) toDetailInput() item.DetailItemInput {
	return item.DetailItemInput{ID: r.ID, Category: r.Category}
}

func (r addressReq) toDeleteInput() item.DeleteItemInput {
	return item.DeleteItemInput{ID: r.ID, Category: r.Category}
}

// ---

type listReq struct {
	Category string `uri:"category" binding:"required"`
}

func (r listReq) toInput() item.ListItemsInput {
	return item.ListItemsInput{Category: r.Category}
}

// ---

type updateReq struct {
	ID string `json:"-"` // populated from URI param
	itemBaseReq
}

func (r updateReq) toInput() item.UpdateItemInput {
	return item.UpdateItemInput{
		ID:          r.ID,
		Name:        *r.Name,
		Category:    r.Category,
		Description: r.Description,
		Price:       *r.Price,
		Quantity:    int(*r.Quantity),
	}
}

// --- Response DTOs ---

type itemResp struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description *string   `json:"description"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newItemResp(it item.Item) itemResp {
	return itemResp{
		ID:          it.ID,
		Name:        it.Name,
		Category:    it.Category,
		Description: it.Description,
		Price:       it.Price,
		Quantity:    it.Quantity,
		CreatedAt:   it.CreatedAt.UTC(),
		UpdatedAt:   it.UpdatedAt.UTC(),
	}
}

func (h *handler) newListResp(out item.ListItemsOutput) []itemResp {
	items := make([]itemResp, len(out.Items))
	for i, it := range out.Items {
		items[i] = newItemResp(it)
	}
	return items
}

const deletedMessage = "Item deleted successfully"
