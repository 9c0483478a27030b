package cosmos

import (
	"encoding/json"
	"time"

	"item-store-api/internal/item"
)

// itemDocument is the JSON shape stored in the container.
type itemDocument struct {
	ID          string    `json:"id"`
	Category    string    `json:"category"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// System properties, populated by the store.
	RID         string `json:"_rid,omitempty"`
	Self        string `json:"_self,omitempty"`
	ETag        string `json:"_etag,omitempty"`
	Attachments string `json:"_attachments,omitempty"`
	TS          int64  `json:"_ts,omitempty"`
}

func toDocument(it item.Item) itemDocument {
	return itemDocument{
		ID:          it.ID,
		Category:    it.Category,
		Name:        it.Name,
		Description: it.Description,
		Price:       it.Price,
		Quantity:    it.Quantity,
		CreatedAt:   it.CreatedAt.UTC(),
		UpdatedAt:   it.UpdatedAt.UTC(),
		RID:         it.Meta.RID,
		Self:        it.Meta.Self,
		ETag:        it.Meta.ETag,
		Attachments: it.Meta.Attachments,
		TS:          it.Meta.Timestamp,
	}
}

func (d itemDocument) toItem() item.Item {
	return item.Item{
		ID:          d.ID,
		Category:    d.Category,
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		Quantity:    d.Quantity,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
		Meta: item.StoreMeta{
			ETag:        d.ETag,
			RID:         d.RID,
			Self:        d.Self,
			Attachments: d.Attachments,
			Timestamp:   d.TS,
		},
	}
}

// encodeItem marshals it as a stored document. Fields in it.Meta.Extra are written back
// unless the Item models them.
func encodeItem(it item.Item) ([]byte, error) {
	body, err := json.Marshal(toDocument(it))
	if err != nil || len(it.Meta.Extra) == 0 {
		return body, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, err
	}
	for k, v := range it.Meta.Extra {
		if _, modelled := fields[k]; !modelled && !knownFields[k] {
			fields[k] = v
		}
	}
	return json.Marshal(fields)
}

// decodeItem unmarshals a stored document. The header ETag wins over the body's _etag.
func decodeItem(body []byte, etag string) (item.Item, error) {
	var doc itemDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return item.Item{}, err
	}
	if etag != "" {
		doc.ETag = etag
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return item.Item{}, err
	}
	for k := range knownFields {
		delete(fields, k)
	}

	it := doc.toItem()
	if len(fields) > 0 {
		it.Meta.Extra = fields
	}
	return it, nil
}

// knownFields are the document keys mapped onto itemDocument.
var knownFields = map[string]bool{
	"id": true, "category": true, "name": true, "description": true, "price": true,
	"quantity": true, "created_at": true, "updated_at": true,
	"_rid": true, "_self": true, "_etag": true, "_attachments": true, "_ts": true,
}
