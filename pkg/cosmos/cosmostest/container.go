// Package cosmostest provides an in-memory cosmos.Container for tests.
package cosmostest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"item-store-api/pkg/cosmos"
)

type key struct {
	partition string
	id        string
}

type entry struct {
	doc map[string]any
	seq int
}

// Container keeps documents per partition and mimics the store's system properties,
// ETag preconditions and status codes. Queries ignore the SQL text and filter on the
// parameters: "@category" matches the top-level "category" field.
type Container struct {
	mu   sync.Mutex
	docs map[key]entry
	seq  int

	// Fail, when set, is returned by every call instead of touching the store.
	Fail error
	// OmitWriteContent mimics EnableContentResponseOnWrite=false.
	OmitWriteContent bool
}

var _ cosmos.Container = (*Container)(nil)

// NewContainer returns an empty Container.
func NewContainer() *Container {
	return &Container{docs: make(map[key]entry)}
}

// Len returns the number of stored documents across all partitions.
func (c *Container) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.docs)
}

func statusErr(status int, code, msg string) error {
	return &cosmos.Error{StatusCode: status, Code: code, Message: msg}
}

func (c *Container) stamp(doc map[string]any, partitionKey, id string) string {
	c.seq++
	etag := fmt.Sprintf("\"%s\"", uuid.NewString())
	doc["_rid"] = fmt.Sprintf("rid-%d", c.seq)
	doc["_self"] = fmt.Sprintf("dbs/test/colls/test/docs/%s", id)
	doc["_etag"] = etag
	doc["_attachments"] = "attachments/"
	doc["_ts"] = float64(c.seq)
	c.docs[key{partitionKey, id}] = entry{doc: doc, seq: c.seq}
	return etag
}

func (c *Container) result(doc map[string]any, etag string, write bool) (cosmos.Document, error) {
	if write && c.OmitWriteContent {
		return cosmos.Document{ETag: etag}, nil
	}
	body, err := json.Marshal(doc)
	if err != nil {
		return cosmos.Document{}, err
	}
	return cosmos.Document{Body: body, ETag: etag}, nil
}

func decode(body []byte) (map[string]any, string, error) {
	var doc map[string]any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, "", statusErr(http.StatusBadRequest, "BadRequest", "malformed document")
	}
	id, _ := doc["id"].(string)
	if id == "" {
		return nil, "", statusErr(http.StatusBadRequest, "BadRequest", "document id is required")
	}
	return doc, id, nil
}

func (c *Container) CreateItem(_ context.Context, partitionKey string, body []byte) (cosmos.Document, error) {
	if c.Fail != nil {
		return cosmos.Document{}, c.Fail
	}
	doc, id, err := decode(body)
	if err != nil {
		return cosmos.Document{}, err
	}
	if partitionKey == "" {
		return cosmos.Document{}, statusErr(http.StatusBadRequest, "BadRequest", "partition key is required")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.docs[key{partitionKey, id}]; ok {
		return cosmos.Document{}, statusErr(http.StatusConflict, "Conflict",
			"Entity with the specified id already exists in the system.")
	}
	etag := c.stamp(doc, partitionKey, id)
	return c.result(doc, etag, true)
}

func (c *Container) ReadItem(_ context.Context, partitionKey, id string) (cosmos.Document, error) {
	if c.Fail != nil {
		return cosmos.Document{}, c.Fail
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.docs[key{partitionKey, id}]
	if !ok {
		return cosmos.Document{}, statusErr(http.StatusNotFound, "NotFound",
			"Entity with the specified id does not exist in the system.")
	}
	return c.result(e.doc, e.doc["_etag"].(string), false)
}

func (c *Container) ReplaceItem(_ context.Context, partitionKey, id string, body []byte, etag string) (cosmos.Document, error) {
	if c.Fail != nil {
		return cosmos.Document{}, c.Fail
	}
	doc, bodyID, err := decode(body)
	if err != nil {
		return cosmos.Document{}, err
	}
	if bodyID != id {
		return cosmos.Document{}, statusErr(http.StatusBadRequest, "BadRequest", "id in body does not match")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.docs[key{partitionKey, id}]
	if !ok {
		return cosmos.Document{}, statusErr(http.StatusNotFound, "NotFound",
			"Entity with the specified id does not exist in the system.")
	}
	if etag != "" && e.doc["_etag"] != etag {
		return cosmos.Document{}, statusErr(http.StatusPreconditionFailed, "PreconditionFailed",
			"Operation cannot be performed because one of the specified precondition is not met.")
	}
	newETag := c.stamp(doc, partitionKey, id)
	return c.result(doc, newETag, true)
}

func (c *Container) DeleteItem(_ context.Context, partitionKey, id string) error {
	if c.Fail != nil {
		return c.Fail
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	k := key{partitionKey, id}
	if _, ok := c.docs[k]; !ok {
		return statusErr(http.StatusNotFound, "NotFound",
			"Entity with the specified id does not exist in the system.")
	}
	delete(c.docs, k)
	return nil
}

func (c *Container) QueryItems(_ context.Context, partitionKey, _ string, params ...cosmos.QueryParam) ([][]byte, error) {
	if c.Fail != nil {
		return nil, c.Fail
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	var matched []entry
	for k, e := range c.docs {
		if k.partition != partitionKey {
			continue
		}
		if matches(e.doc, params) {
			matched = append(matched, e)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].seq < matched[j].seq })

	out := make([][]byte, 0, len(matched))
	for _, e := range matched {
		body, err := json.Marshal(e.doc)
		if err != nil {
			return nil, err
		}
		out = append(out, body)
	}
	return out, nil
}

func matches(doc map[string]any, params []cosmos.QueryParam) bool {
	for _, p := range params {
		field := strings.TrimPrefix(p.Name, "@")
		if doc[field] != p.Value {
			return false
		}
	}
	return true
}

func (c *Container) Ping(context.Context) error {
	return c.Fail
}
