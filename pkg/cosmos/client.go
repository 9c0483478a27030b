package cosmos

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/data/azcosmos"
)

// Client is a Container backed by the Azure Cosmos DB SDK.
type Client struct {
	container *azcosmos.ContainerClient
}

var _ Container = (*Client)(nil)

// New builds the SDK client for cfg, optionally bootstraps the database and container,
// and returns a Container bound to cfg.Container.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.Endpoint == "" || cfg.Key == "" || cfg.Database == "" || cfg.Container == "" {
		return nil, fmt.Errorf("%w: endpoint, key, database and container are required", ErrInvalidConfig)
	}

	cred, err := azcosmos.NewKeyCredential(cfg.Key)
	if err != nil {
		return nil, fmt.Errorf("cosmos: invalid key: %w", err)
	}

	opts := &azcosmos.ClientOptions{}
	if cfg.InsecureSkipVerify {
		opts.Transport = &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, //nolint:gosec // emulator only
			},
		}
	}

	client, err := azcosmos.NewClientWithKey(cfg.Endpoint, cred, opts)
	if err != nil {
		return nil, fmt.Errorf("cosmos: failed to create client: %w", err)
	}

	if cfg.CreateIfNotExists {
		if err := ensureContainer(ctx, client, cfg); err != nil {
			return nil, err
		}
	}

	container, err := client.NewContainer(cfg.Database, cfg.Container)
	if err != nil {
		return nil, fmt.Errorf("cosmos: failed to open container %s/%s: %w", cfg.Database, cfg.Container, err)
	}

	return &Client{container: container}, nil
}

// ensureContainer creates the database and the container if they do not exist yet.
func ensureContainer(ctx context.Context, client *azcosmos.Client, cfg Config) error {
	_, err := client.CreateDatabase(ctx, azcosmos.DatabaseProperties{ID: cfg.Database}, nil)
	if err = classify(err); err != nil && !errors.Is(err, ErrConflict) {
		return fmt.Errorf("cosmos: failed to create database %s: %w", cfg.Database, err)
	}

	db, err := client.NewDatabase(cfg.Database)
	if err != nil {
		return fmt.Errorf("cosmos: failed to open database %s: %w", cfg.Database, err)
	}

	props := azcosmos.ContainerProperties{
		ID: cfg.Container,
		PartitionKeyDefinition: azcosmos.PartitionKeyDefinition{
			Paths: []string{cfg.PartitionKeyPath},
		},
	}
	throughput := azcosmos.NewManualThroughputProperties(cfg.Throughput)

	_, err = db.CreateContainer(ctx, props, &azcosmos.CreateContainerOptions{ThroughputProperties: &throughput})
	if err = classify(err); err != nil && !errors.Is(err, ErrConflict) {
		return fmt.Errorf("cosmos: failed to create container %s: %w", cfg.Container, err)
	}
	return nil
}

func (c *Client) CreateItem(ctx context.Context, partitionKey string, body []byte) (Document, error) {
	resp, err := c.container.CreateItem(ctx, azcosmos.NewPartitionKeyString(partitionKey), body, &azcosmos.ItemOptions{
		EnableContentResponseOnWrite: true,
	})
	if err != nil {
		return Document{}, classify(err)
	}
	return Document{Body: resp.Value, ETag: string(resp.ETag)}, nil
}

func (c *Client) ReadItem(ctx context.Context, partitionKey, id string) (Document, error) {
	resp, err := c.container.ReadItem(ctx, azcosmos.NewPartitionKeyString(partitionKey), id, nil)
	if err != nil {
		return Document{}, classify(err)
	}
	return Document{Body: resp.Value, ETag: string(resp.ETag)}, nil
}

func (c *Client) ReplaceItem(ctx context.Context, partitionKey, id string, body []byte, etag string) (Document, error) {
	opts := &azcosmos.ItemOptions{EnableContentResponseOnWrite: true}
	if etag != "" {
		match := azcore.ETag(etag)
		opts.IfMatchEtag = &match
	}

	resp, err := c.container.ReplaceItem(ctx, azcosmos.NewPartitionKeyString(partitionKey), id, body, opts)
	if err != nil {
		return Document{}, classify(err)
	}
	return Document{Body: resp.Value, ETag: string(resp.ETag)}, nil
}

func (c *Client) DeleteItem(ctx context.Context, partitionKey, id string) error {
	_, err := c.container.DeleteItem(ctx, azcosmos.NewPartitionKeyString(partitionKey), id, nil)
	return classify(err)
}

// QueryItems drains every page of a query scoped to one partition.
func (c *Client) QueryItems(ctx context.Context, partitionKey, query string, params ...QueryParam) ([][]byte, error) {
	qp := make([]azcosmos.QueryParameter, 0, len(params))
	for _, p := range params {
		qp = append(qp, azcosmos.QueryParameter{Name: p.Name, Value: p.Value})
	}

	pager := c.container.NewQueryItemsPager(query, azcosmos.NewPartitionKeyString(partitionKey), &azcosmos.QueryOptions{
		QueryParameters: qp,
	})

	items := make([][]byte, 0)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, classify(err)
		}
		items = append(items, page.Items...)
	}
	return items, nil
}

// Ping reads the container properties; used by the readiness check.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.container.Read(ctx, nil)
	return classify(err)
}
