package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"hirelink/pkg/config"
	"hirelink/pkg/logger"
)

// Client talks to the hosted search index that mirrors the services
// collection. The index is derived data: every write here is allowed to fail
// and be replayed later by the outbox worker.
type Client struct {
	es    *elasticsearch.Client
	index string
}

func NewClient(cfg *config.Config) (*Client, error) {
	if cfg.ElasticsearchURL == "" {
		return nil, fmt.Errorf("ELASTICSEARCH_URL is not configured")
	}

	esCfg := elasticsearch.Config{
		Addresses:     []string{cfg.ElasticsearchURL},
		RetryOnStatus: []int{502, 503, 504, 429},
		RetryBackoff: func(i int) time.Duration {
			return time.Duration(i) * 100 * time.Millisecond
		},
		MaxRetries: 5,
	}

	es, err := elasticsearch.NewClient(esCfg)
	if err != nil {
		return nil, fmt.Errorf("elasticsearch.NewClient: %w", err)
	}

	res, err := es.Info()
	if err != nil {
		return nil, fmt.Errorf("elasticsearch ping: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("elasticsearch ping: %s", res.Status())
	}

	logger.Info("Connected to Elasticsearch at %s (index %q)", cfg.ElasticsearchURL, cfg.ElasticsearchIndex)

	return &Client{
		es:    es,
		index: cfg.ElasticsearchIndex,
	}, nil
}

// EnsureIndex creates the services index with its mapping when missing.
func (c *Client) EnsureIndex(ctx context.Context) error {
	existsReq := esapi.IndicesExistsRequest{
		Index: []string{c.index},
	}
	res, err := existsReq.Do(ctx, c.es)
	if err != nil {
		return fmt.Errorf("checking index %q: %w", c.index, err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}
	if res.StatusCode != http.StatusNotFound {
		return fmt.Errorf("checking index %q: %s", c.index, res.Status())
	}

	mapping, err := json.Marshal(indexMapping())
	if err != nil {
		return fmt.Errorf("marshalling index mapping: %w", err)
	}

	createReq := esapi.IndicesCreateRequest{
		Index: c.index,
		Body:  strings.NewReader(string(mapping)),
	}
	createRes, err := createReq.Do(ctx, c.es)
	if err != nil {
		return fmt.Errorf("creating index %q: %w", c.index, err)
	}
	defer createRes.Body.Close()

	if createRes.IsError() {
		return fmt.Errorf("creating index %q: %s", c.index, createRes.Status())
	}

	logger.Info("Created search index %q", c.index)
	return nil
}

func indexMapping() map[string]interface{} {
	return map[string]interface{}{
		"mappings": map[string]interface{}{
			"properties": map[string]interface{}{
				"objectID":       map[string]interface{}{"type": "keyword"},
				"providerId":     map[string]interface{}{"type": "keyword"},
				"title":          map[string]interface{}{"type": "text"},
				"category":       map[string]interface{}{"type": "keyword"},
				"description":    map[string]interface{}{"type": "text"},
				"location":       map[string]interface{}{"type": "text", "fields": map[string]interface{}{"keyword": map[string]interface{}{"type": "keyword", "ignore_above": 256}}},
				"price":          map[string]interface{}{"type": "double"},
				"priceUnit":      map[string]interface{}{"type": "keyword"},
				"coverImageUrl":  map[string]interface{}{"type": "keyword", "index": false},
				"providerName":   map[string]interface{}{"type": "text"},
				"providerAvatar": map[string]interface{}{"type": "keyword", "index": false},
				"reviewCount":    map[string]interface{}{"type": "integer"},
				"averageRating":  map[string]interface{}{"type": "double"},
				"keywords":       map[string]interface{}{"type": "text"},
				"createdAt":      map[string]interface{}{"type": "date"},
			},
		},
	}
}
