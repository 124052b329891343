package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/elastic/go-elasticsearch/v8/esapi"
)

// Upsert creates or replaces the record keyed by objectID.
func (c *Client) Upsert(ctx context.Context, objectID string, record map[string]interface{}) error {
	body, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshalling record %s: %w", objectID, err)
	}

	req := esapi.IndexRequest{
		Index:      c.index,
		DocumentID: objectID,
		Body:       strings.NewReader(string(body)),
		Refresh:    "false",
	}
	res, err := req.Do(ctx, c.es)
	if err != nil {
		return fmt.Errorf("indexing record %s: %w", objectID, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("indexing record %s: %s", objectID, res.Status())
	}

	return nil
}

// PartialUpdate merges the given fields into an existing record, leaving the
// rest of the document untouched. Used by the provider fan-out.
func (c *Client) PartialUpdate(ctx context.Context, objectID string, fields map[string]interface{}) error {
	body, err := json.Marshal(map[string]interface{}{"doc": fields})
	if err != nil {
		return fmt.Errorf("marshalling partial update %s: %w", objectID, err)
	}

	req := esapi.UpdateRequest{
		Index:      c.index,
		DocumentID: objectID,
		Body:       strings.NewReader(string(body)),
	}
	res, err := req.Do(ctx, c.es)
	if err != nil {
		return fmt.Errorf("updating record %s: %w", objectID, err)
	}
	defer res.Body.Close()

	// A missing document is not an error for a fan-out update: the record
	// will be rebuilt in full on the listing's next edit.
	if res.IsError() && res.StatusCode != http.StatusNotFound {
		return fmt.Errorf("updating record %s: %s", objectID, res.Status())
	}

	return nil
}

// Delete removes the record. Deleting an already-absent record succeeds.
func (c *Client) Delete(ctx context.Context, objectID string) error {
	req := esapi.DeleteRequest{
		Index:      c.index,
		DocumentID: objectID,
	}
	res, err := req.Do(ctx, c.es)
	if err != nil {
		return fmt.Errorf("deleting record %s: %w", objectID, err)
	}
	defer res.Body.Close()

	if res.IsError() && res.StatusCode != http.StatusNotFound {
		return fmt.Errorf("deleting record %s: %s", objectID, res.Status())
	}

	return nil
}

// Search runs a free-text query with an optional category filter and returns
// the raw hit sources.
func (c *Client) Search(ctx context.Context, query, category string) ([]map[string]interface{}, error) {
	body, err := json.Marshal(BuildSearchBody(query, category))
	if err != nil {
		return nil, fmt.Errorf("marshalling search body: %w", err)
	}

	req := esapi.SearchRequest{
		Index: []string{c.index},
		Body:  strings.NewReader(string(body)),
	}
	res, err := req.Do(ctx, c.es)
	if err != nil {
		return nil, fmt.Errorf("searching: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("searching: %s", res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source map[string]interface{} `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}

	hits := make([]map[string]interface{}, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		hits = append(hits, hit.Source)
	}

	return hits, nil
}

// BuildSearchBody assembles the query DSL: free text across the listing's
// text fields, an exact category filter when one is given, and match-all
// when the query is empty so category browsing still works.
func BuildSearchBody(query, category string) map[string]interface{} {
	var must interface{}
	if query == "" {
		must = map[string]interface{}{"match_all": map[string]interface{}{}}
	} else {
		must = map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  query,
				"fields": []string{"title^3", "keywords^2", "description", "providerName", "location"},
			},
		}
	}

	boolQuery := map[string]interface{}{"must": must}
	if category != "" && category != "All" {
		boolQuery["filter"] = []interface{}{
			map[string]interface{}{
				"term": map[string]interface{}{"category": category},
			},
		}
	}

	return map[string]interface{}{
		"query": map[string]interface{}{"bool": boolQuery},
		"size":  50,
	}
}
