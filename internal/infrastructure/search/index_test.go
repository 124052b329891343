package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSearchBodyFreeText(t *testing.T) {
	body := BuildSearchBody("garden design", "")

	boolQuery := body["query"].(map[string]interface{})["bool"].(map[string]interface{})
	must := boolQuery["must"].(map[string]interface{})

	multiMatch, ok := must["multi_match"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "garden design", multiMatch["query"])
	assert.Contains(t, multiMatch["fields"], "title^3")

	_, filtered := boolQuery["filter"]
	assert.False(t, filtered)
}

func TestBuildSearchBodyEmptyQueryMatchesAll(t *testing.T) {
	body := BuildSearchBody("", "Cleaning")

	boolQuery := body["query"].(map[string]interface{})["bool"].(map[string]interface{})
	must := boolQuery["must"].(map[string]interface{})

	_, ok := must["match_all"]
	assert.True(t, ok)

	filters, ok := boolQuery["filter"].([]interface{})
	require.True(t, ok)
	term := filters[0].(map[string]interface{})["term"].(map[string]interface{})
	assert.Equal(t, "Cleaning", term["category"])
}

func TestBuildSearchBodyAllCategoryIsUnfiltered(t *testing.T) {
	body := BuildSearchBody("plumber", "All")

	boolQuery := body["query"].(map[string]interface{})["bool"].(map[string]interface{})
	_, filtered := boolQuery["filter"]
	assert.False(t, filtered)
}
