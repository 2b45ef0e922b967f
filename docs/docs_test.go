package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerDocument(t *testing.T) {
	doc, err := swag.ReadDoc()
	require.NoError(t, err)

	var swagger struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &swagger))

	assert.Equal(t, "Notes API", swagger.Info.Title)
	assert.Contains(t, swagger.Paths["/notes"], "get")
	assert.Contains(t, swagger.Paths["/notes"], "post")
	assert.Contains(t, swagger.Paths["/notes/{id}"], "put")
	assert.Contains(t, swagger.Paths["/notes/{id}"], "delete")
	assert.Contains(t, swagger.Paths, "/health")
}
