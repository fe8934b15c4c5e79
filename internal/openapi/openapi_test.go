package openapi

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDocumentValidates(t *testing.T) {
	doc := Document()
	require.NoError(t, doc.Validate(context.Background()))
}

func TestDocumentRoutes(t *testing.T) {
	doc := Document()

	list := doc.Paths.Find("/products")
	require.NotNil(t, list)
	assert.NotNil(t, list.Get)
	assert.NotNil(t, list.Post)

	lookup := doc.Paths.Find("/product/{id}")
	require.NotNil(t, lookup)
	require.NotNil(t, lookup.Get)
	assert.NotNil(t, lookup.Get.Responses.Value("404"))
	assert.NotNil(t, lookup.Get.Responses.Value("400"))
	assert.Equal(t, "id", lookup.Get.Parameters[0].Value.Name)
}

func TestProductSchemaFieldNames(t *testing.T) {
	product := Document().Components.Schemas["Product"].Value
	for _, f := range []string{"id", "description", "unitPrice", "category", "warehouses"} {
		assert.Contains(t, product.Properties, f)
	}
	wh := Document().Components.Schemas["WarehouseAvailability"].Value
	assert.Contains(t, wh.Properties, "warehouseId")
	assert.Contains(t, wh.Properties, "unitsAvailable")
}

func TestJSONAndYAMLEncodings(t *testing.T) {
	j, err := JSON()
	require.NoError(t, err)
	var fromJSON map[string]any
	require.NoError(t, json.Unmarshal(j, &fromJSON))
	assert.Equal(t, "3.0.3", fromJSON["openapi"])

	y, err := YAML()
	require.NoError(t, err)
	var fromYAML map[string]any
	require.NoError(t, yaml.Unmarshal(y, &fromYAML))
	assert.Equal(t, "3.0.3", fromYAML["openapi"])
	assert.Contains(t, fromYAML["paths"], "/product/{id}")
}
