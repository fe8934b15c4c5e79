// Package openapi describes the HTTP surface as an OpenAPI 3 document.
package openapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"
)

const (
	Title   = "Inventory API"
	Version = "1.0.0"
)

// Document builds the description of the product routes.
func Document() *openapi3.T {
	warehouse := openapi3.NewObjectSchema().
		WithProperty("warehouseId", openapi3.NewStringSchema()).
		WithProperty("unitsAvailable", openapi3.NewIntegerSchema())
	warehouse.Required = []string{"warehouseId", "unitsAvailable"}
	warehouseRef := openapi3.NewSchemaRef("#/components/schemas/WarehouseAvailability", warehouse)

	warehouses := openapi3.NewArraySchema()
	warehouses.Items = warehouseRef

	product := openapi3.NewObjectSchema().
		WithProperty("id", openapi3.NewUUIDSchema()).
		WithProperty("description", openapi3.NewStringSchema()).
		WithProperty("unitPrice", openapi3.NewFloat64Schema()).
		WithProperty("category", openapi3.NewStringSchema()).
		WithProperty("warehouses", warehouses)
	product.Required = []string{"id", "description", "unitPrice"}
	productRef := openapi3.NewSchemaRef("#/components/schemas/Product", product)

	errBody := openapi3.NewObjectSchema().
		WithProperty("error", openapi3.NewStringSchema()).
		WithProperty("details", openapi3.NewStringSchema())
	errBody.Required = []string{"error"}
	errRef := openapi3.NewSchemaRef("#/components/schemas/Error", errBody)

	list := func(id string) *openapi3.Operation {
		op := &openapi3.Operation{
			OperationID: id,
			Summary:     "List every product in the collection",
			Responses:   &openapi3.Responses{},
		}
		all := openapi3.NewArraySchema()
		all.Items = productRef
		setJSON(op, http.StatusOK, "All products, [] when the collection is empty", all.NewRef())
		setJSON(op, http.StatusServiceUnavailable, "Document store unreachable", errRef)
		return op
	}

	idParam := openapi3.NewPathParameter("id").
		WithDescription("Product id, also the partition key").
		WithSchema(openapi3.NewUUIDSchema())
	lookup := func(id string) *openapi3.Operation {
		op := &openapi3.Operation{
			OperationID: id,
			Summary:     "Get one product by id",
			Parameters:  openapi3.Parameters{{Value: idParam}},
			Responses:   &openapi3.Responses{},
		}
		setJSON(op, http.StatusOK, "The stored product", productRef)
		setJSON(op, http.StatusBadRequest, "Id is not a UUID", errRef)
		setJSON(op, http.StatusNotFound, "No product with this id", errRef)
		setJSON(op, http.StatusServiceUnavailable, "Document store unreachable", errRef)
		return op
	}

	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       Title,
			Version:     Version,
			Description: "Read-only product lookups against the Inventory/Products document collection.",
		},
		Paths: openapi3.NewPaths(),
		Components: &openapi3.Components{
			Schemas: openapi3.Schemas{
				"Product":               {Value: product},
				"WarehouseAvailability": {Value: warehouse},
				"Error":                 {Value: errBody},
			},
		},
	}
	doc.Paths.Set("/products", &openapi3.PathItem{
		Get:  list("listProducts"),
		Post: list("listProductsPost"),
	})
	doc.Paths.Set("/product/{id}", &openapi3.PathItem{
		Get:  lookup("getProductById"),
		Post: lookup("getProductByIdPost"),
	})
	return doc
}

func setJSON(op *openapi3.Operation, status int, desc string, schema *openapi3.SchemaRef) {
	op.Responses.Set(fmt.Sprint(status), &openapi3.ResponseRef{
		Value: openapi3.NewResponse().WithDescription(desc).WithJSONSchemaRef(schema),
	})
}

func JSON() ([]byte, error) {
	b, err := json.MarshalIndent(Document(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal openapi json: %w", err)
	}
	return b, nil
}

func YAML() ([]byte, error) {
	b, err := yaml.Marshal(Document())
	if err != nil {
		return nil, fmt.Errorf("marshal openapi yaml: %w", err)
	}
	return b, nil
}
