package catalog

import (
	"encoding/json"
	"fmt"
)

// WarehouseAvailability: stok per lokasi. Tidak ada aturan unik/non-negatif.
type WarehouseAvailability struct {
	WarehouseID    string `json:"warehouseId" bson:"warehouseId" yaml:"warehouseId"`
	UnitsAvailable int    `json:"unitsAvailable" bson:"unitsAvailable" yaml:"unitsAvailable"`
}

// Product is one document of the Products collection. ID is also the partition key.
//
// Category and Warehouses distinguish absent from empty: a nil Category or a nil
// Warehouses slice is left out of the encoded document, while "" and [] are kept.
type Product struct {
	ID          string                  `json:"id" bson:"_id" yaml:"id"`
	Description string                  `json:"description" bson:"description" yaml:"description"`
	UnitPrice   float64                 `json:"unitPrice" bson:"unitPrice" yaml:"unitPrice"`
	Category    *string                 `json:"category,omitempty" bson:"category,omitempty" yaml:"category,omitempty"`
	Warehouses  []WarehouseAvailability `json:"warehouses" bson:"warehouses" yaml:"warehouses,omitempty"`
}

// productJSON is the wire shape; a pointer to the slice lets omitempty drop only nil.
type productJSON struct {
	ID          string                   `json:"id"`
	Description string                   `json:"description"`
	UnitPrice   float64                  `json:"unitPrice"`
	Category    *string                  `json:"category,omitempty"`
	Warehouses  *[]WarehouseAvailability `json:"warehouses,omitempty"`
}

func (p Product) MarshalJSON() ([]byte, error) {
	out := productJSON{
		ID:          p.ID,
		Description: p.Description,
		UnitPrice:   p.UnitPrice,
		Category:    p.Category,
	}
	if p.Warehouses != nil {
		out.Warehouses = &p.Warehouses
	}
	return json.Marshal(out)
}

// StringPtr is a helper for building documents with a Category.
func StringPtr(s string) *string { return &s }

// Clone returns a copy that shares no slices or pointers with p.
func (p Product) Clone() Product {
	if p.Category != nil {
		c := *p.Category
		p.Category = &c
	}
	if p.Warehouses != nil {
		ws := make([]WarehouseAvailability, len(p.Warehouses))
		copy(ws, p.Warehouses)
		p.Warehouses = ws
	}
	return p
}

// DecodeDocument parses a JSON document as stored by the postgres and redis backends.
func DecodeDocument(b []byte) (Product, error) {
	var p Product
	if err := json.Unmarshal(b, &p); err != nil {
		return Product{}, fmt.Errorf("decode product document: %w", err)
	}
	return p, nil
}
