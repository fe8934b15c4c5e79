package redisx

import "fmt"

const (
	// Dokumen produk: {database}:{collection}:{id} -> JSON dokumen
	KeyProduct = "%s:%s:%s"

	// Batch size untuk SCAN + MGET saat list.
	ScanCount = 100
)

func productPrefix(database, collection string) string {
	return fmt.Sprintf(KeyProduct, database, collection, "")
}

// ProductKey returns the key holding one product document.
func ProductKey(database, collection, id string) string {
	return fmt.Sprintf(KeyProduct, database, collection, id)
}
