package mongox

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/ariefcatur/inventory-api/internal/catalog"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// setupRepo needs a reachable server in MONGO_URI. Each test gets its own
// collection, dropped on cleanup.
func setupRepo(t *testing.T, docs ...catalog.Product) *ProductRepo {
	t.Helper()
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("MONGO_URI not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c, err := Connect(ctx, uri)
	if err != nil {
		t.Skipf("mongo not available: %v", err)
	}
	repo := NewProductRepo(c, "InventoryTest", "Products_"+uuid.NewString()[:8])
	for _, d := range docs {
		_, err := repo.Coll.InsertOne(ctx, d)
		require.NoError(t, err)
	}
	t.Cleanup(func() {
		_ = repo.Coll.Drop(context.Background())
		_ = c.Disconnect(context.Background())
	})
	return repo
}

func TestProductRepo_FindByID(t *testing.T) {
	widget := catalog.Product{
		ID:          "11111111-1111-1111-1111-111111111111",
		Description: "Widget",
		UnitPrice:   9.99,
		Category:    catalog.StringPtr("tools"),
		Warehouses:  []catalog.WarehouseAvailability{{WarehouseID: "w1", UnitsAvailable: 2}},
	}
	r := setupRepo(t, widget)

	got, err := r.FindByID(context.Background(), widget.ID)
	require.NoError(t, err)
	assert.Equal(t, widget, got)

	_, err = r.FindByID(context.Background(), "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestProductRepo_ListAll(t *testing.T) {
	r := setupRepo(t,
		catalog.Product{ID: "a", Description: "A", UnitPrice: 1},
		catalog.Product{ID: "b", Description: "B", UnitPrice: 2},
	)
	got, err := r.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.NoError(t, r.Ping(context.Background()))
}

func TestProductRepo_ListAllEmpty(t *testing.T) {
	r := setupRepo(t)
	got, err := r.ListAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestProductRepo_UndecodableDocumentIsNotUnavailable(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()
	_, err := r.Coll.InsertOne(ctx, bson.D{
		{Key: "_id", Value: "bad"},
		{Key: "description", Value: "B"},
		{Key: "unitPrice", Value: "not a number"},
	})
	require.NoError(t, err)

	_, err = r.FindByID(ctx, "bad")
	require.Error(t, err)
	assert.NotErrorIs(t, err, catalog.ErrStoreUnavailable)
	assert.NotErrorIs(t, err, catalog.ErrNotFound)

	_, err = r.ListAll(ctx)
	require.Error(t, err)
	assert.NotErrorIs(t, err, catalog.ErrStoreUnavailable)
}

func TestProductRepo_EmptyOptionalFieldsKept(t *testing.T) {
	p := catalog.Product{
		ID:          "e",
		Description: "E",
		UnitPrice:   1,
		Category:    catalog.StringPtr(""),
		Warehouses:  []catalog.WarehouseAvailability{},
	}
	r := setupRepo(t, p)

	got, err := r.FindByID(context.Background(), "e")
	require.NoError(t, err)
	require.NotNil(t, got.Category)
	assert.NotNil(t, got.Warehouses)
	assert.Empty(t, got.Warehouses)
}
