package mongox

import (
	"context"
	"errors"
	"fmt"

	"github.com/ariefcatur/inventory-api/internal/catalog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ProductRepo keys documents by _id, which is also the shard key.
type ProductRepo struct {
	Coll *mongo.Collection
}

func NewProductRepo(c *mongo.Client, database, collection string) *ProductRepo {
	return &ProductRepo{Coll: c.Database(database).Collection(collection)}
}

// FindByID reports driver faults as unavailable; a document that does not decode into a
// Product is a plain error.
func (r *ProductRepo) FindByID(ctx context.Context, id string) (catalog.Product, error) {
	res := r.Coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err := res.Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return catalog.Product{}, catalog.ErrNotFound
		}
		return catalog.Product{}, catalog.Unavailable("mongo find", err)
	}
	var p catalog.Product
	if err := res.Decode(&p); err != nil {
		return catalog.Product{}, fmt.Errorf("decode product %s: %w", id, err)
	}
	return p, nil
}

func (r *ProductRepo) ListAll(ctx context.Context) ([]catalog.Product, error) {
	cur, err := r.Coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, catalog.Unavailable("mongo list", err)
	}
	defer cur.Close(ctx)

	out := make([]catalog.Product, 0)
	for cur.Next(ctx) {
		var p catalog.Product
		if err := cur.Decode(&p); err != nil {
			return nil, fmt.Errorf("decode product document: %w", err)
		}
		out = append(out, p)
	}
	if err := cur.Err(); err != nil {
		return nil, catalog.Unavailable("mongo list", err)
	}
	return out, nil
}

func (r *ProductRepo) Ping(ctx context.Context) error {
	if err := r.Coll.Database().Client().Ping(ctx, readpref.Primary()); err != nil {
		return catalog.Unavailable("mongo ping", err)
	}
	return nil
}
