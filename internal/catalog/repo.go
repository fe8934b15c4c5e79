package catalog

import "context"

// Repository is the read side of the Products collection.
type Repository interface {
	// FindByID returns ErrNotFound when no document has the given id.
	FindByID(ctx context.Context, id string) (Product, error)
	// ListAll runs the unfiltered scan. The slice is never nil on success.
	ListAll(ctx context.Context) ([]Product, error)
}

type Pinger interface {
	Ping(ctx context.Context) error
}
