package inventory

import (
	"context"
	"fmt"

	"github.com/ariefcatur/inventory-api/internal/audit"
	"github.com/ariefcatur/inventory-api/internal/catalog"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = newValidator()

// productID accepts the hyphenated 8-4-4-4-12 form in either case.
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("product_id", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if len(s) != 36 {
			return false
		}
		_, err := uuid.Parse(s)
		return err == nil
	})
	return v
}

// Service backs the two read routes. Repo is the only source of truth; nothing is cached.
type Service struct {
	Repo  catalog.Repository
	Audit audit.Recorder // nil = tidak ada audit
}

// Lookup fetches one product by id, which must be a hyphenated UUID. The id is passed
// to the store exactly as given, without case folding.
func (s *Service) Lookup(ctx context.Context, id string) (catalog.Product, error) {
	if err := validate.Var(id, "required,product_id"); err != nil {
		return catalog.Product{}, fmt.Errorf("%w: id %q is not a uuid", catalog.ErrInvalidRequest, id)
	}
	p, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return catalog.Product{}, fmt.Errorf("lookup product %s: %w", id, err)
	}
	s.record(ctx, audit.ProductRetrieved(id))
	return p, nil
}

// List returns every product in the collection.
func (s *Service) List(ctx context.Context) ([]catalog.Product, error) {
	ps, err := s.Repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	if ps == nil {
		ps = []catalog.Product{}
	}
	s.record(ctx, audit.ProductsListed(len(ps)))
	return ps, nil
}

func (s *Service) record(ctx context.Context, ev audit.Event) {
	if s.Audit != nil {
		s.Audit.Record(ctx, ev)
	}
}
