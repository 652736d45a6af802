package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/koodakziba/koodakziba-backend/pkg/store"
)

// ErrNotFound reports a lookup for a product id the collection does not hold.
var ErrNotFound = errors.New("product not found")

// Repository handles product persistence over the JSON collection. Every
// operation reads the file fresh and mutations rewrite it whole.
type Repository struct {
	coll *store.Collection[Product]
}

// NewRepository binds a product collection to catalog operations.
func NewRepository(coll *store.Collection[Product]) (*Repository, error) {
	if coll == nil {
		return nil, fmt.Errorf("product collection required")
	}
	return &Repository{coll: coll}, nil
}

// List returns all products in stored order.
func (r *Repository) List(ctx context.Context) []Product {
	return r.coll.Load(ctx)
}

// FindByID loads a single product.
func (r *Repository) FindByID(ctx context.Context, id int) (*Product, error) {
	for _, p := range r.coll.Load(ctx) {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

// Create appends the product with the next id (max existing + 1, starting
// at 1). Deleting the highest id frees it for reuse.
func (r *Repository) Create(ctx context.Context, product Product) (*Product, error) {
	products := r.coll.Load(ctx)

	maxID := 0
	for _, p := range products {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	product.ID = maxID + 1

	products = append(products, product)
	if err := r.coll.Save(ctx, products); err != nil {
		return nil, err
	}
	return &product, nil
}

// Update replaces the stored record with the same id.
func (r *Repository) Update(ctx context.Context, product Product) (*Product, error) {
	products := r.coll.Load(ctx)
	for i, p := range products {
		if p.ID == product.ID {
			products[i] = product
			if err := r.coll.Save(ctx, products); err != nil {
				return nil, err
			}
			return &product, nil
		}
	}
	return nil, ErrNotFound
}

// Delete removes the product and reports whether it existed.
func (r *Repository) Delete(ctx context.Context, id int) (bool, error) {
	products := r.coll.Load(ctx)
	kept := products[:0]
	found := false
	for _, p := range products {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return false, nil
	}
	if err := r.coll.Save(ctx, kept); err != nil {
		return false, err
	}
	return true, nil
}

// Count returns the number of stored products.
func (r *Repository) Count(ctx context.Context) int {
	return len(r.coll.Load(ctx))
}
