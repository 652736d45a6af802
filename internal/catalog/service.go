package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/koodakziba/koodakziba-backend/internal/pricing"
	pkgerrors "github.com/koodakziba/koodakziba-backend/pkg/errors"
	"github.com/koodakziba/koodakziba-backend/pkg/jcal"
)

type productRepository interface {
	List(ctx context.Context) []Product
	FindByID(ctx context.Context, id int) (*Product, error)
	Create(ctx context.Context, product Product) (*Product, error)
	Update(ctx context.Context, product Product) (*Product, error)
	Delete(ctx context.Context, id int) (bool, error)
}

// Service exposes catalog operations.
type Service interface {
	List(ctx context.Context, category string) ([]*ProductDTO, error)
	Get(ctx context.Context, id int) (*ProductDTO, error)
	Create(ctx context.Context, input ProductInput) (*ProductDTO, error)
	Update(ctx context.Context, id int, input ProductInput) (*ProductDTO, error)
	Delete(ctx context.Context, id int) error
	Stats(ctx context.Context) (total, discounted int, err error)
}

type service struct {
	repo  productRepository
	today func() jcal.Date
}

// NewService builds a catalog service over the product repository.
func NewService(repo productRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("product repository required")
	}
	return &service{repo: repo, today: jcal.Today}, nil
}

func (s *service) List(ctx context.Context, category string) ([]*ProductDTO, error) {
	today := s.today()
	category = strings.TrimSpace(category)

	products := s.repo.List(ctx)
	out := make([]*ProductDTO, 0, len(products))
	for _, p := range products {
		if category != "" && p.Category != category {
			continue
		}
		out = append(out, FromProduct(p, today))
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, id int) (*ProductDTO, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	return FromProduct(*product, s.today()), nil
}

func (s *service) Create(ctx context.Context, input ProductInput) (*ProductDTO, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	record := recordFromInput(input)
	record.CreatedAt = s.today().String()

	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create product")
	}
	return FromProduct(*created, s.today()), nil
}

func (s *service) Update(ctx context.Context, id int, input ProductInput) (*ProductDTO, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}

	record := recordFromInput(input)
	record.ID = existing.ID
	record.CreatedAt = existing.CreatedAt

	updated, err := s.repo.Update(ctx, record)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update product")
	}
	return FromProduct(*updated, s.today()), nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete product")
	}
	if !found {
		return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return nil
}

func (s *service) Stats(ctx context.Context) (int, int, error) {
	today := s.today()
	products := s.repo.List(ctx)

	discounted := 0
	for _, p := range products {
		if pricing.Active(p.Discount(), today) {
			discounted++
		}
	}
	return len(products), discounted, nil
}

func validateInput(input ProductInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "product name is required")
	}
	if input.Price < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "price cannot be negative")
	}
	if input.Stock < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "stock cannot be negative")
	}
	if input.DiscountPercent < 0 || input.DiscountPercent > 100 {
		return pkgerrors.New(pkgerrors.CodeValidation, "discount percent must be between 0 and 100")
	}
	return nil
}

// recordFromInput maps the writable fields onto a stored record. A product
// without a discount stores zeroed discount fields.
func recordFromInput(input ProductInput) Product {
	record := Product{
		Name:        strings.TrimSpace(input.Name),
		Price:       input.Price,
		Category:    input.Category,
		AgeGroup:    input.AgeGroup,
		Sizes:       input.Sizes,
		Colors:      input.Colors,
		Description: input.Description,
		Image:       input.Image,
		Stock:       input.Stock,
	}
	if input.HasDiscount {
		record.HasDiscount = true
		record.DiscountPercent = input.DiscountPercent
		record.DiscountStart = input.DiscountStart
		record.DiscountEnd = input.DiscountEnd
	}
	return record
}
