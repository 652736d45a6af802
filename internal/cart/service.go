package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/koodakziba/koodakziba-backend/internal/catalog"
	pkgerrors "github.com/koodakziba/koodakziba-backend/pkg/errors"
	"github.com/koodakziba/koodakziba-backend/pkg/jcal"
)

type catalogRepository interface {
	List(ctx context.Context) []catalog.Product
	FindByID(ctx context.Context, id int) (*catalog.Product, error)
}

type sessionStore interface {
	Load(ctx context.Context, sessionID string) ([]LineItem, error)
	Save(ctx context.Context, sessionID string, items []LineItem) error
	Delete(ctx context.Context, sessionID string) error
}

// Service exposes session-scoped cart operations. Every mutation loads the
// session cart, applies the engine, persists the result and returns the
// priced view.
type Service interface {
	View(ctx context.Context, sessionID string) (*PricedCart, error)
	AddItem(ctx context.Context, sessionID string, productID, quantity int, size, color string) (*PricedCart, error)
	UpdateItem(ctx context.Context, sessionID string, productID, quantity int) (*PricedCart, error)
	RemoveItem(ctx context.Context, sessionID string, productID int) (*PricedCart, error)
	Clear(ctx context.Context, sessionID string) error
}

type service struct {
	sessions sessionStore
	catalog  catalogRepository
	today    func() jcal.Date
}

// NewService builds a cart service over the session store and catalog.
func NewService(sessions sessionStore, catalogRepo catalogRepository) (Service, error) {
	if sessions == nil {
		return nil, fmt.Errorf("session store required")
	}
	if catalogRepo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{sessions: sessions, catalog: catalogRepo, today: jcal.Today}, nil
}

func (s *service) View(ctx context.Context, sessionID string) (*PricedCart, error) {
	items, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return Price(items, s.catalog.List(ctx), s.today()), nil
}

func (s *service) AddItem(ctx context.Context, sessionID string, productID, quantity int, size, color string) (*PricedCart, error) {
	if _, err := s.catalog.FindByID(ctx, productID); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}

	items, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	items = Add(items, productID, quantity, size, color)
	if err := s.sessions.Save(ctx, sessionID, items); err != nil {
		return nil, err
	}
	return Price(items, s.catalog.List(ctx), s.today()), nil
}

func (s *service) UpdateItem(ctx context.Context, sessionID string, productID, quantity int) (*PricedCart, error) {
	items, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	items = UpdateQuantity(items, productID, quantity)
	if err := s.sessions.Save(ctx, sessionID, items); err != nil {
		return nil, err
	}
	return Price(items, s.catalog.List(ctx), s.today()), nil
}

func (s *service) RemoveItem(ctx context.Context, sessionID string, productID int) (*PricedCart, error) {
	items, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	items = Remove(items, productID)
	if err := s.sessions.Save(ctx, sessionID, items); err != nil {
		return nil, err
	}
	return Price(items, s.catalog.List(ctx), s.today()), nil
}

func (s *service) Clear(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}
