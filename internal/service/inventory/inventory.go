// Package inventory manages packaging consumables. Consumption during
// packaging happens in the shipment service's transaction; this service
// covers the operator-facing stock management.
package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/karimsaad/wasel_backend/internal/repo"
	entinv "github.com/karimsaad/wasel_backend/internal/repo/inventoryitem"
)

var (
	ErrItemNotFound = errors.New("inventory item not found")
	ErrNameTaken    = errors.New("inventory item name already exists")
	ErrStockBelow   = errors.New("adjustment would make stock negative")
	ErrValidation   = errors.New("invalid inventory input")
)

type Service interface {
	Create(ctx context.Context, name string, quantity int) (*repo.InventoryItem, error)
	Adjust(ctx context.Context, id uuid.UUID, delta int) (*repo.InventoryItem, error)
	List(ctx context.Context) ([]*repo.InventoryItem, error)
}

type inventoryService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &inventoryService{db: db}
}

func (s *inventoryService) Create(ctx context.Context, name string, quantity int) (*repo.InventoryItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if quantity < 0 {
		return nil, fmt.Errorf("%w: quantity cannot be negative", ErrValidation)
	}

	item, err := s.db.InventoryItem.Create().
		SetName(name).
		SetQuantity(quantity).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrNameTaken
		}
		return nil, fmt.Errorf("create inventory item: %w", err)
	}
	return item, nil
}

func (s *inventoryService) Adjust(ctx context.Context, id uuid.UUID, delta int) (*repo.InventoryItem, error) {
	item, err := s.db.InventoryItem.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("get inventory item: %w", err)
	}

	if item.Quantity+delta < 0 {
		return nil, fmt.Errorf("%w: %s has %d", ErrStockBelow, item.Name, item.Quantity)
	}

	updated, err := s.db.InventoryItem.UpdateOne(item).
		AddQuantity(delta).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("adjust inventory: %w", err)
	}
	return updated, nil
}

func (s *inventoryService) List(ctx context.Context) ([]*repo.InventoryItem, error) {
	items, err := s.db.InventoryItem.Query().
		Order(entinv.ByName(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	return items, nil
}
