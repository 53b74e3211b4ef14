package memory

import (
	"context"
	"slices"

	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/dataset"
	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/domain/inventory"
)

type InventoryRepository struct {
	ds *dataset.Dataset
}

func NewInventoryRepository(ds *dataset.Dataset) *InventoryRepository {
	return &InventoryRepository{ds: ds}
}

func (r *InventoryRepository) List(ctx context.Context) ([]inventory.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(r.ds.Inventory), nil
}

func (r *InventoryRepository) GetByID(ctx context.Context, id string) (*inventory.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for i := range r.ds.Inventory {
		if r.ds.Inventory[i].ID == id {
			it := r.ds.Inventory[i]
			return &it, nil
		}
	}
	return nil, inventory.ErrItemNotFound
}
