package memory

import (
	"context"
	"slices"

	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/dataset"
	"github.com/dmehra2102/prod-golang-projects/labdesk/internal/domain/billing"
)

type BillRepository struct {
	ds *dataset.Dataset
}

func NewBillRepository(ds *dataset.Dataset) *BillRepository {
	return &BillRepository{ds: ds}
}

func (r *BillRepository) List(ctx context.Context) ([]billing.Bill, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]billing.Bill, len(r.ds.Bills))
	for i, b := range r.ds.Bills {
		b.Items = slices.Clone(b.Items)
		out[i] = b
	}
	return out, nil
}

func (r *BillRepository) GetByID(ctx context.Context, id string) (*billing.Bill, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for i := range r.ds.Bills {
		if r.ds.Bills[i].ID == id {
			b := r.ds.Bills[i]
			b.Items = slices.Clone(b.Items)
			return &b, nil
		}
	}
	return nil, billing.ErrBillNotFound
}
