package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dafibh/finai/finai-web/internal/domain"
)

// BillRepository implements domain.BillRepository over the finance API
type BillRepository struct {
	client *Client
}

// NewBillRepository creates a new BillRepository
func NewBillRepository(client *Client) *BillRepository {
	return &BillRepository{client: client}
}

// GetAll fetches the upcoming and all bill buckets
func (r *BillRepository) GetAll(ctx context.Context) (*domain.BillBuckets, error) {
	var buckets domain.BillBuckets
	if err := r.client.getJSON(ctx, "/api/bills", nil, &buckets); err != nil {
		return nil, err
	}
	return &buckets, nil
}

// Create posts a new bill
func (r *BillRepository) Create(ctx context.Context, input domain.NewBill) error {
	return r.client.mutate(ctx, http.MethodPost, "/api/bill", input, nil)
}

// MarkPaid marks a bill as paid
func (r *BillRepository) MarkPaid(ctx context.Context, id int64) error {
	return r.client.mutate(ctx, http.MethodPost, fmt.Sprintf("/api/bill/%d/paid", id), nil, nil)
}

// Delete removes a bill
func (r *BillRepository) Delete(ctx context.Context, id int64) error {
	return r.client.mutate(ctx, http.MethodDelete, fmt.Sprintf("/api/bill/%d", id), nil, nil)
}
