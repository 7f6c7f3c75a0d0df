package httpapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dafibh/finai/finai-web/internal/domain"
)

// SummaryRepository implements domain.SummaryRepository over the finance API
type SummaryRepository struct {
	client *Client
}

// NewSummaryRepository creates a new SummaryRepository
func NewSummaryRepository(client *Client) *SummaryRepository {
	return &SummaryRepository{client: client}
}

// GetSummary fetches the aggregate totals
func (r *SummaryRepository) GetSummary(ctx context.Context) (*domain.Totals, error) {
	var totals domain.Totals
	if err := r.client.getJSON(ctx, "/api/summary", nil, &totals); err != nil {
		return nil, err
	}
	return &totals, nil
}

// TransactionRepository implements domain.TransactionRepository over the finance API
type TransactionRepository struct {
	client *Client
}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository(client *Client) *TransactionRepository {
	return &TransactionRepository{client: client}
}

// Create posts a new transaction and returns the totals embedded in the answer,
// nil when the answer carries none
func (r *TransactionRepository) Create(ctx context.Context, input domain.NewTransaction) (*domain.Totals, error) {
	var resp struct {
		Totals *domain.Totals `json:"totals"`
	}
	if err := r.client.mutate(ctx, http.MethodPost, "/api/transaction", input, &resp); err != nil {
		return nil, err
	}
	return resp.Totals, nil
}

// GetPage fetches one page of the transaction history
func (r *TransactionRepository) GetPage(ctx context.Context, page int) (*domain.TransactionPage, error) {
	query := url.Values{"page": []string{strconv.Itoa(page)}}
	var result domain.TransactionPage
	if err := r.client.getJSON(ctx, "/api/transactions", query, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetChartData fetches the daily expense / net balance series
func (r *TransactionRepository) GetChartData(ctx context.Context) (*domain.ChartData, error) {
	var data domain.ChartData
	if err := r.client.getJSON(ctx, "/api/chart-data", nil, &data); err != nil {
		return nil, err
	}
	return &data, nil
}
