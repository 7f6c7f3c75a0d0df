package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction is a single ledger entry as returned by the finance API.
// Timestamp is kept as sent (ISO 8601, usually without a zone) and is
// formatted by the view layer.
type Transaction struct {
	ID          int64           `json:"id,omitempty"`
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Timestamp   string          `json:"timestamp"`
}

// TransactionPage is one page of the transaction history
type TransactionPage struct {
	Items      []Transaction `json:"items"`
	Page       int           `json:"page"`
	TotalPages int           `json:"total_pages"`
	Total      int           `json:"total"`
}

// Totals is the server-computed aggregate shown on the dashboard
type Totals struct {
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	NetBalance   decimal.Decimal `json:"net_balance"`
}

// NewTransaction is the create request body. Values are sent as entered.
type NewTransaction struct {
	Type        string `json:"type"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
}

// ChartData is the daily series behind the transactions chart
type ChartData struct {
	Labels     []string  `json:"labels"`
	Expense    []float64 `json:"expense"`
	NetBalance []float64 `json:"net_balance"`
}

type SummaryRepository interface {
	GetSummary(ctx context.Context) (*Totals, error)
}

type TransactionRepository interface {
	// Create returns the fresh totals embedded in the create response (may be nil)
	Create(ctx context.Context, input NewTransaction) (*Totals, error)
	GetPage(ctx context.Context, page int) (*TransactionPage, error)
	GetChartData(ctx context.Context) (*ChartData, error)
}
