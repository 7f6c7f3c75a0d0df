package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

type Goal struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	TargetMonths  int             `json:"target_months"`
	CommittedDate string          `json:"committed_date,omitempty"`
	Contributions []Contribution  `json:"contributions"`
}

// Contribution is one month's slot of a savings goal
type Contribution struct {
	MonthIndex        int             `json:"month_index"`
	Contributed       bool            `json:"contributed"`
	ContributedAmount decimal.Decimal `json:"contributed_amount"`
}

// NewGoal is the create request body
type NewGoal struct {
	Name   string `json:"name"`
	Months string `json:"months"`
	Amount string `json:"amount"`
}

type GoalRepository interface {
	GetAll(ctx context.Context) ([]Goal, error)
	Create(ctx context.Context, input NewGoal) error
	Contribute(ctx context.Context, goalID int64, monthIndex int) error
}
