package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// Bill periods understood by the finance API
const (
	PeriodDaily     = "daily"
	PeriodWeekly    = "weekly"
	PeriodMonthly   = "monthly"
	PeriodQuarterly = "quarterly"
	PeriodYearly    = "yearly"
)

// BillPeriods lists the periods offered by the bill form, in display order
var BillPeriods = []string{PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodQuarterly, PeriodYearly}

// Bill priorities: lower is more urgent
const (
	PriorityHigh   = 1
	PriorityMedium = 2
	PriorityLow    = 3
)

type Bill struct {
	ID         int64           `json:"id"`
	BillType   string          `json:"bill_type"`
	Amount     decimal.Decimal `json:"amount"`
	Date       string          `json:"date"`
	NextDue    string          `json:"next_due"`
	TimePeriod string          `json:"time_period"`
	Priority   int             `json:"priority"`
	IsPaid     bool            `json:"is_paid"`
}

// BillBuckets holds the two server-categorized bill lists
type BillBuckets struct {
	Upcoming []Bill `json:"upcoming"`
	All      []Bill `json:"all"`
}

// NewBill is the create request body
type NewBill struct {
	BillType   string `json:"bill_type"`
	Amount     string `json:"amount"`
	Date       string `json:"date"`
	TimePeriod string `json:"time_period"`
	Priority   string `json:"priority"`
}

type BillRepository interface {
	GetAll(ctx context.Context) (*BillBuckets, error)
	Create(ctx context.Context, input NewBill) error
	MarkPaid(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}
