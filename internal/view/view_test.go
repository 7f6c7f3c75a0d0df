package view

import (
	"testing"
	"time"

	"github.com/dafibh/finai/finai-web/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotals_TwoDecimals(t *testing.T) {
	v := Totals(domain.Totals{
		TotalIncome:  decimal.RequireFromString("1500.5"),
		TotalExpense: decimal.NewFromInt(200),
		NetBalance:   decimal.RequireFromString("-0.5"),
	})

	assert.Equal(t, "1500.50", v.TotalIncome)
	assert.Equal(t, "200.00", v.TotalExpense)
	assert.Equal(t, "-0.50", v.NetBalance)
}

func TestTransactions_UsesServerPage(t *testing.T) {
	table := Transactions(domain.TransactionPage{
		Items: []domain.Transaction{
			{Type: domain.TransactionTypeExpense, Amount: decimal.RequireFromString("3.5"), Description: "Coffee", Timestamp: "2025-03-01T14:05:09.123456"},
			{Type: domain.TransactionTypeIncome, Amount: decimal.NewFromInt(100), Description: "Gift", Timestamp: "2025-02-28T08:00:00"},
		},
		Page:       4,
		TotalPages: 4,
	}, time.UTC)

	assert.Equal(t, 4, table.Page)
	assert.Equal(t, "Page 4 of 4", table.PageInfo)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, TransactionRow{Type: "expense", Amount: "3.50", Description: "Coffee", Timestamp: "3/1/2025, 2:05:09 PM"}, table.Rows[0])
	assert.Equal(t, "Gift", table.Rows[1].Description, "rows keep server order")
}

func TestTimestamp(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)

	assert.Equal(t, "3/1/2025, 11:05:09 PM", Timestamp("2025-03-01T14:05:09", tokyo))
	assert.Equal(t, "3/1/2025, 2:05:09 PM", Timestamp("2025-03-01T14:05:09Z", time.UTC))
	assert.Equal(t, "yesterday", Timestamp("yesterday", time.UTC))
}

func TestBills_KeepsBucketsAndOrder(t *testing.T) {
	v := Bills(domain.BillBuckets{
		Upcoming: []domain.Bill{{ID: 3, BillType: "Power", Amount: decimal.NewFromInt(80), NextDue: "2025-03-03", TimePeriod: "monthly", Priority: 1}},
		All: []domain.Bill{
			{ID: 3, BillType: "Power", Amount: decimal.NewFromInt(80), NextDue: "2025-03-03", TimePeriod: "monthly", Priority: 1},
			{ID: 1, BillType: "Gym", Amount: decimal.RequireFromString("29.9"), NextDue: "2025-04-01", TimePeriod: "monthly", Priority: 3, IsPaid: true},
		},
	})

	require.Len(t, v.Upcoming, 1)
	require.Len(t, v.All, 2)
	assert.Equal(t, "High", v.Upcoming[0].PriorityLabel)
	assert.Equal(t, int64(1), v.All[1].ID)
	assert.Equal(t, "29.90", v.All[1].Amount)
	assert.True(t, v.All[1].IsPaid)
}

func TestPriorityLabel(t *testing.T) {
	assert.Equal(t, "High", PriorityLabel(1))
	assert.Equal(t, "Medium", PriorityLabel(2))
	assert.Equal(t, "Low", PriorityLabel(3))
	assert.Equal(t, "7", PriorityLabel(7))
}

func TestGoals_RemainingAndSlots(t *testing.T) {
	goal := domain.Goal{
		ID:           8,
		Name:         "Laptop",
		TargetAmount: decimal.NewFromInt(1200),
		TargetMonths: 3,
		Contributions: []domain.Contribution{
			{MonthIndex: 1, Contributed: true, ContributedAmount: decimal.NewFromInt(400)},
			{MonthIndex: 2, Contributed: false, ContributedAmount: decimal.Zero},
			{MonthIndex: 3, Contributed: true, ContributedAmount: decimal.NewFromInt(400)},
		},
	}

	cards := Goals([]domain.Goal{goal})

	require.Len(t, cards, 1)
	card := cards[0]
	assert.Equal(t, "1200.00", card.Target)
	assert.Equal(t, "400.00", card.Remaining)
	require.Len(t, card.Slots, 3)
	assert.Equal(t, MonthSlot{GoalID: 8, MonthIndex: 1, Label: "M1 ✓", Contributed: true, Disabled: true}, card.Slots[0])
	assert.Equal(t, MonthSlot{GoalID: 8, MonthIndex: 2, Label: "M2"}, card.Slots[1])
	assert.True(t, card.Slots[2].Disabled)
}

func TestRemainingAmount_NoContributions(t *testing.T) {
	goal := domain.Goal{TargetAmount: decimal.RequireFromString("99.99")}
	assert.Equal(t, "99.99", RemainingAmount(goal).StringFixed(2))
}

func TestFindSlot(t *testing.T) {
	cards := []GoalCard{
		{ID: 1, Slots: []MonthSlot{{GoalID: 1, MonthIndex: 1}}},
		{ID: 2, Slots: []MonthSlot{{GoalID: 2, MonthIndex: 1, Disabled: true}, {GoalID: 2, MonthIndex: 2}}},
	}

	slot, ok := FindSlot(cards, 2, 1)
	require.True(t, ok)
	assert.True(t, slot.Disabled)

	_, ok = FindSlot(cards, 2, 3)
	assert.False(t, ok)

	_, ok = FindSlot(cards, 9, 1)
	assert.False(t, ok)
}

func TestLearning(t *testing.T) {
	cards := Learning([]domain.LearningItem{{Type: "video", Name: "Index funds", Content: "https://yt.example/a", Image: "https://img.example/a.png"}})

	require.Len(t, cards, 1)
	assert.Equal(t, LearningCard{Name: "Index funds", Type: "video", Content: "https://yt.example/a", Image: "https://img.example/a.png"}, cards[0])
}

func TestErrorNotice(t *testing.T) {
	n := ErrorNotice(&domain.APIError{Status: 400, Message: "Invalid amount"})
	assert.Equal(t, NoticeError, n.Level)
	assert.Equal(t, "Invalid amount", n.Message)

	n = ErrorNotice(domain.ErrTransport)
	assert.Equal(t, "Error", n.Message)
}
