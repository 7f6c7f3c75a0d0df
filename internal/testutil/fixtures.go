package testutil

import (
	"github.com/brianvoe/gofakeit/v6"
	"github.com/dafibh/finai/finai-web/internal/domain"
	"github.com/shopspring/decimal"
)

// FakeTransaction returns a random expense or income entry
func FakeTransaction() domain.Transaction {
	txType := domain.TransactionTypeExpense
	if gofakeit.Bool() {
		txType = domain.TransactionTypeIncome
	}
	return domain.Transaction{
		ID:          int64(gofakeit.Number(1, 100000)),
		Type:        txType,
		Amount:      decimal.NewFromFloat(gofakeit.Price(1, 1000)).Round(2),
		Description: gofakeit.Sentence(3),
		Timestamp:   gofakeit.Date().UTC().Format("2006-01-02T15:04:05"),
	}
}

// FakeTransactionPage returns page `page` of `totalPages` with n random rows
func FakeTransactionPage(page, totalPages, n int) *domain.TransactionPage {
	items := make([]domain.Transaction, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, FakeTransaction())
	}
	return &domain.TransactionPage{
		Items:      items,
		Page:       page,
		TotalPages: totalPages,
		Total:      totalPages * n,
	}
}

// FakeTotals returns random totals with a consistent net balance
func FakeTotals() *domain.Totals {
	income := decimal.NewFromFloat(gofakeit.Price(0, 5000)).Round(2)
	expense := decimal.NewFromFloat(gofakeit.Price(0, 5000)).Round(2)
	return &domain.Totals{
		TotalIncome:  income,
		TotalExpense: expense,
		NetBalance:   income.Sub(expense),
	}
}

// FakeBill returns a random unpaid bill with the given id
func FakeBill(id int64) domain.Bill {
	due := gofakeit.FutureDate().Format("2006-01-02")
	return domain.Bill{
		ID:         id,
		BillType:   gofakeit.Word(),
		Amount:     decimal.NewFromFloat(gofakeit.Price(5, 500)).Round(2),
		Date:       due,
		NextDue:    due,
		TimePeriod: gofakeit.RandomString(domain.BillPeriods),
		Priority:   gofakeit.Number(domain.PriorityHigh, domain.PriorityLow),
	}
}

// FakeGoal returns a goal with `months` slots; the listed month indexes are
// already contributed with an equal share of the target
func FakeGoal(id int64, months int, contributed ...int) domain.Goal {
	target := decimal.NewFromInt(int64(gofakeit.Number(1, 50)) * 100)
	share := target.Div(decimal.NewFromInt(int64(months))).Round(2)

	done := make(map[int]bool, len(contributed))
	for _, m := range contributed {
		done[m] = true
	}

	slots := make([]domain.Contribution, 0, months)
	for i := 1; i <= months; i++ {
		c := domain.Contribution{MonthIndex: i, ContributedAmount: decimal.Zero}
		if done[i] {
			c.Contributed = true
			c.ContributedAmount = share
		}
		slots = append(slots, c)
	}

	return domain.Goal{
		ID:            id,
		Name:          gofakeit.Noun(),
		TargetAmount:  target,
		TargetMonths:  months,
		Contributions: slots,
	}
}

// FakeLearningItem returns a random learning entry
func FakeLearningItem() domain.LearningItem {
	return domain.LearningItem{
		Type:    gofakeit.RandomString([]string{"article", "video", "tip"}),
		Name:    gofakeit.BookTitle(),
		Content: gofakeit.URL(),
		Image:   gofakeit.ImageURL(320, 180),
	}
}
