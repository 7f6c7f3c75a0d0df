// Package view turns finance API payloads into the values a page renders.
// Everything here is pure: no I/O, no clock, no shared state.
package view

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dafibh/finai/finai-web/internal/domain"
	"github.com/shopspring/decimal"
)

// TimestampLayout is the display format of transaction timestamps
const TimestampLayout = "1/2/2006, 3:04:05 PM"

// timestamp layouts the finance API is known to send; zone-less values are UTC
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Amount formats a money value with two decimals
func Amount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// Timestamp formats an API timestamp in loc. Unparseable input is returned as is.
func Timestamp(raw string, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return t.In(loc).Format(TimestampLayout)
		}
	}
	return raw
}

// TotalsView holds the dashboard figures
type TotalsView struct {
	TotalIncome  string
	TotalExpense string
	NetBalance   string
}

// Totals builds the dashboard figures
func Totals(t domain.Totals) TotalsView {
	return TotalsView{
		TotalIncome:  Amount(t.TotalIncome),
		TotalExpense: Amount(t.TotalExpense),
		NetBalance:   Amount(t.NetBalance),
	}
}

// TransactionRow is one row of the history table
type TransactionRow struct {
	Type        string
	Amount      string
	Description string
	Timestamp   string
}

// TransactionTable is a rendered history page
type TransactionTable struct {
	Rows       []TransactionRow
	Page       int
	TotalPages int
	PageInfo   string
}

// Transactions builds the history table. Page numbers come from the response,
// never from the request.
func Transactions(p domain.TransactionPage, loc *time.Location) TransactionTable {
	rows := make([]TransactionRow, 0, len(p.Items))
	for _, it := range p.Items {
		rows = append(rows, TransactionRow{
			Type:        string(it.Type),
			Amount:      Amount(it.Amount),
			Description: it.Description,
			Timestamp:   Timestamp(it.Timestamp, loc),
		})
	}
	return TransactionTable{
		Rows:       rows,
		Page:       p.Page,
		TotalPages: p.TotalPages,
		PageInfo:   PageInfo(p.Page, p.TotalPages),
	}
}

// PageInfo renders the "Page X of Y" label
func PageInfo(page, totalPages int) string {
	return fmt.Sprintf("Page %d of %d", page, totalPages)
}

// BillCard is a rendered bill
type BillCard struct {
	ID            int64
	BillType      string
	Amount        string
	NextDue       string
	TimePeriod    string
	PriorityLabel string
	IsPaid        bool
}

// BillsView holds both bill buckets in server order
type BillsView struct {
	Upcoming []BillCard
	All      []BillCard
}

// Bills builds both bill buckets
func Bills(b domain.BillBuckets) BillsView {
	return BillsView{
		Upcoming: billCards(b.Upcoming),
		All:      billCards(b.All),
	}
}

func billCards(bills []domain.Bill) []BillCard {
	cards := make([]BillCard, 0, len(bills))
	for _, b := range bills {
		cards = append(cards, BillCard{
			ID:            b.ID,
			BillType:      b.BillType,
			Amount:        Amount(b.Amount),
			NextDue:       b.NextDue,
			TimePeriod:    b.TimePeriod,
			PriorityLabel: PriorityLabel(b.Priority),
			IsPaid:        b.IsPaid,
		})
	}
	return cards
}

// PriorityLabel names a bill priority
func PriorityLabel(priority int) string {
	switch priority {
	case domain.PriorityHigh:
		return "High"
	case domain.PriorityMedium:
		return "Medium"
	case domain.PriorityLow:
		return "Low"
	default:
		return strconv.Itoa(priority)
	}
}

// MonthSlot is one contribution toggle of a goal card
type MonthSlot struct {
	GoalID      int64
	MonthIndex  int
	Label       string
	Contributed bool
	// Disabled slots cannot be contributed again from the UI
	Disabled bool
}

// GoalCard is a rendered savings goal
type GoalCard struct {
	ID           int64
	Name         string
	Target       string
	Remaining    string
	TargetMonths int
	Slots        []MonthSlot
}

// RemainingAmount is target minus everything contributed so far.
// Display only; the server stays authoritative.
func RemainingAmount(g domain.Goal) decimal.Decimal {
	contributed := decimal.Zero
	for _, c := range g.Contributions {
		contributed = contributed.Add(c.ContributedAmount)
	}
	return g.TargetAmount.Sub(contributed)
}

// Goals builds the goal cards
func Goals(goals []domain.Goal) []GoalCard {
	cards := make([]GoalCard, 0, len(goals))
	for _, g := range goals {
		slots := make([]MonthSlot, 0, len(g.Contributions))
		for _, c := range g.Contributions {
			label := fmt.Sprintf("M%d", c.MonthIndex)
			if c.Contributed {
				label += " ✓"
			}
			slots = append(slots, MonthSlot{
				GoalID:      g.ID,
				MonthIndex:  c.MonthIndex,
				Label:       label,
				Contributed: c.Contributed,
				Disabled:    c.Contributed,
			})
		}
		cards = append(cards, GoalCard{
			ID:           g.ID,
			Name:         g.Name,
			Target:       Amount(g.TargetAmount),
			Remaining:    Amount(RemainingAmount(g)),
			TargetMonths: g.TargetMonths,
			Slots:        slots,
		})
	}
	return cards
}

// FindSlot looks a slot up in previously rendered cards
func FindSlot(cards []GoalCard, goalID int64, monthIndex int) (MonthSlot, bool) {
	for _, card := range cards {
		if card.ID != goalID {
			continue
		}
		for _, slot := range card.Slots {
			if slot.MonthIndex == monthIndex {
				return slot, true
			}
		}
	}
	return MonthSlot{}, false
}

// LearningCard is a rendered learning entry
type LearningCard struct {
	Name    string
	Type    string
	Content string
	Image   string
}

// Learning builds the learning cards
func Learning(items []domain.LearningItem) []LearningCard {
	cards := make([]LearningCard, 0, len(items))
	for _, it := range items {
		cards = append(cards, LearningCard{
			Name:    it.Name,
			Type:    it.Type,
			Content: it.Content,
			Image:   it.Image,
		})
	}
	return cards
}
