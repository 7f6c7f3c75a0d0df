package service

import (
	"context"
	"testing"
	"time"

	"github.com/dafibh/finai/finai-web/internal/domain"
	"github.com/dafibh/finai/finai-web/internal/testutil"
	"github.com/dafibh/finai/finai-web/internal/view"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBills(repo *testutil.MockBillRepository) *BillsService {
	fixed := func() time.Time { return time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC) }
	return NewBillsService(repo, fixed, zerolog.Nop())
}

func TestBillsService_PageDefaultsDateToToday(t *testing.T) {
	repo := testutil.NewMockBillRepository()
	repo.Buckets = &domain.BillBuckets{
		Upcoming: []domain.Bill{testutil.FakeBill(2)},
		All:      []domain.Bill{testutil.FakeBill(1), testutil.FakeBill(2)},
	}
	svc := newBills(repo)

	page := svc.Page(context.Background())

	assert.Equal(t, "2025-03-14", page.Form.Date)
	assert.Len(t, page.Bills.Upcoming, 1)
	require.Len(t, page.Bills.All, 2)
	assert.Equal(t, int64(1), page.Bills.All[0].ID, "server order kept")
	assert.Equal(t, domain.BillPeriods, page.Periods)
}

func TestBillsService_PageLoadFailureIsEmpty(t *testing.T) {
	repo := testutil.NewMockBillRepository()
	repo.GetAllErr = domain.ErrNotOK

	page := newBills(repo).Page(context.Background())

	assert.Empty(t, page.Bills.All)
	assert.Empty(t, page.Bills.Upcoming)
	assert.Nil(t, page.Notice)
}

func TestBillsService_CreateResetsFormAndReloads(t *testing.T) {
	repo := testutil.NewMockBillRepository()
	svc := newBills(repo)
	form := view.BillForm{BillType: "Rent", Amount: "900", Date: "2025-03-01", TimePeriod: "monthly", Priority: "1"}

	page := svc.Create(context.Background(), form, view.BillsView{})

	require.Len(t, repo.Created, 1)
	assert.Equal(t, form.Request(), repo.Created[0])
	assert.Equal(t, view.BillForm{}, page.Form, "every field is empty after a successful create")
	assert.Equal(t, 1, repo.GetAllCalls)
	assert.Equal(t, view.InfoNotice("Bill added"), page.Notice)
}

func TestBillsService_CreateFailureKeepsForm(t *testing.T) {
	repo := testutil.NewMockBillRepository()
	repo.CreateErr = &domain.APIError{Status: 400, Message: "Invalid amount"}
	svc := newBills(repo)
	last := view.BillsView{All: []view.BillCard{{ID: 7}}}
	form := view.BillForm{BillType: "Rent", Amount: "x"}

	page := svc.Create(context.Background(), form, last)

	assert.Equal(t, form, page.Form)
	assert.Equal(t, last, page.Bills)
	assert.Equal(t, "Invalid amount", page.Notice.Message)
	assert.Zero(t, repo.GetAllCalls, "no reload after a failure")
}

func TestBillsService_Delete(t *testing.T) {
	tests := []struct {
		name        string
		confirmer   Confirmer
		deleteErr   error
		wantErr     error
		wantDeleted []int64
		wantReloads int
		wantNotice  string
	}{
		{
			name:        "confirmed delete reloads exactly once",
			confirmer:   Always,
			wantDeleted: []int64{42},
			wantReloads: 1,
			wantNotice:  "Deleted",
		},
		{
			name:        "declined delete sends nothing",
			confirmer:   Never,
			wantErr:     domain.ErrNotConfirmed,
			wantReloads: 0,
		},
		{
			name:        "rejected delete shows the error and does not reload",
			confirmer:   Always,
			deleteErr:   &domain.APIError{Status: 404, Message: "Bill not found"},
			wantReloads: 0,
			wantNotice:  "Bill not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := testutil.NewMockBillRepository()
			repo.DeleteErr = tt.deleteErr
			svc := newBills(repo)

			page, err := svc.Delete(context.Background(), 42, tt.confirmer, view.BillsView{})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantDeleted, repo.Deleted)
			assert.Equal(t, tt.wantReloads, repo.GetAllCalls)
			if tt.wantNotice != "" {
				require.NotNil(t, page.Notice)
				assert.Equal(t, tt.wantNotice, page.Notice.Message)
			}
		})
	}
}

func TestBillsService_MarkPaid(t *testing.T) {
	repo := testutil.NewMockBillRepository()
	svc := newBills(repo)
	var asked string
	confirmer := ConfirmFunc(func(prompt string) bool {
		asked = prompt
		return true
	})

	page, err := svc.MarkPaid(context.Background(), 9, confirmer, view.BillsView{})

	require.NoError(t, err)
	assert.Equal(t, "Mark as paid?", asked)
	assert.Equal(t, []int64{9}, repo.Paid)
	assert.Equal(t, 1, repo.GetAllCalls)
	assert.Equal(t, "Marked paid", page.Notice.Message)
}

func TestBillsService_DeletePrompt(t *testing.T) {
	repo := testutil.NewMockBillRepository()
	var asked string

	_, err := newBills(repo).Delete(context.Background(), 1, ConfirmFunc(func(p string) bool {
		asked = p
		return false
	}), view.BillsView{})

	assert.ErrorIs(t, err, domain.ErrNotConfirmed)
	assert.Equal(t, "Are you sure to delete this bill?", asked)
	assert.Empty(t, repo.Deleted)
}
