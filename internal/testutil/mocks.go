package testutil

import (
	"context"

	"github.com/dafibh/finai/finai-web/internal/domain"
)

// MockSummaryRepository is a mock implementation of domain.SummaryRepository
type MockSummaryRepository struct {
	Totals *domain.Totals
	Err    error
	Calls  int
}

// NewMockSummaryRepository creates a MockSummaryRepository returning totals
func NewMockSummaryRepository(totals *domain.Totals) *MockSummaryRepository {
	return &MockSummaryRepository{Totals: totals}
}

// GetSummary returns the configured totals or error
func (m *MockSummaryRepository) GetSummary(ctx context.Context) (*domain.Totals, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Totals, nil
}

// MockTransactionRepository is a mock implementation of domain.TransactionRepository
type MockTransactionRepository struct {
	// Pages are served by page number. Unknown pages get the highest
	// registered page, the way the finance API clamps.
	Pages   map[int]*domain.TransactionPage
	Chart   *domain.ChartData
	Totals  *domain.Totals
	Created []domain.NewTransaction

	CreateFn    func(input domain.NewTransaction) (*domain.Totals, error)
	GetPageFn   func(page int) (*domain.TransactionPage, error)
	ChartErr    error
	GetPageErr  error
	CreateCalls int
	ChartCalls  int
	// RequestedPages records every page number asked for, in order
	RequestedPages []int
}

// NewMockTransactionRepository creates a new MockTransactionRepository
func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{
		Pages: make(map[int]*domain.TransactionPage),
	}
}

// AddPage registers a page the mock serves
func (m *MockTransactionRepository) AddPage(p *domain.TransactionPage) {
	m.Pages[p.Page] = p
}

// Create records the input and returns the configured totals
func (m *MockTransactionRepository) Create(ctx context.Context, input domain.NewTransaction) (*domain.Totals, error) {
	m.CreateCalls++
	if m.CreateFn != nil {
		return m.CreateFn(input)
	}
	m.Created = append(m.Created, input)
	return m.Totals, nil
}

// GetPage answers like a server that clamps out-of-range pages
func (m *MockTransactionRepository) GetPage(ctx context.Context, page int) (*domain.TransactionPage, error) {
	m.RequestedPages = append(m.RequestedPages, page)
	if m.GetPageFn != nil {
		return m.GetPageFn(page)
	}
	if m.GetPageErr != nil {
		return nil, m.GetPageErr
	}
	if p, ok := m.Pages[page]; ok {
		return p, nil
	}
	var last *domain.TransactionPage
	for _, p := range m.Pages {
		if last == nil || p.Page > last.Page {
			last = p
		}
	}
	if last == nil {
		return &domain.TransactionPage{Page: 1, TotalPages: 1}, nil
	}
	return last, nil
}

// GetChartData returns the configured chart series
func (m *MockTransactionRepository) GetChartData(ctx context.Context) (*domain.ChartData, error) {
	m.ChartCalls++
	if m.ChartErr != nil {
		return nil, m.ChartErr
	}
	if m.Chart == nil {
		return &domain.ChartData{}, nil
	}
	return m.Chart, nil
}

// MockBillRepository is a mock implementation of domain.BillRepository
type MockBillRepository struct {
	Buckets *domain.BillBuckets
	Created []domain.NewBill
	Paid    []int64
	Deleted []int64

	GetAllErr   error
	CreateErr   error
	MarkPaidErr error
	DeleteErr   error
	GetAllCalls int
}

// NewMockBillRepository creates a new MockBillRepository
func NewMockBillRepository() *MockBillRepository {
	return &MockBillRepository{Buckets: &domain.BillBuckets{}}
}

// GetAll returns the configured buckets
func (m *MockBillRepository) GetAll(ctx context.Context) (*domain.BillBuckets, error) {
	m.GetAllCalls++
	if m.GetAllErr != nil {
		return nil, m.GetAllErr
	}
	return m.Buckets, nil
}

// Create records a bill
func (m *MockBillRepository) Create(ctx context.Context, input domain.NewBill) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.Created = append(m.Created, input)
	return nil
}

// MarkPaid records a paid bill id
func (m *MockBillRepository) MarkPaid(ctx context.Context, id int64) error {
	if m.MarkPaidErr != nil {
		return m.MarkPaidErr
	}
	m.Paid = append(m.Paid, id)
	return nil
}

// Delete records a deleted bill id
func (m *MockBillRepository) Delete(ctx context.Context, id int64) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	m.Deleted = append(m.Deleted, id)
	return nil
}

// ContributeCall is one recorded goal contribution
type ContributeCall struct {
	GoalID     int64
	MonthIndex int
}

// MockGoalRepository is a mock implementation of domain.GoalRepository
type MockGoalRepository struct {
	Goals       []domain.Goal
	Created     []domain.NewGoal
	Contributed []ContributeCall

	GetAllErr     error
	CreateErr     error
	ContributeErr error
	GetAllCalls   int
}

// NewMockGoalRepository creates a MockGoalRepository serving goals
func NewMockGoalRepository(goals ...domain.Goal) *MockGoalRepository {
	return &MockGoalRepository{Goals: goals}
}

// GetAll returns the configured goals
func (m *MockGoalRepository) GetAll(ctx context.Context) ([]domain.Goal, error) {
	m.GetAllCalls++
	if m.GetAllErr != nil {
		return nil, m.GetAllErr
	}
	return m.Goals, nil
}

// Create records a goal
func (m *MockGoalRepository) Create(ctx context.Context, input domain.NewGoal) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.Created = append(m.Created, input)
	return nil
}

// Contribute records a contribution
func (m *MockGoalRepository) Contribute(ctx context.Context, goalID int64, monthIndex int) error {
	if m.ContributeErr != nil {
		return m.ContributeErr
	}
	m.Contributed = append(m.Contributed, ContributeCall{GoalID: goalID, MonthIndex: monthIndex})
	return nil
}

// MockLearningRepository is a mock implementation of domain.LearningRepository
type MockLearningRepository struct {
	Items   []domain.LearningItem
	Created []domain.NewLearningItem

	GetAllErr   error
	CreateErr   error
	GetAllCalls int
}

// NewMockLearningRepository creates a MockLearningRepository serving items
func NewMockLearningRepository(items ...domain.LearningItem) *MockLearningRepository {
	return &MockLearningRepository{Items: items}
}

// GetAll returns the configured items
func (m *MockLearningRepository) GetAll(ctx context.Context) ([]domain.LearningItem, error) {
	m.GetAllCalls++
	if m.GetAllErr != nil {
		return nil, m.GetAllErr
	}
	return m.Items, nil
}

// Create records a learning item
func (m *MockLearningRepository) Create(ctx context.Context, input domain.NewLearningItem) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.Created = append(m.Created, input)
	return nil
}
