package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dafibh/finai/finai-web/internal/domain"
)

// GoalRepository implements domain.GoalRepository over the finance API
type GoalRepository struct {
	client *Client
}

// NewGoalRepository creates a new GoalRepository
func NewGoalRepository(client *Client) *GoalRepository {
	return &GoalRepository{client: client}
}

// GetAll fetches all goals with their contribution slots
func (r *GoalRepository) GetAll(ctx context.Context) ([]domain.Goal, error) {
	var resp struct {
		Goals []domain.Goal `json:"goals"`
	}
	if err := r.client.getJSON(ctx, "/api/goals", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Goals, nil
}

// Create posts a new savings goal
func (r *GoalRepository) Create(ctx context.Context, input domain.NewGoal) error {
	return r.client.mutate(ctx, http.MethodPost, "/api/goal", input, nil)
}

// Contribute records the contribution of one month slot
func (r *GoalRepository) Contribute(ctx context.Context, goalID int64, monthIndex int) error {
	body := struct {
		MonthIndex int `json:"month_index"`
	}{MonthIndex: monthIndex}
	return r.client.mutate(ctx, http.MethodPost, fmt.Sprintf("/api/goal/%d/contribute", goalID), body, nil)
}
