package httpapi

import (
	"context"
	"net/http"

	"github.com/dafibh/finai/finai-web/internal/domain"
)

// LearningRepository implements domain.LearningRepository over the finance API
type LearningRepository struct {
	client *Client
}

// NewLearningRepository creates a new LearningRepository
func NewLearningRepository(client *Client) *LearningRepository {
	return &LearningRepository{client: client}
}

// GetAll fetches the learning content entries
func (r *LearningRepository) GetAll(ctx context.Context) ([]domain.LearningItem, error) {
	var resp struct {
		Items []domain.LearningItem `json:"items"`
	}
	if err := r.client.getJSON(ctx, "/api/learning", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// Create posts a new learning entry
func (r *LearningRepository) Create(ctx context.Context, input domain.NewLearningItem) error {
	return r.client.mutate(ctx, http.MethodPost, "/api/learning", input, nil)
}
