package domain

import "context"

type LearningItem struct {
	Type    string `json:"type"`
	Name    string `json:"name"`
	Content string `json:"content"`
	Image   string `json:"image,omitempty"`
}

// NewLearningItem is the create request body. Code is checked by the server.
type NewLearningItem struct {
	Type    string `json:"type"`
	Name    string `json:"name"`
	Content string `json:"content"`
	Image   string `json:"image"`
	Code    string `json:"code"`
}

type LearningRepository interface {
	GetAll(ctx context.Context) ([]LearningItem, error)
	Create(ctx context.Context, input NewLearningItem) error
}
