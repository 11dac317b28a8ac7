package store

import (
	"gameface/web/internal/models"

	"gorm.io/gorm"
)

// FeedbackStore persists visitor feedback. Messages are append-only.
type FeedbackStore interface {
	Create(feedback *models.Feedback) error
	ListNewestFirst() ([]models.Feedback, error)
}

type gormFeedbackStore struct {
	db *gorm.DB
}

// NewFeedbackStore returns a FeedbackStore backed by the given GORM connection.
func NewFeedbackStore(db *gorm.DB) FeedbackStore {
	return &gormFeedbackStore{db: db}
}

func (s *gormFeedbackStore) Create(feedback *models.Feedback) error {
	return s.db.Create(feedback).Error
}

func (s *gormFeedbackStore) ListNewestFirst() ([]models.Feedback, error) {
	var feedbacks []models.Feedback
	if err := s.db.Order("id DESC").Find(&feedbacks).Error; err != nil {
		return nil, err
	}
	return feedbacks, nil
}
