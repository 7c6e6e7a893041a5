package services

import (
	"context"
	"errors"

	"news-api/models"
	"news-api/repositories"

	"gorm.io/gorm"
)

type TopicService interface {
	CreateTopic(ctx context.Context, req models.CreateTopicRequest) (*models.Topic, error)
	GetTopics(ctx context.Context) ([]models.Topic, error)
}

type topicService struct {
	topicRepo repositories.TopicRepository
}

func NewTopicService(topicRepo repositories.TopicRepository) TopicService {
	return &topicService{topicRepo: topicRepo}
}

func (s *topicService) CreateTopic(ctx context.Context, req models.CreateTopicRequest) (*models.Topic, error) {
	// Check if topic already exists
	_, err := s.topicRepo.GetBySlug(ctx, req.Slug)
	if err == nil {
		return nil, models.NewTopicConflict(nil)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	topic := &models.Topic{
		Slug:        req.Slug,
		Description: req.Description,
		ImgURL:      req.ImgURL,
	}

	if err := s.topicRepo.Create(ctx, topic); err != nil {
		if repositories.IsUniqueViolation(err) {
			return nil, models.NewTopicConflict(err)
		}
		return nil, err
	}

	return topic, nil
}

func (s *topicService) GetTopics(ctx context.Context) ([]models.Topic, error) {
	return s.topicRepo.GetAll(ctx)
}
