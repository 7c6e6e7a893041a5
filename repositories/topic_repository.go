package repositories

import (
	"context"

	"news-api/models"

	"gorm.io/gorm"
)

type TopicRepository interface {
	Create(ctx context.Context, topic *models.Topic) error
	GetBySlug(ctx context.Context, slug string) (*models.Topic, error)
	GetAll(ctx context.Context) ([]models.Topic, error)
}

type topicRepository struct {
	db *gorm.DB
}

func NewTopicRepository(db *gorm.DB) TopicRepository {
	return &topicRepository{db: db}
}

func (r *topicRepository) Create(ctx context.Context, topic *models.Topic) error {
	if topic.ImgURL == "" {
		topic.ImgURL = models.DefaultTopicImgURL
	}
	return r.db.WithContext(ctx).Create(topic).Error
}

func (r *topicRepository) GetBySlug(ctx context.Context, slug string) (*models.Topic, error) {
	var topic models.Topic
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&topic).Error
	if err != nil {
		return nil, err
	}
	return &topic, nil
}

func (r *topicRepository) GetAll(ctx context.Context) ([]models.Topic, error) {
	topics := []models.Topic{}
	err := r.db.WithContext(ctx).Order("slug").Find(&topics).Error
	return topics, err
}
