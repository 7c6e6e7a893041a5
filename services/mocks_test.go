package services

import (
	"context"

	"news-api/models"

	"github.com/stretchr/testify/mock"
)

type mockArticleRepo struct{ mock.Mock }

func (m *mockArticleRepo) GetList(ctx context.Context, params models.ArticleListParams) ([]models.ArticleSummary, int64, error) {
	args := m.Called(ctx, params)
	articles, _ := args.Get(0).([]models.ArticleSummary)
	total, _ := args.Get(1).(int64)
	return articles, total, args.Error(2)
}

func (m *mockArticleRepo) GetByID(ctx context.Context, id int) (*models.Article, error) {
	args := m.Called(ctx, id)
	article, _ := args.Get(0).(*models.Article)
	return article, args.Error(1)
}

func (m *mockArticleRepo) Create(ctx context.Context, article *models.Article) error {
	return m.Called(ctx, article).Error(0)
}

func (m *mockArticleRepo) UpdateVotes(ctx context.Context, id int, delta int) (*models.Article, error) {
	args := m.Called(ctx, id, delta)
	article, _ := args.Get(0).(*models.Article)
	return article, args.Error(1)
}

func (m *mockArticleRepo) Delete(ctx context.Context, id int) (*models.Article, error) {
	args := m.Called(ctx, id)
	article, _ := args.Get(0).(*models.Article)
	return article, args.Error(1)
}

type mockCommentRepo struct{ mock.Mock }

func (m *mockCommentRepo) GetByArticleID(ctx context.Context, articleID int, page models.Pagination) ([]models.Comment, int64, error) {
	args := m.Called(ctx, articleID, page)
	comments, _ := args.Get(0).([]models.Comment)
	total, _ := args.Get(1).(int64)
	return comments, total, args.Error(2)
}

func (m *mockCommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	return m.Called(ctx, comment).Error(0)
}

func (m *mockCommentRepo) UpdateVotes(ctx context.Context, id int, delta int) (*models.Comment, error) {
	args := m.Called(ctx, id, delta)
	comment, _ := args.Get(0).(*models.Comment)
	return comment, args.Error(1)
}

func (m *mockCommentRepo) Delete(ctx context.Context, id int) (*models.Comment, error) {
	args := m.Called(ctx, id)
	comment, _ := args.Get(0).(*models.Comment)
	return comment, args.Error(1)
}

type mockTopicRepo struct{ mock.Mock }

func (m *mockTopicRepo) Create(ctx context.Context, topic *models.Topic) error {
	return m.Called(ctx, topic).Error(0)
}

func (m *mockTopicRepo) GetBySlug(ctx context.Context, slug string) (*models.Topic, error) {
	args := m.Called(ctx, slug)
	topic, _ := args.Get(0).(*models.Topic)
	return topic, args.Error(1)
}

func (m *mockTopicRepo) GetAll(ctx context.Context) ([]models.Topic, error) {
	args := m.Called(ctx)
	topics, _ := args.Get(0).([]models.Topic)
	return topics, args.Error(1)
}

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) GetAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]models.User)
	return users, args.Error(1)
}
