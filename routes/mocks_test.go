package routes

import (
	"context"

	"news-api/models"

	"github.com/stretchr/testify/mock"
)

type mockArticleService struct{ mock.Mock }

func (m *mockArticleService) GetArticles(ctx context.Context, params models.ArticleListParams) ([]models.ArticleSummary, int64, error) {
	args := m.Called(ctx, params)
	articles, _ := args.Get(0).([]models.ArticleSummary)
	total, _ := args.Get(1).(int64)
	return articles, total, args.Error(2)
}

func (m *mockArticleService) GetArticle(ctx context.Context, id int) (*models.Article, error) {
	args := m.Called(ctx, id)
	article, _ := args.Get(0).(*models.Article)
	return article, args.Error(1)
}

func (m *mockArticleService) CreateArticle(ctx context.Context, req models.CreateArticleRequest) (*models.Article, error) {
	args := m.Called(ctx, req)
	article, _ := args.Get(0).(*models.Article)
	return article, args.Error(1)
}

func (m *mockArticleService) UpdateArticleVotes(ctx context.Context, id int, delta int) (*models.Article, error) {
	args := m.Called(ctx, id, delta)
	article, _ := args.Get(0).(*models.Article)
	return article, args.Error(1)
}

func (m *mockArticleService) DeleteArticle(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

type mockCommentService struct{ mock.Mock }

func (m *mockCommentService) GetComments(ctx context.Context, articleID int, page models.Pagination) ([]models.Comment, int64, error) {
	args := m.Called(ctx, articleID, page)
	comments, _ := args.Get(0).([]models.Comment)
	total, _ := args.Get(1).(int64)
	return comments, total, args.Error(2)
}

func (m *mockCommentService) CreateComment(ctx context.Context, articleID int, req models.CreateCommentRequest) (*models.Comment, error) {
	args := m.Called(ctx, articleID, req)
	comment, _ := args.Get(0).(*models.Comment)
	return comment, args.Error(1)
}

func (m *mockCommentService) UpdateCommentVotes(ctx context.Context, id int, delta int) (*models.Comment, error) {
	args := m.Called(ctx, id, delta)
	comment, _ := args.Get(0).(*models.Comment)
	return comment, args.Error(1)
}

func (m *mockCommentService) DeleteComment(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

type mockTopicService struct{ mock.Mock }

func (m *mockTopicService) CreateTopic(ctx context.Context, req models.CreateTopicRequest) (*models.Topic, error) {
	args := m.Called(ctx, req)
	topic, _ := args.Get(0).(*models.Topic)
	return topic, args.Error(1)
}

func (m *mockTopicService) GetTopics(ctx context.Context) ([]models.Topic, error) {
	args := m.Called(ctx)
	topics, _ := args.Get(0).([]models.Topic)
	return topics, args.Error(1)
}

type mockUserService struct{ mock.Mock }

func (m *mockUserService) GetUsers(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]models.User)
	return users, args.Error(1)
}

func (m *mockUserService) GetUser(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

type stubPinger struct{ err error }

func (p stubPinger) PingContext(context.Context) error { return p.err }
