package services

import (
	"context"
	"fmt"

	"news-api/models"
	"news-api/repositories"
)

type ArticleService interface {
	GetArticles(ctx context.Context, params models.ArticleListParams) ([]models.ArticleSummary, int64, error)
	GetArticle(ctx context.Context, id int) (*models.Article, error)
	CreateArticle(ctx context.Context, req models.CreateArticleRequest) (*models.Article, error)
	UpdateArticleVotes(ctx context.Context, id int, delta int) (*models.Article, error)
	DeleteArticle(ctx context.Context, id int) error
}

type articleService struct {
	articleRepo repositories.ArticleRepository
	topicRepo   repositories.TopicRepository
	userRepo    repositories.UserRepository
}

func NewArticleService(articleRepo repositories.ArticleRepository, topicRepo repositories.TopicRepository, userRepo repositories.UserRepository) ArticleService {
	return &articleService{
		articleRepo: articleRepo,
		topicRepo:   topicRepo,
		userRepo:    userRepo,
	}
}

func (s *articleService) GetArticles(ctx context.Context, params models.ArticleListParams) ([]models.ArticleSummary, int64, error) {
	// Filtering by a topic that does not exist is a bad query, not an empty page
	if params.Topic != "" {
		if _, err := s.topicRepo.GetBySlug(ctx, params.Topic); err != nil {
			return nil, 0, missingReference(err)
		}
	}
	return s.articleRepo.GetList(ctx, params)
}

func (s *articleService) GetArticle(ctx context.Context, id int) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return article, nil
}

func (s *articleService) CreateArticle(ctx context.Context, req models.CreateArticleRequest) (*models.Article, error) {
	if _, err := s.userRepo.GetByUsername(ctx, req.Author); err != nil {
		return nil, missingReference(err)
	}
	if _, err := s.topicRepo.GetBySlug(ctx, req.Topic); err != nil {
		return nil, missingReference(err)
	}

	article := &models.Article{
		ArticleSummary: models.ArticleSummary{
			Author:        req.Author,
			Title:         req.Title,
			Topic:         req.Topic,
			ArticleImgURL: req.ArticleImgURL,
		},
		Body: req.Body,
	}

	if err := s.articleRepo.Create(ctx, article); err != nil {
		// author or topic removed after the checks above
		if repositories.IsForeignKeyViolation(err) {
			return nil, models.NewBadRequest(err)
		}
		return nil, err
	}

	return article, nil
}

func (s *articleService) UpdateArticleVotes(ctx context.Context, id int, delta int) (*models.Article, error) {
	article, err := s.articleRepo.UpdateVotes(ctx, id, delta)
	if err != nil {
		return nil, voteFailure(err)
	}
	return article, nil
}

func (s *articleService) DeleteArticle(ctx context.Context, id int) error {
	if _, err := s.articleRepo.Delete(ctx, id); err != nil {
		return notFound(fmt.Errorf("delete article %d: %w", id, err))
	}
	return nil
}
