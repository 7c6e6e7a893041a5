package services

import (
	"context"

	"news-api/models"
	"news-api/repositories"
)

type CommentService interface {
	GetComments(ctx context.Context, articleID int, page models.Pagination) ([]models.Comment, int64, error)
	CreateComment(ctx context.Context, articleID int, req models.CreateCommentRequest) (*models.Comment, error)
	UpdateCommentVotes(ctx context.Context, id int, delta int) (*models.Comment, error)
	DeleteComment(ctx context.Context, id int) error
}

type commentService struct {
	commentRepo repositories.CommentRepository
	articleRepo repositories.ArticleRepository
	userRepo    repositories.UserRepository
}

func NewCommentService(commentRepo repositories.CommentRepository, articleRepo repositories.ArticleRepository, userRepo repositories.UserRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		articleRepo: articleRepo,
		userRepo:    userRepo,
	}
}

func (s *commentService) GetComments(ctx context.Context, articleID int, page models.Pagination) ([]models.Comment, int64, error) {
	if _, err := s.articleRepo.GetByID(ctx, articleID); err != nil {
		return nil, 0, notFound(err)
	}
	return s.commentRepo.GetByArticleID(ctx, articleID, page)
}

// CreateComment checks the article in the URL first (404) and then the
// author in the body (400).
func (s *commentService) CreateComment(ctx context.Context, articleID int, req models.CreateCommentRequest) (*models.Comment, error) {
	if _, err := s.articleRepo.GetByID(ctx, articleID); err != nil {
		return nil, notFound(err)
	}
	if _, err := s.userRepo.GetByUsername(ctx, req.Username); err != nil {
		return nil, missingReference(err)
	}

	comment := &models.Comment{
		ArticleID: articleID,
		Author:    req.Username,
		Body:      req.Body,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		if _, constraint, ok := repositories.ConstraintViolation(err); ok {
			if constraint == "comments_article_id_fkey" {
				return nil, models.NewNotFound(err)
			}
			return nil, models.NewBadRequest(err)
		}
		return nil, err
	}

	return comment, nil
}

func (s *commentService) UpdateCommentVotes(ctx context.Context, id int, delta int) (*models.Comment, error) {
	comment, err := s.commentRepo.UpdateVotes(ctx, id, delta)
	if err != nil {
		return nil, voteFailure(err)
	}
	return comment, nil
}

func (s *commentService) DeleteComment(ctx context.Context, id int) error {
	if _, err := s.commentRepo.Delete(ctx, id); err != nil {
		return notFound(err)
	}
	return nil
}
