package repositories

import (
	"context"

	"news-api/models"

	"gorm.io/gorm"
)

type CommentRepository interface {
	GetByArticleID(ctx context.Context, articleID int, page models.Pagination) ([]models.Comment, int64, error)
	Create(ctx context.Context, comment *models.Comment) error
	UpdateVotes(ctx context.Context, id int, delta int) (*models.Comment, error)
	Delete(ctx context.Context, id int) (*models.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// GetByArticleID lists comments newest first. It does not check that the
// article exists.
func (r *commentRepository) GetByArticleID(ctx context.Context, articleID int, page models.Pagination) ([]models.Comment, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Comment{}).
		Where("article_id = ?", articleID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if page.Limit <= 0 {
		page.Limit = models.DefaultPageSize
	}

	comments := []models.Comment{}
	err := r.db.WithContext(ctx).
		Where("article_id = ?", articleID).
		Order("created_at DESC").
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&comments).Error
	if err != nil {
		return nil, 0, err
	}

	return comments, total, nil
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Raw(`
		INSERT INTO
			comments (article_id, author, body)
		VALUES
			(?, ?, ?)
		RETURNING
			*
	`, comment.ArticleID, comment.Author, comment.Body).Scan(comment).Error
}

func (r *commentRepository) UpdateVotes(ctx context.Context, id int, delta int) (*models.Comment, error) {
	var comment models.Comment
	result := r.db.WithContext(ctx).Raw(`
		UPDATE
			comments
		SET
			votes = votes + ?
		WHERE
			comment_id = ?
		RETURNING
			*
	`, delta, id).Scan(&comment)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &comment, nil
}

func (r *commentRepository) Delete(ctx context.Context, id int) (*models.Comment, error) {
	var comment models.Comment
	result := r.db.WithContext(ctx).Raw(`
		DELETE FROM
			comments
		WHERE
			comment_id = ?
		RETURNING
			*
	`, id).Scan(&comment)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &comment, nil
}
