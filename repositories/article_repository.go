package repositories

import (
	"context"
	"fmt"

	"news-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ArticleRepository interface {
	GetList(ctx context.Context, params models.ArticleListParams) ([]models.ArticleSummary, int64, error)
	GetByID(ctx context.Context, id int) (*models.Article, error)
	Create(ctx context.Context, article *models.Article) error
	UpdateVotes(ctx context.Context, id int, delta int) (*models.Article, error)
	Delete(ctx context.Context, id int) (*models.Article, error)
}

// articleSortColumns is the only way a sort_by value reaches the SQL text.
// Placeholders cannot bind identifiers, so anything not in this map is
// rejected before a query is built.
var articleSortColumns = map[string]clause.Column{
	"article_id":      {Table: "a", Name: "article_id"},
	"author":          {Table: "a", Name: "author"},
	"title":           {Table: "a", Name: "title"},
	"topic":           {Table: "a", Name: "topic"},
	"created_at":      {Table: "a", Name: "created_at"},
	"votes":           {Table: "a", Name: "votes"},
	"article_img_url": {Table: "a", Name: "article_img_url"},
	"comment_count":   {Name: "comment_count"},
}

var sortDirections = map[string]bool{
	"asc":  false,
	"desc": true,
}

const (
	defaultArticleSort  = "created_at"
	defaultArticleOrder = "desc"
)

const articleSummaryColumns = `a.article_id, a.author, a.title, a.topic, a.created_at, a.votes, a.article_img_url,
	CAST(COUNT(c.comment_id) AS INTEGER) AS comment_count`

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func articleOrder(sortBy, order string) (clause.OrderByColumn, error) {
	if sortBy == "" {
		sortBy = defaultArticleSort
	}
	if order == "" {
		order = defaultArticleOrder
	}

	column, ok := articleSortColumns[sortBy]
	if !ok {
		return clause.OrderByColumn{}, models.NewBadRequest(fmt.Errorf("unsupported sort column %q", sortBy))
	}
	desc, ok := sortDirections[order]
	if !ok {
		return clause.OrderByColumn{}, models.NewBadRequest(fmt.Errorf("unsupported sort order %q", order))
	}

	return clause.OrderByColumn{Column: column, Desc: desc}, nil
}

func (r *articleRepository) filtered(ctx context.Context, topic string) *gorm.DB {
	query := r.db.WithContext(ctx).Table("articles AS a")
	if topic != "" {
		query = query.Where("a.topic = ?", topic)
	}
	return query
}

// listQuery composes the paginated, comment-counted article listing without
// executing it.
func (r *articleRepository) listQuery(ctx context.Context, params models.ArticleListParams) (*gorm.DB, error) {
	order, err := articleOrder(params.SortBy, params.Order)
	if err != nil {
		return nil, err
	}

	page := params.Pagination
	if page.Limit <= 0 {
		page.Limit = models.DefaultPageSize
	}

	return r.filtered(ctx, params.Topic).
		Select(articleSummaryColumns).
		Joins("LEFT JOIN comments AS c ON c.article_id = a.article_id").
		Group("a.article_id").
		Order(order).
		Limit(page.Limit).
		Offset(page.Offset()), nil
}

func (r *articleRepository) GetList(ctx context.Context, params models.ArticleListParams) ([]models.ArticleSummary, int64, error) {
	query, err := r.listQuery(ctx, params)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.filtered(ctx, params.Topic).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	articles := []models.ArticleSummary{}
	if err := query.Find(&articles).Error; err != nil {
		return nil, 0, err
	}

	return articles, total, nil
}

func (r *articleRepository) GetByID(ctx context.Context, id int) (*models.Article, error) {
	var article models.Article
	result := r.db.WithContext(ctx).Raw(`
		SELECT
			a.*,
			CAST(COUNT(c.comment_id) AS INTEGER) AS comment_count
		FROM
			articles AS a
			LEFT JOIN comments AS c ON c.article_id = a.article_id
		WHERE
			a.article_id = ?
		GROUP BY
			a.article_id
	`, id).Scan(&article)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &article, nil
}

// Create inserts the article and fills in the generated id, votes and
// timestamp. A new article has no comments, so CommentCount stays 0.
func (r *articleRepository) Create(ctx context.Context, article *models.Article) error {
	if article.ArticleImgURL == "" {
		article.ArticleImgURL = models.DefaultArticleImgURL
	}
	return r.db.WithContext(ctx).Raw(`
		INSERT INTO
			articles (author, title, body, topic, article_img_url)
		VALUES
			(?, ?, ?, ?, ?)
		RETURNING
			*
	`, article.Author, article.Title, article.Body, article.Topic, article.ArticleImgURL).Scan(article).Error
}

// UpdateVotes applies the delta in a single statement so concurrent votes
// never lose an increment.
func (r *articleRepository) UpdateVotes(ctx context.Context, id int, delta int) (*models.Article, error) {
	var article models.Article
	result := r.db.WithContext(ctx).Raw(`
		WITH updated AS (
			UPDATE
				articles
			SET
				votes = votes + ?
			WHERE
				article_id = ?
			RETURNING
				*
		)
		SELECT
			u.*,
			(SELECT CAST(COUNT(*) AS INTEGER) FROM comments AS c WHERE c.article_id = u.article_id) AS comment_count
		FROM
			updated AS u
	`, delta, id).Scan(&article)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &article, nil
}

// Delete removes the article together with its comments. The schema
// cascades as well; deleting the comments here keeps the behaviour when
// the constraint is missing.
func (r *articleRepository) Delete(ctx context.Context, id int) (*models.Article, error) {
	var article models.Article
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		result := tx.Raw(`
			DELETE FROM
				articles
			WHERE
				article_id = ?
			RETURNING
				*
		`, id).Scan(&article)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &article, nil
}
