package models

type ArticleIDParams struct {
	ID string `uri:"id" validate:"required,digits"`
}

type CommentIDParams struct {
	ID string `uri:"id" validate:"required,digits"`
}

type UsernameParams struct {
	Username string `uri:"username" validate:"required,username"`
}

// ArticleListQuery is the raw query string of GET /api/articles. Everything
// stays a string until it has passed validation.
type ArticleListQuery struct {
	Topic  string `form:"topic" validate:"omitempty,max=255"`
	SortBy string `form:"sort_by" validate:"omitempty,oneof=article_id author title topic created_at votes article_img_url comment_count"`
	Order  string `form:"order" validate:"omitempty,oneof=asc desc"`
	Limit  string `form:"limit" validate:"omitempty,digits"`
	Page   string `form:"p" validate:"omitempty,digits"`
}

type PageQuery struct {
	Limit string `form:"limit" validate:"omitempty,digits"`
	Page  string `form:"p" validate:"omitempty,digits"`
}

// Pagination is zero-based: Page 0 is the first Limit rows.
type Pagination struct {
	Limit int
	Page  int
}

func (p Pagination) Offset() int {
	return p.Limit * p.Page
}

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

type ArticleListParams struct {
	Topic  string
	SortBy string
	Order  string
	Pagination
}

type CreateTopicRequest struct {
	Slug        string `json:"slug" validate:"required,max=255"`
	Description string `json:"description" validate:"required,max=255"`
	ImgURL      string `json:"img_url" validate:"max=1000"`
}

type CreateArticleRequest struct {
	Author        string `json:"author" validate:"required,username"`
	Title         string `json:"title" validate:"required"`
	Body          string `json:"body" validate:"required"`
	Topic         string `json:"topic" validate:"required,max=255"`
	ArticleImgURL string `json:"article_img_url" validate:"max=1000"`
}

type CreateCommentRequest struct {
	Username string `json:"username" validate:"required,username"`
	Body     string `json:"body" validate:"required"`
}

// VoteRequest carries a signed delta. A pointer so that an explicit 0 is
// told apart from a missing field. The bounds are those of the INTEGER
// votes columns.
type VoteRequest struct {
	IncVotes *int `json:"inc_votes" validate:"required,min=-2147483648,max=2147483647"`
}
