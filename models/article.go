package models

import (
	"time"
)

// ArticleSummary is the list shape of an article: everything but the body.
type ArticleSummary struct {
	ArticleID     int       `json:"article_id" gorm:"column:article_id;primarykey"`
	Author        string    `json:"author" gorm:"not null"`
	Title         string    `json:"title" gorm:"not null"`
	Topic         string    `json:"topic" gorm:"not null"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime:false"`
	Votes         int       `json:"votes"`
	ArticleImgURL string    `json:"article_img_url" gorm:"column:article_img_url"`
	CommentCount  int       `json:"comment_count" gorm:"->;-:migration"`
}

func (ArticleSummary) TableName() string {
	return "articles"
}

type Article struct {
	ArticleSummary
	Body string `json:"body" gorm:"type:text;not null"`
}

func (Article) TableName() string {
	return "articles"
}

const DefaultArticleImgURL = "/assets/placeholder/article.jpg"
