package handlers

import (
	"net/http"

	"news-api/helper"
	"news-api/models"
	"news-api/services"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articleService services.ArticleService
	Helper         *helper.HTTPHelper
}

func NewArticleHandler(articleService services.ArticleService, h *helper.HTTPHelper) *ArticleHandler {
	return &ArticleHandler{articleService: articleService, Helper: h}
}

func (h *ArticleHandler) GetArticles(c *gin.Context) error {
	var query models.ArticleListQuery
	if err := h.Helper.BindQuery(c, &query); err != nil {
		return err
	}

	page, err := helper.ParsePagination(query.Limit, query.Page)
	if err != nil {
		return err
	}

	params := models.ArticleListParams{
		Topic:      query.Topic,
		SortBy:     query.SortBy,
		Order:      query.Order,
		Pagination: page,
	}

	articles, total, err := h.articleService.GetArticles(c.Request.Context(), params)
	if err != nil {
		return err
	}

	h.Helper.SetPagingLinks(c, page, total)
	return h.Helper.SendSuccess(c, http.StatusOK, gin.H{
		"articles":    articles,
		"total_count": total,
	})
}

func (h *ArticleHandler) GetArticle(c *gin.Context) error {
	id, err := h.articleID(c)
	if err != nil {
		return err
	}

	article, err := h.articleService.GetArticle(c.Request.Context(), id)
	if err != nil {
		return err
	}

	return h.Helper.SendSuccess(c, http.StatusOK, gin.H{"article": article})
}

func (h *ArticleHandler) CreateArticle(c *gin.Context) error {
	var req models.CreateArticleRequest
	if err := h.Helper.BindJSON(c, &req); err != nil {
		return err
	}

	article, err := h.articleService.CreateArticle(c.Request.Context(), req)
	if err != nil {
		return err
	}

	return h.Helper.SendSuccess(c, http.StatusCreated, gin.H{"article": article})
}

func (h *ArticleHandler) UpdateArticleVotes(c *gin.Context) error {
	id, err := h.articleID(c)
	if err != nil {
		return err
	}

	var req models.VoteRequest
	if err := h.Helper.BindJSON(c, &req); err != nil {
		return err
	}

	article, err := h.articleService.UpdateArticleVotes(c.Request.Context(), id, *req.IncVotes)
	if err != nil {
		return err
	}

	return h.Helper.SendSuccess(c, http.StatusOK, gin.H{"article": article})
}

func (h *ArticleHandler) DeleteArticle(c *gin.Context) error {
	id, err := h.articleID(c)
	if err != nil {
		return err
	}

	if err := h.articleService.DeleteArticle(c.Request.Context(), id); err != nil {
		return err
	}

	return h.Helper.SendNoContent(c)
}

func (h *ArticleHandler) articleID(c *gin.Context) (int, error) {
	var params models.ArticleIDParams
	if err := h.Helper.BindURI(c, &params); err != nil {
		return 0, err
	}
	return helper.ParseID(params.ID)
}
