package handlers

import (
	"net/http"

	"news-api/helper"
	"news-api/models"
	"news-api/services"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService services.CommentService
	Helper         *helper.HTTPHelper
}

func NewCommentHandler(commentService services.CommentService, h *helper.HTTPHelper) *CommentHandler {
	return &CommentHandler{commentService: commentService, Helper: h}
}

// GetArticleComments serves GET /api/articles/:id/comments.
func (h *CommentHandler) GetArticleComments(c *gin.Context) error {
	var params models.ArticleIDParams
	if err := h.Helper.BindURI(c, &params); err != nil {
		return err
	}
	var query models.PageQuery
	if err := h.Helper.BindQuery(c, &query); err != nil {
		return err
	}

	page, err := helper.ParsePagination(query.Limit, query.Page)
	if err != nil {
		return err
	}
	articleID, err := helper.ParseID(params.ID)
	if err != nil {
		return err
	}

	comments, total, err := h.commentService.GetComments(c.Request.Context(), articleID, page)
	if err != nil {
		return err
	}

	h.Helper.SetPagingLinks(c, page, total)
	return h.Helper.SendSuccess(c, http.StatusOK, gin.H{
		"comments":    comments,
		"total_count": total,
	})
}

// CreateArticleComment serves POST /api/articles/:id/comments.
func (h *CommentHandler) CreateArticleComment(c *gin.Context) error {
	var params models.ArticleIDParams
	if err := h.Helper.BindURI(c, &params); err != nil {
		return err
	}
	var req models.CreateCommentRequest
	if err := h.Helper.BindJSON(c, &req); err != nil {
		return err
	}

	articleID, err := helper.ParseID(params.ID)
	if err != nil {
		return err
	}

	comment, err := h.commentService.CreateComment(c.Request.Context(), articleID, req)
	if err != nil {
		return err
	}

	return h.Helper.SendSuccess(c, http.StatusCreated, gin.H{"comment": comment})
}

func (h *CommentHandler) UpdateCommentVotes(c *gin.Context) error {
	id, err := h.commentID(c)
	if err != nil {
		return err
	}

	var req models.VoteRequest
	if err := h.Helper.BindJSON(c, &req); err != nil {
		return err
	}

	comment, err := h.commentService.UpdateCommentVotes(c.Request.Context(), id, *req.IncVotes)
	if err != nil {
		return err
	}

	return h.Helper.SendSuccess(c, http.StatusOK, gin.H{"comment": comment})
}

func (h *CommentHandler) DeleteComment(c *gin.Context) error {
	id, err := h.commentID(c)
	if err != nil {
		return err
	}

	if err := h.commentService.DeleteComment(c.Request.Context(), id); err != nil {
		return err
	}

	return h.Helper.SendNoContent(c)
}

func (h *CommentHandler) commentID(c *gin.Context) (int, error) {
	var params models.CommentIDParams
	if err := h.Helper.BindURI(c, &params); err != nil {
		return 0, err
	}
	return helper.ParseID(params.ID)
}
