package handlers

import (
	"net/http"

	"news-api/helper"
	"news-api/models"
	"news-api/services"

	"github.com/gin-gonic/gin"
)

type TopicHandler struct {
	topicService services.TopicService
	Helper       *helper.HTTPHelper
}

func NewTopicHandler(topicService services.TopicService, h *helper.HTTPHelper) *TopicHandler {
	return &TopicHandler{topicService: topicService, Helper: h}
}

func (h *TopicHandler) CreateTopic(c *gin.Context) error {
	var req models.CreateTopicRequest
	if err := h.Helper.BindJSON(c, &req); err != nil {
		return err
	}

	topic, err := h.topicService.CreateTopic(c.Request.Context(), req)
	if err != nil {
		return err
	}

	return h.Helper.SendSuccess(c, http.StatusCreated, gin.H{"topic": topic})
}

func (h *TopicHandler) GetTopics(c *gin.Context) error {
	topics, err := h.topicService.GetTopics(c.Request.Context())
	if err != nil {
		return err
	}

	return h.Helper.SendSuccess(c, http.StatusOK, gin.H{"topics": topics})
}
