package handlers

import (
	"net/http"

	"news-api/helper"
	"news-api/models"
	"news-api/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService services.UserService
	Helper      *helper.HTTPHelper
}

func NewUserHandler(userService services.UserService, h *helper.HTTPHelper) *UserHandler {
	return &UserHandler{userService: userService, Helper: h}
}

func (h *UserHandler) GetUsers(c *gin.Context) error {
	users, err := h.userService.GetUsers(c.Request.Context())
	if err != nil {
		return err
	}

	return h.Helper.SendSuccess(c, http.StatusOK, gin.H{"users": users})
}

func (h *UserHandler) GetUser(c *gin.Context) error {
	var params models.UsernameParams
	if err := h.Helper.BindURI(c, &params); err != nil {
		return err
	}

	user, err := h.userService.GetUser(c.Request.Context(), params.Username)
	if err != nil {
		return err
	}

	return h.Helper.SendSuccess(c, http.StatusOK, gin.H{"user": user})
}
