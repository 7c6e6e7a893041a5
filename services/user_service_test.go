package services

import (
	"context"
	"net/http"
	"testing"

	"news-api/helper"
	"news-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestGetUser(t *testing.T) {
	users := new(mockUserRepo)
	users.On("GetByUsername", mock.Anything, "butter_bridge").Return(&models.User{Username: "butter_bridge", Name: "jonny"}, nil)
	users.On("GetByUsername", mock.Anything, "nobody").Return(nil, gorm.ErrRecordNotFound)
	service := NewUserService(users)

	user, err := service.GetUser(context.Background(), "butter_bridge")
	require.NoError(t, err)
	assert.Equal(t, "jonny", user.Name)

	_, err = service.GetUser(context.Background(), "nobody")
	assert.Equal(t, http.StatusNotFound, helper.StatusCode(err))
}

func TestGetUsers(t *testing.T) {
	users := new(mockUserRepo)
	want := []models.User{{Username: "butter_bridge"}, {Username: "lurker"}}
	users.On("GetAll", mock.Anything).Return(want, nil)

	got, err := NewUserService(users).GetUsers(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}
