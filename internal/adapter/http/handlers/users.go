package handlers

import (
	"net/http"

	"tasktrio/internal/adapter/http/mapper"
	"tasktrio/internal/core/domain"

	"github.com/gin-gonic/gin"
)

type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, mapper.ToUserItems(domain.Users()))
}

func (h *UserHandler) GetUser(c *gin.Context) {
	user, ok := domain.LookupUser(c.Param("userId"))
	if !ok {
		respondError(c, domain.ErrUserNotFound, "user lookup")
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserItem(user))
}
