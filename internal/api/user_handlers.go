package api

import (
	"net/http"

	"github.com/careerforge/jobboard/internal/domain/models"
	"github.com/careerforge/jobboard/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

type UserHandler struct {
	users *services.Users
}

func NewUserHandler(users *services.Users) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) List(c *gin.Context) {

	users, err := h.users.List(c.Request.Context(), currentIdentity(c))
	if err != nil {
		respondError(c, err, http.StatusForbidden)
		return
	}

	c.JSON(http.StatusOK, lo.Map(users, func(u models.User, _ int) userResponse {
		return toUserResponse(&u)
	}))
}

func (h *UserHandler) Get(c *gin.Context) {

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := h.users.Get(c.Request.Context(), currentIdentity(c), id)
	if err != nil {
		respondError(c, err, http.StatusForbidden)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

func (h *UserHandler) Delete(c *gin.Context) {

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.users.Delete(c.Request.Context(), currentIdentity(c), id); err != nil {
		respondError(c, err, http.StatusForbidden)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "user removed"})
}

func (h *UserHandler) AdminStats(c *gin.Context) {

	stats, err := h.users.AdminStats(c.Request.Context())
	if err != nil {
		respondError(c, err, http.StatusForbidden)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *UserHandler) RecruiterStats(c *gin.Context) {

	stats, err := h.users.RecruiterStats(c.Request.Context(), currentIdentity(c))
	if err != nil {
		respondError(c, err, http.StatusForbidden)
		return
	}

	c.JSON(http.StatusOK, stats)
}
