package api

import (
	"net/http"

	"github.com/careerforge/jobboard/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/careerforge/jobboard/internal/domain/models"
)

// Application endpoints report denied access with 401 rather than 403, which
// is what existing clients expect.
type ApplicationHandler struct {
	applications *services.Applications
}

func NewApplicationHandler(applications *services.Applications) *ApplicationHandler {
	return &ApplicationHandler{applications: applications}
}

func (h *ApplicationHandler) Apply(c *gin.Context) {

	jobID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	application, err := h.applications.Apply(c.Request.Context(), currentIdentity(c), jobID)
	if err != nil {
		respondError(c, err, http.StatusUnauthorized)
		return
	}

	c.JSON(http.StatusCreated, toApplicationResponse(application, false, false))
}

func (h *ApplicationHandler) Mine(c *gin.Context) {

	applications, err := h.applications.MyApplications(c.Request.Context(), currentIdentity(c))
	if err != nil {
		respondError(c, err, http.StatusUnauthorized)
		return
	}

	c.JSON(http.StatusOK, lo.Map(applications, func(a models.Application, _ int) applicationResponse {
		return toApplicationResponse(&a, true, false)
	}))
}

func (h *ApplicationHandler) Withdraw(c *gin.Context) {

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	err := h.applications.Withdraw(c.Request.Context(), currentIdentity(c), id)
	if err != nil {
		respondError(c, err, http.StatusUnauthorized)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "application withdrawn"})
}

func (h *ApplicationHandler) Applicants(c *gin.Context) {

	jobID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	applications, err := h.applications.Applicants(c.Request.Context(), currentIdentity(c), jobID)
	if err != nil {
		respondError(c, err, http.StatusUnauthorized)
		return
	}

	c.JSON(http.StatusOK, lo.Map(applications, func(a models.Application, _ int) applicationResponse {
		return toApplicationResponse(&a, false, true)
	}))
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	application, err := h.applications.UpdateStatus(c.Request.Context(), currentIdentity(c), id, req.Status)
	if err != nil {
		respondError(c, err, http.StatusUnauthorized)
		return
	}

	c.JSON(http.StatusOK, toApplicationResponse(application, false, true))
}

func (h *ApplicationHandler) Save(c *gin.Context) {

	jobID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	saved, err := h.applications.SaveJob(c.Request.Context(), currentIdentity(c), jobID)
	if err != nil {
		respondError(c, err, http.StatusUnauthorized)
		return
	}

	c.JSON(http.StatusCreated, toSavedJobResponse(saved))
}

func (h *ApplicationHandler) Saved(c *gin.Context) {

	saved, err := h.applications.SavedJobs(c.Request.Context(), currentIdentity(c))
	if err != nil {
		respondError(c, err, http.StatusUnauthorized)
		return
	}

	c.JSON(http.StatusOK, lo.Map(saved, func(s models.SavedJob, _ int) savedJobResponse {
		return toSavedJobResponse(&s)
	}))
}

func (h *ApplicationHandler) Unsave(c *gin.Context) {

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	err := h.applications.RemoveSavedJob(c.Request.Context(), currentIdentity(c), id)
	if err != nil {
		respondError(c, err, http.StatusUnauthorized)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "saved job removed"})
}
