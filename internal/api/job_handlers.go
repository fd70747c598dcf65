package api

import (
	"net/http"
	"strconv"

	"github.com/careerforge/jobboard/internal/repositories"
	"github.com/careerforge/jobboard/internal/services"
	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobs   *services.Jobs
	syncer *services.JobSyncer
}

func NewJobHandler(jobs *services.Jobs, syncer *services.JobSyncer) *JobHandler {
	return &JobHandler{jobs: jobs, syncer: syncer}
}

type createJobRequest struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Company        string   `json:"company"`
	Location       string   `json:"location"`
	Salary         *int     `json:"salary"`
	Category       string   `json:"category"`
	SkillsRequired []string `json:"skillsRequired"`
}

func (h *JobHandler) List(c *gin.Context) {

	filter := repositories.JobFilter{
		Keyword:  c.Query("keyword"),
		Location: c.Query("location"),
		Category: c.Query("category"),
	}
	if minSalary := c.Query("minSalary"); minSalary != "" {
		value, err := strconv.Atoi(minSalary)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid minSalary"})
			return
		}
		filter.MinSalary = value
	}
	if page := c.Query("page"); page != "" {
		value, err := strconv.Atoi(page)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page"})
			return
		}
		filter.Page = value
	}

	result, err := h.jobs.Search(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, http.StatusForbidden)
		return
	}

	c.JSON(http.StatusOK, jobPageResponse{
		Jobs:  toJobResponses(result.Jobs),
		Page:  result.Page,
		Pages: result.Pages,
		Total: result.Total,
	})
}

func (h *JobHandler) Get(c *gin.Context) {

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	job, err := h.jobs.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, http.StatusForbidden)
		return
	}

	c.JSON(http.StatusOK, toJobResponse(job))
}

func (h *JobHandler) Create(c *gin.Context) {

	var req createJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	job, err := h.jobs.Create(c.Request.Context(), currentIdentity(c), services.CreateJobInput{
		Title:          req.Title,
		Description:    req.Description,
		Company:        req.Company,
		Location:       req.Location,
		Salary:         req.Salary,
		Category:       req.Category,
		SkillsRequired: req.SkillsRequired,
	})
	if err != nil {
		respondError(c, err, http.StatusForbidden)
		return
	}

	c.JSON(http.StatusCreated, toJobResponse(job))
}

func (h *JobHandler) Update(c *gin.Context) {

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req createJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	job, err := h.jobs.Update(c.Request.Context(), currentIdentity(c), id, services.UpdateJobInput{
		Title:          req.Title,
		Description:    req.Description,
		Company:        req.Company,
		Location:       req.Location,
		Salary:         req.Salary,
		Category:       req.Category,
		SkillsRequired: req.SkillsRequired,
	})
	if err != nil {
		respondError(c, err, http.StatusForbidden)
		return
	}

	c.JSON(http.StatusOK, toJobResponse(job))
}

func (h *JobHandler) Delete(c *gin.Context) {

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.jobs.Delete(c.Request.Context(), currentIdentity(c), id); err != nil {
		respondError(c, err, http.StatusForbidden)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "job removed"})
}

// Sync triggers one immediate feed import; failures are logged by the syncer
// and never surface to the caller.
func (h *JobHandler) Sync(c *gin.Context) {
	_ = h.syncer.RunOnce(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "manual sync complete"})
}
