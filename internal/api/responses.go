package api

import (
	"net/http"
	"time"

	"github.com/careerforge/jobboard/internal/domain/errs"
	"github.com/careerforge/jobboard/internal/domain/models"
	"github.com/careerforge/jobboard/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

// respondError maps a domain error onto a status code. forbiddenStatus exists
// because the application/saved-job endpoints historically answered ownership
// failures with 401 while the job endpoints answer 403; clients depend on it.
func respondError(c *gin.Context, err error, forbiddenStatus int) {

	status := http.StatusInternalServerError
	switch errs.KindOf(err) {
	case errs.NotFound:
		status = http.StatusNotFound
	case errs.InvalidInput, errs.Conflict, errs.InvalidOperation:
		status = http.StatusBadRequest
	case errs.Unauthenticated:
		status = http.StatusUnauthorized
	case errs.Forbidden:
		status = forbiddenStatus
	}

	if status == http.StatusInternalServerError {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("request failed: %v", err)
	}

	c.JSON(status, gin.H{"error": errs.MessageOf(err)})
}

type userResponse struct {
	ID     uint     `json:"id"`
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Role   string   `json:"role"`
	Skills []string `json:"skills"`
	Resume string   `json:"resume,omitempty"`
}

type userSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type jobResponse struct {
	ID             uint         `json:"id"`
	Title          string       `json:"title"`
	Description    string       `json:"description"`
	Company        string       `json:"company"`
	Location       string       `json:"location"`
	Salary         int          `json:"salary"`
	Category       string       `json:"category"`
	SkillsRequired []string     `json:"skillsRequired"`
	PostedBy       *userSummary `json:"postedBy,omitempty"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}

type jobPageResponse struct {
	Jobs  []jobResponse `json:"jobs"`
	Page  int           `json:"page"`
	Pages int           `json:"pages"`
	Total int64         `json:"total"`
}

type applicationResponse struct {
	ID        uint          `json:"id"`
	JobID     uint          `json:"jobId"`
	Job       *jobResponse  `json:"job,omitempty"`
	Applicant *userResponse `json:"applicant,omitempty"`
	Status    string        `json:"status"`
	AppliedAt time.Time     `json:"appliedAt"`
}

type savedJobResponse struct {
	ID        uint         `json:"id"`
	JobID     uint         `json:"jobId"`
	Job       *jobResponse `json:"job,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
}

func toUserResponse(user *models.User) userResponse {
	return userResponse{
		ID:     user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   string(user.Role),
		Skills: user.SkillsAsArray(),
		Resume: user.Resume,
	}
}

func toUserSummary(user *models.User) *userSummary {
	if user == nil {
		return nil
	}
	return &userSummary{ID: user.ID, Name: user.Name, Email: user.Email}
}

func toJobResponse(job *models.Job) jobResponse {
	return jobResponse{
		ID:             job.ID,
		Title:          job.Title,
		Description:    job.Description,
		Company:        job.Company,
		Location:       job.Location,
		Salary:         job.Salary,
		Category:       job.Category,
		SkillsRequired: job.SkillsRequiredAsArray(),
		PostedBy:       toUserSummary(job.PostedBy),
		CreatedAt:      job.CreatedAt,
		UpdatedAt:      job.UpdatedAt,
	}
}

func toJobResponses(jobs []models.Job) []jobResponse {
	return lo.Map(jobs, func(job models.Job, _ int) jobResponse {
		return toJobResponse(&job)
	})
}

func toApplicationResponse(application *models.Application, includeJob, includeApplicant bool) applicationResponse {

	response := applicationResponse{
		ID:        application.ID,
		JobID:     application.JobID,
		Status:    string(application.Status),
		AppliedAt: application.AppliedAt,
	}
	if includeJob {
		job := toJobResponse(&application.Job)
		response.Job = &job
	}
	if includeApplicant {
		applicant := toUserResponse(&application.Applicant)
		response.Applicant = &applicant
	}
	return response
}

// toSavedJobResponse embeds the job only when the association is loaded; a
// freshly created bookmark carries just the job id.
func toSavedJobResponse(saved *models.SavedJob) savedJobResponse {
	response := savedJobResponse{
		ID:        saved.ID,
		JobID:     saved.JobID,
		CreatedAt: saved.CreatedAt,
	}
	if saved.Job.ID != 0 {
		job := toJobResponse(&saved.Job)
		response.Job = &job
	}
	return response
}
