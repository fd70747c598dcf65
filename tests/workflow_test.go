package tests

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jobPath(id uint, suffix string) string {
	return fmt.Sprintf("/api/jobs/%d%s", id, suffix)
}

func applicationPath(id uint, suffix string) string {
	return fmt.Sprintf("/api/applications/%d%s", id, suffix)
}

type authPayload struct {
	ID    uint   `json:"id"`
	Role  string `json:"role"`
	Token string `json:"token"`
}

func registerUser(t *testing.T, name, email, role string) authPayload {
	t.Helper()

	recorder := doRequest(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"name":     name,
		"email":    email,
		"password": "secret123",
		"role":     role,
	})
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	var payload authPayload
	decodeBody(t, recorder, &payload)
	return payload
}

func createJob(t *testing.T, token, title string) uint {
	t.Helper()

	recorder := doRequest(t, http.MethodPost, "/api/jobs", token, map[string]any{
		"title":          title,
		"description":    "Build and run backend services",
		"company":        "Acme",
		"location":       "Berlin",
		"salary":         90000,
		"skillsRequired": []string{"go", "sql"},
	})
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	var job struct {
		ID uint `json:"id"`
	}
	decodeBody(t, recorder, &job)
	return job.ID
}

func Test_ApplicationWorkflow(t *testing.T) {

	defer clearDb()

	recruiter := registerUser(t, "Bob", "bob@acme.test", "recruiter")
	jobseeker := registerUser(t, "Alice", "alice@mail.test", "jobseeker")

	jobID := createJob(t, recruiter.Token, "Backend Developer")

	recorder := doRequest(t, http.MethodPost, applicationPath(jobID, "/apply"), jobseeker.Token, nil)
	assert.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	//same jobseeker, same job
	recorder = doRequest(t, http.MethodPost, applicationPath(jobID, "/apply"), jobseeker.Token, nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "already applied")

	recorder = doRequest(t, http.MethodGet, "/api/applications/me", jobseeker.Token, nil)
	assert.Equal(t, http.StatusOK, recorder.Code)

	var mine []struct {
		Status string `json:"status"`
		Job    struct {
			Title string `json:"title"`
		} `json:"job"`
	}
	decodeBody(t, recorder, &mine)
	require.Len(t, mine, 1)
	assert.Equal(t, "pending", mine[0].Status)
	assert.Equal(t, "Backend Developer", mine[0].Job.Title)

	recorder = doRequest(t, http.MethodGet, applicationPath(jobID, "/applicants"), recruiter.Token, nil)
	assert.Equal(t, http.StatusOK, recorder.Code)

	var applicants []struct {
		ID        uint `json:"id"`
		Applicant struct {
			Email string `json:"email"`
		} `json:"applicant"`
	}
	decodeBody(t, recorder, &applicants)
	require.Len(t, applicants, 1)
	assert.Equal(t, "alice@mail.test", applicants[0].Applicant.Email)

	recorder = doRequest(t, http.MethodPut, applicationPath(applicants[0].ID, "/status"),
		recruiter.Token, map[string]any{"status": "shortlisted"})
	assert.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var updated struct {
		Status    string `json:"status"`
		Applicant struct {
			ID    uint   `json:"id"`
			Email string `json:"email"`
		} `json:"applicant"`
	}
	decodeBody(t, recorder, &updated)
	assert.Equal(t, "shortlisted", updated.Status)
	assert.Equal(t, jobseeker.ID, updated.Applicant.ID)
	assert.Equal(t, "alice@mail.test", updated.Applicant.Email)
}

func Test_JobDeletionRemovesDependents(t *testing.T) {

	defer clearDb()

	recruiter := registerUser(t, "Bob", "bob2@acme.test", "recruiter")
	jobseeker := registerUser(t, "Alice", "alice2@mail.test", "jobseeker")

	jobID := createJob(t, recruiter.Token, "Data Engineer")

	recorder := doRequest(t, http.MethodPost, applicationPath(jobID, "/apply"), jobseeker.Token, nil)
	require.Equal(t, http.StatusCreated, recorder.Code)
	recorder = doRequest(t, http.MethodPost, applicationPath(jobID, "/save"), jobseeker.Token, nil)
	require.Equal(t, http.StatusCreated, recorder.Code)

	//the fresh bookmark references the job by id and embeds no half-loaded job
	var saved struct {
		JobID uint `json:"jobId"`
		Job   *struct {
			ID uint `json:"id"`
		} `json:"job"`
	}
	decodeBody(t, recorder, &saved)
	assert.Equal(t, jobID, saved.JobID)
	assert.Nil(t, saved.Job)

	recorder = doRequest(t, http.MethodDelete, jobPath(jobID, ""), recruiter.Token, nil)
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	recorder = doRequest(t, http.MethodGet, "/api/applications/me", jobseeker.Token, nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "[]", recorder.Body.String())

	recorder = doRequest(t, http.MethodGet, "/api/applications/saved", jobseeker.Token, nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "[]", recorder.Body.String())
}

func Test_RoleAndOwnershipEnforcement(t *testing.T) {

	defer clearDb()

	recruiter := registerUser(t, "Bob", "bob3@acme.test", "recruiter")
	other := registerUser(t, "Eve", "eve@acme.test", "recruiter")
	jobseeker := registerUser(t, "Alice", "alice3@mail.test", "jobseeker")

	//jobseekers cannot post jobs at all
	recorder := doRequest(t, http.MethodPost, "/api/jobs", jobseeker.Token, map[string]any{
		"title": "Nope",
	})
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	jobID := createJob(t, recruiter.Token, "Platform Engineer")

	//a recruiter who does not own the job cannot edit it
	recorder = doRequest(t, http.MethodPut, jobPath(jobID, ""), other.Token, map[string]any{
		"title": "Hijacked",
	})
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	//no token at all
	recorder = doRequest(t, http.MethodGet, "/api/applications/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	//public listing works without a token and paginates
	recorder = doRequest(t, http.MethodGet, "/api/jobs?keyword=platform", "", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)

	var page struct {
		Jobs  []struct{ Title string } `json:"jobs"`
		Page  int                      `json:"page"`
		Pages int                      `json:"pages"`
		Total int64                    `json:"total"`
	}
	decodeBody(t, recorder, &page)
	assert.Equal(t, int64(1), page.Total)
	assert.Equal(t, 1, page.Pages)
}
