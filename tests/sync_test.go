package tests

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/careerforge/jobboard/internal/clients/remotefeed"
	"github.com/careerforge/jobboard/internal/domain/models"
	"github.com/careerforge/jobboard/internal/repositories"
	"github.com/careerforge/jobboard/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const feedPayload = `{
	"jobs": [
		{
			"title": "Backend Developer",
			"company_name": "Acme",
			"description": "<p>Write <b>Go</b> services</p>",
			"candidate_required_location": "Germany",
			"salary": "$70,000 - $90,000",
			"category": "Software Development"
		},
		{
			"title": "QA Engineer",
			"company_name": "Globex",
			"description": "",
			"candidate_required_location": "",
			"salary": "",
			"category": ""
		}
	]
}`

func Test_Sync_ImportAndDeduplication(t *testing.T) {

	defer clearDb()

	feed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(feedPayload))
	}))
	defer feed.Close()

	jobs := repositories.NewJobsRepository(dbCtx.DB)
	syncer, err := services.NewJobSyncer(remotefeed.NewClient(feed.URL), jobs)
	require.NoError(t, err)

	require.NoError(t, syncer.RunOnce(context.Background()))

	var imported []models.Job
	require.NoError(t, dbCtx.DB.Order("title").Find(&imported).Error)
	require.Len(t, imported, 2)

	backend := imported[0]
	assert.Equal(t, "Backend Developer", backend.Title)
	assert.Equal(t, "Write Go services", backend.Description)
	assert.Equal(t, "Germany", backend.Location)
	assert.Equal(t, 7000090000, backend.Salary)
	assert.Equal(t, "Software Development", backend.Category)
	assert.Nil(t, backend.PostedByID)

	//empty feed fields fall back to placeholders
	qa := imported[1]
	assert.Equal(t, "No description provided", qa.Description)
	assert.Equal(t, "Remote", qa.Location)
	assert.Equal(t, 0, qa.Salary)
	assert.Equal(t, "General", qa.Category)

	//a second run sees the same listings and inserts nothing
	require.NoError(t, syncer.RunOnce(context.Background()))

	var count int64
	require.NoError(t, dbCtx.DB.Model(&models.Job{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}
