package services

import (
	"context"
	"testing"

	"github.com/asaskevich/EventBus"
	"github.com/careerforge/jobboard/internal/domain/errs"
	"github.com/careerforge/jobboard/internal/domain/models"
	"github.com/careerforge/jobboard/internal/domain/policy"
	"github.com/careerforge/jobboard/internal/events"
	"github.com/careerforge/jobboard/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockJobs struct {
	mock.Mock
}

func (m *mockJobs) Add(ctx context.Context, job *models.Job) error {
	return m.Called(ctx, job).Error(0)
}

func (m *mockJobs) GetByID(ctx context.Context, id uint) (*models.Job, error) {
	args := m.Called(ctx, id)
	job, _ := args.Get(0).(*models.Job)
	return job, args.Error(1)
}

func (m *mockJobs) Search(ctx context.Context, filter repositories.JobFilter) ([]models.Job, int64, error) {
	args := m.Called(ctx, filter)
	jobs, _ := args.Get(0).([]models.Job)
	return jobs, args.Get(1).(int64), args.Error(2)
}

func (m *mockJobs) Update(ctx context.Context, job *models.Job) error {
	return m.Called(ctx, job).Error(0)
}

func (m *mockJobs) Remove(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func recruiter(id uint) policy.Identity {
	return policy.Identity{UserID: id, Role: models.RoleRecruiter}
}

func admin() policy.Identity {
	return policy.Identity{UserID: 1, Role: models.RoleAdmin}
}

func salaryOf(v int) *int { return &v }

func Test_CreateJob_RequiredFieldsEnforced(t *testing.T) {

	service := NewJobsService(&mockJobs{}, EventBus.New())

	_, err := service.Create(context.Background(), recruiter(7), CreateJobInput{Title: "Backend Dev"})
	assert.Equal(t, errs.InvalidInput, errs.KindOf(err))

	_, err = service.Create(context.Background(), recruiter(7), CreateJobInput{
		Title: "Backend Dev", Description: "d", Company: "Acme", Location: "Remote",
		Salary: salaryOf(-1), SkillsRequired: []string{"go"},
	})
	assert.Equal(t, errs.InvalidInput, errs.KindOf(err))
}

func Test_CreateJob_SetsPosterAndDefaultCategory(t *testing.T) {

	jobs := &mockJobs{}
	jobs.On("Add", mock.Anything, mock.MatchedBy(func(job *models.Job) bool {
		return job.PostedByID != nil && *job.PostedByID == 7 && job.Category == "Other"
	})).Return(nil)

	service := NewJobsService(jobs, EventBus.New())

	job, err := service.Create(context.Background(), recruiter(7), CreateJobInput{
		Title: "Backend Dev", Description: "d", Company: "Acme", Location: "Remote",
		Salary: salaryOf(80000), SkillsRequired: []string{"go", "sql"},
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{"go", "sql"}, job.SkillsRequiredAsArray())
	jobs.AssertExpectations(t)
}

func Test_UpdateJob_NonOwnerForbidden(t *testing.T) {

	owner := uint(7)
	jobs := &mockJobs{}
	jobs.On("GetByID", mock.Anything, uint(10)).
		Return(&models.Job{ID: 10, PostedByID: &owner}, nil)

	service := NewJobsService(jobs, EventBus.New())

	_, err := service.Update(context.Background(), recruiter(8), 10, UpdateJobInput{Title: "New"})
	assert.Equal(t, errs.Forbidden, errs.KindOf(err))
}

func Test_UpdateJob_ExternalJobAdminOnly(t *testing.T) {

	jobs := &mockJobs{}
	jobs.On("GetByID", mock.Anything, uint(10)).Return(&models.Job{ID: 10}, nil)
	jobs.On("Update", mock.Anything, mock.Anything).Return(nil)

	service := NewJobsService(jobs, EventBus.New())

	_, err := service.Update(context.Background(), recruiter(8), 10, UpdateJobInput{Title: "New"})
	assert.Equal(t, errs.Forbidden, errs.KindOf(err))

	_, err = service.Update(context.Background(), admin(), 10, UpdateJobInput{Title: "New"})
	assert.NoError(t, err)
}

func Test_DeleteJob_PublishesEventAfterRemoval(t *testing.T) {

	owner := uint(7)
	jobs := &mockJobs{}
	jobs.On("GetByID", mock.Anything, uint(10)).
		Return(&models.Job{ID: 10, PostedByID: &owner}, nil)
	jobs.On("Remove", mock.Anything, uint(10)).Return(nil)

	bus := EventBus.New()
	var published []events.JobDeleted
	err := bus.Subscribe(events.JobDeletedTopic, func(event events.JobDeleted) {
		published = append(published, event)
	})
	assert.NoError(t, err)

	service := NewJobsService(jobs, bus)

	err = service.Delete(context.Background(), recruiter(7), 10)
	assert.NoError(t, err)
	assert.Equal(t, []events.JobDeleted{{JobID: 10}}, published)
}

func Test_DeleteJob_UnknownJobIsNotFound(t *testing.T) {

	jobs := &mockJobs{}
	jobs.On("GetByID", mock.Anything, uint(99)).Return(nil, nil)

	service := NewJobsService(jobs, EventBus.New())

	err := service.Delete(context.Background(), admin(), 99)
	assert.Equal(t, errs.NotFound, errs.KindOf(err))
}

func Test_SearchJobs_ComputesPageCount(t *testing.T) {

	jobs := &mockJobs{}
	jobs.On("Search", mock.Anything, repositories.JobFilter{Keyword: "engineer", Page: 1}).
		Return([]models.Job{{ID: 1}}, int64(25), nil)

	service := NewJobsService(jobs, EventBus.New())

	page, err := service.Search(context.Background(), repositories.JobFilter{Keyword: "engineer"})
	assert.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 3, page.Pages)
	assert.Equal(t, int64(25), page.Total)
}
