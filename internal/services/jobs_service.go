package services

import (
	"context"

	"github.com/asaskevich/EventBus"
	"github.com/careerforge/jobboard/internal/domain/errs"
	"github.com/careerforge/jobboard/internal/domain/models"
	"github.com/careerforge/jobboard/internal/domain/policy"
	"github.com/careerforge/jobboard/internal/events"
	"github.com/careerforge/jobboard/internal/repositories"
	"github.com/pkg/errors"
)

type jobRepository interface {
	Add(ctx context.Context, job *models.Job) error
	GetByID(ctx context.Context, id uint) (*models.Job, error)
	Search(ctx context.Context, filter repositories.JobFilter) ([]models.Job, int64, error)
	Update(ctx context.Context, job *models.Job) error
	Remove(ctx context.Context, id uint) error
}

type CreateJobInput struct {
	Title          string
	Description    string
	Company        string
	Location       string
	Salary         *int
	Category       string
	SkillsRequired []string
}

// UpdateJobInput leaves any zero-valued field unchanged.
type UpdateJobInput struct {
	Title          string
	Description    string
	Company        string
	Location       string
	Salary         *int
	Category       string
	SkillsRequired []string
}

type JobPage struct {
	Jobs  []models.Job
	Page  int
	Pages int
	Total int64
}

type Jobs struct {
	jobs jobRepository
	bus  EventBus.Bus
}

func NewJobsService(jobs jobRepository, bus EventBus.Bus) *Jobs {
	return &Jobs{jobs: jobs, bus: bus}
}

func (s *Jobs) Search(ctx context.Context, filter repositories.JobFilter) (*JobPage, error) {

	if filter.Page < 1 {
		filter.Page = 1
	}

	jobs, total, err := s.jobs.Search(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search jobs")
	}

	pages := int((total + repositories.JobsPageSize - 1) / repositories.JobsPageSize)
	return &JobPage{Jobs: jobs, Page: filter.Page, Pages: pages, Total: total}, nil
}

func (s *Jobs) Get(ctx context.Context, id uint) (*models.Job, error) {

	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get job")
	}
	if job == nil {
		return nil, errs.NotFoundf("job not found")
	}
	return job, nil
}

func (s *Jobs) Create(ctx context.Context, actor policy.Identity, input CreateJobInput) (*models.Job, error) {

	if input.Title == "" || input.Description == "" || input.Company == "" ||
		input.Location == "" || input.Salary == nil || len(input.SkillsRequired) == 0 {
		return nil, errs.InvalidInputf("title, description, company, location, salary and skillsRequired are required")
	}
	if *input.Salary < 0 {
		return nil, errs.InvalidInputf("salary must be non-negative")
	}

	category := input.Category
	if category == "" {
		category = models.DefaultJobCategory
	}

	postedBy := actor.UserID
	job := &models.Job{
		Title:       input.Title,
		Description: input.Description,
		Company:     input.Company,
		Location:    input.Location,
		Salary:      *input.Salary,
		Category:    category,
		PostedByID:  &postedBy,
	}
	job.SetSkillsRequired(input.SkillsRequired)

	if err := s.jobs.Add(ctx, job); err != nil {
		return nil, errors.Wrap(err, "failed to create job")
	}

	return job, nil
}

func (s *Jobs) Update(ctx context.Context, actor policy.Identity, id uint, input UpdateJobInput) (*models.Job, error) {

	job, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = policy.CanMutateJob(actor, job); err != nil {
		return nil, err
	}

	if input.Title != "" {
		job.Title = input.Title
	}
	if input.Description != "" {
		job.Description = input.Description
	}
	if input.Company != "" {
		job.Company = input.Company
	}
	if input.Location != "" {
		job.Location = input.Location
	}
	if input.Salary != nil {
		if *input.Salary < 0 {
			return nil, errs.InvalidInputf("salary must be non-negative")
		}
		job.Salary = *input.Salary
	}
	if input.Category != "" {
		job.Category = input.Category
	}
	if input.SkillsRequired != nil {
		job.SetSkillsRequired(input.SkillsRequired)
	}

	if err = s.jobs.Update(ctx, job); err != nil {
		return nil, errors.Wrap(err, "failed to update job")
	}

	return job, nil
}

// Delete removes the job and announces it on the bus; dependent records are
// cleaned up by the cleanup subscriber after the primary delete succeeds.
func (s *Jobs) Delete(ctx context.Context, actor policy.Identity, id uint) error {

	job, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err = policy.CanMutateJob(actor, job); err != nil {
		return err
	}

	if err = s.jobs.Remove(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete job")
	}

	s.bus.Publish(events.JobDeletedTopic, events.JobDeleted{JobID: id})
	return nil
}
