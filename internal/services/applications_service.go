package services

import (
	"context"
	"time"

	"github.com/careerforge/jobboard/internal/domain/errs"
	"github.com/careerforge/jobboard/internal/domain/models"
	"github.com/careerforge/jobboard/internal/domain/policy"
	"github.com/pkg/errors"
)

type applicationRepository interface {
	Add(ctx context.Context, application *models.Application) error
	GetByID(ctx context.Context, id uint) (*models.Application, error)
	GetByJobAndApplicant(ctx context.Context, jobID, applicantID uint) (*models.Application, error)
	GetByApplicant(ctx context.Context, applicantID uint) ([]models.Application, error)
	GetByJob(ctx context.Context, jobID uint) ([]models.Application, error)
	Update(ctx context.Context, application *models.Application) error
	Remove(ctx context.Context, id uint) error
}

type savedJobRepository interface {
	Add(ctx context.Context, saved *models.SavedJob) error
	GetByID(ctx context.Context, id uint) (*models.SavedJob, error)
	GetByJobAndUser(ctx context.Context, jobID, userID uint) (*models.SavedJob, error)
	GetByUser(ctx context.Context, userID uint) ([]models.SavedJob, error)
	Remove(ctx context.Context, id uint) error
}

type applicationJobRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Job, error)
}

type Applications struct {
	applications applicationRepository
	savedJobs    savedJobRepository
	jobs         applicationJobRepository
}

func NewApplicationsService(applications applicationRepository, savedJobs savedJobRepository,
	jobs applicationJobRepository) *Applications {
	return &Applications{applications: applications, savedJobs: savedJobs, jobs: jobs}
}

// Apply files an application; a second apply for the same job conflicts.
func (s *Applications) Apply(ctx context.Context, actor policy.Identity, jobID uint) (*models.Application, error) {

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get job")
	}
	if job == nil {
		return nil, errs.NotFoundf("job not found")
	}

	existing, err := s.applications.GetByJobAndApplicant(ctx, jobID, actor.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check existing application")
	}
	if existing != nil {
		return nil, errs.Conflictf("you have already applied for this job")
	}

	application := &models.Application{
		JobID:       jobID,
		ApplicantID: actor.UserID,
		Status:      models.StatusPending,
		AppliedAt:   time.Now(),
	}
	if err = s.applications.Add(ctx, application); err != nil {
		return nil, errors.Wrap(err, "failed to create application")
	}

	return application, nil
}

func (s *Applications) MyApplications(ctx context.Context, actor policy.Identity) ([]models.Application, error) {

	applications, err := s.applications.GetByApplicant(ctx, actor.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get applications")
	}
	return applications, nil
}

func (s *Applications) Withdraw(ctx context.Context, actor policy.Identity, id uint) error {

	application, err := s.applications.GetByID(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to get application")
	}
	if application == nil {
		return errs.NotFoundf("application not found")
	}

	if err = policy.CanWithdrawApplication(actor, application); err != nil {
		return err
	}

	if err = s.applications.Remove(ctx, id); err != nil {
		return errors.Wrap(err, "failed to remove application")
	}
	return nil
}

func (s *Applications) Applicants(ctx context.Context, actor policy.Identity, jobID uint) ([]models.Application, error) {

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get job")
	}
	if job == nil {
		return nil, errs.NotFoundf("job not found")
	}

	if err = policy.CanReviewApplications(actor, job); err != nil {
		return nil, err
	}

	applications, err := s.applications.GetByJob(ctx, jobID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get applicants")
	}
	return applications, nil
}

func (s *Applications) UpdateStatus(ctx context.Context, actor policy.Identity, id uint, status string) (*models.Application, error) {

	newStatus, ok := models.ToApplicationStatus(status)
	if !ok {
		return nil, errs.InvalidInputf("invalid status: %s", status)
	}

	application, err := s.applications.GetByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get application")
	}
	if application == nil {
		return nil, errs.NotFoundf("application not found")
	}

	if err = policy.CanReviewApplications(actor, &application.Job); err != nil {
		return nil, err
	}

	application.Status = newStatus
	if err = s.applications.Update(ctx, application); err != nil {
		return nil, errors.Wrap(err, "failed to update application")
	}

	return application, nil
}

// SaveJob bookmarks a job; saving the same job twice conflicts.
func (s *Applications) SaveJob(ctx context.Context, actor policy.Identity, jobID uint) (*models.SavedJob, error) {

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get job")
	}
	if job == nil {
		return nil, errs.NotFoundf("job not found")
	}

	existing, err := s.savedJobs.GetByJobAndUser(ctx, jobID, actor.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check saved job")
	}
	if existing != nil {
		return nil, errs.Conflictf("job is already saved")
	}

	saved := &models.SavedJob{JobID: jobID, UserID: actor.UserID}
	if err = s.savedJobs.Add(ctx, saved); err != nil {
		return nil, errors.Wrap(err, "failed to save job")
	}

	return saved, nil
}

func (s *Applications) SavedJobs(ctx context.Context, actor policy.Identity) ([]models.SavedJob, error) {

	saved, err := s.savedJobs.GetByUser(ctx, actor.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get saved jobs")
	}
	return saved, nil
}

func (s *Applications) RemoveSavedJob(ctx context.Context, actor policy.Identity, id uint) error {

	saved, err := s.savedJobs.GetByID(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to get saved job")
	}
	if saved == nil {
		return errs.NotFoundf("saved job not found")
	}

	if err = policy.CanRemoveSavedJob(actor, saved); err != nil {
		return err
	}

	if err = s.savedJobs.Remove(ctx, id); err != nil {
		return errors.Wrap(err, "failed to remove saved job")
	}
	return nil
}
