package services

import (
	"context"
	"strconv"
	"time"

	"github.com/careerforge/jobboard/internal/domain/errs"
	"github.com/careerforge/jobboard/internal/domain/models"
	"github.com/careerforge/jobboard/internal/domain/policy"
	gocache "github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
)

type userAdminRepository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
	Remove(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type statsJobRepository interface {
	Count(ctx context.Context) (int64, error)
	CountByPoster(ctx context.Context, userID uint) (int64, error)
	GetIDsByPoster(ctx context.Context, userID uint) ([]uint, error)
}

type statsApplicationRepository interface {
	Count(ctx context.Context) (int64, error)
	CountByJobs(ctx context.Context, jobIDs []uint) (int64, error)
}

type AdminStats struct {
	TotalUsers        int64 `json:"totalUsers"`
	TotalJobs         int64 `json:"totalJobs"`
	TotalApplications int64 `json:"totalApplications"`
}

type RecruiterStats struct {
	PostedJobsCount   int64 `json:"postedJobsCount"`
	ApplicationsCount int64 `json:"applicationsCount"`
}

const adminStatsCacheKey = "admin_stats"

type Users struct {
	users        userAdminRepository
	jobs         statsJobRepository
	applications statsApplicationRepository
	cache        *gocache.Cache
}

func NewUsersService(users userAdminRepository, jobs statsJobRepository,
	applications statsApplicationRepository) *Users {
	return &Users{
		users:        users,
		jobs:         jobs,
		applications: applications,
		cache:        gocache.New(30*time.Second, time.Minute),
	}
}

func (s *Users) List(ctx context.Context, actor policy.Identity) ([]models.User, error) {

	if err := policy.CanAdministerUsers(actor); err != nil {
		return nil, err
	}

	users, err := s.users.GetAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}
	return users, nil
}

func (s *Users) Get(ctx context.Context, actor policy.Identity, id uint) (*models.User, error) {

	if err := policy.CanAdministerUsers(actor); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user")
	}
	if user == nil {
		return nil, errs.NotFoundf("user not found")
	}
	return user, nil
}

// Delete removes a non-admin account; deleting an admin is refused.
func (s *Users) Delete(ctx context.Context, actor policy.Identity, id uint) error {

	user, err := s.Get(ctx, actor, id)
	if err != nil {
		return err
	}

	if err = policy.CanDeleteUser(actor, user); err != nil {
		return err
	}

	if err = s.users.Remove(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete user")
	}
	return nil
}

func (s *Users) AdminStats(ctx context.Context) (*AdminStats, error) {

	if cached, found := s.cache.Get(adminStatsCacheKey); found {
		stats := cached.(AdminStats)
		return &stats, nil
	}

	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}
	totalJobs, err := s.jobs.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count jobs")
	}
	totalApplications, err := s.applications.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count applications")
	}

	stats := AdminStats{
		TotalUsers:        totalUsers,
		TotalJobs:         totalJobs,
		TotalApplications: totalApplications,
	}
	s.cache.Set(adminStatsCacheKey, stats, gocache.DefaultExpiration)
	return &stats, nil
}

func (s *Users) RecruiterStats(ctx context.Context, actor policy.Identity) (*RecruiterStats, error) {

	cacheKey := "recruiter_stats_" + strconv.FormatUint(uint64(actor.UserID), 10)
	if cached, found := s.cache.Get(cacheKey); found {
		stats := cached.(RecruiterStats)
		return &stats, nil
	}

	postedJobs, err := s.jobs.CountByPoster(ctx, actor.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count posted jobs")
	}

	jobIDs, err := s.jobs.GetIDsByPoster(ctx, actor.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get posted job ids")
	}

	applications, err := s.applications.CountByJobs(ctx, jobIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count applications")
	}

	stats := RecruiterStats{PostedJobsCount: postedJobs, ApplicationsCount: applications}
	s.cache.Set(cacheKey, stats, gocache.DefaultExpiration)
	return &stats, nil
}
