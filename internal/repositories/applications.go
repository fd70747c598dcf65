package repositories

import (
	"context"

	"github.com/careerforge/jobboard/internal/domain/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Applications struct {
	db *gorm.DB
}

func NewApplicationsRepository(db *gorm.DB) *Applications {
	return &Applications{db: db}
}

func (repo *Applications) Add(ctx context.Context, application *models.Application) error {
	return repo.db.WithContext(ctx).Create(application).Error
}

func (repo *Applications) GetByID(ctx context.Context, id uint) (*models.Application, error) {

	var application models.Application
	err := repo.db.WithContext(ctx).
		Preload("Job").
		Preload("Applicant").
		First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &application, nil
}

func (repo *Applications) GetByJobAndApplicant(ctx context.Context, jobID, applicantID uint) (*models.Application, error) {

	var application models.Application
	err := repo.db.WithContext(ctx).
		First(&application, "job_id = ? AND applicant_id = ?", jobID, applicantID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &application, nil
}

func (repo *Applications) GetByApplicant(ctx context.Context, applicantID uint) ([]models.Application, error) {

	var applications []models.Application
	err := repo.db.WithContext(ctx).
		Preload("Job").
		Preload("Job.PostedBy").
		Where("applicant_id = ?", applicantID).
		Order("applied_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

func (repo *Applications) GetByJob(ctx context.Context, jobID uint) ([]models.Application, error) {

	var applications []models.Application
	err := repo.db.WithContext(ctx).
		Preload("Applicant").
		Where("job_id = ?", jobID).
		Order("applied_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

func (repo *Applications) Update(ctx context.Context, application *models.Application) error {
	return repo.db.WithContext(ctx).Save(application).Error
}

func (repo *Applications) Remove(ctx context.Context, id uint) error {
	return repo.db.WithContext(ctx).Delete(&models.Application{}, "id = ?", id).Error
}

func (repo *Applications) RemoveByJob(ctx context.Context, jobID uint) (int64, error) {
	res := repo.db.WithContext(ctx).Delete(&models.Application{}, "job_id = ?", jobID)
	return res.RowsAffected, res.Error
}

func (repo *Applications) Count(ctx context.Context) (int64, error) {

	var count int64
	if err := repo.db.WithContext(ctx).Model(&models.Application{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *Applications) CountByJobs(ctx context.Context, jobIDs []uint) (int64, error) {

	if len(jobIDs) == 0 {
		return 0, nil
	}

	var count int64
	err := repo.db.WithContext(ctx).Model(&models.Application{}).
		Where("job_id IN ?", jobIDs).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
