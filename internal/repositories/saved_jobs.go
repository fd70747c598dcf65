package repositories

import (
	"context"

	"github.com/careerforge/jobboard/internal/domain/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type SavedJobs struct {
	db *gorm.DB
}

func NewSavedJobsRepository(db *gorm.DB) *SavedJobs {
	return &SavedJobs{db: db}
}

func (repo *SavedJobs) Add(ctx context.Context, saved *models.SavedJob) error {
	return repo.db.WithContext(ctx).Create(saved).Error
}

func (repo *SavedJobs) GetByID(ctx context.Context, id uint) (*models.SavedJob, error) {

	var saved models.SavedJob
	err := repo.db.WithContext(ctx).First(&saved, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &saved, nil
}

func (repo *SavedJobs) GetByJobAndUser(ctx context.Context, jobID, userID uint) (*models.SavedJob, error) {

	var saved models.SavedJob
	err := repo.db.WithContext(ctx).
		First(&saved, "job_id = ? AND user_id = ?", jobID, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &saved, nil
}

func (repo *SavedJobs) GetByUser(ctx context.Context, userID uint) ([]models.SavedJob, error) {

	var saved []models.SavedJob
	err := repo.db.WithContext(ctx).
		Preload("Job").
		Preload("Job.PostedBy").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&saved).Error
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func (repo *SavedJobs) Remove(ctx context.Context, id uint) error {
	return repo.db.WithContext(ctx).Delete(&models.SavedJob{}, "id = ?", id).Error
}

func (repo *SavedJobs) RemoveByJob(ctx context.Context, jobID uint) (int64, error) {
	res := repo.db.WithContext(ctx).Delete(&models.SavedJob{}, "job_id = ?", jobID)
	return res.RowsAffected, res.Error
}
