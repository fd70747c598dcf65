package repositories

import (
	"context"
	"strings"

	"github.com/careerforge/jobboard/internal/domain/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// JobsPageSize is the fixed page size of the public job listing.
const JobsPageSize = 10

// JobFilter combines with AND; Keyword alone matches title OR company.
type JobFilter struct {
	Keyword   string
	Location  string
	MinSalary int
	Category  string
	Page      int
}

type Jobs struct {
	db *gorm.DB
}

func NewJobsRepository(db *gorm.DB) *Jobs {
	return &Jobs{db: db}
}

func (repo *Jobs) Add(ctx context.Context, job *models.Job) error {
	return repo.db.WithContext(ctx).Create(job).Error
}

func (repo *Jobs) GetByID(ctx context.Context, id uint) (*models.Job, error) {

	var job models.Job
	err := repo.db.WithContext(ctx).Preload("PostedBy").First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &job, nil
}

// Search returns one page of matching jobs, newest first, plus the total
// match count.
func (repo *Jobs) Search(ctx context.Context, filter JobFilter) ([]models.Job, int64, error) {

	query := repo.db.WithContext(ctx).Model(&models.Job{})

	if filter.Keyword != "" {
		keyword := "%" + strings.ToLower(filter.Keyword) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(company) LIKE ?", keyword, keyword)
	}
	if filter.Location != "" {
		query = query.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(filter.Location)+"%")
	}
	if filter.MinSalary > 0 {
		query = query.Where("salary >= ?", filter.MinSalary)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}

	var jobs []models.Job
	err := query.
		Preload("PostedBy").
		Order("created_at DESC").
		Limit(JobsPageSize).
		Offset(JobsPageSize * (page - 1)).
		Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

func (repo *Jobs) ExistsByTitleAndCompany(ctx context.Context, title, company string) (bool, error) {

	var count int64
	err := repo.db.WithContext(ctx).Model(&models.Job{}).
		Where("title = ? AND company = ?", title, company).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (repo *Jobs) Update(ctx context.Context, job *models.Job) error {
	return repo.db.WithContext(ctx).Save(job).Error
}

func (repo *Jobs) Remove(ctx context.Context, id uint) error {
	return repo.db.WithContext(ctx).Delete(&models.Job{}, "id = ?", id).Error
}

func (repo *Jobs) Count(ctx context.Context) (int64, error) {

	var count int64
	if err := repo.db.WithContext(ctx).Model(&models.Job{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *Jobs) CountByPoster(ctx context.Context, userID uint) (int64, error) {

	var count int64
	err := repo.db.WithContext(ctx).Model(&models.Job{}).
		Where("posted_by_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *Jobs) GetIDsByPoster(ctx context.Context, userID uint) ([]uint, error) {

	var ids []uint
	err := repo.db.WithContext(ctx).Model(&models.Job{}).
		Where("posted_by_id = ?", userID).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
