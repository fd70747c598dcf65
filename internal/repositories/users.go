package repositories

import (
	"context"

	"github.com/careerforge/jobboard/internal/domain/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Users struct {
	db *gorm.DB
}

func NewUsersRepository(db *gorm.DB) *Users {
	return &Users{db: db}
}

func (repo *Users) Add(ctx context.Context, user *models.User) error {
	return repo.db.WithContext(ctx).Create(user).Error
}

func (repo *Users) GetByID(ctx context.Context, id uint) (*models.User, error) {

	var user models.User
	err := repo.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (repo *Users) GetByEmail(ctx context.Context, email string) (*models.User, error) {

	var user models.User
	err := repo.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (repo *Users) GetAll(ctx context.Context) ([]models.User, error) {

	var users []models.User
	if err := repo.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (repo *Users) Update(ctx context.Context, user *models.User) error {
	return repo.db.WithContext(ctx).Save(user).Error
}

func (repo *Users) Remove(ctx context.Context, id uint) error {
	return repo.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id).Error
}

func (repo *Users) Count(ctx context.Context) (int64, error) {

	var count int64
	if err := repo.db.WithContext(ctx).Model(&models.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
