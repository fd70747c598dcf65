package repositories

import (
	"fmt"

	"github.com/careerforge/jobboard/internal/domain/models"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DbContext struct {
	DB *gorm.DB
}

func NewDbContext(connectionString string) (*DbContext, error) {
	db, err := gorm.Open(sqlite.Open(connectionString), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, err
	}

	return &DbContext{DB: db}, nil
}

func (c *DbContext) Migrate() error {
	err := c.DB.AutoMigrate(models.User{})
	if err != nil {
		return fmt.Errorf("failed to migrate User entity: %w", err)
	}

	err = c.DB.AutoMigrate(models.Job{})
	if err != nil {
		return fmt.Errorf("failed to migrate Job entity: %w", err)
	}

	err = c.DB.AutoMigrate(models.Application{})
	if err != nil {
		return fmt.Errorf("failed to migrate Application entity: %w", err)
	}

	err = c.DB.AutoMigrate(models.SavedJob{})
	if err != nil {
		return fmt.Errorf("failed to migrate SavedJob entity: %w", err)
	}

	// Storage-level uniqueness closes the check-then-create race on
	// duplicate applies and saves.
	if err = c.DB.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_job_applicant ON applications (job_id, applicant_id); " +
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_job_saver ON saved_jobs (job_id, user_id);").
		Error; err != nil {
		return fmt.Errorf("failed to create uniqueness indexes: %w", err)
	}

	return nil
}

func (c *DbContext) Close() error {
	db, err := c.DB.DB()
	if err != nil {
		return err
	}

	return db.Close()
}
