package services

import (
	"context"

	"github.com/asaskevich/EventBus"
	"github.com/careerforge/jobboard/internal/events"
	"github.com/careerforge/jobboard/internal/logger"
	log "github.com/sirupsen/logrus"
)

type applicationCleanupRepository interface {
	RemoveByJob(ctx context.Context, jobID uint) (int64, error)
}

type savedJobCleanupRepository interface {
	RemoveByJob(ctx context.Context, jobID uint) (int64, error)
}

// Cleanup removes the applications and saved jobs referencing a deleted job.
// The job row is already gone when the event fires; a failed dependent delete
// is logged and never rolls the primary delete back.
type Cleanup struct {
	applications applicationCleanupRepository
	savedJobs    savedJobCleanupRepository
}

func NewCleanupService(bus EventBus.Bus, applications applicationCleanupRepository,
	savedJobs savedJobCleanupRepository) (*Cleanup, error) {

	c := &Cleanup{applications: applications, savedJobs: savedJobs}
	if err := bus.Subscribe(events.JobDeletedTopic, c.onJobDeleted); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Cleanup) onJobDeleted(event events.JobDeleted) {

	removed, err := c.applications.RemoveByJob(context.Background(), event.JobID)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Warnf("failed to remove applications of deleted job %v: %v", event.JobID, err)
	} else {
		log.Infof("removed %v applications of deleted job %v", removed, event.JobID)
	}

	removed, err = c.savedJobs.RemoveByJob(context.Background(), event.JobID)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Warnf("failed to remove saved entries of deleted job %v: %v", event.JobID, err)
	} else {
		log.Infof("removed %v saved entries of deleted job %v", removed, event.JobID)
	}
}
