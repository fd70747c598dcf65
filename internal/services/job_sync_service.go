package services

import (
	"context"
	"strings"
	"time"

	"github.com/careerforge/jobboard/internal/clients/remotefeed"
	"github.com/careerforge/jobboard/internal/domain/models"
	"github.com/careerforge/jobboard/internal/logger"
	"github.com/careerforge/jobboard/internal/metrics"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

const (
	descriptionLimit       = 1000
	placeholderDescription = "No description provided"
	defaultFeedLocation    = "Remote"
	defaultFeedCategory    = "General"
)

type listingRetriever interface {
	GetListings(ctx context.Context) ([]remotefeed.Listing, error)
}

type syncJobRepository interface {
	Add(ctx context.Context, job *models.Job) error
	ExistsByTitleAndCompany(ctx context.Context, title, company string) (bool, error)
}

// JobSyncer imports listings from the external feed every six hours and on
// demand. A feed failure is logged and contained; the next run is unaffected.
type JobSyncer struct {
	feed listingRetriever
	jobs syncJobRepository
	cron *cron.Cron
}

func NewJobSyncer(feed listingRetriever, jobs syncJobRepository) (*JobSyncer, error) {

	s := &JobSyncer{
		feed: feed,
		jobs: jobs,
		cron: cron.New(),
	}

	_, err := s.cron.AddFunc("0 */6 * * *", s.runScheduled)
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (s *JobSyncer) StartCron() {
	s.cron.Start()
	log.Info("external job sync scheduled every 6 hours")
}

func (s *JobSyncer) StopCron() {
	s.cron.Stop()
}

func (s *JobSyncer) runScheduled() {
	if err := s.RunOnce(context.Background()); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeFeed).
			Errorf("scheduled external sync failed: %v", err)
	}
}

// RunOnce performs one full fetch-and-upsert pass. Listings already present
// under the same (title, company) pair are skipped.
func (s *JobSyncer) RunOnce(ctx context.Context) error {

	start := time.Now()
	log.Info("syncing external jobs...")

	listings, err := s.feed.GetListings(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to fetch external listings")
	}

	var inserted, skipped int
	for _, listing := range listings {

		exists, err := s.jobs.ExistsByTitleAndCompany(ctx, listing.Title, listing.Company)
		if err != nil {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
				Errorf("failed to check listing %q at %q: %v", listing.Title, listing.Company, err)
			continue
		}
		if exists {
			skipped++
			metrics.SkippedListingsCounter.Inc()
			continue
		}

		job := normalizeListing(listing)
		if err = s.jobs.Add(ctx, job); err != nil {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
				Errorf("failed to insert listing %q at %q: %v", listing.Title, listing.Company, err)
			continue
		}
		inserted++
		metrics.SyncedJobsCounter.Inc()
	}

	metrics.SyncDuration.Observe(time.Since(start).Seconds())
	log.Infof("external jobs synced: %v inserted, %v skipped as duplicates", inserted, skipped)
	return nil
}

// normalizeListing maps one feed entry onto a job record. External jobs never
// get a poster.
func normalizeListing(listing remotefeed.Listing) *models.Job {

	description := placeholderDescription
	if strings.TrimSpace(listing.Descr) != "" {
		description = truncateRunes(stripHTML(listing.Descr), descriptionLimit)
	}

	location := listing.Location
	if location == "" {
		location = defaultFeedLocation
	}

	category := listing.Category
	if category == "" {
		category = defaultFeedCategory
	}

	return &models.Job{
		Title:       listing.Title,
		Description: description,
		Company:     listing.Company,
		Location:    location,
		Salary:      parseSalary(listing.Salary),
		Category:    category,
	}
}
