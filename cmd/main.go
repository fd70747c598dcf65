package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/careerforge/jobboard/internal/api"
	"github.com/careerforge/jobboard/internal/clients/blobstore"
	"github.com/careerforge/jobboard/internal/clients/remotefeed"
	"github.com/careerforge/jobboard/internal/config"
	"github.com/careerforge/jobboard/internal/logger"
	"github.com/careerforge/jobboard/internal/metrics"
	"github.com/careerforge/jobboard/internal/repositories"
	"github.com/careerforge/jobboard/internal/services"
	log "github.com/sirupsen/logrus"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Get()

	logger.Setup(cfg.Logger)
	defer logger.Cleanup()

	metrics.StartMetricsServer(cfg.Server.MetricsPort)

	dbContext, err := repositories.NewDbContext(cfg.DB.ConnectionString)
	if err != nil {
		log.Fatalf("can't create db context: %v", err)
	}
	defer dbContext.Close()

	if err = dbContext.Migrate(); err != nil {
		log.Fatalf("can't migrate db context: %v", err)
	}

	users := repositories.NewUsersRepository(dbContext.DB)
	jobs := repositories.NewJobsRepository(dbContext.DB)
	applications := repositories.NewApplicationsRepository(dbContext.DB)
	savedJobs := repositories.NewSavedJobsRepository(dbContext.DB)

	bus := EventBus.New()

	authService := services.NewAuthService(users, cfg.Auth.JwtSecret, cfg.Auth.TokenTTL)
	jobsService := services.NewJobsService(jobs, bus)
	applicationsService := services.NewApplicationsService(applications, savedJobs, jobs)
	usersService := services.NewUsersService(users, jobs, applications)

	if _, err = services.NewCleanupService(bus, applications, savedJobs); err != nil {
		log.Fatalf("can't create cleanup service: %v", err)
	}

	feedClient := remotefeed.NewClient(cfg.Sync.FeedURL)
	feedClient.SetRateLimit(cfg.Sync.FeedMaxRequestsPerSecond)

	syncer, err := services.NewJobSyncer(feedClient, jobs)
	if err != nil {
		log.Fatalf("can't create job syncer: %v", err)
	}
	if cfg.Sync.Enabled {
		syncer.StartCron()
		defer syncer.StopCron()
	}

	server := api.NewServer(cfg.Server,
		api.NewAuthHandler(authService),
		api.NewJobHandler(jobsService, syncer),
		api.NewApplicationHandler(applicationsService),
		api.NewUserHandler(usersService),
		api.NewUploadHandler(blobstore.NewClient(cfg.Storage.UploadURL, cfg.Storage.APIKey)))
	go server.Run()

	<-ctx.Done()

	log.Info("Shutting down services...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	server.Stop(shutdownCtx)
	log.Info("Services stopped.")
}
