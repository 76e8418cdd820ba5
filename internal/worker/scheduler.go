package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/kingrain94/rental-manager-api/pkg/logger"
	"github.com/kingrain94/rental-manager-api/pkg/utils"
)

//go:generate mockery --name Enqueuer --output ../mocks
type Enqueuer interface {
	SendReconcileMessage(ctx context.Context, reason string) error
	SendArchiveMessage(ctx context.Context, year, month int) error
}

// Scheduler enqueues the nightly reconcile sweep and, on the first of every month,
// the archive of the month that just closed.
type Scheduler struct {
	scheduler gocron.Scheduler
	enqueuer  Enqueuer
	location  *time.Location
	logger    *logger.Logger
	now       func() time.Time
}

func NewScheduler(enqueuer Enqueuer, location *time.Location, logger *logger.Logger) (*Scheduler, error) {
	s, err := gocron.NewScheduler(gocron.WithLocation(location))
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	sch := &Scheduler{
		scheduler: s,
		enqueuer:  enqueuer,
		location:  location,
		logger:    logger,
		now:       time.Now,
	}

	_, err = s.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(3, 0, 0))),
		gocron.NewTask(sch.EnqueueReconcile),
		gocron.WithName("nightly-reconcile"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to schedule reconcile job: %w", err)
	}

	_, err = s.NewJob(
		gocron.MonthlyJob(1, gocron.NewDaysOfTheMonth(1), gocron.NewAtTimes(gocron.NewAtTime(1, 0, 0))),
		gocron.NewTask(sch.EnqueueArchive),
		gocron.WithName("monthly-archive"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to schedule archive job: %w", err)
	}

	return sch, nil
}

func (s *Scheduler) Start() {
	s.scheduler.Start()
	s.logger.Infof("Scheduler started (reconcile 03:00, archive 01:00 on day 1, %s)", s.location)
}

func (s *Scheduler) Stop() error {
	return s.scheduler.Shutdown()
}

func (s *Scheduler) EnqueueReconcile() {
	if err := s.enqueuer.SendReconcileMessage(context.Background(), "scheduled"); err != nil {
		s.logger.Errorf("Failed to enqueue scheduled reconcile: %v", err)
	}
}

// EnqueueArchive requests the archive of the month before now in the report timezone
func (s *Scheduler) EnqueueArchive() {
	year, month := utils.PreviousMonth(s.now().In(s.location))
	if err := s.enqueuer.SendArchiveMessage(context.Background(), year, int(month)); err != nil {
		s.logger.Errorf("Failed to enqueue archive for %04d-%02d: %v", year, month, err)
		return
	}
	s.logger.Infof("Enqueued archive for %04d-%02d", year, month)
}
