package wallet

import (
	"context"
	"time"

	"walletfeed/internal/adapters"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Scheduler runs the periodic account refresh that backs the balance
// shadowing resolver when no subscription data has arrived yet.
type Scheduler struct {
	accountClient   adapters.AccountClient
	service         *Service
	refreshInterval time.Duration
	// -----
	sched gocron.Scheduler
}

func NewScheduler(accountClient adapters.AccountClient, service *Service, refreshInterval time.Duration) *Scheduler {
	if refreshInterval <= 0 {
		refreshInterval = 30 * time.Second
	}
	return &Scheduler{accountClient: accountClient, service: service, refreshInterval: refreshInterval}
}

func (s *Scheduler) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	s.sched = scheduler

	job := func(jobCtx context.Context) {
		execID := uuid.NewString()
		if refreshErr := RefreshAccount(jobCtx, execID, s.accountClient, s.service); refreshErr != nil {
			logrus.Errorf("Account refresh job %s failed: %v", execID, refreshErr)
		}
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(s.refreshInterval),
		gocron.NewTask(job),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return err
	}

	scheduler.Start()

	// Stop scheduler when the provided context is canceled.
	go func() {
		<-ctx.Done()
		if sdErr := s.Shutdown(); sdErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", sdErr)
		}
	}()
	return nil
}

func (s *Scheduler) Shutdown() error {
	if s.sched == nil {
		return nil
	}
	err := s.sched.Shutdown()
	s.sched = nil
	return err
}
