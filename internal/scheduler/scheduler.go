package scheduler

import (
	"sync"
	"time"

	"chatscan/backend/internal/logger"
	"chatscan/backend/internal/ratelimit"
)

// Scheduler periodically evicts fully expired client windows from the
// rate limiter so long-idle identities do not pin memory.
type Scheduler struct {
	limiter  *ratelimit.Limiter
	interval time.Duration
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

func New(limiter *ratelimit.Limiter, interval time.Duration) *Scheduler {
	return &Scheduler{
		limiter:  limiter,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.run()
	logger.Info("sweep scheduler started", "interval", s.interval)
}

func (s *Scheduler) Stop() {
	close(s.stopCh)
	s.wg.Wait()
	logger.Info("sweep scheduler stopped")
}

func (s *Scheduler) run() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopCh:
			return
		}
	}
}

func (s *Scheduler) sweep() {
	evicted := s.limiter.Sweep(time.Now())
	if evicted > 0 {
		logger.Debug("swept idle rate limit clients", "evicted", evicted)
	}
}
