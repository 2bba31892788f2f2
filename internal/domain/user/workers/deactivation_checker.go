package workers

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/courseflow/course-service/config"
	"github.com/courseflow/course-service/internal/domain/user/deps"
	"github.com/courseflow/course-service/internal/infrastructure/metrics"
)

// DeactivationChecker periodically disables accounts that have been
// inactive longer than the configured maximum.
type DeactivationChecker struct {
	users         deps.UserRepository
	metrics       *metrics.Metrics
	logger        zerolog.Logger
	interval      time.Duration
	inactivityMax time.Duration
	timeout       time.Duration

	done   chan struct{}
	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
}

func NewDeactivationChecker(
	users deps.UserRepository,
	cfg *config.DeactivationConfig,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *DeactivationChecker {
	ctx, cancel := context.WithCancel(context.Background())

	return &DeactivationChecker{
		users:         users,
		metrics:       m,
		logger:        logger.With().Str("component", "deactivation_checker").Logger(),
		interval:      cfg.CheckInterval,
		inactivityMax: cfg.InactivityMax,
		timeout:       60 * time.Second,
		done:          make(chan struct{}),
		ctx:           ctx,
		cancel:        cancel,
	}
}

// Start starts the deactivation checker worker
func (c *DeactivationChecker) Start() {
	c.logger.Info().
		Dur("interval", c.interval).
		Dur("inactivity_max", c.inactivityMax).
		Msg("starting deactivation checker worker")

	c.wg.Add(1)
	go c.run()
}

// Stop gracefully stops the deactivation checker worker
func (c *DeactivationChecker) Stop() {
	c.logger.Info().Msg("stopping deactivation checker worker")

	c.cancel()
	close(c.done)
	c.wg.Wait()

	c.logger.Info().Msg("deactivation checker worker stopped")
}

func (c *DeactivationChecker) run() {
	defer c.wg.Done()

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			c.checkInactiveAccounts()
		}
	}
}

func (c *DeactivationChecker) checkInactiveAccounts() {
	ctx, cancel := context.WithTimeout(c.ctx, c.timeout)
	defer cancel()

	cutoff := time.Now().UTC().Add(-c.inactivityMax)

	deactivated, err := c.users.DeactivateInactiveSince(ctx, cutoff)
	if err != nil {
		c.logger.Error().Err(err).
			Time("cutoff", cutoff).
			Msg("failed to deactivate inactive accounts")
		return
	}

	if deactivated > 0 {
		c.metrics.AccountsDeactivated.Add(float64(deactivated))
		c.logger.Info().
			Int64("deactivated", deactivated).
			Time("cutoff", cutoff).
			Msg("deactivation check cycle completed with findings")
	} else {
		c.logger.Debug().
			Time("cutoff", cutoff).
			Msg("deactivation check cycle completed")
	}
}
