package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dronefleet/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultReturnInterval is the sweep period used when none is configured.
const DefaultReturnInterval = 10 * time.Second

// ReturnDronesHandler runs one return sweep.
type ReturnDronesHandler interface {
	Handle(ctx context.Context, cmd commands.ReturnDronesCommand) (int, error)
}

// DroneReturnJob schedules the return sweep.
type DroneReturnJob struct {
	handler  ReturnDronesHandler
	interval time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewDroneReturnJob creates a job that sweeps every interval. A non-positive
// interval falls back to DefaultReturnInterval.
func NewDroneReturnJob(handler ReturnDronesHandler, interval time.Duration, logger *slog.Logger) *DroneReturnJob {
	if interval <= 0 {
		interval = DefaultReturnInterval
	}

	logger = logger.With("component", "drone_return_job")
	cronLogger := slogCronLogger{logger: logger}
	ctx, cancel := context.WithCancel(context.Background())

	return &DroneReturnJob{
		handler:  handler,
		interval: interval,
		cron: cron.New(
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start schedules the sweep. The first sweep runs one interval after Start.
func (j *DroneReturnJob) Start() error {
	if _, err := j.cron.AddFunc(fmt.Sprintf("@every %s", j.interval), func() {
		j.RunOnce(j.ctx)
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(j.ctx, "Drone return job started", "interval", j.interval.String())
	return nil
}

// RunOnce performs a single sweep and logs its outcome.
func (j *DroneReturnJob) RunOnce(ctx context.Context) {
	returned, err := j.handler.Handle(ctx, commands.NewReturnDronesCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Drone return sweep failed", "returned", returned, "error", err)
		return
	}

	if returned > 0 {
		j.logger.InfoContext(ctx, "Drones returning", "count", returned)
	}
}

// Stop prevents further ticks, cancels an in-flight sweep and waits for it to finish.
func (j *DroneReturnJob) Stop() {
	stopped := j.cron.Stop()
	j.cancel()
	<-stopped.Done()
	j.logger.InfoContext(context.Background(), "Drone return job stopped")
}
