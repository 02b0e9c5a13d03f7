package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// JobManager starts and stops every scheduled job of the application.
type JobManager struct {
	droneReturnJob *DroneReturnJob
}

func NewJobManager(
	returnDronesHandler ReturnDronesHandler,
	returnInterval time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		droneReturnJob: NewDroneReturnJob(returnDronesHandler, returnInterval, logger),
	}
}

func (jm *JobManager) StartAll() error {
	if err := jm.droneReturnJob.Start(); err != nil {
		return fmt.Errorf("failed to start drone return job: %w", err)
	}

	return nil
}

// StopAll stops all jobs and waits for running sweeps to finish.
func (jm *JobManager) StopAll() {
	jm.droneReturnJob.Stop()
}
