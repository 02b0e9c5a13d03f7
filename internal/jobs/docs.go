// Package jobs runs the scheduled background work of the drone fleet using
// github.com/robfig/cron/v3.
//
// # Available Jobs
//
// DroneReturnJob runs the return sweep on a fixed interval (10s by default):
// every DELIVERED drone is moved to RETURNING and loses 10 battery points.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(returnDronesHandler, 10*time.Second, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Ticks never overlap. A tick that fires while the previous sweep is still
// running is skipped and logged by cron.
//
// # Error Handling
//
// Per-drone failures are logged and do not stop the sweep or the schedule.
package jobs
