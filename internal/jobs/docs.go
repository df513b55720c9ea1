// Package jobs provides scheduled background tasks built on github.com/robfig/cron/v3.
//
// # Available Jobs
//
// PurgeDeletedUsersJob removes users whose soft deletion is older than the
// retention period. Their orders and order items go with them; until then those
// orders are only hidden from reads.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(purgeHandler, "@every 1h", 720*time.Hour, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed pass is logged and retried on the next tick. An invalid schedule
// fails StartAll.
package jobs
