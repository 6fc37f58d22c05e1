// Package jobs provides the scheduled sweeps that drive the booking lifecycle.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic operations the engine is built around.
//
// # Available Jobs
//
// 1. ActivationJob - opens due Scheduled bookings for technician matching
// 2. ReminderJob - one instance per stage (24h / 1h / 15min), delivers visit reminders
// 3. NoShowJob - releases bookings whose technician never showed up
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(activateHandler, remindHandler, recoverHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Every sweep's selection window is wider than its tick interval, so a missed
// tick is recovered by the next one. Cadences follow how close each sweep's
// deadline is: the activation, 15-minute reminder, and no-show sweeps run every
// minute, the 1-hour reminder every 5 minutes, and the 24-hour reminder every
// 15 minutes.
//
// # Concurrency
//
// Ticks are fired without skip-if-running protection and multiple scheduler
// instances may run the same sweep at once. That is safe: every transition a
// sweep applies goes through a conditional store update, so duplicate work
// collapses to no-ops rather than double notifications or double broadcasts.
//
// # Error Handling
//
// - A sweep returns an error only when its candidate query fails; that is logged per tick
// - Per-booking failures are handled inside the command handlers and never abort a tick
// - Failed job starts will stop any already running jobs
package jobs
