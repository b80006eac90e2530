package flow

import "time"

// Task is a pending deferred action.
type Task interface {
	// Stop cancels the task. It reports false if the task already ran or was stopped.
	Stop() bool
}

// Scheduler runs f once after d has elapsed.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Task
}

type wallClock struct{}

func (wallClock) AfterFunc(d time.Duration, f func()) Task {
	return time.AfterFunc(d, f)
}

// WallClock schedules tasks on real timers.
var WallClock Scheduler = wallClock{}
