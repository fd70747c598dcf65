package events

var JobDeletedTopic = "JobDeletedEvent"

// JobDeleted is published after a job row is removed; subscribers clean up
// the applications and saved jobs that referenced it.
type JobDeleted struct {
	JobID uint
}
