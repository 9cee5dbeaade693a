package models

import "time"

// Task statuses.
const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in-progress"
	TaskStatusCompleted  = "completed"
)

// Task is a chore on the game board. AssignedToName is denormalized at
// write time and is not refreshed when the user is later renamed.
type Task struct {
	ID             string     `bson:"_id" json:"id"`
	Title          string     `bson:"title" json:"title"`
	Description    string     `bson:"description" json:"description"`
	Penalty        string     `bson:"penalty" json:"penalty"` // shown if the task is missed
	AssignedTo     *string    `bson:"assigned_to" json:"assigned_to,omitempty"`
	AssignedToName *string    `bson:"assigned_to_name" json:"assigned_to_name"`
	Status         string     `bson:"status" json:"status"`
	ScheduledDate  time.Time  `bson:"scheduled_date" json:"-"`
	Completed      bool       `bson:"completed" json:"completed"`
	CompletedAt    *time.Time `bson:"completed_at" json:"completed_at,omitempty"`
	AssignedAt     *time.Time `bson:"assigned_at,omitempty" json:"-"`
	CreatedAt      time.Time  `bson:"created_at" json:"created_at"`
}
