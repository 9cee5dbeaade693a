package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aadhi0612/Christ-Mom-Christ-Child-Game/models"
)

// CreateTaskParams carries the optional pieces of a new task.
type CreateTaskParams struct {
	Title         string
	Description   string
	Penalty       string
	AssignTo      *string
	ScheduledDate *time.Time
}

// CreateTask inserts a task. The scheduled date defaults to now. When a
// pre-assignment is given the assignee's current full name is copied
// into the record; it is not kept in sync with later renames.
func (s *Store) CreateTask(ctx context.Context, params CreateTaskParams) (string, error) {
	task := models.Task{
		ID:            uuid.NewString(),
		Title:         params.Title,
		Description:   params.Description,
		Penalty:       params.Penalty,
		Status:        models.TaskStatusPending,
		ScheduledDate: now(),
		CreatedAt:     now(),
	}
	if params.ScheduledDate != nil {
		task.ScheduledDate = *params.ScheduledDate
	}

	if params.AssignTo != nil {
		assignee, err := s.GetByID(ctx, *params.AssignTo)
		if err != nil {
			return "", err
		}
		task.AssignedTo = params.AssignTo
		task.AssignedToName = &assignee.FullName
	}

	if _, err := s.tasks.InsertOne(ctx, task); err != nil {
		return "", fmt.Errorf("insert task: %w", err)
	}
	return task.ID, nil
}

// AssignTask hands a task to a user. There is no ownership check: the
// last caller wins. The denormalized assignee name is refreshed so the
// public board shows who holds the task.
func (s *Store) AssignTask(ctx context.Context, taskID, userID string) error {
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	assignedAt := now()
	res, err := s.tasks.UpdateByID(ctx, taskID, bson.M{"$set": bson.M{
		"assigned_to":      userID,
		"assigned_to_name": user.FullName,
		"status":           models.TaskStatusInProgress,
		"assigned_at":      assignedAt,
	}})
	if err != nil {
		return fmt.Errorf("assign task: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkTaskCompleted flips a task to completed, but only if it is
// currently assigned to userID. The filter doubles as the ownership
// check: when it matches nothing (wrong owner or missing task) the call
// still reports success, and the caller cannot tell the two apart.
func (s *Store) MarkTaskCompleted(ctx context.Context, taskID, userID string) error {
	completedAt := now()
	_, err := s.tasks.UpdateOne(ctx,
		bson.M{"_id": taskID, "assigned_to": userID},
		bson.M{"$set": bson.M{
			"completed":    true,
			"completed_at": completedAt,
			"status":       models.TaskStatusCompleted,
		}},
	)
	if err != nil {
		return fmt.Errorf("complete task: %w", err)
	}
	return nil
}

// AllTasks returns every task, unordered.
func (s *Store) AllTasks(ctx context.Context) ([]models.Task, error) {
	cursor, err := s.tasks.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer cursor.Close(ctx)

	tasks := []models.Task{}
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}
	return tasks, nil
}

// UserTasks returns the tasks assigned to userID whose scheduled date
// has arrived, most recently scheduled first. Future tasks stay
// invisible until their date.
func (s *Store) UserTasks(ctx context.Context, userID string) ([]models.Task, error) {
	filter := bson.M{
		"assigned_to":    userID,
		"scheduled_date": bson.M{"$lte": now()},
	}
	opts := options.Find().SetSort(bson.D{{Key: "scheduled_date", Value: -1}})

	cursor, err := s.tasks.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list user tasks: %w", err)
	}
	defer cursor.Close(ctx)

	tasks := []models.Task{}
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, fmt.Errorf("decode user tasks: %w", err)
	}
	return tasks, nil
}

// DeleteAllTasks wipes the task collection. Used by clear-data.
func (s *Store) DeleteAllTasks(ctx context.Context) error {
	if _, err := s.tasks.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("delete tasks: %w", err)
	}
	return nil
}
