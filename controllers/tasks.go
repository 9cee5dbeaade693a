package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aadhi0612/Christ-Mom-Christ-Child-Game/models"
	"github.com/aadhi0612/Christ-Mom-Christ-Child-Game/store"
)

const dateLayout = "2006-01-02"

// TaskController handles the task board.
type TaskController struct {
	tasks TaskStore
}

// NewTaskController wires the task ledger into the task handlers.
func NewTaskController(tasks TaskStore) *TaskController {
	return &TaskController{tasks: tasks}
}

// CreateTaskInput is the request body for creating a task. The
// scheduled date is a plain calendar date.
type CreateTaskInput struct {
	Title         string  `json:"title" binding:"required"`
	Description   string  `json:"description" binding:"required"`
	Penalty       string  `json:"penalty"`
	AssignTo      *string `json:"assignTo"`
	ScheduledDate *string `json:"scheduledDate"`
}

// Create adds a task, optionally pre-assigned and scheduled.
func (tc *TaskController) Create(c *gin.Context) {
	var input CreateTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	params := store.CreateTaskParams{
		Title:       input.Title,
		Description: input.Description,
		Penalty:     input.Penalty,
		AssignTo:    input.AssignTo,
	}
	if input.ScheduledDate != nil && *input.ScheduledDate != "" {
		scheduled, err := time.Parse(dateLayout, *input.ScheduledDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		params.ScheduledDate = &scheduled
	}

	ctx, cancel := storeCtx()
	defer cancel()

	taskID, err := tc.tasks.CreateTask(ctx, params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Task created successfully",
		"task_id": taskID,
	})
}

// UserTasks lists the caller's tasks whose scheduled date has arrived,
// most recently scheduled first.
func (tc *TaskController) UserTasks(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	ctx, cancel := storeCtx()
	defer cancel()

	tasks, err := tc.tasks.UserTasks(ctx, uid)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]gin.H, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, taskJSON(task, false))
	}

	c.JSON(http.StatusOK, gin.H{"tasks": out})
}

// All lists every task with the denormalized assignee name. Public: the
// whole group can see the board.
func (tc *TaskController) All(c *gin.Context) {
	ctx, cancel := storeCtx()
	defer cancel()

	tasks, err := tc.tasks.AllTasks(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]gin.H, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, taskJSON(task, true))
	}

	c.JSON(http.StatusOK, gin.H{"tasks": out})
}

// Assign lets the caller pick up a task. Last caller wins; there is no
// check against a prior assignee.
func (tc *TaskController) Assign(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	ctx, cancel := storeCtx()
	defer cancel()

	if err := tc.tasks.AssignTask(ctx, c.Param("id"), uid); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task assigned successfully"})
}

// Complete marks the caller's task done. If the task is not currently
// assigned to the caller the update matches nothing and the response is
// still a success.
func (tc *TaskController) Complete(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	ctx, cancel := storeCtx()
	defer cancel()

	if err := tc.tasks.MarkTaskCompleted(ctx, c.Param("id"), uid); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task marked as completed"})
}

func taskJSON(task models.Task, withAssignee bool) gin.H {
	out := gin.H{
		"id":             task.ID,
		"title":          task.Title,
		"description":    task.Description,
		"penalty":        task.Penalty,
		"status":         task.Status,
		"completed":      task.Completed,
		"scheduled_date": task.ScheduledDate.Format(dateLayout),
	}
	if withAssignee {
		out["assigned_to_name"] = task.AssignedToName
	}
	return out
}
