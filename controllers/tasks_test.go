package controllers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aadhi0612/Christ-Mom-Christ-Child-Game/models"
	"github.com/aadhi0612/Christ-Mom-Christ-Child-Game/store"
)

func taskParams(title string) store.CreateTaskParams {
	return store.CreateTaskParams{
		Title:       title,
		Description: "a task",
		Penalty:     "sing a carol",
	}
}

func participantAuth(t *testing.T, ms *memStore, name string) (string, string) {
	t.Helper()
	id, err := ms.CreateParticipant(context.Background(), name, name+"@example.com")
	require.NoError(t, err)
	return id, bearer(t, id, models.RoleParticipant)
}

func TestCreateTaskWithAssignment(t *testing.T) {
	ms := newMemStore()
	router := newTestRouter(ms)
	aliceID, auth := participantAuth(t, ms, "Alice")

	w := doJSON(t, router, http.MethodPost, "/api/tasks/create", auth, map[string]any{
		"title":         "Decorate the tree",
		"description":   "Living room tree, all of it",
		"penalty":       "Wear the elf hat for a day",
		"assignTo":      aliceID,
		"scheduledDate": "2025-12-01",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	taskID, ok := decodeBody(t, w)["task_id"].(string)
	require.True(t, ok)

	task := ms.tasks[taskID]
	require.NotNil(t, task)
	require.Equal(t, models.TaskStatusPending, task.Status)
	require.NotNil(t, task.AssignedToName)
	require.Equal(t, "Alice", *task.AssignedToName, "assignee name denormalized at creation")
	require.Equal(t, "2025-12-01", task.ScheduledDate.Format("2006-01-02"))
}

func TestCreateTaskDefaultsScheduleToNow(t *testing.T) {
	ms := newMemStore()
	router := newTestRouter(ms)
	_, auth := participantAuth(t, ms, "Alice")

	w := doJSON(t, router, http.MethodPost, "/api/tasks/create", auth, map[string]any{
		"title":       "Bake cookies",
		"description": "Two trays minimum",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	taskID := decodeBody(t, w)["task_id"].(string)
	task := ms.tasks[taskID]
	require.WithinDuration(t, time.Now().UTC(), task.ScheduledDate, 5*time.Second)
	require.Nil(t, task.AssignedTo)
}

func TestCreateTaskRejectsBadDate(t *testing.T) {
	ms := newMemStore()
	router := newTestRouter(ms)
	_, auth := participantAuth(t, ms, "Alice")

	w := doJSON(t, router, http.MethodPost, "/api/tasks/create", auth, map[string]any{
		"title":         "Bake cookies",
		"description":   "Two trays minimum",
		"scheduledDate": "01/12/2025",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserTasksHidesFutureAndSortsDescending(t *testing.T) {
	ms := newMemStore()
	router := newTestRouter(ms)
	aliceID, auth := participantAuth(t, ms, "Alice")

	mkTask := func(title string, when time.Time) {
		params := taskParams(title)
		params.AssignTo = &aliceID
		params.ScheduledDate = &when
		_, err := ms.CreateTask(context.Background(), params)
		require.NoError(t, err)
	}

	now := time.Now().UTC()
	mkTask("last week", now.Add(-7*24*time.Hour))
	mkTask("yesterday", now.Add(-24*time.Hour))
	mkTask("tomorrow", now.Add(24*time.Hour))

	w := doJSON(t, router, http.MethodGet, "/api/tasks/user", auth, nil)
	require.Equal(t, http.StatusOK, w.Code)

	tasks := decodeBody(t, w)["tasks"].([]any)
	require.Len(t, tasks, 2, "future tasks stay invisible")
	require.Equal(t, "yesterday", tasks[0].(map[string]any)["title"])
	require.Equal(t, "last week", tasks[1].(map[string]any)["title"])
}

func TestCompleteOnlyAffectsOwnTask(t *testing.T) {
	ms := newMemStore()
	router := newTestRouter(ms)
	aliceID, aliceToken := participantAuth(t, ms, "Alice")
	_, bobToken := participantAuth(t, ms, "Bob")

	params := taskParams("Hang the lights")
	params.AssignTo = &aliceID
	taskID, err := ms.CreateTask(context.Background(), params)
	require.NoError(t, err)

	// Bob completing Alice's task: reported success, nothing changes.
	w := doJSON(t, router, http.MethodPost, "/api/tasks/"+taskID+"/complete", bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.False(t, ms.tasks[taskID].Completed)
	require.NotEqual(t, models.TaskStatusCompleted, ms.tasks[taskID].Status)

	// Alice completing her own task sticks.
	w = doJSON(t, router, http.MethodPost, "/api/tasks/"+taskID+"/complete", aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	task := ms.tasks[taskID]
	require.True(t, task.Completed)
	require.Equal(t, models.TaskStatusCompleted, task.Status)
	require.NotNil(t, task.CompletedAt)
}

func TestAssignLastCallerWins(t *testing.T) {
	ms := newMemStore()
	router := newTestRouter(ms)
	_, aliceToken := participantAuth(t, ms, "Alice")
	bobID, bobToken := participantAuth(t, ms, "Bob")

	taskID, err := ms.CreateTask(context.Background(), taskParams("Plan the dinner"))
	require.NoError(t, err)

	w := doJSON(t, router, http.MethodPost, "/api/tasks/"+taskID+"/assign", aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// No ownership check: Bob simply takes it over.
	w = doJSON(t, router, http.MethodPost, "/api/tasks/"+taskID+"/assign", bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	task := ms.tasks[taskID]
	require.Equal(t, bobID, *task.AssignedTo)
	require.Equal(t, "Bob", *task.AssignedToName)
	require.Equal(t, models.TaskStatusInProgress, task.Status)
	require.NotNil(t, task.AssignedAt)
}

func TestAllTasksIsPublicAndCarriesAssigneeName(t *testing.T) {
	ms := newMemStore()
	router := newTestRouter(ms)
	aliceID, _ := participantAuth(t, ms, "Alice")

	params := taskParams("Stuff stockings")
	params.AssignTo = &aliceID
	_, err := ms.CreateTask(context.Background(), params)
	require.NoError(t, err)

	w := doJSON(t, router, http.MethodGet, "/api/tasks/all", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	tasks := decodeBody(t, w)["tasks"].([]any)
	require.Len(t, tasks, 1)
	entry := tasks[0].(map[string]any)
	require.Equal(t, "Alice", entry["assigned_to_name"])
	require.Equal(t, "sing a carol", entry["penalty"])
}
