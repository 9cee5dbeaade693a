// Package controllers holds the HTTP handlers. Each controller receives
// its store dependencies through its constructor; handlers translate a
// request into exactly one component call and map the result to JSON.
package controllers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aadhi0612/Christ-Mom-Christ-Child-Game/models"
	"github.com/aadhi0612/Christ-Mom-Christ-Child-Game/santa"
	"github.com/aadhi0612/Christ-Mom-Christ-Child-Game/store"
)

// UserStore is the credential-store surface the controllers use.
type UserStore interface {
	CreateAdmin(ctx context.Context, fullName, email string) (string, string, error)
	CreateParticipant(ctx context.Context, fullName, email string) (string, error)
	Verify(ctx context.Context, email, password string) (*models.User, error)
	UpdatePassword(ctx context.Context, userID, newPassword string) error
	GetByID(ctx context.Context, userID string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ListParticipants(ctx context.Context) ([]models.User, error)
	DeleteParticipants(ctx context.Context) (int64, error)
}

// TaskStore is the task-ledger surface the controllers use.
type TaskStore interface {
	CreateTask(ctx context.Context, params store.CreateTaskParams) (string, error)
	AssignTask(ctx context.Context, taskID, userID string) error
	MarkTaskCompleted(ctx context.Context, taskID, userID string) error
	AllTasks(ctx context.Context) ([]models.Task, error)
	UserTasks(ctx context.Context, userID string) ([]models.Task, error)
	DeleteAllTasks(ctx context.Context) error
}

// PairingStore is the pairing-row surface the controllers use.
type PairingStore interface {
	ListPairings(ctx context.Context) ([]models.Pairing, error)
	SantaFor(ctx context.Context, userID string) (*models.User, error)
	DeleteAllPairings(ctx context.Context) error
}

// RevealStore gates disclosure of pairing identities.
type RevealStore interface {
	RevealStatus(ctx context.Context) (bool, error)
	ToggleReveal(ctx context.Context) (bool, error)
}

// PairingEngine regenerates the full pairing set.
type PairingEngine interface {
	Regenerate(ctx context.Context) ([]santa.Pair, error)
}

// storeCtx creates a short-lived ctx for DB operations.
func storeCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 5*time.Second)
}

// currentUserID reads the authenticated user id set by the Auth middleware.
func currentUserID(c *gin.Context) (string, bool) {
	uidIf, exists := c.Get("userID")
	if !exists {
		return "", false
	}
	uid, ok := uidIf.(string)
	return uid, ok && uid != ""
}
