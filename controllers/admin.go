package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/aadhi0612/Christ-Mom-Christ-Child-Game/utils"
)

// AdminController handles the admin-only game management endpoints.
type AdminController struct {
	users    UserStore
	tasks    TaskStore
	pairings PairingStore
	reveal   RevealStore
	engine   PairingEngine
}

// NewAdminController wires the stores and the pairing engine into the
// admin handlers.
func NewAdminController(users UserStore, tasks TaskStore, pairings PairingStore, reveal RevealStore, engine PairingEngine) *AdminController {
	return &AdminController{users: users, tasks: tasks, pairings: pairings, reveal: reveal, engine: engine}
}

// RegisterUsersInput is the bulk-registration request body.
type RegisterUsersInput struct {
	Users []struct {
		FullName string `json:"full_name"`
		Email    string `json:"email"`
	} `json:"users"`
}

// RegisterUsers bulk-creates participants. A failing row does not block
// the others; any failure makes the whole response a 400 that still
// carries the rows that went through.
func (ad *AdminController) RegisterUsers(c *gin.Context) {
	var input RegisterUsersInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := storeCtx()
	defer cancel()

	registered := []gin.H{}
	details := []string{}

	for i, row := range input.Users {
		fullName := strings.TrimSpace(row.FullName)
		email := strings.TrimSpace(row.Email)

		if fullName == "" || email == "" {
			details = append(details, fmt.Sprintf("Row %d: Full name and email are required", i+1))
			continue
		}
		if !utils.ValidateEmail(email) {
			details = append(details, fmt.Sprintf("Row %d: invalid email address", i+1))
			continue
		}

		userID, err := ad.users.CreateParticipant(ctx, fullName, email)
		if err != nil {
			details = append(details, fmt.Sprintf("Row %d: %v", i+1, err))
			continue
		}

		registered = append(registered, gin.H{
			"id":        userID,
			"full_name": fullName,
			"email":     email,
			"note":      "Initial password is the email address",
		})
	}

	if len(details) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":            "Some users could not be registered",
			"details":          details,
			"registered_users": registered,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Users registered successfully. Initial password for each user is their email address.",
		"users":   registered,
	})
}

// CreatePairings regenerates the full pairing set over all current
// participants.
func (ad *AdminController) CreatePairings(c *gin.Context) {
	ctx, cancel := storeCtx()
	defer cancel()

	pairs, err := ad.engine.Regenerate(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Secret Santa pairings created successfully! 🎄",
		"pairs":   pairs,
	})
}

// ClearData deletes every participant, task and pairing. Admin accounts
// survive. The deletes are independent single-collection operations.
func (ad *AdminController) ClearData(c *gin.Context) {
	ctx, cancel := storeCtx()
	defer cancel()

	if _, err := ad.users.DeleteParticipants(ctx); err != nil {
		respondError(c, err)
		return
	}
	if err := ad.tasks.DeleteAllTasks(ctx); err != nil {
		respondError(c, err)
		return
	}
	if err := ad.pairings.DeleteAllPairings(ctx); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All data cleared successfully"})
}

// ListUsers returns id and name for every participant, for task
// assignment in the admin UI.
func (ad *AdminController) ListUsers(c *gin.Context) {
	ctx, cancel := storeCtx()
	defer cancel()

	participants, err := ad.users.ListParticipants(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	users := make([]gin.H, 0, len(participants))
	for _, p := range participants {
		users = append(users, gin.H{
			"id":        p.ID,
			"full_name": p.FullName,
		})
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

// ListPairings returns every pairing with both names resolved, for the
// big reveal. Rows whose users have vanished are skipped.
func (ad *AdminController) ListPairings(c *gin.Context) {
	ctx, cancel := storeCtx()
	defer cancel()

	pairings, err := ad.pairings.ListPairings(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	formatted := []gin.H{}
	for _, pair := range pairings {
		santaUser, err := ad.users.GetByID(ctx, pair.SantaID)
		if err != nil {
			continue
		}
		recipient, err := ad.users.GetByID(ctx, pair.RecipientID)
		if err != nil {
			continue
		}
		formatted = append(formatted, gin.H{
			"santa_name":     santaUser.FullName,
			"recipient_name": recipient.FullName,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Merry Christmas! Here are all the Secret Santa pairings!",
		"pairings": formatted,
	})
}

// ToggleReveal flips the reveal flag and returns the new value.
func (ad *AdminController) ToggleReveal(c *gin.Context) {
	ctx, cancel := storeCtx()
	defer cancel()

	revealed, err := ad.reveal.ToggleReveal(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Reveal status updated",
		"revealed": revealed,
	})
}
