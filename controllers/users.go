package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// UserController handles the participant-facing pairing lookups.
type UserController struct {
	users    UserStore
	pairings PairingStore
	reveal   RevealStore
}

// NewUserController wires the stores into the participant handlers.
func NewUserController(users UserStore, pairings PairingStore, reveal RevealStore) *UserController {
	return &UserController{users: users, pairings: pairings, reveal: reveal}
}

// PairedInfo returns the name of the caller's counterpart, 404 while
// unpaired. The counterpart is a cycle neighbor, whichever of the two
// per-pair writes landed last: the recipient for most participants, the
// santa for the cycle-start one.
func (uc *UserController) PairedInfo(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	ctx, cancel := storeCtx()
	defer cancel()

	user, err := uc.users.GetByID(ctx, uid)
	if err != nil || user.PairedWith == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not paired yet"})
		return
	}

	paired, err := uc.users.GetByID(ctx, *user.PairedWith)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not paired yet"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"paired_name": paired.FullName})
}

// MySanta names the caller's santa, but only once the admin has flipped
// the reveal flag. Gated regardless of whether pairings exist.
func (uc *UserController) MySanta(c *gin.Context) {
	ctx, cancel := storeCtx()
	defer cancel()

	revealed, err := uc.reveal.RevealStatus(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	if !revealed {
		c.JSON(http.StatusForbidden, gin.H{"error": "Secret Santa identities haven't been revealed yet!"})
		return
	}

	uid, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	santaUser, err := uc.pairings.SantaFor(ctx, uid)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No Secret Santa found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"santa_name": santaUser.FullName})
}

// PairingsRevealed reports the reveal flag. Public so the frontend can
// switch screens without a login.
func (uc *UserController) PairingsRevealed(c *gin.Context) {
	ctx, cancel := storeCtx()
	defer cancel()

	revealed, err := uc.reveal.RevealStatus(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"revealed": revealed})
}
