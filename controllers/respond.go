package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aadhi0612/Christ-Mom-Christ-Child-Game/santa"
	"github.com/aadhi0612/Christ-Mom-Christ-Child-Game/store"
)

// respondError maps component errors onto HTTP statuses. The underlying
// message text is passed through to the client unchanged.
func respondError(c *gin.Context, err error) {
	var pairingErr *santa.PairingError

	switch {
	case errors.Is(err, store.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrDuplicateEmail),
		errors.Is(err, santa.ErrTooFewParticipants),
		errors.As(err, &pairingErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
