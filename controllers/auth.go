package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aadhi0612/Christ-Mom-Christ-Child-Game/store"
	"github.com/aadhi0612/Christ-Mom-Christ-Child-Game/utils"
)

// AuthController handles login, the admin bootstrap and password management.
type AuthController struct {
	users      UserStore
	adminName  string
	adminEmail string
}

// NewAuthController wires the credential store and the well-known admin
// identity into the auth handlers.
func NewAuthController(users UserStore, adminName, adminEmail string) *AuthController {
	return &AuthController{users: users, adminName: adminName, adminEmail: adminEmail}
}

// LoginInput request body for login
type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ChangePasswordInput request body for setting a new password
type ChangePasswordInput struct {
	NewPassword string `json:"new_password" binding:"required"`
}

// Login exchanges email+password for a bearer token. Unknown email and
// wrong password return the same 401.
func (ac *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	ctx, cancel := storeCtx()
	defer cancel()

	user, err := ac.users.Verify(ctx, input.Email, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.Role)
	if err != nil {
		log.Printf("Login: jwt generation failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"role":         user.Role,
		"user_id":      user.ID,
	})
}

// InitAdmin idempotently creates the well-known admin account. On first
// creation the generated password is returned once; afterwards the
// endpoint only reports that the account exists.
func (ac *AuthController) InitAdmin(c *gin.Context) {
	ctx, cancel := storeCtx()
	defer cancel()

	if _, err := ac.users.GetByEmail(ctx, ac.adminEmail); err == nil {
		c.JSON(http.StatusOK, gin.H{"message": "Admin account already exists"})
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		respondError(c, err)
		return
	}

	_, password, err := ac.users.CreateAdmin(ctx, ac.adminName, ac.adminEmail)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Admin account created successfully",
		"email":    ac.adminEmail,
		"password": password,
	})
}

// CheckPasswordStatus reports whether the caller still has to replace
// their initial password.
func (ac *AuthController) CheckPasswordStatus(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	ctx, cancel := storeCtx()
	defer cancel()

	user, err := ac.users.GetByID(ctx, uid)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"needs_password_change": !user.InitialPasswordSet,
	})
}

// ChangePassword sets a new password for the caller.
func (ac *AuthController) ChangePassword(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input ChangePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "New password is required"})
		return
	}

	ctx, cancel := storeCtx()
	defer cancel()

	if err := ac.users.UpdatePassword(ctx, uid, input.NewPassword); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}
