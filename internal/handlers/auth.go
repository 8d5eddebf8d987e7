package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"sync"

	"zyberian-site/internal/database"
	"zyberian-site/internal/logger"
	"zyberian-site/internal/middleware"
	"zyberian-site/internal/session"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type credentialsRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=6"`
}

// dummyHash is compared against when the username is unknown so both
// failure paths cost one bcrypt comparison.
var dummyHash = sync.OnceValue(func() []byte {
	h, err := bcrypt.GenerateFromPassword([]byte("zyberian-dummy-password"), database.PasswordCost)
	if err != nil {
		panic(fmt.Sprintf("bcrypt: %v", err))
	}
	return h
})

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := bindJSON(c, &req); err != nil {
		h.fail(c, err, "Invalid credentials")
		return
	}

	ctx := c.Request.Context()
	log := logger.FromContext(ctx)

	user, err := h.store.GetUserByUsername(ctx, req.Username)
	switch {
	case errors.Is(err, database.ErrNotFound):
		_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(req.Password))
		log.Info().Msg("login failed")
		h.fail(c, ErrInvalidCredentials, "Invalid credentials")
		return
	case err != nil:
		h.fail(c, err, "Login failed")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		log.Info().Msg("login failed")
		h.fail(c, ErrInvalidCredentials, "Invalid credentials")
		return
	}

	sess := sessions.Default(c)
	sess.Clear()
	sess.Set(session.KeyUserID, user.ID)
	sess.Set(session.KeyIsAdmin, true)
	if err := sess.Save(); err != nil {
		h.fail(c, err, "Login failed")
		return
	}

	log.Info().Str("user_id", user.ID).Msg("admin logged in")
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user.Summary()})
}

// Logout always succeeds, even without a live session.
func (h *Handler) Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	sess.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := sess.Save(); err != nil {
		h.fail(c, err, "Logout failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"isAuthenticated": middleware.CurrentUserID(c) != "",
		"isAdmin":         middleware.IsAdmin(c),
	})
}

func (h *Handler) ChangeCredentials(c *gin.Context) {
	var req credentialsRequest
	if err := bindJSON(c, &req); err != nil {
		h.fail(c, err, "Invalid credentials data")
		return
	}

	uid := middleware.CurrentUserID(c)
	user, err := h.store.UpdateAdminCredentials(c.Request.Context(), uid, req.Username, req.Password)
	switch {
	case errors.Is(err, database.ErrNotFound):
		notFound(c, "User not found")
		return
	case errors.Is(err, database.ErrUsernameTaken):
		h.fail(c, &ValidationError{Fields: []FieldError{{Field: "username", Message: "is already taken"}}}, "Invalid credentials data")
		return
	case err != nil:
		h.fail(c, err, "Failed to update credentials")
		return
	}

	h.audit(c, "user", user.ID, "update", "credentials changed")
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user.Summary()})
}
