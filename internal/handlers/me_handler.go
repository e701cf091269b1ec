package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/cleaning-booking/internal/auth"
	"github.com/BruksfildServices01/cleaning-booking/internal/httperr"
	"github.com/BruksfildServices01/cleaning-booking/internal/httpresp"
	"github.com/BruksfildServices01/cleaning-booking/internal/models"
	"github.com/BruksfildServices01/cleaning-booking/internal/validators"
)

type MeHandler struct {
	db       *gorm.DB
	sessions *Sessions
}

func NewMeHandler(db *gorm.DB, sessions *Sessions) *MeHandler {
	return &MeHandler{db: db, sessions: sessions}
}

// --------- Requests ---------

type UpdateProfileRequest struct {
	Name   string  `json:"name"`
	Phone  *string `json:"phone"`
	Avatar *string `json:"avatar"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// --------- Handlers ---------

func (h *MeHandler) GetMe(c *gin.Context) {
	u, ok := h.load(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": toUserView(u)})
}

// UpdateProfile changes name, phone and avatar and reissues the session
// token so its claims stay current.
func (h *MeHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	name, err := validators.Name(req.Name)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	u, ok := h.load(c)
	if !ok {
		return
	}

	u.Name = name
	if req.Phone != nil {
		u.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Avatar != nil {
		u.Avatar = strings.TrimSpace(*req.Avatar)
	}

	if err := h.db.WithContext(c.Request.Context()).
		Model(&models.User{ID: u.ID}).
		Updates(map[string]any{
			"name":   u.Name,
			"phone":  u.Phone,
			"avatar": u.Avatar,
		}).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	token, err := h.sessions.Start(c, u)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  toUserView(u),
		"token": token,
	})
}

func (h *MeHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	switch {
	case req.CurrentPassword == "":
		httperr.Respond(c, httperr.ErrMissingField("currentPassword"))
		return
	case req.NewPassword == "":
		httperr.Respond(c, httperr.ErrMissingField("newPassword"))
		return
	}
	if err := validators.Password(req.NewPassword); err != nil {
		httperr.Respond(c, err)
		return
	}

	u, ok := h.load(c)
	if !ok {
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		httperr.BadRequest(c, "wrong_password")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	if err := h.db.WithContext(c.Request.Context()).
		Model(&models.User{ID: u.ID}).
		Update("password", string(hashed)).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Success(c)
}

// load reads the caller's row. A token for a deleted user is answered as
// user_not_found.
func (h *MeHandler) load(c *gin.Context) (*models.User, bool) {
	p := auth.FromContext(c)
	if p == nil {
		httperr.Unauthorized(c, "unauthenticated")
		return nil, false
	}

	var u models.User
	if err := h.db.WithContext(c.Request.Context()).
		Preload("Role").
		First(&u, p.UserID).Error; err != nil {
		respondDB(c, err, "user_not_found")
		return nil, false
	}
	return &u, true
}
