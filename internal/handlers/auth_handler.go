package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/cleaning-booking/internal/domain/user"
	"github.com/BruksfildServices01/cleaning-booking/internal/httperr"
	"github.com/BruksfildServices01/cleaning-booking/internal/httpresp"
	"github.com/BruksfildServices01/cleaning-booking/internal/models"
	"github.com/BruksfildServices01/cleaning-booking/internal/validators"
)

type AuthHandler struct {
	db       *gorm.DB
	sessions *Sessions
	domains  validators.DomainChecker
}

func NewAuthHandler(db *gorm.DB, sessions *Sessions, domains validators.DomainChecker) *AuthHandler {
	return &AuthHandler{db: db, sessions: sessions, domains: domains}
}

// --------- Requests ---------

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	email := validators.NormalizeEmail(req.Email)
	phone := strings.TrimSpace(req.Phone)
	switch {
	case email == "":
		httperr.Respond(c, httperr.ErrMissingField("email"))
		return
	case req.Password == "":
		httperr.Respond(c, httperr.ErrMissingField("password"))
		return
	case strings.TrimSpace(req.Name) == "":
		httperr.Respond(c, httperr.ErrMissingField("name"))
		return
	case phone == "":
		httperr.Respond(c, httperr.ErrMissingField("phone"))
		return
	}

	if !validators.IsEmail(email) {
		httperr.BadRequest(c, "invalid_email")
		return
	}
	if err := validators.Password(req.Password); err != nil {
		httperr.Respond(c, err)
		return
	}
	name, err := validators.Name(req.Name)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	ctx := c.Request.Context()

	if h.emailTaken(c, email) {
		httperr.BadRequest(c, "email_taken")
		return
	}

	if !h.domains.ValidDomain(ctx, email) {
		httperr.BadRequest(c, "invalid_email_domain")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	u := models.User{
		Email:        email,
		PasswordHash: string(hashed),
		Name:         name,
		Phone:        phone,
		RoleID:       user.RoleClient.ID(),
	}
	if err := h.db.WithContext(ctx).Omit(clause.Associations).Create(&u).Error; err != nil {
		// lost a race with a concurrent registration
		if h.emailTaken(c, email) {
			httperr.BadRequest(c, "email_taken")
			return
		}
		httperr.Respond(c, err)
		return
	}
	u.Role = models.Role{ID: u.RoleID, Name: user.RoleClient.Name()}

	token, err := h.sessions.Start(c, &u)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":  toUserView(&u),
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	email := validators.NormalizeEmail(req.Email)
	switch {
	case email == "":
		httperr.Respond(c, httperr.ErrMissingField("email"))
		return
	case req.Password == "":
		httperr.Respond(c, httperr.ErrMissingField("password"))
		return
	}

	var u models.User
	if err := h.db.WithContext(c.Request.Context()).
		Preload("Role").
		Where("email = ?", email).
		First(&u).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Unauthorized(c, "invalid_credentials")
			return
		}
		httperr.Respond(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials")
		return
	}

	token, err := h.sessions.Start(c, &u)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  toUserView(&u),
		"token": token,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.End(c)
	httpresp.Success(c)
}

func (h *AuthHandler) emailTaken(c *gin.Context, email string) bool {
	var count int64
	h.db.WithContext(c.Request.Context()).
		Model(&models.User{}).
		Where("email = ?", email).
		Count(&count)
	return count > 0
}
