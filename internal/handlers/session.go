package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/cleaning-booking/internal/auth"
	"github.com/BruksfildServices01/cleaning-booking/internal/middleware"
	"github.com/BruksfildServices01/cleaning-booking/internal/models"
)

// Sessions issues tokens and keeps the session cookie in step with them.
type Sessions struct {
	tokens *auth.Tokens
	secure bool
}

func NewSessions(tokens *auth.Tokens, secure bool) *Sessions {
	return &Sessions{tokens: tokens, secure: secure}
}

// Start issues a token for u and sets it as the session cookie.
func (s *Sessions) Start(c *gin.Context, u *models.User) (string, error) {
	token, err := s.tokens.Issue(u)
	if err != nil {
		return "", err
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, token, int(s.tokens.TTL().Seconds()), "/", "", s.secure, true)
	return token, nil
}

func (s *Sessions) End(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", s.secure, true)
}

type userView struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Avatar   string `json:"avatar"`
	RoleID   uint   `json:"roleId"`
	RoleName string `json:"roleName,omitempty"`
}

func toUserView(u *models.User) userView {
	return userView{
		ID:       u.ID,
		Email:    u.Email,
		Name:     u.Name,
		Phone:    u.Phone,
		Avatar:   u.Avatar,
		RoleID:   u.RoleID,
		RoleName: u.Role.Name,
	}
}
