package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/cleaning-booking/internal/domain/user"
)

// ContextPrincipal is the gin context key holding the caller's *Principal.
const ContextPrincipal = "principal"

// Principal is the authenticated caller, decoded once per request.
type Principal struct {
	UserID uint
	Email  string
	Name   string
	Role   user.Role
	Avatar string
	Phone  string
}

func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == user.RoleAdmin
}

func (p *Principal) IsEmployee() bool {
	return p != nil && p.Role == user.RoleEmployee
}

// ID returns a pointer to the user id, or nil for an anonymous caller.
func (p *Principal) ID() *uint {
	if p == nil {
		return nil
	}
	id := p.UserID
	return &id
}

// FromContext returns the principal stored by the auth middleware, or nil.
func FromContext(c *gin.Context) *Principal {
	v, ok := c.Get(ContextPrincipal)
	if !ok {
		return nil
	}
	p, _ := v.(*Principal)
	return p
}
