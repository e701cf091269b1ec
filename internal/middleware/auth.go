package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/cleaning-booking/internal/auth"
	"github.com/BruksfildServices01/cleaning-booking/internal/domain/user"
	"github.com/BruksfildServices01/cleaning-booking/internal/httperr"
)

// TokenCookie is the cookie the web client keeps the session token in.
const TokenCookie = "token"

// Auth requires a valid session and stores its principal on the context.
func Auth(tokens *auth.Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerOrCookie(c)
		if raw == "" {
			httperr.Abort(c, http.StatusUnauthorized, "unauthenticated")
			return
		}

		p, err := tokens.Parse(raw)
		if err != nil {
			httperr.Abort(c, http.StatusUnauthorized, "invalid_token")
			return
		}

		c.Set(auth.ContextPrincipal, p)
		c.Next()
	}
}

// OptionalAuth is Auth for guest-capable routes: a missing or broken token
// leaves the request anonymous instead of failing it.
func OptionalAuth(tokens *auth.Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw := bearerOrCookie(c); raw != "" {
			if p, err := tokens.Parse(raw); err == nil {
				c.Set(auth.ContextPrincipal, p)
			}
		}
		c.Next()
	}
}

// RequireRole must run after Auth.
func RequireRole(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := auth.FromContext(c)
		if p == nil {
			httperr.Abort(c, http.StatusUnauthorized, "unauthenticated")
			return
		}

		for _, r := range roles {
			if p.Role == r {
				c.Next()
				return
			}
		}
		httperr.Abort(c, http.StatusForbidden, "forbidden")
	}
}

// bearerOrCookie prefers the Authorization header over the cookie.
func bearerOrCookie(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}

	if cookie, err := c.Cookie(TokenCookie); err == nil {
		return cookie
	}
	return ""
}
