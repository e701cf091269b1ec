package httperr

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/cleaning-booking/internal/i18n"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"error"`
}

// Write responds with the stable code and its message in the request language.
func Write(c *gin.Context, status int, code string, params ...map[string]any) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: localize(c, code, params...),
	})
}

// Abort is Write for middleware: it also stops the handler chain.
func Abort(c *gin.Context, status int, code string) {
	c.AbortWithStatusJSON(status, HTTPError{
		Code:    code,
		Message: localize(c, code),
	})
}

func BadRequest(c *gin.Context, code string) {
	Write(c, http.StatusBadRequest, code)
}

func NotFound(c *gin.Context, code string) {
	Write(c, http.StatusNotFound, code)
}

func Internal(c *gin.Context, code string) {
	Write(c, http.StatusInternalServerError, code)
}

func Unauthorized(c *gin.Context, code string) {
	Write(c, http.StatusUnauthorized, code)
}

func Forbidden(c *gin.Context, code string) {
	Write(c, http.StatusForbidden, code)
}

// Respond translates any error returned by a use case into a response.
// Unknown errors are logged and reported as internal_error.
func Respond(c *gin.Context, err error) {
	if be, ok := AsBusiness(err); ok {
		Write(c, StatusFor(be.Code), be.Code, be.Params)
		return
	}

	slog.ErrorContext(c.Request.Context(), "unhandled error",
		"method", c.Request.Method,
		"path", c.FullPath(),
		"error", err,
	)
	Internal(c, "internal_error")
}

// StatusFor maps a business code to its HTTP status. "Not yours" and
// "does not exist" share the *_not_found codes and therefore 404.
func StatusFor(code string) int {
	switch code {
	case "unauthenticated", "invalid_token", "invalid_credentials":
		return http.StatusUnauthorized
	case "forbidden":
		return http.StatusForbidden
	case "too_many_requests":
		return http.StatusTooManyRequests
	case "gateway_unavailable":
		return http.StatusServiceUnavailable
	case "gateway_error":
		return http.StatusBadGateway
	case "status_not_configured", "internal_error":
		return http.StatusInternalServerError
	}

	if strings.HasSuffix(code, "_not_found") {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

func localize(c *gin.Context, code string, params ...map[string]any) string {
	v, ok := c.Get(i18n.ServiceContextKey)
	if !ok {
		return code
	}
	svc, ok := v.(*i18n.Service)
	if !ok {
		return code
	}

	lang := c.GetString(i18n.LanguageContextKey)
	if lang == "" {
		lang = svc.DefaultLanguage()
	}

	var p map[string]any
	if len(params) > 0 {
		p = params[0]
	}
	if p == nil {
		return svc.T(lang, "error."+code)
	}
	return svc.T(lang, "error."+code, p)
}
