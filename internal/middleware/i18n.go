package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/cleaning-booking/internal/i18n"
)

// I18n picks the response language: ?lang=, then Accept-Language, then the
// service default.
func I18n(svc *i18n.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var lang string

		if q := c.Query("lang"); q != "" && svc.IsLanguageSupported(q) {
			lang = q
		}
		if lang == "" {
			lang = svc.BestMatch(c.GetHeader("Accept-Language"))
		}
		if lang == "" {
			lang = svc.DefaultLanguage()
		}

		c.Set(i18n.LanguageContextKey, lang)
		c.Set(i18n.ServiceContextKey, svc)
		c.Next()
	}
}
