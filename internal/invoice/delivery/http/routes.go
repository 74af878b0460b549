package http

import (
	"github.com/gin-gonic/gin"

	"billomat-invoicing/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Routes that call Billomat are rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	invoices := rg.Group("/invoices")
	{
		invoices.POST("/preview", h.Preview)
		invoices.POST("", mw.RateLimit(), h.Create)
	}

	rg.POST("/billomat/client-contacts", mw.RateLimit(), h.ListClientContacts)
}
