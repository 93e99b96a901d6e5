package routes

import (
	"fieldops_billing/internal/adapter/http/handlers"
	"fieldops_billing/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const PathPortal = "/portal"

// addPortalRoutes registers the public, token-driven surface behind the IP
// rate limiter.
func addPortalRoutes(rg *gin.RouterGroup, h *handlers.PortalHandler, limiter *middleware.RateLimiter) {
	portal := rg.Group(PathPortal)
	portal.Use(limiter.Handler())
	{
		portal.GET("/estimates", h.ViewEstimate)
		portal.POST("/estimates/approve", h.ApproveEstimate)
		portal.POST("/estimates/reject", h.RejectEstimate)
		portal.GET("/invoices", h.ViewInvoice)
		portal.POST("/invoices/pay", h.PayInvoice)
		portal.GET("/contracts", h.ViewContract)
		portal.POST("/contracts/sign", h.SignContract)
	}
}
