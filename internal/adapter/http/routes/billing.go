package routes

import (
	"fieldops_billing/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCostProfile = "/cost-profile"
	PathEstimates   = "/estimates"
	PathPricing     = "/pricing"
	PathInvoices    = "/invoices"
	PathContracts   = "/contracts"
	PathJobs        = "/jobs"
	PathPortalLinks = "/portal-links"
)

// addBillingRoutes registers the internal, tenant-header-scoped surface.
func addBillingRoutes(
	rg *gin.RouterGroup,
	costProfileHandler *handlers.CostProfileHandler,
	estimateHandler *handlers.EstimateHandler,
	ruleHandler *handlers.PricingRuleHandler,
	invoiceHandler *handlers.InvoiceHandler,
	paymentHandler *handlers.PaymentHandler,
	contractHandler *handlers.ContractHandler,
	jobHandler *handlers.JobHandler,
	portalHandler *handlers.PortalHandler,
) {
	costProfile := rg.Group(PathCostProfile)
	{
		costProfile.PUT("", costProfileHandler.SaveCostProfile)
		costProfile.GET("", costProfileHandler.GetCostProfile)
		costProfile.POST("/preview", costProfileHandler.PreviewCostProfile)
	}

	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", estimateHandler.CreateEstimate)
		estimates.GET("/:id", estimateHandler.GetEstimate)
		estimates.PATCH("/:id", estimateHandler.PatchEstimate)
		estimates.POST("/:id/send", estimateHandler.SendEstimate)
		estimates.POST("/:id/approve", estimateHandler.ApproveEstimate)
		estimates.POST("/:id/reject", estimateHandler.RejectEstimate)
		estimates.POST("/:id/change-orders", estimateHandler.CreateChangeOrder)
		estimates.GET("/:id/snapshots", estimateHandler.ListEstimateSnapshots)
		estimates.POST("/:id/finalize-pricing", ruleHandler.FinalizePricing)
	}

	pricing := rg.Group(PathPricing)
	{
		pricing.POST("/rules", ruleHandler.CreatePricingRule)
		pricing.GET("/rules", ruleHandler.ListPricingRules)
		pricing.PUT("/profile", ruleHandler.SavePricingProfile)
		pricing.POST("/preview", ruleHandler.PreviewPricing)
		pricing.POST("/marketing-range", ruleHandler.MarketingRange)
	}

	invoices := rg.Group(PathInvoices)
	{
		invoices.POST("", invoiceHandler.CreateInvoice)
		invoices.GET("/:id", invoiceHandler.GetInvoice)
		invoices.PATCH("/:id/status", invoiceHandler.TransitionInvoice)
		invoices.POST("/:id/payments", paymentHandler.RecordPayment)
		invoices.GET("/:id/payments", paymentHandler.ListPayments)
		invoices.POST("/:id/refunds", paymentHandler.RecordRefund)
		invoices.POST("/:id/checkout", paymentHandler.CreateCheckout)
	}

	contracts := rg.Group(PathContracts)
	{
		contracts.POST("", contractHandler.CreateContract)
		contracts.GET("/:id", contractHandler.GetContract)
		contracts.PATCH("/:id", contractHandler.PatchContract)
		contracts.POST("/:id/send", contractHandler.SendContract)
		contracts.POST("/:id/void", contractHandler.VoidContract)
		contracts.POST("/:id/sign", contractHandler.SignContract)
	}

	jobs := rg.Group(PathJobs)
	{
		jobs.PATCH("/:id/status", jobHandler.TransitionJob)
		jobs.GET("/:id/can-schedule", jobHandler.CheckSchedule)
		jobs.GET("/:id/can-close", jobHandler.CheckClose)
		jobs.POST("/:id/crew-assignments", jobHandler.AssignCrew)
		jobs.POST("/:id/equipment-reservations", jobHandler.ReserveEquipment)
	}

	rg.POST(PathPortalLinks, portalHandler.CreatePortalLink)
}
