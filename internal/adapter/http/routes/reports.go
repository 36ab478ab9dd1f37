package routes

import (
	"crane_fmv/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathReports = "/reports"
	PathPricing = "/pricing"
)

func addReportRoutes(rg *gin.RouterGroup, h *handlers.ReportHandler) {
	reports := rg.Group(PathReports)
	{
		reports.POST("", h.CreateReport)
		reports.GET("/:id", h.GetReport)
		reports.DELETE("/:id", h.DeleteReport)
		reports.PUT("/:id/assets", h.UpdateAssets)
		reports.POST("/:id/payment-intent", h.RequestPayment)
		reports.POST("/:id/payment", h.ConfirmPayment)
		reports.POST("/:id/revalue", h.Revalue)
		reports.POST("/:id/generate", h.Generate)
		reports.POST("/:id/deliver", h.Deliver)
		reports.GET("/:id/artifact", h.GetArtifactURL)
		reports.GET("/:id/valuations", h.ListValuations)
		reports.GET("/:id/payments", h.ListPayments)
	}
}

func addPricingRoutes(rg *gin.RouterGroup, h *handlers.PricingHandler) {
	pricing := rg.Group(PathPricing)
	{
		pricing.GET("", h.GetPricing)
		pricing.PUT("/:type", h.UpdatePrice)
	}
}
