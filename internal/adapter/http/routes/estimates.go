package routes

import (
	"granite_estimator/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimates  = "/estimates"
	PathPriceTable = "/price-table"
)

func addEstimateRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("/preview", estimateHandler.PreviewEstimate)
		estimates.POST("", estimateHandler.CreateEstimate)
		estimates.GET("/:id", estimateHandler.GetEstimate)
		estimates.PATCH("/:id/approve", estimateHandler.ApproveEstimate)
		estimates.PATCH("/:id/reject", estimateHandler.RejectEstimate)
		estimates.PATCH("/:id/cancel", estimateHandler.CancelEstimate)
		estimates.POST("/:id/narrative", estimateHandler.RegenerateNarrative)
		estimates.GET("/:id/export.pdf", estimateHandler.ExportPDF)
		estimates.GET("/:id/export.xlsx", estimateHandler.ExportXLSX)
	}

	rg.GET(PathPriceTable, estimateHandler.GetPriceTable)
}
