package routes

import (
	"granite_estimator/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addAssistantRoutes(rg *gin.RouterGroup, assistantHandler *handlers.AssistantHandler) {
	rg.POST("/chat", assistantHandler.Chat)
	rg.GET("/business-info", assistantHandler.GetBusinessInfo)
}

// addLegacyRoutes keeps the paths the website widget already calls.
func addLegacyRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler, assistantHandler *handlers.AssistantHandler) {
	rg.POST("/estimate", estimateHandler.LegacyEstimate)
	rg.POST("/get-estimate", estimateHandler.LegacyEstimate)
	rg.POST("/chat", assistantHandler.Chat)
	rg.GET("/get-business-info", assistantHandler.GetBusinessInfo)
	rg.GET("/get-instructions", assistantHandler.GetInstructions)
}
