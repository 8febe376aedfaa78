package routes

import (
	"granite_estimator/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
	PathDeposits = "/deposits"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.DepositPaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/:estimate_id", paymentHandler.CreateDepositByEstimateID)
		payments.GET("/:estimate_id", paymentHandler.GetDepositByEstimateID)
		payments.GET("/:estimate_id/history", paymentHandler.ListDepositsByEstimateID)
	}

	rg.GET(PathDeposits+"/:id", paymentHandler.GetDepositByID)
}
