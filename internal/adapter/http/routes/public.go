package routes

import (
	"hauling_pros/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPing      = "/ping"
	PathBookings  = "/bookings"
	PathEstimates = "/estimates"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, handlers.Ping)
}

func addPublicRoutes(rg *gin.RouterGroup, bookingHandler *handlers.BookingHandler, estimateHandler *handlers.EstimateHandler) {
	rg.POST(PathBookings, bookingHandler.SubmitBooking)

	estimates := rg.Group(PathEstimates)
	{
		estimates.GET("/token/:token", estimateHandler.GetByToken)
		estimates.POST("/token/:token/confirm", estimateHandler.ConfirmAppointment)
	}
}
