package routes

import (
	"hauling_pros/internal/adapter/http/handlers"
	"hauling_pros/internal/adapter/http/middleware"
	"hauling_pros/internal/usecase"

	"github.com/gin-gonic/gin"
)

const PathAdmin = "/admin"

type httpHandlers struct {
	booking     *handlers.BookingHandler
	estimate    *handlers.EstimateHandler
	appointment *handlers.AppointmentHandler
	paymentLink *handlers.PaymentLinkHandler
	auth        *handlers.AuthHandler
	ws          *handlers.WebSocketHandler
}

func addAdminRoutes(rg *gin.RouterGroup, auth usecase.IAuthUseCase, h httpHandlers) {
	admin := rg.Group(PathAdmin)
	admin.POST("/login", h.auth.Login)
	admin.POST("/logout", h.auth.Logout)

	protected := admin.Group("", middleware.AdminAuth(auth))
	{
		protected.GET(PathEstimates, h.estimate.ListEstimates)
		protected.GET(PathEstimates+"/:id", h.estimate.GetEstimate)
		protected.PUT(PathEstimates+"/:id", h.estimate.SetAmount)
		protected.DELETE(PathEstimates+"/:id", h.estimate.DeleteEstimate)
		protected.POST(PathEstimates+"/:id/send", h.estimate.SendEstimate)
		protected.POST(PathEstimates+"/:id/images", h.estimate.UploadImages)

		protected.POST("/analyze", h.booking.Analyze)

		protected.GET("/appointments", h.appointment.ListAppointments)
		protected.DELETE("/appointments", h.appointment.CancelAppointment)

		protected.POST("/payment-links", h.paymentLink.CreatePaymentLink)

		protected.GET("/ws", h.ws.Subscribe)
	}
}
