package handlers

import (
	"net/http"

	response "hauling_pros/internal/adapter/http/dto/response"
	"hauling_pros/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	usecase usecase.IAppointmentUseCase
}

func NewAppointmentHandler(uc usecase.IAppointmentUseCase) *AppointmentHandler {
	return &AppointmentHandler{usecase: uc}
}

// ListAppointments godoc
// @Summary      Calendar events for confirmed appointments
// @Tags         admin
// @Produce      json
// @Success      200  {array}   response.AppointmentEventResponse
// @Security     Bearer
// @Router       /admin/appointments [get]
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	events, err := h.usecase.ListEvents(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromAppointmentEvents(events))
}

// CancelAppointment godoc
// @Summary      Delete an appointment
// @Tags         admin
// @Produce      json
// @Param        id   query     string  true  "Estimate ID"
// @Success      200  {object}  response.SuccessResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /admin/appointments [delete]
func (h *AppointmentHandler) CancelAppointment(c *gin.Context) {
	if err := h.usecase.Cancel(c.Request.Context(), c.Query("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Success: true})
}
