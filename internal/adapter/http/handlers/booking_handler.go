package handlers

import (
	"net/http"

	request "hauling_pros/internal/adapter/http/dto/request"
	response "hauling_pros/internal/adapter/http/dto/response"
	"hauling_pros/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// BookingHandler serves the public booking form and the admin analyze tool.
type BookingHandler struct {
	usecase usecase.IBookingUseCase
}

func NewBookingHandler(uc usecase.IBookingUseCase) *BookingHandler {
	return &BookingHandler{usecase: uc}
}

// SubmitBooking godoc
// @Summary      Submit a booking request
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        payload  body      request.BookingRequest  true  "Booking"
// @Success      201      {object}  response.BookingResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Router       /bookings [post]
func (h *BookingHandler) SubmitBooking(c *gin.Context) {
	var payload request.BookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidRequest)
		return
	}

	sub, err := payload.ToSubmission()
	if err != nil {
		respondError(c, err)
		return
	}

	receipt, err := h.usecase.SubmitBooking(c.Request.Context(), sub)
	if err != nil {
		log.Warn().Err(err).Msg("[booking][handler] submit failed")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromReceipt(receipt))
}

// Analyze godoc
// @Summary      Price a free-text job description
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        payload  body      request.AnalyzeRequest  true  "Description"
// @Success      200      {object}  response.AnalyzeResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /admin/analyze [post]
func (h *BookingHandler) Analyze(c *gin.Context) {
	var payload request.AnalyzeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidRequest)
		return
	}

	out, err := h.usecase.AnalyzeDescription(c.Request.Context(), payload.TextDescription)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromAssistantEstimate(out))
}
