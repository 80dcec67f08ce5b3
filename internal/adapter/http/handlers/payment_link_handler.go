package handlers

import (
	"net/http"

	request "hauling_pros/internal/adapter/http/dto/request"
	response "hauling_pros/internal/adapter/http/dto/response"
	"hauling_pros/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PaymentLinkHandler struct {
	usecase usecase.IPaymentLinkUseCase
}

func NewPaymentLinkHandler(uc usecase.IPaymentLinkUseCase) *PaymentLinkHandler {
	return &PaymentLinkHandler{usecase: uc}
}

// CreatePaymentLink godoc
// @Summary      Create a payable link
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        payload  body      request.PaymentLinkRequest  true  "Amount and description"
// @Success      200      {object}  response.PaymentLinkResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /admin/payment-links [post]
func (h *PaymentLinkHandler) CreatePaymentLink(c *gin.Context) {
	var payload request.PaymentLinkRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidRequest)
		return
	}

	url, err := h.usecase.CreateLink(c.Request.Context(), payload.Amount, payload.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.PaymentLinkResponse{URL: url})
}
