package handlers

import (
	"errors"
	"net/http"

	request "hauling_pros/internal/adapter/http/dto/request"
	"hauling_pros/internal/usecase"
	"hauling_pros/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errNotFound       = pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
)

func mapError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBooking),
		errors.Is(err, usecase.ErrInvalidDescription),
		errors.Is(err, usecase.ErrInvalidEstimateID),
		errors.Is(err, usecase.ErrInvalidEstimateVal),
		errors.Is(err, usecase.ErrInvalidStatusFilter),
		errors.Is(err, usecase.ErrInvalidConfirmation),
		errors.Is(err, usecase.ErrNoImages),
		errors.Is(err, usecase.ErrInvalidImages),
		errors.Is(err, usecase.ErrInvalidPaymentLinkInput),
		errors.Is(err, request.ErrInvalidDate):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return errNotFound
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Estimate status does not allow this operation", http.StatusConflict)
	case errors.Is(err, usecase.ErrEstimateAmountMissing):
		return pkg.NewDomainErrorSimple("ESTIMATE_AMOUNT_MISSING", "Estimate has no amount", http.StatusConflict)
	case errors.Is(err, usecase.ErrEstimateDeliveryFailed):
		return pkg.NewDomainError("ESTIMATE_DELIVERY_FAILED", "Estimate was saved but the email could not be delivered", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentLinkFailed), errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainError("PAYMENT_LINK_FAILED", "Payment link could not be created", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrAssistantUnavailable):
		return pkg.NewDomainError("ASSISTANT_UNAVAILABLE", "Failed to analyze estimate", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrBookingCreationFailed):
		return pkg.NewDomainError("BOOKING_CREATION_FAILED", "Failed to create booking", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid credentials", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidSession):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrSessionNotConfigured):
		return pkg.NewDomainError("ADMIN_NOT_CONFIGURED", "Admin access is not configured", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func respondError(c *gin.Context, err error) {
	appErr := mapError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func respondAppError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
