package handlers

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"

	request "hauling_pros/internal/adapter/http/dto/request"
	response "hauling_pros/internal/adapter/http/dto/response"
	"hauling_pros/internal/domain/entities"
	"hauling_pros/internal/usecase"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	imagesFormField = "images"
	maxImageBytes   = entities.MaxImagePayloadBytes
)

var errImageTooLarge = errors.New("image exceeds size limit")

// EstimateHandler exposes the estimate lifecycle to admins and to customers
// holding a confirmation token.
type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// ListEstimates godoc
// @Summary      List estimates, newest first
// @Tags         admin
// @Produce      json
// @Param        status  query     string  false  "Status filter"
// @Success      200     {array}   response.EstimateResponse
// @Failure      400     {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /admin/estimates [get]
func (h *EstimateHandler) ListEstimates(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimates(list))
}

// GetEstimate godoc
// @Summary      Get an estimate
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "Estimate ID"
// @Success      200  {object}  response.EstimateResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /admin/estimates/{id} [get]
func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	e, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(e))
}

// GetByToken godoc
// @Summary      Look up an estimate by confirmation token
// @Tags         estimates
// @Produce      json
// @Param        token  path      string  true  "Confirmation token"
// @Success      200    {object}  response.PublicEstimateResponse
// @Failure      404    {object}  pkg.HTTPError
// @Router       /estimates/token/{token} [get]
func (h *EstimateHandler) GetByToken(c *gin.Context) {
	e, err := h.usecase.GetByToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimatePublic(e))
}

// SetAmount godoc
// @Summary      Set the estimated amount
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id       path      string                    true  "Estimate ID"
// @Param        payload  body      request.SetAmountRequest  true  "Amount"
// @Success      200      {object}  response.EstimateResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /admin/estimates/{id} [put]
func (h *EstimateHandler) SetAmount(c *gin.Context) {
	var payload request.SetAmountRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidRequest)
		return
	}

	e, err := h.usecase.SetAmount(c.Request.Context(), c.Param("id"), *payload.EstimatedAmount)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(e))
}

// SendEstimate godoc
// @Summary      Email the estimate to the customer
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "Estimate ID"
// @Success      200  {object}  response.EstimateResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /admin/estimates/{id}/send [post]
func (h *EstimateHandler) SendEstimate(c *gin.Context) {
	e, err := h.usecase.SendEstimate(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrEstimateDeliveryFailed) {
			log.Warn().Err(err).Str("estimate_id", e.ID).Msg("[estimate][handler] estimate saved but not delivered")
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(e))
}

// ConfirmAppointment godoc
// @Summary      Confirm an appointment with the emailed token
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        token    path      string                             true   "Confirmation token"
// @Param        payload  body      request.ConfirmAppointmentRequest  false  "Revised schedule"
// @Success      200      {object}  response.ConfirmationResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Router       /estimates/token/{token}/confirm [post]
func (h *EstimateHandler) ConfirmAppointment(c *gin.Context) {
	var payload request.ConfirmAppointmentRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			respondAppError(c, errInvalidRequest)
			return
		}
	}

	change, err := payload.ToChange()
	if err != nil {
		respondError(c, err)
		return
	}

	e, err := h.usecase.ConfirmAppointment(c.Request.Context(), c.Param("token"), change)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.ConfirmationResponse{Success: true, Estimate: response.FromEstimatePublic(e)})
}

// UploadImages godoc
// @Summary      Attach photos to an estimate
// @Tags         admin
// @Accept       multipart/form-data
// @Produce      json
// @Param        id      path      string  true  "Estimate ID"
// @Param        images  formData  file    true  "Image files"
// @Success      200     {object}  response.EstimateResponse
// @Failure      400     {object}  pkg.HTTPError
// @Failure      404     {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /admin/estimates/{id}/images [post]
func (h *EstimateHandler) UploadImages(c *gin.Context) {
	images, err := readImages(c)
	if err != nil {
		log.Warn().Err(err).Msg("[estimate][handler] invalid upload")
		respondAppError(c, errInvalidRequest)
		return
	}

	e, err := h.usecase.AddImages(c.Request.Context(), c.Param("id"), images)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(e))
}

// DeleteEstimate godoc
// @Summary      Delete a booking
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "Estimate ID"
// @Success      200  {object}  response.SuccessResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /admin/estimates/{id} [delete]
func (h *EstimateHandler) DeleteEstimate(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Success: true})
}

// readImages converts every uploaded file into a data URL.
func readImages(c *gin.Context) ([]string, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, err
	}
	files := form.File[imagesFormField]
	out := make([]string, 0, len(files))
	for _, fh := range files {
		if fh.Size > maxImageBytes {
			return nil, fmt.Errorf("%w: %s", errImageTooLarge, fh.Filename)
		}
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(io.LimitReader(f, maxImageBytes+1))
		f.Close()
		if err != nil {
			return nil, err
		}
		if len(data) > maxImageBytes {
			return nil, fmt.Errorf("%w: %s", errImageTooLarge, fh.Filename)
		}
		out = append(out, toDataURL(data))
	}
	return out, nil
}

func toDataURL(data []byte) string {
	mime := mimetype.Detect(data)
	return "data:" + mime.String() + ";base64," + base64.StdEncoding.EncodeToString(data)
}
