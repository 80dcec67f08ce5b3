package handlers

import (
	"net/http"
	"time"

	request "hauling_pros/internal/adapter/http/dto/request"
	response "hauling_pros/internal/adapter/http/dto/response"
	"hauling_pros/internal/adapter/http/middleware"
	"hauling_pros/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type AuthHandler struct {
	usecase      usecase.IAuthUseCase
	secureCookie bool
}

func NewAuthHandler(uc usecase.IAuthUseCase, secureCookie bool) *AuthHandler {
	return &AuthHandler{usecase: uc, secureCookie: secureCookie}
}

// Login godoc
// @Summary      Start an admin session
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        payload  body      request.LoginRequest  true  "Credentials"
// @Success      200      {object}  response.SuccessResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      401      {object}  pkg.HTTPError
// @Router       /admin/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidRequest)
		return
	}

	token, expiresAt, err := h.usecase.Login(payload.Username, payload.Password)
	if err != nil {
		log.Warn().Err(err).Str("username", payload.Username).Msg("[admin][handler] login rejected")
		respondError(c, err)
		return
	}

	h.setSessionCookie(c, token, int(time.Until(expiresAt).Seconds()))
	c.JSON(http.StatusOK, response.SuccessResponse{Success: true})
}

// Logout godoc
// @Summary      End the admin session
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.SuccessResponse
// @Router       /admin/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, response.SuccessResponse{Success: true})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, value, maxAge, "/", "", h.secureCookie, true)
}
