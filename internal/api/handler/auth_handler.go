package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hostaltucan/reservas-api/internal/api/metrics"
	"github.com/hostaltucan/reservas-api/internal/core/domain"
	"github.com/hostaltucan/reservas-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// loginRequest requires both keys; empty values are left to the service and
// fail as bad credentials.
type loginRequest struct {
	Email    *string `json:"correo" validate:"required"`
	Password *string `json:"clave" validate:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// Login authenticates a user and returns a session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  msgResponse
// @Failure      401   {object}  msgResponse
// @Failure      500   {object}  msgResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res, err := h.authService.Login(c.Request().Context(), *req.Email, *req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginAttemptsTotal.WithLabelValues("invalid_credentials").Inc()
		} else {
			metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, tokenResponse{AccessToken: res.AccessToken})
}
