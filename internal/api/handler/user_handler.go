package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hostaltucan/reservas-api/internal/api/metrics"
	"github.com/hostaltucan/reservas-api/internal/core/domain"
	"github.com/hostaltucan/reservas-api/internal/core/ports"
)

// UserHandler handles HTTP requests for back-office users.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type createUserRequest struct {
	Email    string `json:"correo" validate:"required,mailbox"`
	Password string `json:"clave" validate:"required"`
	Name     string `json:"nombre" validate:"required"`
	RoleID   int    `json:"perfil_id" validate:"required,min=1,max=4"`
}

// updateUserRequest fields are pointers so absent keys can be told apart.
type updateUserRequest struct {
	Email    *string `json:"correo"`
	Name     *string `json:"nombre"`
	Password *string `json:"clave"`
	RoleID   *int    `json:"perfil_id"`
}

// Create handles POST /usuarios.
//
// @Summary      Create a user
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "User details"
// @Success      201   {object}  msgResponse
// @Failure      400   {object}  msgResponse
// @Failure      401   {object}  msgResponse
// @Failure      403   {object}  msgResponse
// @Failure      409   {object}  msgResponse
// @Failure      500   {object}  msgResponse
// @Router       /usuarios [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	_, err := h.service.Create(c.Request().Context(), ports.CreateUserInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		RoleID:   domain.Role(req.RoleID),
	})
	if err != nil {
		return err
	}

	metrics.UsersCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, msgResponse{Msg: "user created successfully"})
}

// List handles GET /usuarios.
//
// @Summary      List users
// @Tags         usuarios
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.UserSummary
// @Failure      401  {object}  msgResponse
// @Failure      403  {object}  msgResponse
// @Failure      500  {object}  msgResponse
// @Router       /usuarios [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Update handles PUT /usuarios/:id. Empty values are ignored.
//
// @Summary      Edit a user
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "User ID"
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  msgResponse
// @Failure      400   {object}  msgResponse
// @Failure      401   {object}  msgResponse
// @Failure      403   {object}  msgResponse
// @Failure      404   {object}  msgResponse
// @Failure      500   {object}  msgResponse
// @Router       /usuarios/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	err = h.service.Update(c.Request().Context(), id, ports.UpdateUserInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
		RoleID:   req.RoleID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, msgResponse{Msg: "user updated successfully"})
}
