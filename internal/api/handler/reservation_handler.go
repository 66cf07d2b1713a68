package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hostaltucan/reservas-api/internal/api/metrics"
	"github.com/hostaltucan/reservas-api/internal/core/domain"
	"github.com/hostaltucan/reservas-api/internal/core/ports"
)

// ReservationHandler handles HTTP requests for reservations.
type ReservationHandler struct {
	service ports.ReservationService
}

func NewReservationHandler(service ports.ReservationService) *ReservationHandler {
	return &ReservationHandler{service: service}
}

type createReservationRequest struct {
	Date         string `json:"fecha" validate:"required,datetime=2006-01-02"`
	ClientID     int64  `json:"cliente_id" validate:"required,gt=0"`
	SupervisorID int64  `json:"supervisor_id" validate:"gte=0"`
}

type updateReservationRequest struct {
	Date         *string `json:"fecha"`
	ClientID     *int64  `json:"cliente_id"`
	SupervisorID *int64  `json:"supervisor_id"`
}

type reservationResponse struct {
	ID         int64   `json:"ID"`
	Date       string  `json:"fecha"`
	Client     string  `json:"cliente"`
	Supervisor *string `json:"supervisor"`
}

func toReservationResponse(v domain.ReservationView) reservationResponse {
	return reservationResponse{
		ID:         v.ID,
		Date:       v.Date.Format(domain.DateLayout),
		Client:     v.ClientName,
		Supervisor: v.SupervisorName,
	}
}

// Create handles POST /reservas.
//
// @Summary      Create a reservation
// @Tags         reservas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createReservationRequest  true  "Reservation details"
// @Success      201   {object}  msgResponse
// @Failure      400   {object}  msgResponse
// @Failure      401   {object}  msgResponse
// @Failure      403   {object}  msgResponse
// @Failure      500   {object}  msgResponse
// @Router       /reservas [post]
func (h *ReservationHandler) Create(c echo.Context) error {
	var req createReservationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	r, err := h.service.Create(c.Request().Context(), ports.CreateReservationInput{
		Date:         req.Date,
		ClientID:     req.ClientID,
		SupervisorID: req.SupervisorID,
	})
	if err != nil {
		return err
	}

	metrics.ReservationsCreatedTotal.WithLabelValues(strconv.FormatBool(r.SupervisorID != nil)).Inc()
	return c.JSON(http.StatusCreated, msgResponse{Msg: "reservation created successfully"})
}

// List handles GET /reservas.
//
// @Summary      List reservations
// @Tags         reservas
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   reservationResponse
// @Failure      401  {object}  msgResponse
// @Failure      403  {object}  msgResponse
// @Failure      500  {object}  msgResponse
// @Router       /reservas [get]
func (h *ReservationHandler) List(c echo.Context) error {
	views, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]reservationResponse, 0, len(views))
	for _, v := range views {
		out = append(out, toReservationResponse(v))
	}
	return c.JSON(http.StatusOK, out)
}

// Update handles PUT /reservas/:id. Only the supplied, non-empty fields are
// written.
//
// @Summary      Edit a reservation
// @Tags         reservas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                       true  "Reservation ID"
// @Param        body  body      updateReservationRequest  true  "Fields to change"
// @Success      200   {object}  msgResponse
// @Failure      400   {object}  msgResponse
// @Failure      401   {object}  msgResponse
// @Failure      403   {object}  msgResponse
// @Failure      404   {object}  msgResponse
// @Failure      500   {object}  msgResponse
// @Router       /reservas/{id} [put]
func (h *ReservationHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateReservationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	err = h.service.Update(c.Request().Context(), id, ports.UpdateReservationInput{
		Date:         req.Date,
		ClientID:     req.ClientID,
		SupervisorID: req.SupervisorID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, msgResponse{Msg: "reservation updated successfully"})
}
