package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"kainan/internal/metrics"
	"kainan/internal/service"
)

// FlexID accepts a JSON number or string and keeps its decimal string form.
// Clients send ulam ids both ways; the catalog may hold either too.
type FlexID string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexID(n.String())
	return nil
}

// ReservationHandler handles order placement and history endpoints.
type ReservationHandler struct {
	reservationService service.ReservationService
}

// NewReservationHandler creates a new reservation handler.
func NewReservationHandler(reservationService service.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservationService: reservationService}
}

// ReserveRequest represents an order request. Stall and UlamID are pointers
// so that 0 counts as present and only a missing field fails validation.
type ReserveRequest struct {
	Stall     *FlexID `json:"stall" validate:"required"`
	UlamID    *FlexID `json:"ulamId" validate:"required"`
	WithRice  bool    `json:"withRice"`
	UserEmail string  `json:"userEmail" validate:"required"`
}

// Reserve godoc
// @Summary Reserve a menu item
// @Tags reservation
// @Accept json
// @Produce json
// @Param request body ReserveRequest true "Order data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /reserve [post]
func (h *ReservationHandler) Reserve(c echo.Context) error {
	var req ReserveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	stall, err := strconv.Atoi(string(*req.Stall))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "stall must be a number")
	}
	ulamID := string(*req.UlamID)

	reservation, err := h.reservationService.Reserve(c.Request().Context(), service.ReserveRequest{
		Stall:     &stall,
		UlamID:    &ulamID,
		WithRice:  req.WithRice,
		UserEmail: req.UserEmail,
	})
	if err != nil {
		return err
	}

	metrics.ReservationsCreated.Inc()
	return c.JSON(http.StatusOK, map[string]interface{}{
		"reservation": reservation,
	})
}

// History godoc
// @Summary List a user's reservations, newest first
// @Tags reservation
// @Produce json
// @Param email query string true "Account email"
// @Success 200 {array} model.Reservation
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /history [get]
func (h *ReservationHandler) History(c echo.Context) error {
	reservations, err := h.reservationService.History(c.Request().Context(), c.QueryParam("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reservations)
}
