package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/billboardbooker/marketplace/internal/api/metrics"
	"github.com/billboardbooker/marketplace/internal/core/domain"
	"github.com/billboardbooker/marketplace/internal/core/ports"
)

// BookingHandler handles HTTP requests for the booking lifecycle.
type BookingHandler struct {
	inventory ports.InventoryService
}

func NewBookingHandler(inventory ports.InventoryService) *BookingHandler {
	return &BookingHandler{inventory: inventory}
}

// List returns bookings, most recent first. Customers see their own bookings;
// owners see every booking so they can track their billboards.
//
// @Summary      List bookings
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  bookingListResponse
// @Router       /v1/bookings [get]
func (h *BookingHandler) List(c echo.Context) error {
	userID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	bookings, err := h.inventory.Bookings(c.Request().Context())
	if err != nil {
		return err
	}

	if role == domain.RoleOwner {
		return c.JSON(http.StatusOK, bookingListResponse{Bookings: bookings})
	}

	mine := make([]domain.Booking, 0, len(bookings))
	for _, bk := range bookings {
		if bk.UserID == userID {
			mine = append(mine, bk)
		}
	}
	return c.JSON(http.StatusOK, bookingListResponse{Bookings: mine})
}

// Create books an available billboard for the caller.
//
// @Summary      Book a billboard
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBookingRequest  true  "Booking details"
// @Success      201   {object}  domain.Booking
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.inventory.Book(c.Request().Context(), ports.BookInput{
		BillboardID: req.BillboardID,
		UserID:      userID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	})
	if err != nil {
		return err
	}

	metrics.BookingsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, booking)
}

// Cancel cancels one booking and re-derives the billboard's availability.
// A customer may cancel their own bookings; an owner may cancel any.
//
// @Summary      Cancel a booking
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Booking id"
// @Success      204  "no content"
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c echo.Context) error {
	userID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if role != domain.RoleOwner {
		bookings, err := h.inventory.Bookings(c.Request().Context())
		if err != nil {
			return err
		}
		for _, bk := range bookings {
			if bk.ID == id {
				if bk.UserID != userID {
					return domain.ErrForbidden
				}
				break
			}
		}
	}

	if err := h.inventory.Cancel(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.BookingsCancelledTotal.WithLabelValues("customer").Inc()
	return c.NoContent(http.StatusNoContent)
}
