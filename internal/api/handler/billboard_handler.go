package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/billboardbooker/marketplace/internal/api/metrics"
	"github.com/billboardbooker/marketplace/internal/core/domain"
	"github.com/billboardbooker/marketplace/internal/core/ports"
)

// BillboardHandler handles HTTP requests for billboard inventory.
type BillboardHandler struct {
	inventory ports.InventoryService
}

func NewBillboardHandler(inventory ports.InventoryService) *BillboardHandler {
	return &BillboardHandler{inventory: inventory}
}

// List returns billboards, most recent first.
//
// @Summary      List billboards
// @Tags         billboards
// @Produce      json
// @Security     BearerAuth
// @Param        q          query  string  false  "Substring match over title, city, address (implies available=true)"
// @Param        available  query  string  false  "Set to true to return only available billboards"
// @Success      200  {object}  billboardListResponse
// @Router       /v1/billboards [get]
func (h *BillboardHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	if q := c.QueryParam("q"); q != "" || c.QueryParam("available") == "true" {
		matches, err := h.inventory.SearchBillboards(ctx, q)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, billboardListResponse{Billboards: matches})
	}

	billboards, err := h.inventory.Billboards(ctx)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, billboardListResponse{Billboards: billboards})
}

// Create lists a new billboard owned by the caller.
//
// @Summary      Create a billboard
// @Tags         billboards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBillboardRequest  true  "Billboard details"
// @Success      201   {object}  domain.Billboard
// @Failure      400   {object}  errorResponse
// @Router       /v1/billboards [post]
func (h *BillboardHandler) Create(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createBillboardRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	b := domain.Billboard{
		ID:          domain.NewID("bb"),
		Title:       req.Title,
		Description: req.Description,
		OwnerID:     userID,
		Lat:         req.Lat,
		Lng:         req.Lng,
		Price:       req.Price,
		Size:        req.Size,
		Address:     req.Address,
		City:        req.City,
		Status:      domain.BillboardAvailable,
		CreatedAt:   domain.NowMillis(),
	}
	if err := h.inventory.AddBillboard(c.Request().Context(), b); err != nil {
		return err
	}

	metrics.BillboardsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, b)
}

// Update replaces a billboard the caller owns.
//
// @Summary      Update a billboard
// @Tags         billboards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                  true  "Billboard id"
// @Param        body  body      updateBillboardRequest  true  "Billboard details"
// @Success      200   {object}  domain.Billboard
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/billboards/{id} [put]
func (h *BillboardHandler) Update(c echo.Context) error {
	existing, err := h.ownedBillboard(c)
	if err != nil {
		return err
	}

	var req updateBillboardRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	next := *existing
	next.Title = req.Title
	next.Description = req.Description
	next.Lat = req.Lat
	next.Lng = req.Lng
	next.Price = req.Price
	next.Size = req.Size
	next.Address = req.Address
	next.City = req.City
	next.Status = domain.BillboardStatus(req.Status)

	if err := h.inventory.UpdateBillboard(c.Request().Context(), next); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, next)
}

// Remove deletes a billboard the caller owns. Bookings referencing it are
// left in place.
//
// @Summary      Remove a billboard
// @Tags         billboards
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Billboard id"
// @Success      204  "no content"
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/billboards/{id} [delete]
func (h *BillboardHandler) Remove(c echo.Context) error {
	existing, err := h.ownedBillboard(c)
	if err != nil {
		return err
	}
	if err := h.inventory.RemoveBillboard(c.Request().Context(), existing.ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Toggle flips the billboard's availability without touching bookings.
//
// @Summary      Toggle billboard availability
// @Tags         billboards
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Billboard id"
// @Success      200  {object}  domain.Billboard
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/billboards/{id}/toggle [post]
func (h *BillboardHandler) Toggle(c echo.Context) error {
	existing, err := h.ownedBillboard(c)
	if err != nil {
		return err
	}
	toggled, err := h.inventory.ToggleAvailability(c.Request().Context(), existing.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toggled)
}

// CancelBookings cancels every active booking on the billboard and force-sets
// it to available.
//
// @Summary      Cancel all bookings on a billboard
// @Tags         billboards
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Billboard id"
// @Success      204  "no content"
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/billboards/{id}/cancel-bookings [post]
func (h *BillboardHandler) CancelBookings(c echo.Context) error {
	existing, err := h.ownedBillboard(c)
	if err != nil {
		return err
	}
	if err := h.inventory.CancelAllBookings(c.Request().Context(), existing.ID); err != nil {
		return err
	}
	metrics.BookingsCancelledTotal.WithLabelValues("owner").Inc()
	return c.NoContent(http.StatusNoContent)
}

// ownedBillboard resolves the :id path parameter and enforces that the caller
// owns the billboard.
func (h *BillboardHandler) ownedBillboard(c echo.Context) (*domain.Billboard, error) {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return nil, err
	}

	billboards, err := h.inventory.Billboards(c.Request().Context())
	if err != nil {
		return nil, err
	}
	id := c.Param("id")
	for i := range billboards {
		if billboards[i].ID == id {
			if billboards[i].OwnerID != userID {
				return nil, domain.ErrForbidden
			}
			return &billboards[i], nil
		}
	}
	return nil, domain.ErrBillboardNotFound
}
