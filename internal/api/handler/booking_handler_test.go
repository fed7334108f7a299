package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/billboardbooker/marketplace/internal/core/domain"
	"github.com/billboardbooker/marketplace/internal/core/ports"
)

// stubInventory implements ports.InventoryService with overridable functions;
// unset operations fail the test when called.
type stubInventory struct {
	t *testing.T

	billboardsFn func(ctx context.Context) ([]domain.Billboard, error)
	searchFn     func(ctx context.Context, query string) ([]domain.Billboard, error)
	bookingsFn   func(ctx context.Context) ([]domain.Booking, error)
	bookFn       func(ctx context.Context, in ports.BookInput) (*domain.Booking, error)
	cancelFn     func(ctx context.Context, bookingID string) error
	toggleFn     func(ctx context.Context, billboardID string) (*domain.Billboard, error)
	cancelAllFn  func(ctx context.Context, billboardID string) error
	addFn        func(ctx context.Context, b domain.Billboard) error
	updateFn     func(ctx context.Context, b domain.Billboard) error
	removeFn     func(ctx context.Context, id string) error
}

func (s *stubInventory) Users(ctx context.Context) ([]domain.User, error) {
	s.t.Fatalf("unexpected Users call")
	return nil, nil
}

func (s *stubInventory) Billboards(ctx context.Context) ([]domain.Billboard, error) {
	if s.billboardsFn == nil {
		s.t.Fatalf("unexpected Billboards call")
	}
	return s.billboardsFn(ctx)
}

func (s *stubInventory) SearchBillboards(ctx context.Context, query string) ([]domain.Billboard, error) {
	if s.searchFn == nil {
		s.t.Fatalf("unexpected SearchBillboards call")
	}
	return s.searchFn(ctx, query)
}

func (s *stubInventory) Bookings(ctx context.Context) ([]domain.Booking, error) {
	if s.bookingsFn == nil {
		s.t.Fatalf("unexpected Bookings call")
	}
	return s.bookingsFn(ctx)
}

func (s *stubInventory) AddBillboard(ctx context.Context, b domain.Billboard) error {
	if s.addFn == nil {
		s.t.Fatalf("unexpected AddBillboard call")
	}
	return s.addFn(ctx, b)
}

func (s *stubInventory) UpdateBillboard(ctx context.Context, b domain.Billboard) error {
	if s.updateFn == nil {
		s.t.Fatalf("unexpected UpdateBillboard call")
	}
	return s.updateFn(ctx, b)
}

func (s *stubInventory) RemoveBillboard(ctx context.Context, id string) error {
	if s.removeFn == nil {
		s.t.Fatalf("unexpected RemoveBillboard call")
	}
	return s.removeFn(ctx, id)
}

func (s *stubInventory) AddBooking(ctx context.Context, bk domain.Booking) error {
	s.t.Fatalf("unexpected AddBooking call")
	return nil
}

func (s *stubInventory) CancelBooking(ctx context.Context, id string) error {
	s.t.Fatalf("unexpected CancelBooking call")
	return nil
}

func (s *stubInventory) Book(ctx context.Context, in ports.BookInput) (*domain.Booking, error) {
	if s.bookFn == nil {
		s.t.Fatalf("unexpected Book call")
	}
	return s.bookFn(ctx, in)
}

func (s *stubInventory) Cancel(ctx context.Context, bookingID string) error {
	if s.cancelFn == nil {
		s.t.Fatalf("unexpected Cancel call")
	}
	return s.cancelFn(ctx, bookingID)
}

func (s *stubInventory) ToggleAvailability(ctx context.Context, billboardID string) (*domain.Billboard, error) {
	if s.toggleFn == nil {
		s.t.Fatalf("unexpected ToggleAvailability call")
	}
	return s.toggleFn(ctx, billboardID)
}

func (s *stubInventory) CancelAllBookings(ctx context.Context, billboardID string) error {
	if s.cancelAllFn == nil {
		s.t.Fatalf("unexpected CancelAllBookings call")
	}
	return s.cancelAllFn(ctx, billboardID)
}

func authedContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder, userID, role string) echo.Context {
	c := e.NewContext(req, rec)
	c.Set("user_id", userID)
	c.Set("role", role)
	return c
}

func TestBookingHandler_Create_Success(t *testing.T) {
	e := newEcho()
	stub := &stubInventory{
		t: t,
		bookFn: func(ctx context.Context, in ports.BookInput) (*domain.Booking, error) {
			if in.BillboardID != "bb_001" || in.UserID != "u_cust" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.Booking{ID: "bk_abc1234", BillboardID: in.BillboardID, UserID: in.UserID, Status: domain.BookingActive}, nil
		},
	}
	h := NewBookingHandler(stub)

	body := strings.NewReader(`{"billboardId":"bb_001","startDate":"2026-09-01","endDate":"2026-09-30"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/bookings", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "u_cust", domain.RoleCustomer)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var bk domain.Booking
	if err := json.Unmarshal(rec.Body.Bytes(), &bk); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if bk.ID != "bk_abc1234" || bk.Status != domain.BookingActive {
		t.Fatalf("unexpected booking: %+v", bk)
	}
}

func TestBookingHandler_Create_MissingDates(t *testing.T) {
	e := newEcho()
	h := NewBookingHandler(&stubInventory{t: t})

	body := strings.NewReader(`{"billboardId":"bb_001"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/bookings", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "u_cust", domain.RoleCustomer)

	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestBookingHandler_List_CustomerSeesOwnOnly(t *testing.T) {
	e := newEcho()
	stub := &stubInventory{
		t: t,
		bookingsFn: func(ctx context.Context) ([]domain.Booking, error) {
			return []domain.Booking{
				{ID: "bk_1", UserID: "u_cust"},
				{ID: "bk_2", UserID: "u_other"},
				{ID: "bk_3", UserID: "u_cust"},
			}, nil
		},
	}
	h := NewBookingHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/v1/bookings", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "u_cust", domain.RoleCustomer)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp struct {
		Bookings []domain.Booking `json:"bookings"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Bookings) != 2 {
		t.Fatalf("expected 2 own bookings, got %d", len(resp.Bookings))
	}
	for _, bk := range resp.Bookings {
		if bk.UserID != "u_cust" {
			t.Fatalf("foreign booking leaked: %+v", bk)
		}
	}
}

func TestBookingHandler_Cancel_ForbidsForeignBooking(t *testing.T) {
	e := newEcho()
	stub := &stubInventory{
		t: t,
		bookingsFn: func(ctx context.Context) ([]domain.Booking, error) {
			return []domain.Booking{{ID: "bk_1", UserID: "u_other"}}, nil
		},
	}
	h := NewBookingHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/v1/bookings/bk_1/cancel", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "u_cust", domain.RoleCustomer)
	c.SetParamNames("id")
	c.SetParamValues("bk_1")

	if err := h.Cancel(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestBookingHandler_Cancel_OwnerSkipsOwnershipCheck(t *testing.T) {
	e := newEcho()
	cancelled := ""
	stub := &stubInventory{
		t: t,
		cancelFn: func(ctx context.Context, bookingID string) error {
			cancelled = bookingID
			return nil
		},
	}
	h := NewBookingHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/v1/bookings/bk_9/cancel", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "u_owner", domain.RoleOwner)
	c.SetParamNames("id")
	c.SetParamValues("bk_9")

	if err := h.Cancel(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if cancelled != "bk_9" {
		t.Fatalf("expected bk_9 cancelled, got %q", cancelled)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}
