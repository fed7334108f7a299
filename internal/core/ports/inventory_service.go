package ports

import (
	"context"

	"github.com/billboardbooker/marketplace/internal/core/domain"
)

// BookInput carries the data needed to reserve a billboard.
type BookInput struct {
	BillboardID string
	UserID      string
	StartDate   string
	EndDate     string
}

// InventoryService is CRUD over billboards and bookings plus the cross-entity
// booking protocol.
//
// The primitive mutations mirror the store contract exactly: adds prepend so
// listings read most-recent-first, and UpdateBillboard / CancelBooking are
// silent no-ops when the id is unknown. The orchestrations (Book, Cancel,
// ToggleAvailability, CancelAllBookings) each run as a single document write
// covering both the booking and the billboard side of the change.
type InventoryService interface {
	Users(ctx context.Context) ([]domain.User, error)
	Billboards(ctx context.Context) ([]domain.Billboard, error)
	SearchBillboards(ctx context.Context, query string) ([]domain.Billboard, error)
	Bookings(ctx context.Context) ([]domain.Booking, error)

	AddBillboard(ctx context.Context, b domain.Billboard) error
	UpdateBillboard(ctx context.Context, b domain.Billboard) error
	RemoveBillboard(ctx context.Context, id string) error
	AddBooking(ctx context.Context, bk domain.Booking) error
	CancelBooking(ctx context.Context, id string) error

	Book(ctx context.Context, in BookInput) (*domain.Booking, error)
	Cancel(ctx context.Context, bookingID string) error
	ToggleAvailability(ctx context.Context, billboardID string) (*domain.Billboard, error)
	CancelAllBookings(ctx context.Context, billboardID string) error
}
