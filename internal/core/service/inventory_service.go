package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/billboardbooker/marketplace/internal/core/domain"
	"github.com/billboardbooker/marketplace/internal/core/ports"
)

// InventoryService implements billboard and booking CRUD plus the cross-entity
// booking protocol on top of the persisted store.
type InventoryService struct {
	store ports.DocumentStore
	log   zerolog.Logger
}

func NewInventoryService(store ports.DocumentStore, log zerolog.Logger) *InventoryService {
	return &InventoryService{store: store, log: log}
}

// --- Reads ---

func (s *InventoryService) Users(ctx context.Context) ([]domain.User, error) {
	db, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return db.Users, nil
}

func (s *InventoryService) Billboards(ctx context.Context) ([]domain.Billboard, error) {
	db, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return db.Billboards, nil
}

// SearchBillboards returns available billboards whose title, city or address
// contains query case-insensitively. An empty query returns every available
// billboard.
func (s *InventoryService) SearchBillboards(ctx context.Context, query string) ([]domain.Billboard, error) {
	db, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	matches := make([]domain.Billboard, 0, len(db.Billboards))
	for _, b := range db.Billboards {
		if b.Status != domain.BillboardAvailable {
			continue
		}
		if q == "" {
			matches = append(matches, b)
			continue
		}
		text := strings.ToLower(b.Title + " " + b.City + " " + b.Address)
		if strings.Contains(text, q) {
			matches = append(matches, b)
		}
	}
	return matches, nil
}

func (s *InventoryService) Bookings(ctx context.Context) ([]domain.Booking, error) {
	db, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return db.Bookings, nil
}

// --- Primitive mutations ---

// AddBillboard prepends b so listings read most-recent-first.
func (s *InventoryService) AddBillboard(ctx context.Context, b domain.Billboard) error {
	return s.store.Mutate(ctx, func(db *domain.Database) error {
		db.Billboards = append([]domain.Billboard{b}, db.Billboards...)
		return nil
	})
}

// UpdateBillboard replaces the billboard with b's id in place. An unknown id
// is a silent no-op: the document is rewritten unchanged.
func (s *InventoryService) UpdateBillboard(ctx context.Context, b domain.Billboard) error {
	return s.store.Mutate(ctx, func(db *domain.Database) error {
		for i := range db.Billboards {
			if db.Billboards[i].ID == b.ID {
				db.Billboards[i] = b
				break
			}
		}
		return nil
	})
}

// RemoveBillboard filters the billboard out. Bookings referencing it are left
// dangling; billboardId is advisory, not a foreign key.
func (s *InventoryService) RemoveBillboard(ctx context.Context, id string) error {
	return s.store.Mutate(ctx, func(db *domain.Database) error {
		kept := db.Billboards[:0]
		for _, b := range db.Billboards {
			if b.ID != id {
				kept = append(kept, b)
			}
		}
		db.Billboards = kept
		return nil
	})
}

// AddBooking prepends bk so listings read most-recent-first.
func (s *InventoryService) AddBooking(ctx context.Context, bk domain.Booking) error {
	return s.store.Mutate(ctx, func(db *domain.Database) error {
		db.Bookings = append([]domain.Booking{bk}, db.Bookings...)
		return nil
	})
}

// CancelBooking sets the booking's status to cancelled. An unknown id is a
// silent no-op. Cancelled is terminal; the billboard side is the caller's
// business (see Cancel for the orchestrated variant).
func (s *InventoryService) CancelBooking(ctx context.Context, id string) error {
	return s.store.Mutate(ctx, func(db *domain.Database) error {
		if bk := db.FindBooking(id); bk != nil {
			bk.Status = domain.BookingCancelled
		}
		return nil
	})
}

// --- Orchestrations ---
// Each runs the booking and billboard sides of the change inside one document
// write, so the denormalized billboard status cannot drift mid-operation.

// Book reserves a billboard for a date range: creates an active booking and
// marks the billboard booked.
func (s *InventoryService) Book(ctx context.Context, in ports.BookInput) (*domain.Booking, error) {
	if in.StartDate == "" || in.EndDate == "" {
		return nil, domain.ErrDatesRequired
	}

	var created *domain.Booking
	err := s.store.Mutate(ctx, func(db *domain.Database) error {
		b := db.FindBillboard(in.BillboardID)
		if b == nil {
			return domain.ErrBillboardNotFound
		}
		if b.Status != domain.BillboardAvailable {
			return domain.ErrBillboardBooked
		}

		bk := domain.Booking{
			ID:          domain.NewID("bk"),
			BillboardID: in.BillboardID,
			UserID:      in.UserID,
			StartDate:   in.StartDate,
			EndDate:     in.EndDate,
			Status:      domain.BookingActive,
			CreatedAt:   domain.NowMillis(),
		}
		db.Bookings = append([]domain.Booking{bk}, db.Bookings...)
		b.Status = domain.BillboardBooked
		created = &bk
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("booking_id", created.ID).Str("billboard_id", in.BillboardID).Str("user_id", in.UserID).Msg("billboard booked")
	return created, nil
}

// Cancel cancels one booking and re-derives the billboard's status: when no
// other active booking still references the billboard it goes back to
// available, otherwise it stays booked.
func (s *InventoryService) Cancel(ctx context.Context, bookingID string) error {
	return s.store.Mutate(ctx, func(db *domain.Database) error {
		bk := db.FindBooking(bookingID)
		if bk == nil {
			return domain.ErrBookingNotFound
		}
		bk.Status = domain.BookingCancelled

		if b := db.FindBillboard(bk.BillboardID); b != nil && !db.HasActiveBooking(b.ID) {
			b.Status = domain.BillboardAvailable
		}
		return nil
	})
}

// ToggleAvailability flips the billboard's status without touching any
// booking. This is the owner's manual override and can desynchronize the
// status from the bookings collection on purpose.
func (s *InventoryService) ToggleAvailability(ctx context.Context, billboardID string) (*domain.Billboard, error) {
	var toggled *domain.Billboard
	err := s.store.Mutate(ctx, func(db *domain.Database) error {
		b := db.FindBillboard(billboardID)
		if b == nil {
			return domain.ErrBillboardNotFound
		}
		b.Status = b.Status.Toggled()
		copied := *b
		toggled = &copied
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toggled, nil
}

// CancelAllBookings cancels every active booking referencing the billboard and
// force-sets it to available unconditionally.
func (s *InventoryService) CancelAllBookings(ctx context.Context, billboardID string) error {
	return s.store.Mutate(ctx, func(db *domain.Database) error {
		b := db.FindBillboard(billboardID)
		if b == nil {
			return domain.ErrBillboardNotFound
		}
		cancelled := 0
		for i := range db.Bookings {
			if db.Bookings[i].BillboardID == billboardID && db.Bookings[i].Status == domain.BookingActive {
				db.Bookings[i].Status = domain.BookingCancelled
				cancelled++
			}
		}
		b.Status = domain.BillboardAvailable
		s.log.Info().Str("billboard_id", billboardID).Int("cancelled", cancelled).Msg("all bookings cancelled")
		return nil
	})
}
