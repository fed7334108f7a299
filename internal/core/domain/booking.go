package domain

// BookingStatus is the lifecycle state of a booking. Cancelled is terminal;
// bookings are never physically deleted.
type BookingStatus string

const (
	BookingActive    BookingStatus = "active"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking is a customer's reservation of a billboard for a date range.
// StartDate and EndDate are plain calendar dates (YYYY-MM-DD) with no
// time-of-day component and no end-after-start validation.
type Booking struct {
	ID          string        `json:"id"`
	BillboardID string        `json:"billboardId"`
	UserID      string        `json:"userId"`
	StartDate   string        `json:"startDate"`
	EndDate     string        `json:"endDate"`
	Status      BookingStatus `json:"status"`
	CreatedAt   int64         `json:"createdAt"`
}
