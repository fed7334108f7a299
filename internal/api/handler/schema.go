package handler

import (
	"github.com/billboardbooker/marketplace/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type createBillboardRequest struct {
	Title       string  `json:"title"       validate:"required"`
	Description string  `json:"description"`
	Lat         float64 `json:"lat"         validate:"required"`
	Lng         float64 `json:"lng"         validate:"required"`
	Price       float64 `json:"price"       validate:"gte=0"`
	Size        string  `json:"size"`
	Address     string  `json:"address"`
	City        string  `json:"city"`
}

type updateBillboardRequest struct {
	Title       string  `json:"title"       validate:"required"`
	Description string  `json:"description"`
	Lat         float64 `json:"lat"         validate:"required"`
	Lng         float64 `json:"lng"         validate:"required"`
	Price       float64 `json:"price"       validate:"gte=0"`
	Size        string  `json:"size"`
	Address     string  `json:"address"`
	City        string  `json:"city"`
	Status      string  `json:"status"      validate:"required,oneof=available booked"`
}

type billboardListResponse struct {
	Billboards []domain.Billboard `json:"billboards"`
}

type createBookingRequest struct {
	BillboardID string `json:"billboardId" validate:"required"`
	StartDate   string `json:"startDate"   validate:"required"`
	EndDate     string `json:"endDate"     validate:"required"`
}

type bookingListResponse struct {
	Bookings []domain.Booking `json:"bookings"`
}
