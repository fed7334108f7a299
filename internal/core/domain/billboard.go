package domain

// BillboardStatus is the availability state controlling bookability.
type BillboardStatus string

const (
	BillboardAvailable BillboardStatus = "available"
	BillboardBooked    BillboardStatus = "booked"
)

// Toggled returns the opposite availability state. Used by the owner's manual
// override, which flips the flag without consulting the bookings collection.
func (s BillboardStatus) Toggled() BillboardStatus {
	if s == BillboardAvailable {
		return BillboardBooked
	}
	return BillboardAvailable
}

// Billboard is an outdoor advertising board listed by an owner.
//
// Status is denormalized: it is an independent field kept in step with the
// active bookings by the service layer, not computed on read. The owner
// override can therefore desynchronize it on purpose.
type Billboard struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	OwnerID     string          `json:"ownerId"`
	Lat         float64         `json:"lat"`
	Lng         float64         `json:"lng"`
	Price       float64         `json:"price"`
	Size        string          `json:"size"`
	Address     string          `json:"address"`
	City        string          `json:"city"`
	Status      BillboardStatus `json:"status"`
	CreatedAt   int64           `json:"createdAt"`
}
