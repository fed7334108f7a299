package domain

import (
	"strings"
	"time"
)

// StorageKey is the fixed namespaced key the serialized database lives under.
// It matches the document layout already persisted by earlier versions of the
// application, so existing data keeps loading unchanged.
const StorageKey = "billboard-booker.v1"

// Database is the root aggregate: the entire marketplace state as one
// JSON-serializable document. It is always read and rewritten as a whole,
// never patched field-by-field at the storage layer.
type Database struct {
	Users      []User      `json:"users"`
	Billboards []Billboard `json:"billboards"`
	Bookings   []Booking   `json:"bookings"`
	Session    *Session    `json:"session"`
}

// seedCreatedAt is the fixed creation timestamp stamped on demo records so the
// fallback database is deterministic.
const seedCreatedAt int64 = 1700000000000

// SeedDatabase returns the demo database used when no document exists yet or
// the persisted one cannot be parsed: one owner and one customer with fixed
// known credentials, one available and one booked billboard, no bookings.
func SeedDatabase() *Database {
	return &Database{
		Users: []User{
			{ID: "u_owner", Name: "Olivia Owner", Email: "owner@example.com", Password: "owner", Role: RoleOwner, CreatedAt: seedCreatedAt},
			{ID: "u_cust", Name: "Carl Customer", Email: "customer@example.com", Password: "customer", Role: RoleCustomer, CreatedAt: seedCreatedAt},
		},
		Billboards: []Billboard{
			{
				ID: "bb_001", Title: "Times Square North", Description: "High-visibility board", OwnerID: "u_owner",
				Lat: 40.7590, Lng: -73.9845, Price: 2500, Size: "14x48 ft", Address: "1560 Broadway", City: "New York",
				Status: BillboardAvailable, CreatedAt: seedCreatedAt,
			},
			{
				ID: "bb_002", Title: "Downtown Brooklyn", Description: "Commuter traffic", OwnerID: "u_owner",
				Lat: 40.6928, Lng: -73.9903, Price: 1200, Size: "10x30 ft", Address: "Flatbush Ave", City: "New York",
				Status: BillboardBooked, CreatedAt: seedCreatedAt,
			},
		},
		Bookings: []Booking{},
		Session:  nil,
	}
}

// NowMillis returns the current wall-clock time in unix milliseconds, the
// timestamp representation used throughout the persisted document.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}

// FindUserByEmail returns the first user whose email matches case-insensitively,
// or nil when none does.
func (db *Database) FindUserByEmail(email string) *User {
	for i := range db.Users {
		if strings.EqualFold(db.Users[i].Email, email) {
			return &db.Users[i]
		}
	}
	return nil
}

// FindBillboard returns the billboard with the given id, or nil.
func (db *Database) FindBillboard(id string) *Billboard {
	for i := range db.Billboards {
		if db.Billboards[i].ID == id {
			return &db.Billboards[i]
		}
	}
	return nil
}

// FindBooking returns the booking with the given id, or nil.
func (db *Database) FindBooking(id string) *Booking {
	for i := range db.Bookings {
		if db.Bookings[i].ID == id {
			return &db.Bookings[i]
		}
	}
	return nil
}

// HasActiveBooking reports whether any active booking references billboardID.
func (db *Database) HasActiveBooking(billboardID string) bool {
	for i := range db.Bookings {
		if db.Bookings[i].BillboardID == billboardID && db.Bookings[i].Status == BookingActive {
			return true
		}
	}
	return false
}
