package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/billboardbooker/marketplace/internal/core/domain"
	"github.com/billboardbooker/marketplace/internal/infrastructure/storage/memdoc"
)

func newTestStore() (*Store, *memdoc.Backend) {
	backend := memdoc.New()
	return New(backend, zerolog.Nop()), backend
}

func TestStore_Load_SeedsWhenEmpty(t *testing.T) {
	s, _ := newTestStore()

	db, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(db.Users) != 2 || len(db.Billboards) != 2 || len(db.Bookings) != 0 {
		t.Fatalf("unexpected seed shape: %d users, %d billboards, %d bookings", len(db.Users), len(db.Billboards), len(db.Bookings))
	}
	if db.Session != nil {
		t.Fatalf("seed database must have no session")
	}
	if db.Billboards[0].ID != "bb_001" || db.Billboards[0].Status != domain.BillboardAvailable {
		t.Fatalf("unexpected first seed billboard: %+v", db.Billboards[0])
	}
	if db.Billboards[1].Status != domain.BillboardBooked {
		t.Fatalf("bb_002 must seed as booked")
	}
}

func TestStore_Load_SeedsOnCorruptDocument(t *testing.T) {
	s, backend := newTestStore()
	if err := backend.Put(context.Background(), []byte("{not json")); err != nil {
		t.Fatalf("put: %v", err)
	}

	db, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(db.Users) != 2 {
		t.Fatalf("expected seed fallback, got %d users", len(db.Users))
	}
}

func TestStore_Save_PersistsDocumentShape(t *testing.T) {
	s, backend := newTestStore()
	db := domain.SeedDatabase()
	db.Session = &domain.Session{User: db.Users[1].Redact()}

	if err := s.Save(context.Background(), db); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	raw, err := backend.Get(context.Background())
	if err != nil {
		t.Fatalf("backend get: %v", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("persisted document not valid JSON: %v", err)
	}
	for _, key := range []string{"users", "billboards", "bookings", "session"} {
		if _, ok := doc[key]; !ok {
			t.Fatalf("persisted document missing %q field", key)
		}
	}

	var users []map[string]any
	if err := json.Unmarshal(doc["users"], &users); err != nil {
		t.Fatalf("users field: %v", err)
	}
	for _, field := range []string{"id", "name", "email", "password", "role", "createdAt"} {
		if _, ok := users[0][field]; !ok {
			t.Fatalf("persisted user missing %q field", field)
		}
	}
}

func TestStore_Save_NotifiesObserversWithSession(t *testing.T) {
	s, _ := newTestStore()

	var got []*domain.Session
	s.Subscribe(func(session *domain.Session) {
		got = append(got, session)
	})

	db := domain.SeedDatabase()
	if err := s.Save(context.Background(), db); err != nil {
		t.Fatalf("save: %v", err)
	}
	db.Session = &domain.Session{User: db.Users[0].Redact()}
	if err := s.Save(context.Background(), db); err != nil {
		t.Fatalf("save: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(got))
	}
	if got[0] != nil {
		t.Fatalf("first notification should carry nil session")
	}
	if got[1] == nil || got[1].User.ID != "u_owner" {
		t.Fatalf("second notification should carry the owner session, got %+v", got[1])
	}
}

func TestStore_Subscribe_Unsubscribe(t *testing.T) {
	s, _ := newTestStore()

	calls := 0
	unsub := s.Subscribe(func(*domain.Session) { calls++ })

	if err := s.Save(context.Background(), domain.SeedDatabase()); err != nil {
		t.Fatalf("save: %v", err)
	}
	unsub()
	unsub() // second call is harmless
	if err := s.Save(context.Background(), domain.SeedDatabase()); err != nil {
		t.Fatalf("save: %v", err)
	}

	if calls != 1 {
		t.Fatalf("expected exactly 1 call after unsubscribe, got %d", calls)
	}
}

func TestStore_Mutate_AbortSkipsWriteAndNotify(t *testing.T) {
	s, backend := newTestStore()
	if err := s.Save(context.Background(), domain.SeedDatabase()); err != nil {
		t.Fatalf("save: %v", err)
	}
	before, _ := backend.Get(context.Background())

	notified := false
	s.Subscribe(func(*domain.Session) { notified = true })

	boom := errors.New("boom")
	err := s.Mutate(context.Background(), func(db *domain.Database) error {
		db.Users = nil // must not be persisted
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if notified {
		t.Fatalf("observer fired despite aborted mutation")
	}

	after, _ := backend.Get(context.Background())
	if !bytes.Equal(before, after) {
		t.Fatalf("document changed despite aborted mutation")
	}
}

func TestStore_Mutate_WritesAndNotifies(t *testing.T) {
	s, _ := newTestStore()

	notified := 0
	s.Subscribe(func(*domain.Session) { notified++ })

	err := s.Mutate(context.Background(), func(db *domain.Database) error {
		db.Billboards[0].Status = domain.BillboardBooked
		return nil
	})
	if err != nil {
		t.Fatalf("mutate: %v", err)
	}

	db, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if db.Billboards[0].Status != domain.BillboardBooked {
		t.Fatalf("mutation not persisted")
	}
	if notified != 1 {
		t.Fatalf("expected 1 notification, got %d", notified)
	}
}
