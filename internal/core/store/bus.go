package store

import (
	"github.com/billboardbooker/marketplace/internal/core/domain"
	"github.com/billboardbooker/marketplace/internal/core/ports"
)

// Subscribe registers an observer to be invoked after every successful save
// with the session current at that point. The returned function removes the
// observer; calling it more than once is harmless.
//
// The registry lives on the store instance rather than at package level so
// independent stores (and their tests) do not share observers.
func (s *Store) Subscribe(obs ports.Observer) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextObsID
	s.nextObsID++
	s.observers = append(s.observers, observer{id: id, fn: obs})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i := range s.observers {
			if s.observers[i].id == id {
				s.observers = append(s.observers[:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

// notify is called with the store mutex held, so delivery is synchronous with
// the save that triggered it and observers always see saves in order.
func (s *Store) notify(session *domain.Session) {
	for _, ob := range s.observers {
		ob.fn(session)
	}
}
