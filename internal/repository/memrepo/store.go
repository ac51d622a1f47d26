// Package memrepo - реализация хранилища в памяти с теми же контрактами, что и pgrepo.
// Используется в тестах и для локального запуска без базы данных.
package memrepo

import (
	"sync"
	"time"

	"github.com/fsdevblog/groph-points/internal/domain"
)

type Store struct {
	mu sync.Mutex

	nextTransactionID int64
	nextUserID        int64
	nextEventID       int64

	transactions map[int64]*domain.Transaction
	users        map[int64]*domain.User
	usernames    map[string]int64
	events       map[int64]*domain.Event
}

func NewStore() *Store {
	return &Store{
		transactions: make(map[int64]*domain.Transaction),
		users:        make(map[int64]*domain.User),
		usernames:    make(map[string]int64),
		events:       make(map[int64]*domain.Event),
	}
}

func (s *Store) now() time.Time {
	return time.Now().UTC()
}

type snapshot struct {
	nextTransactionID int64
	nextUserID        int64
	nextEventID       int64

	transactions map[int64]*domain.Transaction
	users        map[int64]*domain.User
	usernames    map[string]int64
	events       map[int64]*domain.Event
}

// snapshot делает глубокую копию состояния. Вызывать под блокировкой.
func (s *Store) snapshot() snapshot {
	snap := snapshot{
		nextTransactionID: s.nextTransactionID,
		nextUserID:        s.nextUserID,
		nextEventID:       s.nextEventID,
		transactions:      make(map[int64]*domain.Transaction, len(s.transactions)),
		users:             make(map[int64]*domain.User, len(s.users)),
		usernames:         make(map[string]int64, len(s.usernames)),
		events:            make(map[int64]*domain.Event, len(s.events)),
	}
	for id, transaction := range s.transactions {
		cp := *transaction
		snap.transactions[id] = &cp
	}
	for id, user := range s.users {
		cp := *user
		snap.users[id] = &cp
	}
	for username, id := range s.usernames {
		snap.usernames[username] = id
	}
	for id, event := range s.events {
		cp := *event
		cp.Organizers = append([]int64(nil), event.Organizers...)
		cp.Guests = append([]int64(nil), event.Guests...)
		snap.events[id] = &cp
	}
	return snap
}

// restore откатывает состояние к снимку. Вызывать под блокировкой.
func (s *Store) restore(snap snapshot) {
	s.nextTransactionID = snap.nextTransactionID
	s.nextUserID = snap.nextUserID
	s.nextEventID = snap.nextEventID
	s.transactions = snap.transactions
	s.users = snap.users
	s.usernames = snap.usernames
	s.events = snap.events
}
