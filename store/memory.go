package store

import (
	"sync"

	"github.com/Norne9/pravda-server/models"
)

type entryKey struct {
	day, month, year int
	userID           uint
}

// MemoryStore is an in-memory Store used by tests. Same contract as the
// database-backed store, including the upsert and delete-when-absent
// semantics.
type MemoryStore struct {
	mu       sync.Mutex
	nextID   uint
	users    map[uint]models.User
	schedule map[entryKey]models.ScheduleEntry
	revenue  map[entryKey]models.RevenueEntry
	payouts  map[entryKey]models.PayoutRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextID:   1,
		users:    make(map[uint]models.User),
		schedule: make(map[entryKey]models.ScheduleEntry),
		revenue:  make(map[entryKey]models.RevenueEntry),
		payouts:  make(map[entryKey]models.PayoutRecord),
	}
}

func (s *MemoryStore) AddUser(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user.ID = s.nextID
	s.nextID++
	s.users[user.ID] = *user
	return nil
}

func (s *MemoryStore) GetUserByID(id uint) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user, ok := s.users[id]; ok {
		return &user, nil
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) GetUserByLogin(login string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Login == login {
			user := user
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) GetUserByToken(token string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Token == token {
			user := user
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) GetUsers(ids []uint) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var users []models.User
	if ids == nil {
		for _, user := range s.users {
			users = append(users, user)
		}
		return users, nil
	}
	for _, id := range ids {
		if user, ok := s.users[id]; ok {
			users = append(users, user)
		}
	}
	return users, nil
}

func (s *MemoryStore) UpdateUser(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.ID]; !ok {
		return ErrNotFound
	}
	s.users[user.ID] = *user
	return nil
}

func (s *MemoryStore) GetSchedule(year, month int) ([]models.ScheduleEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var entries []models.ScheduleEntry
	for key, entry := range s.schedule {
		if key.year == year && key.month == month {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func (s *MemoryStore) SetSchedule(entry models.ScheduleEntry, working bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := entryKey{entry.Day, entry.Month, entry.Year, entry.UserID}
	if working {
		s.schedule[key] = entry
	} else {
		delete(s.schedule, key)
	}
	return nil
}

func (s *MemoryStore) GetRevenue(year, month int) ([]models.RevenueEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var entries []models.RevenueEntry
	for key, entry := range s.revenue {
		if key.year == year && key.month == month {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func (s *MemoryStore) SetRevenue(entry models.RevenueEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revenue[entryKey{entry.Day, entry.Month, entry.Year, 0}] = entry
	return nil
}

func (s *MemoryStore) GetPayouts(year, month int) ([]models.PayoutRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var records []models.PayoutRecord
	for key, record := range s.payouts {
		if key.year == year && key.month == month {
			records = append(records, record)
		}
	}
	return records, nil
}

func (s *MemoryStore) AddPayout(record models.PayoutRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payouts[entryKey{record.Day, record.Month, record.Year, record.UserID}] = record
	return nil
}
