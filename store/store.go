// Package store abstracts the persistence layer behind a capability set
// so the reconciliation and auth logic can run against an in-memory fake
// in tests and against a real database in production.
package store

import (
	"errors"

	"github.com/Norne9/pravda-server/models"
)

// ErrNotFound is returned by single-record lookups when no row matches.
var ErrNotFound = errors.New("store: record not found")

// Store is the persistence contract for the user roster and the three
// per-month ledgers. Conflict resolution is the store's job: revenue
// upserts by day, payouts upsert by day+user, schedule rows are
// present-or-absent.
type Store interface {
	// Users
	AddUser(user *models.User) error
	GetUserByID(id uint) (*models.User, error)
	GetUserByLogin(login string) (*models.User, error)
	GetUserByToken(token string) (*models.User, error)
	// GetUsers returns all users when ids is nil, otherwise only those listed.
	GetUsers(ids []uint) ([]models.User, error)
	UpdateUser(user *models.User) error

	// Schedule
	GetSchedule(year, month int) ([]models.ScheduleEntry, error)
	SetSchedule(entry models.ScheduleEntry, working bool) error

	// Revenue
	GetRevenue(year, month int) ([]models.RevenueEntry, error)
	SetRevenue(entry models.RevenueEntry) error

	// Payouts
	GetPayouts(year, month int) ([]models.PayoutRecord, error)
	AddPayout(record models.PayoutRecord) error
}
