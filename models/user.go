package models

import "time"

// User is a team member. Workers (IsWorker) appear in salary
// calculations; admins (IsAdmin) can manage users, revenue and payouts.
// Credential fields never leave the server.
type User struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Login     string  `gorm:"type:varchar(64);uniqueIndex;not null" json:"login"`
	Name      string  `gorm:"type:varchar(255);not null" json:"name"`
	IsAdmin   bool    `json:"is_admin"`
	IsWorker  bool    `json:"is_worker"`
	Pay       float64 `json:"pay"`     // fixed rate per worked day
	Percent   float64 `json:"percent"` // share of percent-eligible revenue, 0..100
	PwdHash   string  `gorm:"type:varchar(128);not null" json:"-"`
	PwdSalt   string  `gorm:"type:varchar(64);not null" json:"-"`
	Token     string  `gorm:"type:varchar(64);index" json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
