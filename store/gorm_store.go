package store

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Norne9/pravda-server/models"
)

// GormStore implements Store over a gorm connection. The pool behind it
// is created once at startup and shared by all requests; none of these
// methods hold state of their own.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) AddUser(user *models.User) error {
	return s.DB.Create(user).Error
}

func (s *GormStore) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *GormStore) GetUserByLogin(login string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("login = ?", login).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *GormStore) GetUserByToken(token string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("token = ?", token).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *GormStore) GetUsers(ids []uint) ([]models.User, error) {
	var users []models.User
	q := s.DB
	if ids != nil {
		q = q.Where("id IN ?", ids)
	}
	if err := q.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *GormStore) UpdateUser(user *models.User) error {
	return s.DB.Save(user).Error
}

func (s *GormStore) GetSchedule(year, month int) ([]models.ScheduleEntry, error) {
	var entries []models.ScheduleEntry
	if err := s.DB.Where("year = ? AND month = ?", year, month).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *GormStore) SetSchedule(entry models.ScheduleEntry, working bool) error {
	if working {
		return s.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&entry).Error
	}
	return s.DB.Where(
		"day = ? AND month = ? AND year = ? AND user_id = ?",
		entry.Day, entry.Month, entry.Year, entry.UserID,
	).Delete(&models.ScheduleEntry{}).Error
}

func (s *GormStore) GetRevenue(year, month int) ([]models.RevenueEntry, error) {
	var entries []models.RevenueEntry
	if err := s.DB.Where("year = ? AND month = ?", year, month).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *GormStore) SetRevenue(entry models.RevenueEntry) error {
	return s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "day"}, {Name: "month"}, {Name: "year"}},
		DoUpdates: clause.AssignmentColumns([]string{"with_percent", "without_percent"}),
	}).Create(&entry).Error
}

func (s *GormStore) GetPayouts(year, month int) ([]models.PayoutRecord, error) {
	var records []models.PayoutRecord
	if err := s.DB.Where("year = ? AND month = ?", year, month).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (s *GormStore) AddPayout(record models.PayoutRecord) error {
	return s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "day"}, {Name: "month"}, {Name: "year"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount"}),
	}).Create(&record).Error
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
