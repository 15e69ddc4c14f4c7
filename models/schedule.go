package models

// ScheduleEntry marks a worker present on a calendar day. Presence of the
// row is the whole record: removing it means the day was not worked.
type ScheduleEntry struct {
	Day    int  `gorm:"primaryKey;autoIncrement:false" json:"day"`
	Month  int  `gorm:"primaryKey;autoIncrement:false" json:"month"`
	Year   int  `gorm:"primaryKey;autoIncrement:false" json:"year"`
	UserID uint `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
}

func (ScheduleEntry) TableName() string {
	return "schedule"
}
