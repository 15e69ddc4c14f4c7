package models

// PayoutRecord is cash already handed to a worker on a given day.
// Upserts by the full key: the last written amount wins.
type PayoutRecord struct {
	Day    int     `gorm:"primaryKey;autoIncrement:false" json:"day"`
	Month  int     `gorm:"primaryKey;autoIncrement:false" json:"month"`
	Year   int     `gorm:"primaryKey;autoIncrement:false" json:"year"`
	UserID uint    `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	Amount float64 `json:"amount"`
}

func (PayoutRecord) TableName() string {
	return "payouts"
}
