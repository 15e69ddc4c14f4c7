package models

// RevenueEntry records one calendar day's takings, split into the part
// shared with the crew by percent and the part that is not.
type RevenueEntry struct {
	Day            int     `gorm:"primaryKey;autoIncrement:false" json:"day"`
	Month          int     `gorm:"primaryKey;autoIncrement:false" json:"month"`
	Year           int     `gorm:"primaryKey;autoIncrement:false" json:"year"`
	WithPercent    float64 `json:"with_percent"`
	WithoutPercent float64 `json:"without_percent"`
}

func (RevenueEntry) TableName() string {
	return "revenue"
}
