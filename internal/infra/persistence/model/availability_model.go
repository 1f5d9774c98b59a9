package model

import "github.com/google/uuid"

// AvailabilityModel mirrors the 'availability' table, one row per marked grid cell.
type AvailabilityModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	DayOfWeek string    `gorm:"type:varchar(10);primaryKey"`
	TimeOfDay string    `gorm:"type:varchar(10);primaryKey"`
	Selected  bool      `gorm:"not null;default:true"`
}

// TableName explicitly sets the table name for GORM.
func (AvailabilityModel) TableName() string {
	return "availability"
}
