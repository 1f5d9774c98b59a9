package model

import (
	"time"

	"github.com/google/uuid"
)

// RequestModel mirrors the 'requests' table. Rows are never deleted.
type RequestModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ElderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	VolunteerID uuid.UUID `gorm:"type:uuid;not null;index"`
	ServiceID   int64     `gorm:"not null"`
	DayOfWeek   string    `gorm:"type:varchar(10);not null"`
	TimeOfDay   string    `gorm:"type:varchar(10);not null"`
	Details     string    `gorm:"type:text"`
	Urgent      bool      `gorm:"not null;default:false"`
	Status      string    `gorm:"type:varchar(20);not null;default:pending"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (RequestModel) TableName() string {
	return "requests"
}
