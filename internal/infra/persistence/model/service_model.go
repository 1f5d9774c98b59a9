package model

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ServiceModel mirrors the 'services' catalog table.
type ServiceModel struct {
	ID    int64             `gorm:"primaryKey;autoIncrement"`
	Key   string            `gorm:"type:varchar(100);unique;not null"`
	Names datatypes.JSONMap `gorm:"type:jsonb;not null"` // locale -> display name
}

// TableName explicitly sets the table name for GORM.
func (ServiceModel) TableName() string {
	return "services"
}

// UserServiceModel mirrors the 'user_services' selection join table.
type UserServiceModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	ServiceID int64     `gorm:"primaryKey"`
	Selected  bool      `gorm:"not null;default:true"`
}

// TableName explicitly sets the table name for GORM.
func (UserServiceModel) TableName() string {
	return "user_services"
}
