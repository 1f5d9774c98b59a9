package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel mirrors the 'reviews' table. Repeat reviews of the same volunteer are allowed.
type ReviewModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ElderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	VolunteerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Rating      int       `gorm:"not null;check:rating BETWEEN 1 AND 5"`
	Comment     string    `gorm:"type:text"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}

// FavoriteModel mirrors the 'favorites' table.
type FavoriteModel struct {
	ElderID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	VolunteerID uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorites"
}
