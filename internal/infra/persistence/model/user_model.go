// Package model holds the GORM table mappings. They never leave the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel maps 'users'. Rating and ReviewCount are the denormalized volunteer
// aggregate, rewritten inside the review transaction.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	FirstName    string    `gorm:"type:varchar(100);not null"`
	LastName     string    `gorm:"type:varchar(100);not null"`
	Role         string    `gorm:"type:varchar(20);not null;default:elder;index;check:chk_users_role,role IN ('elder','volunteer')"`
	Gender       string    `gorm:"type:varchar(50)"`
	City         string    `gorm:"type:varchar(100)"`
	Bio          string    `gorm:"type:text"`
	Rating       *float64  `gorm:"type:double precision;check:chk_users_rating,rating BETWEEN 1 AND 5"` // NULL until the first review.
	ReviewCount  int       `gorm:"not null;default:0"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

func (UserModel) TableName() string {
	return "users"
}
