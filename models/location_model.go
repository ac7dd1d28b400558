package models

import (
	"time"

	"github.com/google/uuid"
)

type Location struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	City        string    `gorm:"size:100;not null" json:"city"`
	Region      string    `gorm:"size:100" json:"region"`
	Country     string    `gorm:"size:100;not null" json:"country"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Description *string   `gorm:"type:text" json:"description"`
	ImageURL    *string   `gorm:"size:255" json:"image_url"`
	IsPopular   bool      `gorm:"default:false" json:"is_popular"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
