package models

import (
	"time"

	"github.com/google/uuid"
)

// Availability is a provider-declared window during which a service is or is
// not bookable. Windows are half-open: [StartDateTime, EndDateTime).
type Availability struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ServiceID     uuid.UUID `gorm:"not null;index" json:"service_id"`
	StartDateTime time.Time `gorm:"not null" json:"start_date_time"`
	EndDateTime   time.Time `gorm:"not null" json:"end_date_time"`
	IsAvailable   bool      `gorm:"not null;default:true" json:"is_available"`
	Notes         *string   `gorm:"type:text" json:"notes"`

	Service Service `gorm:"foreignkey:ServiceID" json:"service,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
