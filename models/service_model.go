package models

import (
	"time"

	"github.com/google/uuid"
)

type ServiceType string

const (
	ServiceTypeAccommodation  ServiceType = "ACCOMMODATION"
	ServiceTypeTourGuide      ServiceType = "TOUR_GUIDE"
	ServiceTypeLocalEvent     ServiceType = "LOCAL_EVENT"
	ServiceTypeFoodExperience ServiceType = "FOOD_EXPERIENCE"
	ServiceTypeTransportation ServiceType = "TRANSPORTATION"
	ServiceTypeCarRental      ServiceType = "CAR_RENTAL"
	ServiceTypeActivity       ServiceType = "ACTIVITY"
)

func (t ServiceType) Valid() bool {
	switch t {
	case ServiceTypeAccommodation, ServiceTypeTourGuide, ServiceTypeLocalEvent,
		ServiceTypeFoodExperience, ServiceTypeTransportation, ServiceTypeCarRental,
		ServiceTypeActivity:
		return true
	}
	return false
}

type PricingUnit string

const (
	PricingPerNight   PricingUnit = "PER_NIGHT"
	PricingPerDay     PricingUnit = "PER_DAY"
	PricingPerHour    PricingUnit = "PER_HOUR"
	PricingPerPerson  PricingUnit = "PER_PERSON"
	PricingFixedPrice PricingUnit = "FIXED_PRICE"
)

func (u PricingUnit) Valid() bool {
	switch u {
	case PricingPerNight, PricingPerDay, PricingPerHour, PricingPerPerson, PricingFixedPrice:
		return true
	}
	return false
}

type Service struct {
	ID          uuid.UUID   `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ProviderID  uuid.UUID   `gorm:"not null;index" json:"provider_id"`
	Title       string      `gorm:"size:255;not null" json:"title"`
	Description string      `gorm:"type:text" json:"description"`
	Type        ServiceType `gorm:"size:30;not null" json:"type"`
	Price       float64     `gorm:"type:numeric(10,2);not null" json:"price"`
	PricingUnit PricingUnit `gorm:"size:20;not null" json:"pricing_unit"`
	CleaningFee float64     `gorm:"type:numeric(10,2);default:0.00" json:"cleaning_fee"`
	Capacity    *int        `json:"capacity"`

	Address   string  `gorm:"size:255" json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	ThumbnailURL *string  `gorm:"size:255" json:"thumbnail_url"`
	Images       []string `gorm:"serializer:json;type:jsonb" json:"images"`
	Amenities    []string `gorm:"serializer:json;type:jsonb" json:"amenities"`
	Policies     []string `gorm:"serializer:json;type:jsonb" json:"policies"`

	AvgRating   float32 `gorm:"default:0" json:"avg_rating"`
	ReviewCount int     `gorm:"default:0" json:"review_count"`
	IsVerified  bool    `gorm:"default:false" json:"is_verified"`
	IsActive    bool    `gorm:"default:true" json:"is_active"`

	CategoryID *uuid.UUID `json:"category_id"`
	LocationID *uuid.UUID `json:"location_id"`

	Provider User     `gorm:"foreignkey:ProviderID" json:"provider,omitempty"`
	Category Category `gorm:"foreignkey:CategoryID" json:"category,omitempty"`
	Location Location `gorm:"foreignkey:LocationID" json:"location,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
