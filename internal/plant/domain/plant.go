package domain

import (
	"errors"
	"time"
)

// HealthStatus is the user-visible condition of a tracked plant
type HealthStatus string

const (
	HealthStatusHealthy        HealthStatus = "healthy"
	HealthStatusNeedsAttention HealthStatus = "needs_attention"
	HealthStatusUnhealthy      HealthStatus = "unhealthy"
)

// ErrPlantNotFound covers both a missing plant and a plant owned by another
// user. Handlers map it to 404 so existence is never leaked.
var ErrPlantNotFound = errors.New("plant not found")

// TrackedPlant is a user's instance of a catalog plant type, distinct from
// the catalog entry itself.
type TrackedPlant struct {
	ID           string       `json:"id" gorm:"primaryKey"`
	UserID       string       `json:"user_id" gorm:"index;not null"`
	PlantTypeID  string       `json:"plant_type_id" gorm:"index;not null"`
	Nickname     string       `json:"nickname"`
	HealthStatus HealthStatus `json:"health_status" gorm:"default:healthy"`
	ImageURL     string       `json:"image_url,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}
