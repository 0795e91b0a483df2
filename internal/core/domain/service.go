package domain

import (
	"errors"
	"time"
)

// Display defaults applied when a catalog entry is created without them.
const (
	DefaultServiceIcon  = "📄"
	DefaultServiceColor = "#2196F3"
)

var ErrServiceNotFound = errors.New("service not found")

// Service is a single offerable entry in the service catalog.
// Deactivation is a soft delete: IsActive flips to false and the record
// stays in the store so historical requests keep a valid reference.
type Service struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description" bson:"description"`
	Icon        string    `json:"icon" bson:"icon"`
	Color       string    `json:"color" bson:"color"`
	IsActive    bool      `json:"isActive" bson:"is_active"`
	CreatedAt   time.Time `json:"createdAt" bson:"created_at"`
}
