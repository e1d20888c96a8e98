package serviceRepo

import (
	"quickscan/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServiceRepository defines read-only access to the diagnostic-test catalog.
// Lookups return nil without error when no record matches; the booking flow
// substitutes a placeholder in that case.
type ServiceRepository interface {
	// GetByID retrieves a service by its document identifier.
	GetByID(id primitive.ObjectID) (*models.Service, error)
	// GetBySlug retrieves a service by its human-readable slug.
	GetBySlug(slug string) (*models.Service, error)
	// GetAll retrieves the full catalog.
	GetAll() ([]models.Service, error)
	// GetByCategory retrieves services in a category.
	GetByCategory(category string) ([]models.Service, error)
}
