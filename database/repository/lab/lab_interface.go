package labRepo

import (
	"quickscan/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LabRepository defines read-only access to diagnostic centers.
// GetByID returns nil without error when no record matches.
type LabRepository interface {
	GetByID(id primitive.ObjectID) (*models.Lab, error)
	GetAll() ([]models.Lab, error)
	GetByCity(city string) ([]models.Lab, error)
}
