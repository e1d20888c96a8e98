package catalog

import (
	"errors"
	"fmt"

	labRepo "quickscan/database/repository/lab"
	serviceRepo "quickscan/database/repository/service"
	"quickscan/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound signals that no catalog record matches the given reference.
var ErrNotFound = errors.New("catalog record not found")

// CatalogService exposes the browsable service and lab catalog.
type CatalogService interface {
	ListServices(category string) ([]models.Service, error)
	GetServiceBySlug(slug string) (*models.Service, error)
	ListLabs(city string) ([]models.Lab, error)
	GetLabByID(id string) (*models.Lab, error)
}

// DefaultCatalogService implements CatalogService.
type DefaultCatalogService struct {
	ServiceRepo serviceRepo.ServiceRepository
	LabRepo     labRepo.LabRepository
}

func (svc *DefaultCatalogService) ListServices(category string) ([]models.Service, error) {
	if category != "" {
		return svc.ServiceRepo.GetByCategory(category)
	}
	return svc.ServiceRepo.GetAll()
}

// GetServiceBySlug looks up a catalog service for display. Unlike the booking
// flow, browsing does not substitute placeholders for absent records.
func (svc *DefaultCatalogService) GetServiceBySlug(slug string) (*models.Service, error) {
	found, err := svc.ServiceRepo.GetBySlug(slug)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service: %w", err)
	}
	if found == nil {
		return nil, ErrNotFound
	}
	return found, nil
}

func (svc *DefaultCatalogService) ListLabs(city string) ([]models.Lab, error) {
	if city != "" {
		return svc.LabRepo.GetByCity(city)
	}
	return svc.LabRepo.GetAll()
}

func (svc *DefaultCatalogService) GetLabByID(id string) (*models.Lab, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	found, err := svc.LabRepo.GetByID(oid)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch lab: %w", err)
	}
	if found == nil {
		return nil, ErrNotFound
	}
	return found, nil
}
