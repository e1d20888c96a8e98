package booking

import (
	"fmt"
	"strings"

	"quickscan/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// servicePriceTable maps well-known service slugs to their list price.
// Slugs outside this table fall back to the catalog default.
var servicePriceTable = map[string]float64{
	"mri-scan":       2500,
	"ct-scan":        2250,
	"health-checkup": 3500,
	"x-ray":          500,
	"blood-test":     899,
}

const (
	placeholderOriginalPrice = 3500
	originalPriceMarkup      = 1.4
)

// Placeholder lab display defaults.
const (
	placeholderLabName    = "QuickScan Diagnostic Center"
	placeholderLabAddress = "123 Medical Street, Mumbai"
	placeholderLabCity    = "Mumbai"
	placeholderLabPhone   = "022-12345678"
)

// resolveService resolves a service reference that may be a document
// identifier or a slug. When neither path finds a record, a transient
// placeholder is synthesized; it is embedded in the booking snapshot but
// never persisted to the catalog.
func (svc *DefaultBookingService) resolveService(ref string) (*models.Service, error) {
	if oid, err := primitive.ObjectIDFromHex(ref); err == nil {
		found, err := svc.ServiceRepo.GetByID(oid)
		if err != nil {
			return nil, fmt.Errorf("service lookup failed: %w", err)
		}
		if found != nil {
			return found, nil
		}
	} else {
		found, err := svc.ServiceRepo.GetBySlug(ref)
		if err != nil {
			return nil, fmt.Errorf("service lookup failed: %w", err)
		}
		if found != nil {
			return found, nil
		}
	}
	return placeholderService(ref), nil
}

// resolveLab resolves a lab reference by document identifier, substituting a
// placeholder with fixed display defaults when the reference is not a valid
// identifier or no record exists.
func (svc *DefaultBookingService) resolveLab(ref string) (*models.Lab, error) {
	oid, err := primitive.ObjectIDFromHex(ref)
	if err == nil {
		found, err := svc.LabRepo.GetByID(oid)
		if err != nil {
			return nil, fmt.Errorf("lab lookup failed: %w", err)
		}
		if found != nil {
			return found, nil
		}
	} else {
		oid = primitive.NewObjectID()
	}

	return &models.Lab{
		ID:      oid,
		Name:    placeholderLabName,
		Address: placeholderLabAddress,
		City:    placeholderLabCity,
		Phone:   placeholderLabPhone,
	}, nil
}

// placeholderService synthesizes a bookable service from a slug: a
// title-cased display name and a price from the fixed table, with the
// catalog default for unknown slugs.
func placeholderService(slug string) *models.Service {
	price, known := servicePriceTable[slug]
	if !known {
		price = models.DefaultServicePrice
	}

	original := float64(placeholderOriginalPrice)
	if known {
		original = round2(price * originalPriceMarkup)
	}

	return &models.Service{
		ID:              primitive.NewObjectID(),
		Name:            titleFromSlug(slug),
		Slug:            slug,
		Category:        categoryFromSlug(slug),
		Price:           price,
		DiscountedPrice: price,
		OriginalPrice:   original,
	}
}

// titleFromSlug converts "health-checkup" into "Health Checkup".
func titleFromSlug(slug string) string {
	words := strings.Split(slug, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func categoryFromSlug(slug string) string {
	category := strings.TrimSuffix(slug, "-scan")
	category = strings.ReplaceAll(category, "-", " ")
	if category == "" {
		return "diagnostic"
	}
	return category
}
