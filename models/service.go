package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service represents a diagnostic test offered for booking. Read-only to the
// booking flow; a transient placeholder is synthesized when the referenced
// service does not exist in the catalog.
type Service struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name            string             `bson:"name" json:"name"`
	Slug            string             `bson:"slug" json:"slug"`
	Category        string             `bson:"category" json:"category"`
	Description     string             `bson:"description,omitempty" json:"description,omitempty"`
	Price           float64            `bson:"price" json:"price"`
	DiscountedPrice float64            `bson:"discountedPrice,omitempty" json:"discountedPrice,omitempty"`
	OriginalPrice   float64            `bson:"originalPrice,omitempty" json:"originalPrice,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// EffectivePrice returns the price the booking flow charges for this service:
// the discounted price when set, otherwise the list price, otherwise the
// catalog default.
func (s *Service) EffectivePrice() float64 {
	if s.DiscountedPrice > 0 {
		return s.DiscountedPrice
	}
	if s.Price > 0 {
		return s.Price
	}
	return DefaultServicePrice
}

// DefaultServicePrice is charged when a referenced service carries no price.
const DefaultServicePrice = 2500
