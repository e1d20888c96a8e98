package booking

import (
	"math"

	"quickscan/models"
)

const (
	// HomeServiceCharge is the flat surcharge for home-service appointments.
	HomeServiceCharge = 200
	// CouponDiscount is the flat discount applied when any coupon code is
	// present. The code itself is not validated.
	CouponDiscount = 100
	// TaxRate is applied to the discounted subtotal.
	TaxRate = 0.18
)

// Quote holds the computed monetary breakdown of a booking.
type Quote struct {
	BaseAmount        float64
	HomeServiceCharge float64
	Discount          float64
	TaxAmount         float64
	TotalAmount       float64
}

// ComputeQuote derives the monetary fields of a booking from the service
// price and the submission flags. Amounts are rounded to 2 decimal places and
// the total always satisfies base + homeCharge + tax - discount.
func ComputeQuote(basePrice float64, appointmentType, couponCode string) Quote {
	var homeCharge float64
	if appointmentType == models.AppointmentHomeService {
		homeCharge = HomeServiceCharge
	}

	var discount float64
	if couponCode != "" {
		discount = CouponDiscount
	}

	tax := round2((basePrice + homeCharge - discount) * TaxRate)
	total := round2(basePrice + homeCharge + tax - discount)

	return Quote{
		BaseAmount:        basePrice,
		HomeServiceCharge: homeCharge,
		Discount:          discount,
		TaxAmount:         tax,
		TotalAmount:       total,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
