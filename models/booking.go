package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking lifecycle statuses.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// Appointment types.
const (
	AppointmentLabVisit    = "lab-visit"
	AppointmentHomeService = "home-service"
)

// Payment methods and statuses.
const (
	PaymentMethodCash   = "cash"
	PaymentMethodOnline = "online"

	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
)

// Booking represents a confirmed diagnostic-test booking record. Service and
// lab display fields are denormalized snapshots taken at creation time; later
// catalog edits do not retroactively change past bookings.
type Booking struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	BookingID string             `bson:"bookingId" json:"bookingId"` // Human-readable identifier, e.g. "QS1735689600000123"
	UserID    string             `bson:"userId" json:"userId"`

	// Patient details.
	PatientName   string `bson:"patientName" json:"patientName"`
	PatientAge    int    `bson:"patientAge,omitempty" json:"patientAge,omitempty"`
	PatientGender string `bson:"patientGender,omitempty" json:"patientGender,omitempty"`
	PatientEmail  string `bson:"patientEmail" json:"patientEmail"`
	PatientPhone  string `bson:"patientPhone" json:"patientPhone"`

	// Resolved service snapshot.
	ServiceID   primitive.ObjectID `bson:"serviceId" json:"serviceId"`
	ServiceName string             `bson:"serviceName" json:"serviceName"`
	ServiceType string             `bson:"serviceType" json:"serviceType"`

	// Resolved lab snapshot.
	LabID      primitive.ObjectID `bson:"labId" json:"labId"`
	LabName    string             `bson:"labName" json:"labName"`
	LabAddress string             `bson:"labAddress" json:"labAddress"`
	LabCity    string             `bson:"labCity" json:"labCity"`
	LabPhone   string             `bson:"labPhone,omitempty" json:"labPhone,omitempty"`

	// Appointment details.
	AppointmentDate    time.Time `bson:"appointmentDate" json:"appointmentDate"`
	TimeSlot           string    `bson:"timeSlot" json:"timeSlot"`
	AppointmentType    string    `bson:"appointmentType" json:"appointmentType"`
	HomeServiceAddress string    `bson:"homeServiceAddress,omitempty" json:"homeServiceAddress,omitempty"`
	HomeServicePincode string    `bson:"homeServicePincode,omitempty" json:"homeServicePincode,omitempty"`

	// Referral metadata.
	DoctorReferral  bool   `bson:"doctorReferral" json:"doctorReferral"`
	DoctorName      string `bson:"doctorName,omitempty" json:"doctorName,omitempty"`
	Symptoms        string `bson:"symptoms,omitempty" json:"symptoms,omitempty"`
	PreviousReports string `bson:"previousReports,omitempty" json:"previousReports,omitempty"`

	// Monetary fields.
	BaseAmount        float64 `bson:"baseAmount" json:"baseAmount"`
	HomeServiceCharge float64 `bson:"homeServiceCharge" json:"homeServiceCharge"`
	Discount          float64 `bson:"discount" json:"discount"`
	TaxAmount         float64 `bson:"taxAmount" json:"taxAmount"`
	TotalAmount       float64 `bson:"totalAmount" json:"totalAmount"`

	PaymentMethod string `bson:"paymentMethod" json:"paymentMethod"`
	PaymentStatus string `bson:"paymentStatus" json:"paymentStatus"`

	Status              string     `bson:"status" json:"status"`
	CancelledAt         *time.Time `bson:"cancelledAt,omitempty" json:"cancelledAt,omitempty"`
	CancellationReason  string     `bson:"cancellationReason,omitempty" json:"cancellationReason,omitempty"`
	SpecialInstructions string     `bson:"specialInstructions,omitempty" json:"specialInstructions,omitempty"`
	Notes               string     `bson:"notes,omitempty" json:"notes,omitempty"`
	CouponCode          string     `bson:"couponCode,omitempty" json:"couponCode,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
