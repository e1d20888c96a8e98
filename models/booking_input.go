package models

// BookingInput is the raw booking submission as received from the client.
// Required-field validation happens in the booking service, not at bind time,
// so that missing fields can be reported by name.
type BookingInput struct {
	ServiceID           string `json:"serviceId"`
	LabID               string `json:"labId"`
	PatientName         string `json:"patientName"`
	PatientAge          int    `json:"patientAge,omitempty"`
	PatientGender       string `json:"patientGender,omitempty"`
	PatientEmail        string `json:"patientEmail"`
	PatientPhone        string `json:"patientPhone"`
	AppointmentDate     string `json:"appointmentDate"`
	TimeSlot            string `json:"timeSlot"`
	AppointmentType     string `json:"appointmentType,omitempty"`
	HomeServiceAddress  string `json:"homeServiceAddress,omitempty"`
	HomeServicePincode  string `json:"homeServicePincode,omitempty"`
	DoctorReferral      bool   `json:"doctorReferral,omitempty"`
	DoctorName          string `json:"doctorName,omitempty"`
	Symptoms            string `json:"symptoms,omitempty"`
	PreviousReports     string `json:"previousReports,omitempty"`
	SpecialInstructions string `json:"specialInstructions,omitempty"`
	Notes               string `json:"notes,omitempty"`
	CouponCode          string `json:"couponCode,omitempty"`
	PaymentMethod       string `json:"paymentMethod,omitempty"`
}
