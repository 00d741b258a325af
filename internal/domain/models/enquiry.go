package models

import (
	"strings"
	"time"

	"tourdesk/internal/domain"
)

// Enquiry is an incoming customer enquiry before it converts into a booking.
type Enquiry struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	MobileNo    string               `json:"mobileNo"`
	Destination string               `json:"destination,omitempty"`
	Message     string               `json:"message,omitempty"`
	Status      domain.EnquiryStatus `json:"status"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

// NewEnquiry is the creation payload forwarded upstream.
type NewEnquiry struct {
	Name        string `json:"name"`
	MobileNo    string `json:"mobileNo"`
	Destination string `json:"destination,omitempty"`
	Message     string `json:"message,omitempty"`
}

func (n NewEnquiry) Validate() error {
	if strings.TrimSpace(n.Name) == "" {
		return domain.ValidationError{Field: "name", Msg: "name is required"}
	}
	if strings.TrimSpace(n.MobileNo) == "" {
		return domain.ValidationError{Field: "mobileNo", Msg: "mobile number is required"}
	}
	return nil
}
