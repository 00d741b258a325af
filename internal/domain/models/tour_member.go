package models

import (
	"strings"
	"time"

	"tourdesk/internal/domain"
)

// TourMember is the booking aggregate as served by the upstream backend:
// a group of members booked onto one tour package plus the payment history
// and reminder bookkeeping. Read-only on this side; mutations go upstream.
type TourMember struct {
	ID            string               `json:"id"`
	MemberIDs     []string             `json:"memberIds"`
	TourPackageID string               `json:"tourPackageId"`
	PackagePrice  int64                `json:"packagePrice"`
	MemberCount   int                  `json:"memberCount"`
	NetCost       int64                `json:"netCost"`
	Discount      int64                `json:"discount"`
	TotalCost     int64                `json:"totalCost"`
	PaymentType   domain.PaymentType   `json:"paymentType"`
	PaymentStatus domain.PaymentStatus `json:"paymentStatus"`

	Members     []Member    `json:"members"`
	TourPackage TourPackage `json:"tourPackage"`
	Payments    []Payment   `json:"payments"`

	NextReminder  *time.Time `json:"nextReminder,omitempty"`
	LastReminder  *time.Time `json:"lastReminder,omitempty"`
	ReminderCount int        `json:"reminderCount"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PrimaryMember returns the first member of the group, the contact used for
// messaging. ok is false when the member list is empty.
func (tm TourMember) PrimaryMember() (Member, bool) {
	if len(tm.Members) == 0 {
		return Member{}, false
	}
	return tm.Members[0], true
}

// Payment is one recorded installment against a booking. Immutable here;
// rows are appended via the upstream add-payment endpoint.
type Payment struct {
	ID            string             `json:"id"`
	TourMemberID  string             `json:"tourMemberId"`
	Amount        int64              `json:"amount"`
	PaymentDate   time.Time          `json:"paymentDate"`
	PaymentMethod string             `json:"paymentMethod"`
	Note          string             `json:"note,omitempty"`
	Status        domain.EntryStatus `json:"status,omitempty"`
}

// NewPayment is the payload for the upstream add-payment endpoint.
type NewPayment struct {
	Amount        int64              `json:"amount"`
	PaymentDate   time.Time          `json:"paymentDate"`
	PaymentMethod string             `json:"paymentMethod"`
	Note          string             `json:"note,omitempty"`
	Status        domain.EntryStatus `json:"status,omitempty"`
}

func (p NewPayment) Validate() error {
	if p.Amount <= 0 {
		return domain.ValidationError{Field: "amount", Msg: "must be greater than 0"}
	}
	if strings.TrimSpace(p.PaymentMethod) == "" {
		return domain.ValidationError{Field: "paymentMethod", Msg: "payment method is required"}
	}
	return nil
}

// NewTourMember is the creation payload sent upstream. Derived cost fields are
// filled from a quote before submission so the stored booking matches what the
// operator saw on screen.
type NewTourMember struct {
	MemberIDs     []string            `json:"memberIds"`
	TourPackageID string              `json:"tourPackageId"`
	PackagePrice  int64               `json:"packagePrice"`
	MemberCount   int                 `json:"memberCount"`
	NetCost       int64               `json:"netCost"`
	Discount      int64               `json:"discount"`
	TotalCost     int64               `json:"totalCost"`
	PaymentType   domain.PaymentType  `json:"paymentType"`
	DiscountType  domain.DiscountType `json:"discountType,omitempty"`
	DiscountValue float64             `json:"discountValue,omitempty"`
}

func (n NewTourMember) Validate() error {
	if len(n.MemberIDs) == 0 {
		return domain.ValidationError{Field: "memberIds", Msg: "select at least one member"}
	}
	if strings.TrimSpace(n.TourPackageID) == "" {
		return domain.ValidationError{Field: "tourPackageId", Msg: "tour package is required"}
	}
	if n.PackagePrice < 0 {
		return domain.ValidationError{Field: "packagePrice", Msg: "must not be negative"}
	}
	switch n.PaymentType {
	case domain.PayOneTime, domain.PayPartial, domain.PayEMI:
	default:
		return domain.ValidationError{Field: "paymentType", Msg: "unknown payment type"}
	}
	return nil
}

// TourMemberStats is the per-tour summary served by the upstream backend.
// Computed server-side over all bookings; not to be confused with the
// client-side summary this service derives over a filtered subset.
type TourMemberStats struct {
	TotalBookings    int   `json:"totalBookings"`
	PendingPayments  int   `json:"pendingPayments"`
	PartialPayments  int   `json:"partialPayments"`
	PaidBookings     int   `json:"paidBookings"`
	TotalRevenue     int64 `json:"totalRevenue"`
	TotalActiveTours int   `json:"totalActiveTours"`
}
