package domain

// PaymentStatus is the booking-level payment state stored by the upstream
// backend. The stored value stays authoritative; the client-side overdue
// derivation never overwrites it.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPartial PaymentStatus = "PARTIAL"
	PaymentPaid    PaymentStatus = "PAID"
	PaymentOverdue PaymentStatus = "OVERDUE"
)

// PaymentType describes how a booking is being paid off.
type PaymentType string

const (
	PayOneTime PaymentType = "ONE_TIME"
	PayPartial PaymentType = "PARTIAL"
	PayEMI     PaymentType = "EMI"
)

// EntryStatus is the per-payment-row state (distinct from the booking-level status).
type EntryStatus string

const (
	EntryPending EntryStatus = "PENDING"
	EntryPaid    EntryStatus = "PAID"
	EntryFailed  EntryStatus = "FAILED"
)

// DiscountType selects how a discount value is interpreted on a quote.
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountAmount     DiscountType = "amount"
)

// EnquiryStatus tracks a customer enquiry through follow-up.
type EnquiryStatus string

const (
	EnquiryNew       EnquiryStatus = "NEW"
	EnquiryContacted EnquiryStatus = "CONTACTED"
	EnquiryConverted EnquiryStatus = "CONVERTED"
	EnquiryClosed    EnquiryStatus = "CLOSED"
)

// Pagination carries paging params and totals.
type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
	Total    int `json:"total,omitempty"`
}

// RequestContext carries authenticated operator info when available.
type RequestContext struct {
	UserID int64  `json:"userId"`
	Role   string `json:"role"`
}
