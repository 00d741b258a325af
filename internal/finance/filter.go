package finance

import (
	"strings"
	"time"

	"tourdesk/internal/domain"
	"tourdesk/internal/domain/models"
)

// Filters is the ephemeral filter state for the reminder and booking views.
// A plain value object: equality is structural, an unset field means "all".
type Filters struct {
	Search        string               `json:"search"`
	TourPackageID string               `json:"tourPackageId"`
	PaymentStatus domain.PaymentStatus `json:"paymentStatus"`
	PaymentType   domain.PaymentType   `json:"paymentType"`
	DateFrom      *time.Time           `json:"dateFrom,omitempty"`
	DateTo        *time.Time           `json:"dateTo,omitempty"`
}

// ActiveCount is the number of fields set to a non-default value, used for
// the filter badge. Derivable from the value alone.
func (f Filters) ActiveCount() int {
	n := 0
	if strings.TrimSpace(f.Search) != "" {
		n++
	}
	if f.TourPackageID != "" {
		n++
	}
	if f.PaymentStatus != "" {
		n++
	}
	if f.PaymentType != "" {
		n++
	}
	if f.DateFrom != nil {
		n++
	}
	if f.DateTo != nil {
		n++
	}
	return n
}

// HasActive reports whether any filter is set.
func (f Filters) HasActive() bool { return f.ActiveCount() > 0 }

// MatchesSearch is the single text-search predicate: case-insensitive
// substring match over the primary member's name, mobile number and address,
// and the package name. A blank term matches everything. Missing nested data
// simply doesn't match.
func MatchesSearch(tm models.TourMember, term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}

	if primary, ok := tm.PrimaryMember(); ok {
		if strings.Contains(strings.ToLower(primary.Name), term) ||
			strings.Contains(primary.MobileNo, term) ||
			strings.Contains(strings.ToLower(primary.Address), term) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(tm.TourPackage.PackageName), term)
}

// FilterByCriteria applies the filter conjunctively: every set clause must
// hold, unset clauses are skipped, the date range is inclusive on both ends
// against CreatedAt. Clause order does not affect the result. Returns a new
// slice.
func FilterByCriteria(list []models.TourMember, f Filters) []models.TourMember {
	out := make([]models.TourMember, 0, len(list))
	for _, tm := range list {
		if !matchesCriteria(tm, f) {
			continue
		}
		out = append(out, tm)
	}
	return out
}

func matchesCriteria(tm models.TourMember, f Filters) bool {
	if !MatchesSearch(tm, f.Search) {
		return false
	}
	if f.TourPackageID != "" && tm.TourPackageID != f.TourPackageID {
		return false
	}
	if f.PaymentStatus != "" && tm.PaymentStatus != f.PaymentStatus {
		return false
	}
	if f.PaymentType != "" && tm.PaymentType != f.PaymentType {
		return false
	}
	if f.DateFrom != nil && tm.CreatedAt.Before(*f.DateFrom) {
		return false
	}
	if f.DateTo != nil && tm.CreatedAt.After(*f.DateTo) {
		return false
	}
	return true
}
