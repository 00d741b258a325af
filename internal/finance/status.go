package finance

import (
	"sort"
	"time"

	"tourdesk/internal/domain"
	"tourdesk/internal/domain/models"
)

// A PENDING booking older than this is treated as overdue on the client side.
const overdueAfter = 30 * 24 * time.Hour

// Due amounts above this get the tighter reminder cadence.
const highValueDue int64 = 50000

// IsOverdue reports whether the booking needs overdue treatment: either the
// backend already stored OVERDUE, or it is still PENDING more than 30 days
// after creation. The derived result is advisory only and is never written
// back over the stored status.
func IsOverdue(tm models.TourMember, now time.Time) bool {
	if tm.PaymentStatus == domain.PaymentOverdue {
		return true
	}
	return tm.PaymentStatus == domain.PaymentPending &&
		now.Sub(tm.CreatedAt) > overdueAfter
}

// ReminderFrequency suggests a follow-up cadence from the outstanding amount
// and how many reminders went out already. Advisory text, no side effects.
func ReminderFrequency(tm models.TourMember) string {
	highValue := DueAmount(tm) > highValueDue

	switch {
	case tm.ReminderCount == 0:
		return "First reminder"
	case tm.ReminderCount < 3:
		if highValue {
			return "Weekly"
		}
		return "Bi-weekly"
	default:
		if highValue {
			return "Every 3 days"
		}
		return "Weekly"
	}
}

// SortByPriority orders bookings for follow-up: overdue first, then higher
// due amount. The sort is stable so equal entries keep their input order.
// Returns a new slice; the input is untouched.
func SortByPriority(list []models.TourMember, now time.Time) []models.TourMember {
	out := make([]models.TourMember, len(list))
	copy(out, list)

	sort.SliceStable(out, func(i, j int) bool {
		io, jo := IsOverdue(out[i], now), IsOverdue(out[j], now)
		if io != jo {
			return io
		}
		return DueAmount(out[i]) > DueAmount(out[j])
	})
	return out
}
