// Package finance is the booking financial model: due amounts, payment
// progress, overdue classification, roll-up stats, filtering and reminder
// message rendering. Every view goes through these functions so the numbers
// on the reminder table, the SMS dialogs and the printed invoice can never
// drift apart.
//
// All functions are pure: inputs are never mutated, nothing is cached, and
// wall-clock time is always an explicit parameter.
package finance

import (
	"math"
	"strconv"
	"strings"

	"tourdesk/internal/domain"
	"tourdesk/internal/domain/models"
)

// PaidAmount sums every recorded payment on the booking, regardless of the
// per-row status. This is the general rule: once a payment row exists it
// counts toward the paid total.
func PaidAmount(tm models.TourMember) int64 {
	var sum int64
	for _, p := range tm.Payments {
		sum += p.Amount
	}
	return sum
}

// ConfirmedPaidAmount sums only rows whose status is PAID. Used exclusively
// by the invoice view to reconcile the printed total against confirmed money;
// everywhere else PaidAmount is the right function.
func ConfirmedPaidAmount(tm models.TourMember) int64 {
	var sum int64
	for _, p := range tm.Payments {
		if p.Status == domain.EntryPaid {
			sum += p.Amount
		}
	}
	return sum
}

// DueAmount is the outstanding balance, floored at zero. Overpayment never
// produces a negative due.
func DueAmount(tm models.TourMember) int64 {
	due := tm.TotalCost - PaidAmount(tm)
	if due < 0 {
		return 0
	}
	return due
}

// PaymentProgress returns paid/total as a percentage. Zero when the booking
// has no cost; may exceed 100 on overpayment. Callers rendering a progress
// bar clamp for display, the raw value stays intact for calculation.
func PaymentProgress(tm models.TourMember) float64 {
	if tm.TotalCost <= 0 {
		return 0
	}
	return float64(PaidAmount(tm)) / float64(tm.TotalCost) * 100
}

// FormatAmount renders an amount with thousand grouping and no currency
// symbol, the form used inside SMS messages ("13,500").
func FormatAmount(n int64) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	str := strconv.FormatInt(n, 10)
	var out strings.Builder
	for i, c := range str {
		if i != 0 && (len(str)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	return sign + out.String()
}

func roundMoney(x float64) int64 {
	return int64(math.Round(x))
}
