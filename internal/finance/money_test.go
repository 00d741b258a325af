package finance

import (
	"testing"

	"tourdesk/internal/domain"
	"tourdesk/internal/domain/models"
)

func bookingWithPayments(total int64, amounts ...int64) models.TourMember {
	tm := models.TourMember{ID: "tm-1", TotalCost: total}
	for _, a := range amounts {
		tm.Payments = append(tm.Payments, models.Payment{Amount: a, Status: domain.EntryPaid})
	}
	return tm
}

func TestDueAmountAndProgress(t *testing.T) {
	tm := bookingWithPayments(10000, 3000, 2000)

	if got := PaidAmount(tm); got != 5000 {
		t.Fatalf("PaidAmount = %d, want 5000", got)
	}
	if got := DueAmount(tm); got != 5000 {
		t.Fatalf("DueAmount = %d, want 5000", got)
	}
	if got := PaymentProgress(tm); got != 50 {
		t.Fatalf("PaymentProgress = %v, want 50", got)
	}
}

func TestDueAmountFloorsOnOverpayment(t *testing.T) {
	tm := bookingWithPayments(1000, 1500)

	if got := DueAmount(tm); got != 0 {
		t.Fatalf("DueAmount on overpaid booking = %d, want 0", got)
	}
	if got := PaymentProgress(tm); got != 150 {
		t.Fatalf("PaymentProgress on overpaid booking = %v, want 150", got)
	}
}

func TestPaymentProgressZeroTotal(t *testing.T) {
	tm := bookingWithPayments(0, 500)
	if got := PaymentProgress(tm); got != 0 {
		t.Fatalf("PaymentProgress with zero total = %v, want 0", got)
	}
}

func TestDueAmountEmptyPayments(t *testing.T) {
	tm := models.TourMember{TotalCost: 7000}
	if got := DueAmount(tm); got != 7000 {
		t.Fatalf("DueAmount without payments = %d, want 7000", got)
	}
}

func TestConfirmedPaidAmountCountsOnlyPaidRows(t *testing.T) {
	tm := models.TourMember{
		TotalCost: 10000,
		Payments: []models.Payment{
			{Amount: 3000, Status: domain.EntryPaid},
			{Amount: 2000, Status: domain.EntryPending},
			{Amount: 1000, Status: domain.EntryFailed},
		},
	}

	if got := ConfirmedPaidAmount(tm); got != 3000 {
		t.Fatalf("ConfirmedPaidAmount = %d, want 3000", got)
	}
	// The general paid amount keeps counting every row.
	if got := PaidAmount(tm); got != 6000 {
		t.Fatalf("PaidAmount = %d, want 6000", got)
	}
}

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1500, "1,500"},
		{13500, "13,500"},
		{1234567, "1,234,567"},
		{-50000, "-50,000"},
	}
	for _, c := range cases {
		if got := FormatAmount(c.in); got != c.want {
			t.Fatalf("FormatAmount(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}
