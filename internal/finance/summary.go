package finance

import (
	"time"

	"tourdesk/internal/domain"
	"tourdesk/internal/domain/models"
)

// Summary is the client-side roll-up over an already-fetched (usually
// filtered) booking list. Distinct from the upstream dashboard stats, which
// the backend computes over everything; the two are displayed side by side
// and are not expected to agree.
type Summary struct {
	TotalMembers   int     `json:"totalMembers"`
	TotalDue       int64   `json:"totalDue"`
	OverdueMembers int     `json:"overdueMembers"`
	AvgDueAmount   float64 `json:"avgDueAmount"`
	PendingMembers int     `json:"pendingMembers"`
	PartialMembers int     `json:"partialMembers"`
}

// ComputeSummary derives the roll-up in a single pass without touching the
// input. The zero Summary is the correct answer for an empty list.
func ComputeSummary(list []models.TourMember, now time.Time) Summary {
	var s Summary
	s.TotalMembers = len(list)

	for _, tm := range list {
		s.TotalDue += DueAmount(tm)
		if IsOverdue(tm, now) {
			s.OverdueMembers++
		}
		switch tm.PaymentStatus {
		case domain.PaymentPending:
			s.PendingMembers++
		case domain.PaymentPartial:
			s.PartialMembers++
		}
	}

	if s.TotalMembers > 0 {
		s.AvgDueAmount = float64(s.TotalDue) / float64(s.TotalMembers)
	}
	return s
}

// PackageMetrics is the equivalent roll-up over the tour package catalogue.
type PackageMetrics struct {
	TotalPackages int     `json:"totalPackages"`
	TotalSeats    int     `json:"totalSeats"`
	TotalValue    int64   `json:"totalValue"`
	AveragePrice  float64 `json:"averagePrice"`
}

// ComputePackageMetrics rolls up the package list for the catalogue header.
func ComputePackageMetrics(pkgs []models.TourPackage) PackageMetrics {
	var m PackageMetrics
	m.TotalPackages = len(pkgs)

	var priceSum int64
	for _, p := range pkgs {
		m.TotalSeats += p.TotalSeat
		m.TotalValue += p.TourPrice * int64(p.TotalSeat)
		priceSum += p.TourPrice
	}
	if m.TotalPackages > 0 {
		m.AveragePrice = float64(priceSum) / float64(m.TotalPackages)
	}
	return m
}
