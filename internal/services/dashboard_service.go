package services

import (
	"context"
	"time"

	"tourdesk/internal/domain/models"
	"tourdesk/internal/finance"
	"tourdesk/internal/repositories"
	"tourdesk/internal/upstream"
	"tourdesk/internal/utils"
)

// DashboardService combines the backend-computed overview with the
// gateway-local reminder counter. The two summary sources stay separate
// fields on purpose: the upstream block covers everything the backend owns,
// while the filtered summary from the reminder view covers only the subset
// on screen.
type DashboardService struct {
	Upstream *upstream.Client
	Log      repositories.ReminderLogRepository

	Now           func() time.Time
	FetchBookings func(ctx context.Context, tourPackageID string) ([]models.TourMember, error)
}

// Overview is the dashboard header payload.
type Overview struct {
	Stats               models.DashboardStats `json:"stats"`
	RemindersLast30Days int                   `json:"remindersLast30Days"`
}

func (s DashboardService) GetOverview(ctx context.Context) (Overview, error) {
	stats, err := s.Upstream.GetDashboardStats(ctx)
	if err != nil {
		return Overview{}, err
	}

	sent, err := s.Log.CountSentSince(30)
	if err != nil {
		// The overview is still useful without the local counter.
		sent = 0
	}

	return Overview{Stats: stats, RemindersLast30Days: sent}, nil
}

// FilteredSummary recomputes the client-side roll-up for an arbitrary filter,
// used by views that show stat tiles above a filtered table.
func (s DashboardService) FilteredSummary(ctx context.Context, f finance.Filters) (finance.Summary, error) {
	load := s.FetchBookings
	if load == nil {
		load = s.Upstream.ListTourMembers
	}
	bookings, err := load(ctx, f.TourPackageID)
	if err != nil {
		return finance.Summary{}, err
	}

	now := utils.NowUTC()
	if s.Now != nil {
		now = s.Now()
	}
	return finance.ComputeSummary(finance.FilterByCriteria(bookings, f), now), nil
}
