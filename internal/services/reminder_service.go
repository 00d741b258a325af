package services

import (
	"context"
	"fmt"
	"time"

	"tourdesk/internal/domain"
	"tourdesk/internal/domain/models"
	"tourdesk/internal/finance"
	"tourdesk/internal/repositories"
	"tourdesk/internal/sms"
	"tourdesk/internal/upstream"
	"tourdesk/internal/utils"
)

// ReminderService drives the payment-reminder views: the filtered and
// prioritized booking list with its summary, and bulk/individual SMS sends.
type ReminderService struct {
	Upstream  *upstream.Client
	Gateway   sms.Gateway
	Log       repositories.ReminderLogRepository
	RequestID string

	// Now is injectable so overdue classification is deterministic in tests.
	Now func() time.Time

	// FetchBookings/FetchBooking override the upstream calls in tests.
	FetchBookings func(ctx context.Context, tourPackageID string) ([]models.TourMember, error)
	FetchBooking  func(ctx context.Context, id string) (models.TourMember, error)
}

func (s ReminderService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return utils.NowUTC()
}

func (s ReminderService) loadBookings(ctx context.Context, tourPackageID string) ([]models.TourMember, error) {
	if s.FetchBookings != nil {
		return s.FetchBookings(ctx, tourPackageID)
	}
	return s.Upstream.ListTourMembers(ctx, tourPackageID)
}

func (s ReminderService) loadBooking(ctx context.Context, id string) (models.TourMember, error) {
	if s.FetchBooking != nil {
		return s.FetchBooking(ctx, id)
	}
	return s.Upstream.GetTourMember(ctx, id)
}

// ReminderRow is one table row: the booking plus every derived field the
// view needs, so no consumer recomputes them differently.
type ReminderRow struct {
	models.TourMember

	PaidAmount      int64   `json:"paidAmount"`
	DueAmount       int64   `json:"dueAmount"`
	PaymentProgress float64 `json:"paymentProgress"`
	// DerivedOverdue is the client-side "needs attention" signal. The stored
	// paymentStatus stays authoritative and is reported unchanged above.
	DerivedOverdue bool   `json:"derivedOverdue"`
	Frequency      string `json:"frequency"`
}

// ReminderView is the reminder table plus its client-side summary.
type ReminderView struct {
	Items   []ReminderRow   `json:"items"`
	Summary finance.Summary `json:"summary"`
}

// ListView fetches the booking collection, applies the filters, sorts by
// follow-up priority and rolls up the summary over the filtered subset.
func (s ReminderService) ListView(ctx context.Context, f finance.Filters) (ReminderView, error) {
	bookings, err := s.loadBookings(ctx, f.TourPackageID)
	if err != nil {
		return ReminderView{}, err
	}

	now := s.now()
	filtered := finance.FilterByCriteria(bookings, f)
	sorted := finance.SortByPriority(filtered, now)

	rows := make([]ReminderRow, 0, len(sorted))
	for _, tm := range sorted {
		rows = append(rows, ReminderRow{
			TourMember:      tm,
			PaidAmount:      finance.PaidAmount(tm),
			DueAmount:       finance.DueAmount(tm),
			PaymentProgress: finance.PaymentProgress(tm),
			DerivedOverdue:  finance.IsOverdue(tm, now),
			Frequency:       finance.ReminderFrequency(tm),
		})
	}

	return ReminderView{
		Items:   rows,
		Summary: finance.ComputeSummary(sorted, now),
	}, nil
}

// BulkSendRequest carries the operator's bulk dialog state.
type BulkSendRequest struct {
	BookingIDs   []string   `json:"bookingIds"`
	Message      string     `json:"message"`
	ScheduleDate *time.Time `json:"scheduleDate,omitempty"`
	SentBy       int64      `json:"-"`
}

// RecipientMessage is the interpolated message for one booking.
type RecipientMessage struct {
	TourMemberID string `json:"tourMemberId"`
	Message      string `json:"message"`
}

// BulkSendResult reports what was dispatched, including the per-recipient
// rendered messages and any advisory warnings from validation.
type BulkSendResult struct {
	Sent     []RecipientMessage `json:"sent"`
	Warnings []string           `json:"warnings,omitempty"`
}

// SendBulk validates the template, renders it once per recipient with that
// booking's own due amount, dispatches the batch and writes one log row per
// booking. Reminder bookkeeping on each booking is updated upstream; the
// local view never mutates those fields directly.
func (s ReminderService) SendBulk(ctx context.Context, req BulkSendRequest) (BulkSendResult, error) {
	if len(req.BookingIDs) == 0 {
		return BulkSendResult{}, domain.ValidationError{Field: "bookingIds", Msg: "select at least one booking"}
	}

	check := finance.ValidateMessage(req.Message)
	if !check.Valid {
		return BulkSendResult{}, domain.ValidationError{Field: "message", Msg: string(check.Faults[0])}
	}

	result := BulkSendResult{Warnings: check.Warnings}
	for _, id := range req.BookingIDs {
		tm, err := s.loadBooking(ctx, id)
		if err != nil {
			return BulkSendResult{}, err
		}
		result.Sent = append(result.Sent, RecipientMessage{
			TourMemberID: id,
			Message:      finance.RenderTemplate(req.Message, tm, nil),
		})
	}

	if err := s.Gateway.SendBulk(ctx, sms.BulkRequest{
		BookingIDs:   req.BookingIDs,
		Message:      req.Message,
		ScheduleDate: req.ScheduleDate,
	}); err != nil {
		return BulkSendResult{}, err
	}

	utils.LogEvent(s.RequestID, "reminder", "send_bulk", fmt.Sprintf("recipients=%d", len(req.BookingIDs)))
	s.recordSends(ctx, result.Sent, true, req.SentBy)
	return result, nil
}

// IndividualSendRequest carries the single-recipient dialog state.
type IndividualSendRequest struct {
	BookingID   string `json:"bookingId"`
	Message     string `json:"message"`
	DueOverride *int64 `json:"dueOverride,omitempty"`
	SentBy      int64  `json:"-"`
}

// SendIndividual renders and dispatches one reminder.
func (s ReminderService) SendIndividual(ctx context.Context, req IndividualSendRequest) (RecipientMessage, []string, error) {
	check := finance.ValidateMessage(req.Message)
	if !check.Valid {
		return RecipientMessage{}, nil, domain.ValidationError{Field: "message", Msg: string(check.Faults[0])}
	}

	tm, err := s.loadBooking(ctx, req.BookingID)
	if err != nil {
		return RecipientMessage{}, nil, err
	}

	rendered := finance.RenderTemplate(req.Message, tm, req.DueOverride)
	if err := s.Gateway.SendIndividual(ctx, sms.IndividualRequest{
		BookingID: req.BookingID,
		Message:   rendered,
	}); err != nil {
		return RecipientMessage{}, nil, err
	}

	utils.LogEvent(s.RequestID, "reminder", "send_individual", "booking_id="+req.BookingID)
	out := RecipientMessage{TourMemberID: req.BookingID, Message: rendered}
	s.recordSends(ctx, []RecipientMessage{out}, false, req.SentBy)
	return out, check.Warnings, nil
}

// recordSends writes audit rows and pushes the reminder bookkeeping upstream.
// Both are best-effort: a failed log line must not undo a dispatched SMS.
func (s ReminderService) recordSends(ctx context.Context, sent []RecipientMessage, bulk bool, sentBy int64) {
	now := s.now()
	for _, msg := range sent {
		if _, err := s.Log.Append(models.ReminderLogEntry{
			TourMemberID: msg.TourMemberID,
			Message:      msg.Message,
			Bulk:         bulk,
			SentBy:       sentBy,
		}); err != nil {
			utils.LogEvent(s.RequestID, "reminder", "log_failed", msg.TourMemberID+": "+err.Error())
		}

		if s.Upstream != nil {
			tm, err := s.loadBooking(ctx, msg.TourMemberID)
			if err != nil {
				continue
			}
			state := upstream.ReminderState{
				LastReminder:  now,
				ReminderCount: tm.ReminderCount + 1,
			}
			if err := s.Upstream.UpdateReminderState(ctx, msg.TourMemberID, state); err != nil {
				utils.LogEvent(s.RequestID, "reminder", "state_update_failed", msg.TourMemberID+": "+err.Error())
			}
		}
	}
}

// Frequency returns the advisory cadence and overdue signal for one booking.
func (s ReminderService) Frequency(ctx context.Context, id string) (string, bool, error) {
	tm, err := s.loadBooking(ctx, id)
	if err != nil {
		return "", false, err
	}
	return finance.ReminderFrequency(tm), finance.IsOverdue(tm, s.now()), nil
}
