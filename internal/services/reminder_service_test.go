package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"tourdesk/internal/domain"
	"tourdesk/internal/domain/models"
	"tourdesk/internal/finance"
	"tourdesk/internal/repositories"
	"tourdesk/internal/sms"

	"github.com/DATA-DOG/go-sqlmock"
)

type fakeGateway struct {
	bulk       []sms.BulkRequest
	individual []sms.IndividualRequest
}

func (g *fakeGateway) SendBulk(_ context.Context, req sms.BulkRequest) error {
	g.bulk = append(g.bulk, req)
	return nil
}

func (g *fakeGateway) SendIndividual(_ context.Context, req sms.IndividualRequest) error {
	g.individual = append(g.individual, req)
	return nil
}

var svcNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func testBookings() map[string]models.TourMember {
	overdue := models.TourMember{
		ID:            "tm-1",
		TotalCost:     60000,
		MemberCount:   2,
		PaymentStatus: domain.PaymentPending,
		CreatedAt:     svcNow.Add(-45 * 24 * time.Hour),
		Members:       []models.Member{{Name: "Rahul Shah", MobileNo: "9876543210"}},
		TourPackage:   models.TourPackage{PackageName: "Goa Beach Escape"},
		Payments:      []models.Payment{{ID: "p1", Amount: 10000, Status: domain.EntryPaid}},
	}
	current := models.TourMember{
		ID:            "tm-2",
		TotalCost:     20000,
		MemberCount:   1,
		PaymentStatus: domain.PaymentPartial,
		CreatedAt:     svcNow.Add(-2 * 24 * time.Hour),
		Members:       []models.Member{{Name: "Priya Mehta", MobileNo: "9123450000"}},
		TourPackage:   models.TourPackage{PackageName: "Kerala Backwaters"},
		Payments:      []models.Payment{{ID: "p2", Amount: 15000, Status: domain.EntryPaid}},
	}
	return map[string]models.TourMember{"tm-1": overdue, "tm-2": current}
}

func newTestService(t *testing.T, gw *fakeGateway) (ReminderService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	bookings := testBookings()
	return ReminderService{
		Gateway: gw,
		Log:     repositories.ReminderLogRepository{DB: db},
		Now:     func() time.Time { return svcNow },
		FetchBookings: func(context.Context, string) ([]models.TourMember, error) {
			return []models.TourMember{bookings["tm-2"], bookings["tm-1"]}, nil
		},
		FetchBooking: func(_ context.Context, id string) (models.TourMember, error) {
			tm, ok := bookings[id]
			if !ok {
				return models.TourMember{}, domain.NotFoundError{Resource: "tour member"}
			}
			return tm, nil
		},
	}, mock
}

func TestListViewSortsAndSummarizes(t *testing.T) {
	svc, _ := newTestService(t, &fakeGateway{})

	view, err := svc.ListView(context.Background(), finance.Filters{})
	if err != nil {
		t.Fatalf("ListView: %v", err)
	}
	if len(view.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(view.Items))
	}
	// Derived-overdue booking comes first even though it was fetched second.
	if view.Items[0].ID != "tm-1" || !view.Items[0].DerivedOverdue {
		t.Fatalf("expected tm-1 first and overdue: %+v", view.Items[0])
	}
	// Stored status is reported untouched alongside the derived flag.
	if view.Items[0].PaymentStatus != domain.PaymentPending {
		t.Fatalf("stored status must stay authoritative, got %s", view.Items[0].PaymentStatus)
	}
	if view.Items[0].DueAmount != 50000 || view.Items[1].DueAmount != 5000 {
		t.Fatalf("due amounts = %d/%d", view.Items[0].DueAmount, view.Items[1].DueAmount)
	}
	if view.Summary.TotalMembers != 2 || view.Summary.TotalDue != 55000 || view.Summary.OverdueMembers != 1 {
		t.Fatalf("summary = %+v", view.Summary)
	}
}

func TestListViewAppliesFilters(t *testing.T) {
	svc, _ := newTestService(t, &fakeGateway{})

	view, err := svc.ListView(context.Background(), finance.Filters{Search: "priya"})
	if err != nil {
		t.Fatalf("ListView: %v", err)
	}
	if len(view.Items) != 1 || view.Items[0].ID != "tm-2" {
		t.Fatalf("filtered items: %+v", view.Items)
	}
	// Summary covers the filtered subset, not the whole collection.
	if view.Summary.TotalMembers != 1 || view.Summary.TotalDue != 5000 {
		t.Fatalf("summary over filtered subset: %+v", view.Summary)
	}
}

func TestSendBulkRendersPerRecipient(t *testing.T) {
	gw := &fakeGateway{}
	svc, mock := newTestService(t, gw)

	mock.ExpectExec("INSERT INTO reminder_log").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO reminder_log").WillReturnResult(sqlmock.NewResult(2, 1))

	res, err := svc.SendBulk(context.Background(), BulkSendRequest{
		BookingIDs: []string{"tm-1", "tm-2"},
		Message:    "Dear {name}, {amount} due for {tourPackage}.",
		SentBy:     1,
	})
	if err != nil {
		t.Fatalf("SendBulk: %v", err)
	}

	if len(res.Sent) != 2 {
		t.Fatalf("sent = %d, want 2", len(res.Sent))
	}
	if res.Sent[0].Message != "Dear Rahul Shah, 50,000 due for Goa Beach Escape." {
		t.Fatalf("rendered[0] = %q", res.Sent[0].Message)
	}
	if res.Sent[1].Message != "Dear Priya Mehta, 5,000 due for Kerala Backwaters." {
		t.Fatalf("rendered[1] = %q", res.Sent[1].Message)
	}

	if len(gw.bulk) != 1 || len(gw.bulk[0].BookingIDs) != 2 {
		t.Fatalf("gateway bulk calls: %+v", gw.bulk)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSendBulkRejectsInvalidMessage(t *testing.T) {
	svc, _ := newTestService(t, &fakeGateway{})

	_, err := svc.SendBulk(context.Background(), BulkSendRequest{
		BookingIDs: []string{"tm-1"},
		Message:    "   ",
	})
	if !domain.IsValidation(err) {
		t.Fatalf("blank message should fail validation, got %v", err)
	}

	_, err = svc.SendBulk(context.Background(), BulkSendRequest{
		BookingIDs: []string{"tm-1"},
		Message:    strings.Repeat("x", 1601),
	})
	if !domain.IsValidation(err) {
		t.Fatalf("over-length message should fail validation, got %v", err)
	}
}

func TestSendIndividualWithOverride(t *testing.T) {
	gw := &fakeGateway{}
	svc, mock := newTestService(t, gw)

	mock.ExpectExec("INSERT INTO reminder_log").WillReturnResult(sqlmock.NewResult(1, 1))

	override := int64(12345)
	msg, warnings, err := svc.SendIndividual(context.Background(), IndividualSendRequest{
		BookingID:   "tm-2",
		Message:     "Hi {name}, please pay {amount}.",
		DueOverride: &override,
	})
	if err != nil {
		t.Fatalf("SendIndividual: %v", err)
	}
	if msg.Message != "Hi Priya Mehta, please pay 12,345." {
		t.Fatalf("rendered = %q", msg.Message)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if len(gw.individual) != 1 || gw.individual[0].Message != msg.Message {
		t.Fatalf("gateway received %+v", gw.individual)
	}
}

func TestFrequency(t *testing.T) {
	svc, _ := newTestService(t, &fakeGateway{})

	freq, overdue, err := svc.Frequency(context.Background(), "tm-1")
	if err != nil {
		t.Fatalf("Frequency: %v", err)
	}
	if freq != "First reminder" || !overdue {
		t.Fatalf("freq=%q overdue=%v", freq, overdue)
	}
}
