package services

import (
	"bytes"
	"context"
	"testing"
	"time"

	"tourdesk/internal/domain"
	"tourdesk/internal/domain/models"
)

func invoiceBooking() models.TourMember {
	return models.TourMember{
		ID:           "tm-9",
		PackagePrice: 5000,
		MemberCount:  3,
		Discount:     1500,
		TotalCost:    13500,
		Members:      []models.Member{{Name: "Rahul Shah", MobileNo: "9876543210"}},
		TourPackage:  models.TourPackage{PackageName: "Goa Beach Escape"},
		Payments: []models.Payment{
			{ID: "p1", Amount: 5000, Status: domain.EntryPaid, PaymentDate: time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC), PaymentMethod: "UPI"},
			{ID: "p2", Amount: 3000, Status: domain.EntryPending, PaymentDate: time.Date(2025, time.May, 20, 0, 0, 0, 0, time.UTC), PaymentMethod: "Cash"},
		},
	}
}

func TestGenerateInvoice(t *testing.T) {
	svc := InvoiceService{
		Loader: func(context.Context, string) (models.TourMember, error) {
			return invoiceBooking(), nil
		},
	}

	pdf, filename, err := svc.GenerateInvoice(context.Background(), "tm-9")
	if err != nil {
		t.Fatalf("GenerateInvoice: %v", err)
	}
	if filename != "INVOICE_tm-9.pdf" {
		t.Fatalf("filename = %q", filename)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output is not a PDF, starts with %q", pdf[:min(8, len(pdf))])
	}
}

func TestGenerateInvoiceLoaderError(t *testing.T) {
	svc := InvoiceService{
		Loader: func(context.Context, string) (models.TourMember, error) {
			return models.TourMember{}, domain.NotFoundError{Resource: "tour member"}
		},
	}

	_, _, err := svc.GenerateInvoice(context.Background(), "missing")
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestGenerateReceipt(t *testing.T) {
	svc := InvoiceService{
		Loader: func(context.Context, string) (models.TourMember, error) {
			return invoiceBooking(), nil
		},
	}

	pdf, filename, err := svc.GenerateReceipt(context.Background(), "tm-9", "p1")
	if err != nil {
		t.Fatalf("GenerateReceipt: %v", err)
	}
	if filename != "RECEIPT_p1.pdf" {
		t.Fatalf("filename = %q", filename)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatal("output is not a PDF")
	}
}

func TestGenerateReceiptUnknownPayment(t *testing.T) {
	svc := InvoiceService{
		Loader: func(context.Context, string) (models.TourMember, error) {
			return invoiceBooking(), nil
		},
	}

	_, _, err := svc.GenerateReceipt(context.Background(), "tm-9", "p99")
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found for unknown payment, got %v", err)
	}
}
