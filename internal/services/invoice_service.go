package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"tourdesk/internal/domain"
	"tourdesk/internal/domain/models"
	"tourdesk/internal/finance"
	"tourdesk/internal/upstream"
	"tourdesk/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// InvoiceService renders booking invoices and single-payment receipts as PDF.
type InvoiceService struct {
	Upstream  *upstream.Client
	RequestID string
	Loader    func(ctx context.Context, id string) (models.TourMember, error)
}

func (s InvoiceService) load(ctx context.Context, id string) (models.TourMember, error) {
	if s.Loader != nil {
		return s.Loader(ctx, id)
	}
	return s.Upstream.GetTourMember(ctx, id)
}

// GenerateInvoice renders the full payment history for a booking. The totals
// block reconciles against confirmed money only: the "Received (confirmed)"
// line uses ConfirmedPaidAmount while the due amount keeps the general rule.
func (s InvoiceService) GenerateInvoice(ctx context.Context, id string) ([]byte, string, error) {
	tm, err := s.load(ctx, id)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "invoice", "generate", "tour_member_id="+id)
	return buildInvoicePDF(tm)
}

// GenerateReceipt renders a receipt for one payment row of the booking.
func (s InvoiceService) GenerateReceipt(ctx context.Context, id, paymentID string) ([]byte, string, error) {
	tm, err := s.load(ctx, id)
	if err != nil {
		return nil, "", err
	}
	for _, p := range tm.Payments {
		if p.ID == paymentID {
			utils.LogEvent(s.RequestID, "invoice", "receipt", "payment_id="+paymentID)
			return buildReceiptPDF(tm, p)
		}
	}
	return nil, "", domain.NotFoundError{Resource: "payment"}
}

func buildInvoicePDF(tm models.TourMember) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "INVOICE")
	pdf.Ln(12)

	invNo := fmt.Sprintf("INV-%s", safeFilenamePart(tm.ID))
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Invoice No : "+invNo)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Date       : "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Billed to:")
	pdf.Ln(7)

	var name, phone string
	if primary, ok := tm.PrimaryMember(); ok {
		name = primary.Name
		phone = utils.FormatPhone(primary.MobileNo)
	}
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Name   : %s", safe(name, "-")))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Mobile : %s", safe(phone, "-")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Tour:")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	desc := fmt.Sprintf("%s (%d travellers @ %s)",
		safe(tm.TourPackage.PackageName, "-"), tm.MemberCount, finance.FormatAmount(tm.PackagePrice))
	pdf.MultiCell(0, 6, desc, "", "", false)
	pdf.Ln(2)
	if tm.Discount > 0 {
		pdf.Cell(0, 6, "Discount: -"+finance.FormatAmount(tm.Discount))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, "Total cost: "+finance.FormatAmount(tm.TotalCost))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Payments:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	if len(tm.Payments) == 0 {
		pdf.Cell(0, 6, "No payments recorded.")
		pdf.Ln(6)
	}
	for i, p := range tm.Payments {
		line := fmt.Sprintf("%d) %s  %s  %s  %s",
			i+1,
			p.PaymentDate.Format("2006-01-02"),
			safe(p.PaymentMethod, "-"),
			finance.FormatAmount(p.Amount),
			safe(string(p.Status), "-"),
		)
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Received (confirmed): "+finance.FormatAmount(finance.ConfirmedPaidAmount(tm)))
	pdf.Ln(8)
	pdf.Cell(0, 8, "Balance due: "+finance.FormatAmount(finance.DueAmount(tm)))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "The confirmed total counts PAID payments only; pending payments appear in the list above but are not reconciled.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("INVOICE_%s.pdf", safeFilenamePart(tm.ID))
	return buf.Bytes(), filename, nil
}

func buildReceiptPDF(tm models.TourMember, p models.Payment) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Payment Receipt", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "PAYMENT RECEIPT")
	pdf.Ln(12)

	var name string
	if primary, ok := tm.PrimaryMember(); ok {
		name = primary.Name
	}

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Receipt No : RCPT-%s", safeFilenamePart(p.ID)),
		fmt.Sprintf("Received from : %s", safe(name, "-")),
		fmt.Sprintf("Tour          : %s", safe(tm.TourPackage.PackageName, "-")),
		fmt.Sprintf("Amount        : %s", finance.FormatAmount(p.Amount)),
		fmt.Sprintf("Date          : %s", p.PaymentDate.Format("2006-01-02")),
		fmt.Sprintf("Method        : %s", safe(p.PaymentMethod, "-")),
	}
	if strings.TrimSpace(p.Note) != "" {
		lines = append(lines, "Note          : "+p.Note)
	}
	for _, l := range lines {
		pdf.Cell(0, 7, l)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Remaining balance: "+finance.FormatAmount(finance.DueAmount(tm)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("RECEIPT_%s.pdf", safeFilenamePart(p.ID))
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func safeFilenamePart(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			out = append(out, r)
		default:
			out = append(out, '_')
		}
	}
	return string(out)
}
