package finance

import (
	"strconv"
	"strings"

	"tourdesk/internal/domain/models"
)

// Maximum SMS body length the gateway accepts (concatenated long message).
const maxMessageLen = 1600

// RenderTemplate substitutes the reminder placeholders into template:
// {name}, {amount}, {tourPackage}, {phone} and {memberCount}. Matching is
// global, case-sensitive and exact on the braces; anything else in braces is
// left verbatim. A template without placeholders comes back unchanged.
// dueOverride, when non-nil, replaces the computed due amount in {amount}.
func RenderTemplate(template string, tm models.TourMember, dueOverride *int64) string {
	amount := DueAmount(tm)
	if dueOverride != nil {
		amount = *dueOverride
	}

	var name, phone string
	if primary, ok := tm.PrimaryMember(); ok {
		name = primary.Name
		phone = primary.MobileNo
	}

	r := strings.NewReplacer(
		"{name}", name,
		"{amount}", FormatAmount(amount),
		"{tourPackage}", tm.TourPackage.PackageName,
		"{phone}", phone,
		"{memberCount}", strconv.Itoa(tm.MemberCount),
	)
	return r.Replace(template)
}

// MessageFault is a blocking reason a message cannot be sent.
type MessageFault string

const (
	EmptyMessage   MessageFault = "EmptyMessage"
	MessageTooLong MessageFault = "MessageTooLong"
)

// MessageCheck is the outcome of ValidateMessage. Faults block sending;
// warnings are advisory and never do.
type MessageCheck struct {
	Valid    bool           `json:"valid"`
	Faults   []MessageFault `json:"faults,omitempty"`
	Warnings []string       `json:"warnings,omitempty"`
}

// ValidateMessage checks a composed or template message before dispatch.
// Empty (after trimming) and over-length messages are rejected; a message
// that uses braces but never {name} gets a personalization nudge.
func ValidateMessage(msg string) MessageCheck {
	var check MessageCheck

	if strings.TrimSpace(msg) == "" {
		check.Faults = append(check.Faults, EmptyMessage)
	}
	if len(msg) > maxMessageLen {
		check.Faults = append(check.Faults, MessageTooLong)
	}
	if strings.Contains(msg, "{") && !strings.Contains(msg, "{name}") {
		check.Warnings = append(check.Warnings, "consider including {name} for personalization")
	}

	check.Valid = len(check.Faults) == 0
	return check
}

// DefaultTemplates are the built-in reminder messages seeded into the
// template store on first run.
func DefaultTemplates() []models.SmsTemplate {
	return []models.SmsTemplate{
		{
			Slug:     "payment-reminder",
			Name:     "Payment Reminder",
			Message:  "Dear {name}, this is a friendly reminder that your payment of {amount} for {tourPackage} is pending. Please complete your payment at your earliest convenience. Thank you!",
			Category: "reminder",
			BuiltIn:  true,
		},
		{
			Slug:     "urgent-payment",
			Name:     "Urgent Payment",
			Message:  "Hi {name}, your payment of {amount} for {tourPackage} is overdue. Please make the payment immediately to avoid any inconvenience. Contact us for assistance.",
			Category: "urgent",
			BuiltIn:  true,
		},
		{
			Slug:     "final-notice",
			Name:     "Final Notice",
			Message:  "Dear {name}, this is the final notice for your pending payment of {amount} for {tourPackage}. Please settle this amount today to secure your booking.",
			Category: "final",
			BuiltIn:  true,
		},
		{
			Slug:     "partial-payment",
			Name:     "Partial Payment Received",
			Message:  "Thank you {name} for your partial payment. Your remaining balance for {tourPackage} is {amount}. Please complete the payment before the due date.",
			Category: "partial",
			BuiltIn:  true,
		},
	}
}
