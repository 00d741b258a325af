package finance

import (
	"strings"
	"testing"

	"tourdesk/internal/domain/models"
)

func reminderBooking() models.TourMember {
	tm := bookingWithPayments(20000, 6500)
	tm.MemberCount = 3
	tm.Members = []models.Member{
		{Name: "Rahul Shah", MobileNo: "9876543210"},
		{Name: "Asha Shah", MobileNo: "9876543211"},
	}
	tm.TourPackage = models.TourPackage{PackageName: "Goa Beach Escape"}
	return tm
}

func TestRenderTemplate(t *testing.T) {
	tm := reminderBooking()

	got := RenderTemplate("Hi {name}, {amount} due for {tourPackage} ({memberCount} travellers). We'll call {phone}.", tm, nil)
	want := "Hi Rahul Shah, 13,500 due for Goa Beach Escape (3 travellers). We'll call 9876543210."
	if got != want {
		t.Fatalf("RenderTemplate = %q, want %q", got, want)
	}
}

func TestRenderTemplateGlobalReplacement(t *testing.T) {
	tm := reminderBooking()
	got := RenderTemplate("{name} {name} {name}", tm, nil)
	if got != "Rahul Shah Rahul Shah Rahul Shah" {
		t.Fatalf("every occurrence must be replaced, got %q", got)
	}
}

func TestRenderTemplateDueOverride(t *testing.T) {
	tm := reminderBooking()
	override := int64(999)
	got := RenderTemplate("{amount}", tm, &override)
	if got != "999" {
		t.Fatalf("override amount = %q, want 999", got)
	}
}

func TestRenderTemplateIdempotentWithoutTokens(t *testing.T) {
	tm := reminderBooking()
	msg := "no placeholders here"
	if got := RenderTemplate(msg, tm, nil); got != msg {
		t.Fatalf("RenderTemplate(%q) = %q", msg, got)
	}
}

func TestRenderTemplateLeavesUnknownTokens(t *testing.T) {
	tm := reminderBooking()
	got := RenderTemplate("Hello {Name} {unknown} {name}", tm, nil)
	if got != "Hello {Name} {unknown} Rahul Shah" {
		t.Fatalf("unknown/case-mismatched tokens must stay verbatim, got %q", got)
	}
}

func TestRenderTemplateNoMembers(t *testing.T) {
	tm := models.TourMember{TotalCost: 500}
	got := RenderTemplate("{name}|{phone}|{amount}", tm, nil)
	if got != "||500" {
		t.Fatalf("missing primary member should render empty fields, got %q", got)
	}
}

func TestValidateMessage(t *testing.T) {
	if check := ValidateMessage("Please pay soon."); !check.Valid || len(check.Faults) != 0 {
		t.Fatalf("plain message should be valid: %+v", check)
	}

	check := ValidateMessage("   ")
	if check.Valid || len(check.Faults) != 1 || check.Faults[0] != EmptyMessage {
		t.Fatalf("blank message: %+v", check)
	}

	check = ValidateMessage(strings.Repeat("x", 1601))
	if check.Valid || check.Faults[0] != MessageTooLong {
		t.Fatalf("over-length message: %+v", check)
	}

	if check = ValidateMessage(strings.Repeat("x", 1600)); !check.Valid {
		t.Fatalf("1600 chars is still allowed: %+v", check)
	}
}

func TestValidateMessagePersonalizationWarning(t *testing.T) {
	check := ValidateMessage("Your due is {amount}.")
	if !check.Valid {
		t.Fatalf("warning must not block sending: %+v", check)
	}
	if len(check.Warnings) != 1 {
		t.Fatalf("expected personalization warning, got %+v", check)
	}

	check = ValidateMessage("Dear {name}, your due is {amount}.")
	if len(check.Warnings) != 0 {
		t.Fatalf("no warning expected when {name} present: %+v", check)
	}
}

func TestDefaultTemplatesRenderable(t *testing.T) {
	tm := reminderBooking()
	for _, tpl := range DefaultTemplates() {
		if check := ValidateMessage(tpl.Message); !check.Valid {
			t.Fatalf("built-in template %s invalid: %+v", tpl.Slug, check)
		}
		rendered := RenderTemplate(tpl.Message, tm, nil)
		if strings.Contains(rendered, "{name}") || strings.Contains(rendered, "{amount}") {
			t.Fatalf("template %s left tokens unrendered: %q", tpl.Slug, rendered)
		}
	}
}
