package repositories

import (
	"testing"

	"tourdesk/internal/domain"
	"tourdesk/internal/finance"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestTemplateRepositoryList(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT id, slug, name, message, category, built_in").
		WillReturnRows(sqlmock.NewRows([]string{"id", "slug", "name", "message", "category", "built_in"}).
			AddRow(1, "payment-reminder", "Payment Reminder", "Dear {name}...", "reminder", true).
			AddRow(2, "custom-1", "My Template", "Hello {name}", "custom", false))

	repo := TemplateRepository{DB: db}
	list, err := repo.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 || !list[0].BuiltIn || list[1].Slug != "custom-1" {
		t.Fatalf("unexpected templates: %+v", list)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTemplateRepositoryDeleteProtectsBuiltIn(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// built_in rows never match the delete predicate
	mock.ExpectExec("DELETE FROM sms_templates").WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := TemplateRepository{DB: db}
	if err := repo.Delete(1); !domain.IsNotFound(err) {
		t.Fatalf("deleting a built-in should report not found, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTemplateRepositorySeedDefaultsSkipsExisting(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	defaults := finance.DefaultTemplates()
	for i, tpl := range defaults {
		existing := 0
		if i == 0 {
			existing = 1 // first one already seeded
		}
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM sms_templates").WithArgs(tpl.Slug).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(existing))
		if existing == 0 {
			mock.ExpectExec("INSERT INTO sms_templates").
				WillReturnResult(sqlmock.NewResult(int64(i+1), 1))
		}
	}

	repo := TemplateRepository{DB: db}
	if err := repo.SeedDefaults(defaults); err != nil {
		t.Fatalf("SeedDefaults: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
