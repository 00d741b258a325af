package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "tourdesk/internal/config"
	"tourdesk/internal/domain"
	"tourdesk/internal/domain/models"
)

// TemplateRepository stores reminder message templates. Built-in rows are
// seeded once and protected from deletion.
type TemplateRepository struct {
	DB *sql.DB
}

func (r TemplateRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r TemplateRepository) List() ([]models.SmsTemplate, error) {
	rows, err := r.db().Query(`
		SELECT id, slug, name, message, category, built_in
		FROM sms_templates
		ORDER BY built_in DESC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.SmsTemplate{}
	for rows.Next() {
		var t models.SmsTemplate
		if err := rows.Scan(&t.ID, &t.Slug, &t.Name, &t.Message, &t.Category, &t.BuiltIn); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r TemplateRepository) GetByID(id int64) (models.SmsTemplate, error) {
	var t models.SmsTemplate
	err := r.db().QueryRow(`
		SELECT id, slug, name, message, category, built_in
		FROM sms_templates WHERE id = ? LIMIT 1`, id).Scan(
		&t.ID, &t.Slug, &t.Name, &t.Message, &t.Category, &t.BuiltIn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SmsTemplate{}, domain.NotFoundError{Resource: "sms template"}
		}
		return models.SmsTemplate{}, err
	}
	return t, nil
}

func (r TemplateRepository) Create(t models.SmsTemplate) (int64, error) {
	if strings.TrimSpace(t.Name) == "" {
		return 0, domain.ValidationError{Field: "name", Msg: "name is required"}
	}
	res, err := r.db().Exec(`
		INSERT INTO sms_templates (slug, name, message, category, built_in)
		VALUES (?, ?, ?, ?, ?)`,
		t.Slug, t.Name, t.Message, t.Category, t.BuiltIn)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r TemplateRepository) Update(id int64, t models.SmsTemplate) error {
	res, err := r.db().Exec(`
		UPDATE sms_templates SET name = ?, message = ?, category = ?
		WHERE id = ? AND built_in = FALSE`,
		t.Name, t.Message, t.Category, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "sms template"}
	}
	return nil
}

func (r TemplateRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM sms_templates WHERE id = ? AND built_in = FALSE`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "sms template"}
	}
	return nil
}

// SeedDefaults inserts the built-in templates that are not present yet,
// keyed by slug. Safe to run on every start.
func (r TemplateRepository) SeedDefaults(defaults []models.SmsTemplate) error {
	for _, t := range defaults {
		var exists int
		err := r.db().QueryRow(`SELECT COUNT(*) FROM sms_templates WHERE slug = ?`, t.Slug).Scan(&exists)
		if err != nil {
			return err
		}
		if exists > 0 {
			continue
		}
		if _, err := r.db().Exec(`
			INSERT INTO sms_templates (slug, name, message, category, built_in)
			VALUES (?, ?, ?, ?, TRUE)`,
			t.Slug, t.Name, t.Message, t.Category); err != nil {
			return err
		}
	}
	return nil
}
