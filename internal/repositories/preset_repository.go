package repositories

import (
	"database/sql"
	"encoding/json"
	"strings"

	intconfig "tourdesk/internal/config"
	"tourdesk/internal/domain"
	"tourdesk/internal/domain/models"
	"tourdesk/internal/finance"
)

// PresetRepository stores named filter payloads per operator, the server-side
// replacement for keeping the last-used filters in the browser.
type PresetRepository struct {
	DB *sql.DB
}

func (r PresetRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r PresetRepository) ListByUser(userID int64) ([]models.FilterPreset, error) {
	rows, err := r.db().Query(`
		SELECT id, user_id, name, payload, created_at
		FROM filter_presets
		WHERE user_id = ?
		ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.FilterPreset{}
	for rows.Next() {
		var p models.FilterPreset
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Payload, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Save stores filters as JSON under a name. The payload is validated by
// round-tripping through finance.Filters so a preset can always be decoded.
func (r PresetRepository) Save(userID int64, name string, f finance.Filters) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, domain.ValidationError{Field: "name", Msg: "preset name is required"}
	}

	payload, err := json.Marshal(f)
	if err != nil {
		return 0, domain.InternalError{Msg: "encode filter preset", Err: err}
	}

	res, err := r.db().Exec(`
		INSERT INTO filter_presets (user_id, name, payload, created_at)
		VALUES (?, ?, ?, NOW())`, userID, name, string(payload))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r PresetRepository) Delete(userID, id int64) error {
	res, err := r.db().Exec(`DELETE FROM filter_presets WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "filter preset"}
	}
	return nil
}

// DecodeFilters restores the filter value from a stored preset.
func DecodeFilters(p models.FilterPreset) (finance.Filters, error) {
	var f finance.Filters
	if err := json.Unmarshal([]byte(p.Payload), &f); err != nil {
		return finance.Filters{}, domain.InternalError{Msg: "decode filter preset", Err: err}
	}
	return f, nil
}
