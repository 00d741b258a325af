package repositories

import (
	"database/sql"
	"strings"

	intconfig "tourdesk/internal/config"
	"tourdesk/internal/domain"
	"tourdesk/internal/domain/models"
)

// ReminderLogRepository keeps an audit row for every SMS handed to the
// gateway, bulk or individual.
type ReminderLogRepository struct {
	DB *sql.DB
}

func (r ReminderLogRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r ReminderLogRepository) Append(e models.ReminderLogEntry) (int64, error) {
	if strings.TrimSpace(e.TourMemberID) == "" {
		return 0, domain.ValidationError{Field: "tourMemberId", Msg: "booking id is required"}
	}
	res, err := r.db().Exec(`
		INSERT INTO reminder_log (tour_member_id, message, bulk, sent_by, sent_at)
		VALUES (?, ?, ?, ?, NOW())`,
		e.TourMemberID, e.Message, e.Bulk, e.SentBy)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r ReminderLogRepository) ListByTourMember(tourMemberID string, limit int) ([]models.ReminderLogEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db().Query(`
		SELECT id, tour_member_id, message, bulk, sent_by, sent_at
		FROM reminder_log
		WHERE tour_member_id = ?
		ORDER BY sent_at DESC
		LIMIT ?`, tourMemberID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.ReminderLogEntry{}
	for rows.Next() {
		var e models.ReminderLogEntry
		if err := rows.Scan(&e.ID, &e.TourMemberID, &e.Message, &e.Bulk, &e.SentBy, &e.SentAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// CountSentSince supports the dashboard's "reminders sent" tile.
func (r ReminderLogRepository) CountSentSince(days int) (int, error) {
	var count int
	err := r.db().QueryRow(`
		SELECT COUNT(*) FROM reminder_log
		WHERE sent_at >= DATE_SUB(NOW(), INTERVAL ? DAY)`, days).Scan(&count)
	return count, err
}
