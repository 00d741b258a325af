package models

import "time"

// Entities below live in the gateway's own MySQL database, not upstream:
// operator accounts, SMS templates, saved filter presets and the reminder
// send log.

// User is a dashboard operator account.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// SmsTemplate is a reusable reminder message with {name}/{amount}/...
// placeholders. Built-in rows are seeded and cannot be deleted.
type SmsTemplate struct {
	ID       int64  `json:"id"`
	Slug     string `json:"slug"`
	Name     string `json:"name"`
	Message  string `json:"message"`
	Category string `json:"category"`
	BuiltIn  bool   `json:"builtIn"`
}

// FilterPreset is a named, saved filter payload for the reminder views.
type FilterPreset struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Name      string    `json:"name"`
	Payload   string    `json:"payload"` // JSON-encoded finance.Filters
	CreatedAt time.Time `json:"createdAt"`
}

// ReminderLogEntry is one audit row per SMS handed to the gateway.
type ReminderLogEntry struct {
	ID           int64     `json:"id"`
	TourMemberID string    `json:"tourMemberId"`
	Message      string    `json:"message"`
	Bulk         bool      `json:"bulk"`
	SentBy       int64     `json:"sentBy"`
	SentAt       time.Time `json:"sentAt"`
}
