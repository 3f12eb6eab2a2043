package models

import "time"

// LogEntry represents an audit log row as stored in the database.
// OldData/NewData map to JSONB columns.
type LogEntry struct {
	LogID     string    `db:"log_id"`
	Service   string    `db:"service"`
	EntityID  string    `db:"entity_id"`
	Action    string    `db:"action"`
	Status    string    `db:"status"`
	Message   string    `db:"message"`
	OldData   []byte    `db:"old_data"`
	NewData   []byte    `db:"new_data"`
	CreatedAt time.Time `db:"created_at"`
}
