package domain

import "time"

// LogEntry is one audit record emitted by a service after a state change.
// OldData/NewData carry JSON snapshots of the entity before and after.
type LogEntry struct {
	LogID     string    `json:"logID"` // Primary Key (UUID)
	Service   string    `json:"service"`
	EntityID  string    `json:"entityID"`
	Action    string    `json:"action"` // create, update, delete...
	Status    string    `json:"status"` // success, failed
	Message   string    `json:"message"`
	OldData   []byte    `json:"oldData,omitempty"`
	NewData   []byte    `json:"newData,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
