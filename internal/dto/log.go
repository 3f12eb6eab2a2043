package dto

import (
	"encoding/json"
	"time"

	"github.com/Yeizermarrugo/BankSystem/internal/core/domain"
)

// ListLogsParams defines query parameters for listing audit logs. Service
// and action match exactly; From and To take ISO dates (YYYY-MM-DD) and must
// be supplied together.
type ListLogsParams struct {
	Limit   int    `form:"limit,default=20"`
	Offset  int    `form:"offset,default=0"`
	Service string `form:"service"`
	Action  string `form:"action"`
	From    string `form:"from"`
	To      string `form:"to"`
}

// LogResponse defines the data returned for an audit log entry.
type LogResponse struct {
	LogID     string          `json:"logID"`
	Service   string          `json:"service"`
	EntityID  string          `json:"entityID"`
	Action    string          `json:"action"`
	Status    string          `json:"status"`
	Message   string          `json:"message"`
	OldData   json.RawMessage `json:"oldData,omitempty"`
	NewData   json.RawMessage `json:"newData,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ToLogResponse converts a domain.LogEntry to LogResponse DTO
func ToLogResponse(entry *domain.LogEntry) LogResponse {
	return LogResponse{
		LogID:     entry.LogID,
		Service:   entry.Service,
		EntityID:  entry.EntityID,
		Action:    entry.Action,
		Status:    entry.Status,
		Message:   entry.Message,
		OldData:   json.RawMessage(entry.OldData),
		NewData:   json.RawMessage(entry.NewData),
		CreatedAt: entry.CreatedAt,
	}
}

// ToListLogResponse converts a slice of domain.LogEntry to a slice of LogResponse DTOs
func ToListLogResponse(entries []domain.LogEntry) []LogResponse {
	res := make([]LogResponse, len(entries))
	for i, entry := range entries {
		res[i] = ToLogResponse(&entry)
	}
	return res
}
