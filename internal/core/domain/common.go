package domain

import "time"

// AuditFields is embedded in every persisted entity to record who created
// and last touched it. Both By fields hold user IDs.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}
