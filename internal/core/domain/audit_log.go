package domain

import "time"

// AuditLog is one recorded operation performed by an authenticated identity.
type AuditLog struct {
	AuditLogID string         `json:"auditLogID"`
	Action     string         `json:"action"`
	Entity     string         `json:"entity"`
	EntityID   string         `json:"entityID,omitempty"`
	ActorID    string         `json:"actorID,omitempty"`
	Payload    map[string]any `json:"payload,omitempty"`
	Before     map[string]any `json:"before,omitempty"`
	Related    []string       `json:"related,omitempty"`
	ClientIP   string         `json:"clientIP,omitempty"`
	OccurredAt time.Time      `json:"occurredAt"`
}
