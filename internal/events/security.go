// Package events defines the identity-provider event payloads consumed
// by the account activity service.
package events

import "time"

// SecurityEventRecorded is emitted by the identity provider whenever an
// account security action occurs (login, profile update, and so on).
// EventID may be empty for providers that predate mandatory event ids.
type SecurityEventRecorded struct {
	EventID     string    `json:"event_id,omitempty"`
	TenantID    string    `json:"tenant_id"`
	UserID      string    `json:"user_id"`
	Action      string    `json:"action"`
	Description string    `json:"description,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}
