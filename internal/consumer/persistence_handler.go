package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/account-activity/internal/events"
)

// EventTypeSecurityRecorded is the event type the identity provider
// publishes for account security actions.
const EventTypeSecurityRecorded = "security.recorded"

// PersistenceHandler writes consumed security events into the
// security_logs table the feed repository reads from.
type PersistenceHandler struct {
	pool *pgxpool.Pool
}

// NewPersistenceHandler constructs a handler backed by the provided pool.
func NewPersistenceHandler(pool *pgxpool.Pool) *PersistenceHandler {
	return &PersistenceHandler{pool: pool}
}

// Handle stores one security event. Events without an id get a fresh
// row key; redeliveries of keyed events are no-ops.
func (h *PersistenceHandler) Handle(ctx context.Context, msg Message) error {
	if msg.EventType != EventTypeSecurityRecorded {
		// Unknown event types are skipped, not failed, so topic
		// evolution never wedges the consumer.
		return nil
	}

	var evt events.SecurityEventRecorded
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		return fmt.Errorf("decode security event: %w", err)
	}
	if strings.TrimSpace(evt.UserID) == "" || strings.TrimSpace(evt.Action) == "" {
		return fmt.Errorf("security event missing user_id or action (tenant=%s)", evt.TenantID)
	}

	tenantID := evt.TenantID
	if tenantID == "" {
		tenantID = msg.TenantID
	}
	logID := evt.EventID
	if logID == "" {
		logID = uuid.NewString()
	}
	occurredAt := evt.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = msg.Timestamp
	}

	conn, err := h.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "SELECT set_config('app.tenant_id', $1, true)", tenantID); err != nil {
		return err
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO security_logs (log_id, tenant_id, user_id, action, description, created_at, received_at)
         VALUES ($1,$2,$3,$4,$5,$6,$7)
         ON CONFLICT (log_id) DO NOTHING`,
		logID,
		tenantID,
		evt.UserID,
		evt.Action,
		nullIfEmpty(evt.Description),
		occurredAt,
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func nullIfEmpty(value string) interface{} {
	if value == "" {
		return nil
	}
	return value
}
