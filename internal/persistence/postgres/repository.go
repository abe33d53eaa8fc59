// Package postgres provides the pgx-backed fetch layer for the four
// source collections the feed is derived from.
package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/account-activity/internal/timeline"
)

// Repository reads source records from Postgres. All queries run inside
// a transaction that sets app.tenant_id so row-level security policies
// apply.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a Repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// ListOrders returns the user's orders, oldest first.
func (r *Repository) ListOrders(ctx context.Context, tenantID, userID string) ([]timeline.Order, error) {
	const query = `SELECT order_id, tenant_id, user_id, status, total_amount, created_at, updated_at
        FROM orders WHERE tenant_id=$1 AND user_id=$2 ORDER BY created_at`

	var orders []timeline.Order
	err := r.withTenantTx(ctx, tenantID, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, query, tenantID, userID)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var o timeline.Order
			if err := rows.Scan(&o.ID, &o.TenantID, &o.UserID, &o.Status, &o.TotalAmount, &o.CreatedAt, &o.UpdatedAt); err != nil {
				return err
			}
			orders = append(orders, o)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// ListTickets returns the user's support tickets, oldest first.
func (r *Repository) ListTickets(ctx context.Context, tenantID, userID string) ([]timeline.SupportTicket, error) {
	const query = `SELECT ticket_id, tenant_id, user_id, status, subject, created_at
        FROM support_tickets WHERE tenant_id=$1 AND user_id=$2 ORDER BY created_at`

	var tickets []timeline.SupportTicket
	err := r.withTenantTx(ctx, tenantID, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, query, tenantID, userID)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var t timeline.SupportTicket
			if err := rows.Scan(&t.ID, &t.TenantID, &t.UserID, &t.Status, &t.Subject, &t.CreatedAt); err != nil {
				return err
			}
			tickets = append(tickets, t)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return tickets, nil
}

// ListReviews returns the user's product reviews, oldest first.
func (r *Repository) ListReviews(ctx context.Context, tenantID, userID string) ([]timeline.Review, error) {
	const query = `SELECT review_id, tenant_id, user_id, product_id, rating, created_at
        FROM reviews WHERE tenant_id=$1 AND user_id=$2 ORDER BY created_at`

	var reviews []timeline.Review
	err := r.withTenantTx(ctx, tenantID, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, query, tenantID, userID)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var rv timeline.Review
			if err := rows.Scan(&rv.ID, &rv.TenantID, &rv.UserID, &rv.ProductID, &rv.Rating, &rv.CreatedAt); err != nil {
				return err
			}
			reviews = append(reviews, rv)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// ListSecurityLogs returns the user's account security entries, oldest
// first. log_id can be empty for legacy rows.
func (r *Repository) ListSecurityLogs(ctx context.Context, tenantID, userID string) ([]timeline.SecurityLog, error) {
	const query = `SELECT log_id, tenant_id, user_id, action, COALESCE(description, ''), created_at
        FROM security_logs WHERE tenant_id=$1 AND user_id=$2 ORDER BY created_at`

	var logs []timeline.SecurityLog
	err := r.withTenantTx(ctx, tenantID, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, query, tenantID, userID)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var l timeline.SecurityLog
			if err := rows.Scan(&l.ID, &l.TenantID, &l.UserID, &l.Action, &l.Description, &l.CreatedAt); err != nil {
				return err
			}
			logs = append(logs, l)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *Repository) withTenantTx(ctx context.Context, tenantID string, fn func(tx pgx.Tx) error) error {
	conn, err := r.pool.Acquire(ctx)
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

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
