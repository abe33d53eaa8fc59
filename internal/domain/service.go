// Package domain defines the business logic for the account activity service.
package domain

import (
	"context"
	"fmt"
	"time"

	"example.com/account-activity/internal/observability"
	"example.com/account-activity/internal/timeline"
)

// MaxRecentLimit caps the dashboard projection size.
const MaxRecentLimit = 50

// SourceRepository fetches the four read-only source collections the
// feed is derived from. All fetching and storage lives behind this
// interface; the engine itself owns no I/O.
type SourceRepository interface {
	ListOrders(ctx context.Context, tenantID, userID string) ([]timeline.Order, error)
	ListTickets(ctx context.Context, tenantID, userID string) ([]timeline.SupportTicket, error)
	ListReviews(ctx context.Context, tenantID, userID string) ([]timeline.Review, error)
	ListSecurityLogs(ctx context.Context, tenantID, userID string) ([]timeline.SecurityLog, error)
}

// Service orchestrates activity feed reads.
type Service struct {
	repo SourceRepository
}

// NewService constructs a Service.
func NewService(repo SourceRepository) *Service {
	return &Service{repo: repo}
}

// Feed returns the full sorted, classified activity sequence for a user,
// optionally restricted by filter.
func (s *Service) Feed(ctx context.Context, tenantID, userID string, filter timeline.Filter) ([]timeline.Item, error) {
	items, err := s.fullFeed(ctx, tenantID, userID)
	if err != nil {
		return nil, err
	}
	items = timeline.FilterItems(items, filter)
	observability.RecordFeedBuilt("feed", len(items))
	return items, nil
}

// ActivityLog returns the filtered feed grouped into day buckets
// relative to now. A zero now defaults to the current UTC time.
func (s *Service) ActivityLog(ctx context.Context, tenantID, userID string, filter timeline.Filter, now time.Time) ([]timeline.DayBucket, error) {
	if now.IsZero() {
		now = time.Now().UTC()
	}
	items, err := s.fullFeed(ctx, tenantID, userID)
	if err != nil {
		return nil, err
	}
	buckets := timeline.Bucket(items, filter, now)
	total := 0
	for _, b := range buckets {
		total += len(b.Items)
	}
	observability.RecordFeedBuilt("log", total)
	return buckets, nil
}

// RecentActivity returns the bounded dashboard projection. Security logs
// are never fetched for this view.
func (s *Service) RecentActivity(ctx context.Context, tenantID, userID string, limit int) ([]timeline.Item, error) {
	if limit <= 0 {
		limit = timeline.DefaultRecentLimit
	}
	if limit > MaxRecentLimit {
		limit = MaxRecentLimit
	}

	orders, err := s.repo.ListOrders(ctx, tenantID, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	tickets, err := s.repo.ListTickets(ctx, tenantID, userID)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	reviews, err := s.repo.ListReviews(ctx, tenantID, userID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	items := timeline.Recent(orders, tickets, reviews, limit)
	observability.RecordFeedBuilt("recent", len(items))
	return items, nil
}

func (s *Service) fullFeed(ctx context.Context, tenantID, userID string) ([]timeline.Item, error) {
	orders, err := s.repo.ListOrders(ctx, tenantID, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	tickets, err := s.repo.ListTickets(ctx, tenantID, userID)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	reviews, err := s.repo.ListReviews(ctx, tenantID, userID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	logs, err := s.repo.ListSecurityLogs(ctx, tenantID, userID)
	if err != nil {
		return nil, fmt.Errorf("list security logs: %w", err)
	}

	return timeline.Sort(timeline.Normalize(orders, tickets, reviews, logs)), nil
}
