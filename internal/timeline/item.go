// Package timeline merges orders, support tickets, reviews and security
// logs into one classified, reverse-chronological account activity feed.
// It is a pure function of its inputs: no I/O, no clock reads (callers
// pass "now"), and identical inputs always produce identical output.
package timeline

import (
	"fmt"
	"strings"
	"time"
)

// ItemType identifies the kind of feed entry an Item represents.
type ItemType string

const (
	TypeOrderCreated ItemType = "order_created"
	TypeOrderUpdated ItemType = "order_updated"
	TypeTicket       ItemType = "ticket"
	TypeReview       ItemType = "review"
	TypeSecurity     ItemType = "security"
)

// Category is the semantic grouping key used by feed filters.
type Category string

const (
	CategoryOrder    Category = "order"
	CategoryTicket   Category = "ticket"
	CategoryReview   Category = "review"
	CategorySecurity Category = "security"
)

// Severity is a display classification, not a business-logic level.
type Severity string

const (
	SeverityNeutral Severity = "neutral"
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
	SeverityAccent  Severity = "accent"
	SeverityMuted   Severity = "muted"
)

// SourceRef points back at the record an Item was derived from, so the
// caller can navigate to the underlying order, ticket or review. ID is
// empty for security logs whose id had to be synthesized.
type SourceRef struct {
	Kind Category
	ID   string
}

// Item is the unified representation of one account activity entry.
type Item struct {
	ID         string
	Type       ItemType
	Date       time.Time
	Title      string
	Subtitle   string
	Category   Category
	Severity   Severity
	Icon       string
	Actionable bool
	Source     SourceRef
}

// Filter selects a subset of the feed by category.
type Filter string

const (
	FilterAll      Filter = "all"
	FilterOrder    Filter = "order"
	FilterTicket   Filter = "ticket"
	FilterSecurity Filter = "security"
)

// ParseFilter validates a raw filter token. An empty token means "all".
func ParseFilter(raw string) (Filter, error) {
	switch Filter(strings.TrimSpace(strings.ToLower(raw))) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterOrder:
		return FilterOrder, nil
	case FilterTicket:
		return FilterTicket, nil
	case FilterSecurity:
		return FilterSecurity, nil
	}
	return "", fmt.Errorf("unknown filter %q", raw)
}

// Matches reports whether the item passes the filter. "order" matches
// both order_created and order_updated; "security" matches exactly the
// security type.
func (f Filter) Matches(item Item) bool {
	switch f {
	case "", FilterAll:
		return true
	case FilterSecurity:
		return item.Type == TypeSecurity
	default:
		return strings.Contains(string(item.Type), string(f))
	}
}

// FilterItems returns the items passing the filter, preserving order.
func FilterItems(items []Item, f Filter) []Item {
	out := make([]Item, 0, len(items))
	for _, item := range items {
		if f.Matches(item) {
			out = append(out, item)
		}
	}
	return out
}
