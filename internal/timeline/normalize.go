package timeline

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// OrderUpdateThreshold is the minimum gap between an order's creation
// and last update before the update is shown as its own feed entry.
// Anything closer is create+update noise from order processing.
const OrderUpdateThreshold = time.Hour

// securityLogNamespace seeds deterministic ids for security logs that
// arrive without one, so identical reruns produce identical ids.
var securityLogNamespace = uuid.MustParse("9b1c6f0a-47e3-4d0b-a6cb-43a2f0d5f6e1")

// Normalize converts the four source collections into classified feed
// items. Sources are processed in a fixed order (orders, tickets,
// reviews, security logs) so that equal-timestamp items keep a stable
// relative order through the sort. Records without a usable timestamp
// are dropped; a malformed record never fails the whole feed.
func Normalize(orders []Order, tickets []SupportTicket, reviews []Review, logs []SecurityLog) []Item {
	items := make([]Item, 0, len(orders)*2+len(tickets)+len(reviews)+len(logs))

	for _, o := range orders {
		if o.CreatedAt.IsZero() {
			continue
		}
		items = append(items, classifyOrderCreated(o))
		if !o.UpdatedAt.IsZero() && o.UpdatedAt.Sub(o.CreatedAt) > OrderUpdateThreshold {
			items = append(items, classifyOrderUpdated(o))
		}
	}

	for _, t := range tickets {
		if t.CreatedAt.IsZero() {
			continue
		}
		items = append(items, classifyTicket(t))
	}

	for _, r := range reviews {
		if r.CreatedAt.IsZero() {
			continue
		}
		items = append(items, classifyReview(r))
	}

	for _, l := range logs {
		if l.CreatedAt.IsZero() {
			continue
		}
		items = append(items, classifySecurityLog(l))
	}

	return items
}

// itemID namespaces ids by item type so that identical raw ids in
// different source collections cannot collide in the merged feed.
func itemID(t ItemType, sourceID string) string {
	return fmt.Sprintf("%s:%s", t, sourceID)
}

// syntheticLogID derives a stable id for a security log lacking one.
func syntheticLogID(l SecurityLog) string {
	seed := fmt.Sprintf("%s|%s|%s", l.Action, l.CreatedAt.UTC().Format(time.RFC3339Nano), l.Description)
	return uuid.NewSHA1(securityLogNamespace, []byte(seed)).String()
}
