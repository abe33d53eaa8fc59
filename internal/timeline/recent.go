package timeline

// DefaultRecentLimit bounds the dashboard overview feed when the caller
// does not ask for a specific size.
const DefaultRecentLimit = 4

// Recent builds the compact dashboard projection: the full pipeline over
// orders, tickets and reviews (security logs omitted), truncated to
// limit after sorting. The result is always a prefix of the full sorted
// feed restricted to the same source types.
func Recent(orders []Order, tickets []SupportTicket, reviews []Review, limit int) []Item {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	items := Sort(Normalize(orders, tickets, reviews, nil))
	if len(items) > limit {
		items = items[:limit]
	}
	return items
}
