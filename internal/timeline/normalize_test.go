package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2025, time.November, 3, 12, 0, 0, 0, time.UTC)

func TestNormalizeOrderWithinThresholdEmitsSingleItem(t *testing.T) {
	orders := []Order{
		{
			ID:          "ord-1000123",
			Status:      "Delivered",
			TotalAmount: 42.5,
			CreatedAt:   baseTime,
			UpdatedAt:   baseTime.Add(45 * time.Minute),
		},
	}

	items := Normalize(orders, nil, nil, nil)
	require.Len(t, items, 1)
	require.Equal(t, TypeOrderCreated, items[0].Type)
	require.Equal(t, "Order Placed", items[0].Title)
	require.Equal(t, baseTime, items[0].Date)
}

func TestNormalizeOrderBeyondThresholdEmitsUpdateItem(t *testing.T) {
	orders := []Order{
		{
			ID:          "ord-1000123",
			Status:      "Delivered",
			TotalAmount: 42.5,
			CreatedAt:   baseTime,
			UpdatedAt:   baseTime.Add(2 * time.Hour),
		},
	}

	items := Normalize(orders, nil, nil, nil)
	require.Len(t, items, 2)

	created := items[0]
	require.Equal(t, TypeOrderCreated, created.Type)
	require.Equal(t, "Order Placed", created.Title)
	require.Equal(t, "#000123 · $42.50", created.Subtitle)
	require.Equal(t, SeverityNeutral, created.Severity)
	require.True(t, created.Actionable)

	updated := items[1]
	require.Equal(t, TypeOrderUpdated, updated.Type)
	require.Equal(t, "Delivered", updated.Title)
	require.Equal(t, SeveritySuccess, updated.Severity)
	require.Equal(t, baseTime.Add(2*time.Hour), updated.Date)
	require.Equal(t, "#000123", updated.Subtitle)
}

func TestNormalizeOrderStatusClassification(t *testing.T) {
	orders := []Order{
		{ID: "a", Status: "CANCELLED by user", CreatedAt: baseTime, UpdatedAt: baseTime.Add(3 * time.Hour)},
		{ID: "b", Status: "Shipped", CreatedAt: baseTime, UpdatedAt: baseTime.Add(3 * time.Hour)},
	}

	items := Normalize(orders, nil, nil, nil)
	require.Len(t, items, 4)

	cancelled := items[1]
	require.Equal(t, "Cancelled", cancelled.Title)
	require.Equal(t, SeverityDanger, cancelled.Severity)

	shipped := items[3]
	require.Equal(t, "Order Shipped", shipped.Title)
	require.Equal(t, SeverityInfo, shipped.Severity)
}

func TestNormalizeDropsRecordsWithoutDates(t *testing.T) {
	orders := []Order{{ID: "no-date", Status: "placed"}}
	tickets := []SupportTicket{{ID: "t-1", Subject: "Broken item"}}
	reviews := []Review{{ID: "r-1"}}
	logs := []SecurityLog{{ID: "l-1", Action: "LOGIN"}}

	require.Empty(t, Normalize(orders, tickets, reviews, logs))
}

func TestNormalizeTicketTitles(t *testing.T) {
	tickets := []SupportTicket{
		{ID: "t-1", Status: "open", Subject: "Refund request", CreatedAt: baseTime},
		{ID: "t-2", Status: "resolved", Subject: "Late delivery", CreatedAt: baseTime},
	}

	items := Normalize(nil, tickets, nil, nil)
	require.Len(t, items, 2)
	require.Equal(t, "Support Ticket Opened", items[0].Title)
	require.Equal(t, "Refund request", items[0].Subtitle)
	require.Equal(t, SeverityWarning, items[0].Severity)
	require.Equal(t, "Support Ticket Updated", items[1].Title)
}

func TestNormalizeReview(t *testing.T) {
	items := Normalize(nil, nil, []Review{{ID: "r-9", CreatedAt: baseTime}}, nil)
	require.Len(t, items, 1)
	require.Equal(t, "Review Added", items[0].Title)
	require.Equal(t, "You rated a product", items[0].Subtitle)
	require.Equal(t, SeverityAccent, items[0].Severity)
	require.True(t, items[0].Actionable)
	require.Equal(t, CategoryReview, items[0].Category)
}

func TestNormalizeSecurityActions(t *testing.T) {
	logs := []SecurityLog{
		{ID: "l-1", Action: "LOGIN", CreatedAt: baseTime},
		{ID: "l-2", Action: "PASSWORD_RESET", CreatedAt: baseTime},
		{ID: "l-3", Action: "", CreatedAt: baseTime},
		{ID: "l-4", Action: "ACCOUNT_CREATED", CreatedAt: baseTime},
	}

	items := Normalize(nil, nil, nil, logs)
	require.Len(t, items, 4)

	require.Equal(t, "Secure Login", items[0].Title)
	require.Equal(t, "lock", items[0].Icon)
	require.Equal(t, "Password Reset", items[1].Title)
	require.Equal(t, "System Log", items[2].Title)
	require.Equal(t, "Account Created", items[3].Title)
	require.Equal(t, "sparkles", items[3].Icon)

	for _, item := range items {
		require.False(t, item.Actionable)
		require.Equal(t, CategorySecurity, item.Category)
	}
}

func TestNormalizeSyntheticSecurityIDIsDeterministic(t *testing.T) {
	log := SecurityLog{Action: "LOGIN", Description: "Login from new device", CreatedAt: baseTime}

	first := Normalize(nil, nil, nil, []SecurityLog{log})
	second := Normalize(nil, nil, nil, []SecurityLog{log})
	require.Len(t, first, 1)
	require.Equal(t, first[0].ID, second[0].ID)
	require.NotEmpty(t, first[0].ID)

	other := log
	other.Description = "Login from known device"
	third := Normalize(nil, nil, nil, []SecurityLog{other})
	require.NotEqual(t, first[0].ID, third[0].ID)
}

func TestNormalizeNamespacesIDsByType(t *testing.T) {
	orders := []Order{{ID: "shared", Status: "placed", CreatedAt: baseTime}}
	tickets := []SupportTicket{{ID: "shared", Status: "open", Subject: "s", CreatedAt: baseTime}}

	items := Normalize(orders, tickets, nil, nil)
	require.Len(t, items, 2)
	require.NotEqual(t, items[0].ID, items[1].ID)
}

func TestHumanizeAction(t *testing.T) {
	require.Equal(t, "Password Reset", humanizeAction("PASSWORD_RESET"))
	require.Equal(t, "Two Factor Enabled", humanizeAction("TWO_FACTOR_ENABLED"))
	require.Equal(t, "Login", humanizeAction("LOGIN"))
}

func TestShortOrderID(t *testing.T) {
	require.Equal(t, "000123", shortOrderID("ord-1000123"))
	require.Equal(t, "AB", shortOrderID("ab"))
}
