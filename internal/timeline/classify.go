package timeline

import (
	"fmt"
	"strings"
)

// securityActionRule maps a known identity-provider action to its
// display classification. Unknown actions fall back to a humanized form
// of the raw action key.
type securityActionRule struct {
	Title    string
	Icon     string
	Severity Severity
}

var securityActionRules = map[string]securityActionRule{
	"ACCOUNT_CREATED": {Title: "Account Created", Icon: "sparkles", Severity: SeverityAccent},
	"LOGIN":           {Title: "Secure Login", Icon: "lock", Severity: SeverityMuted},
	"ADMIN_UPDATE":    {Title: "Admin Update", Icon: "shield", Severity: SeverityMuted},
	"PROFILE_UPDATE":  {Title: "Profile Updated", Icon: "shield", Severity: SeverityMuted},
}

func classifyOrderCreated(o Order) Item {
	return Item{
		ID:         itemID(TypeOrderCreated, o.ID),
		Type:       TypeOrderCreated,
		Date:       o.CreatedAt,
		Title:      "Order Placed",
		Subtitle:   fmt.Sprintf("#%s · $%.2f", shortOrderID(o.ID), o.TotalAmount),
		Category:   CategoryOrder,
		Severity:   SeverityNeutral,
		Icon:       "bag",
		Actionable: true,
		Source:     SourceRef{Kind: CategoryOrder, ID: o.ID},
	}
}

func classifyOrderUpdated(o Order) Item {
	item := Item{
		ID:         itemID(TypeOrderUpdated, o.ID),
		Type:       TypeOrderUpdated,
		Date:       o.UpdatedAt,
		Subtitle:   "#" + shortOrderID(o.ID),
		Category:   CategoryOrder,
		Actionable: true,
		Source:     SourceRef{Kind: CategoryOrder, ID: o.ID},
	}

	status := strings.ToLower(strings.TrimSpace(o.Status))
	switch {
	case status == "delivered":
		item.Title = "Delivered"
		item.Severity = SeveritySuccess
		item.Icon = "check-circle"
	case strings.Contains(status, "cancel"):
		item.Title = "Cancelled"
		item.Severity = SeverityDanger
		item.Icon = "x-circle"
	default:
		item.Title = "Order " + o.Status
		item.Severity = SeverityInfo
		item.Icon = "package"
	}
	return item
}

func classifyTicket(t SupportTicket) Item {
	title := "Support Ticket Updated"
	if strings.EqualFold(strings.TrimSpace(t.Status), "open") {
		title = "Support Ticket Opened"
	}
	return Item{
		ID:         itemID(TypeTicket, t.ID),
		Type:       TypeTicket,
		Date:       t.CreatedAt,
		Title:      title,
		Subtitle:   t.Subject,
		Category:   CategoryTicket,
		Severity:   SeverityWarning,
		Icon:       "message-circle",
		Actionable: true,
		Source:     SourceRef{Kind: CategoryTicket, ID: t.ID},
	}
}

func classifyReview(r Review) Item {
	return Item{
		ID:         itemID(TypeReview, r.ID),
		Type:       TypeReview,
		Date:       r.CreatedAt,
		Title:      "Review Added",
		Subtitle:   "You rated a product",
		Category:   CategoryReview,
		Severity:   SeverityAccent,
		Icon:       "star",
		Actionable: true,
		Source:     SourceRef{Kind: CategoryReview, ID: r.ID},
	}
}

// classifySecurityLog never marks items actionable: raw system logs
// have no detail view to navigate to.
func classifySecurityLog(l SecurityLog) Item {
	item := Item{
		Type:     TypeSecurity,
		Date:     l.CreatedAt,
		Subtitle: l.Description,
		Category: CategorySecurity,
		Severity: SeverityMuted,
		Icon:     "file-text",
		Source:   SourceRef{Kind: CategorySecurity, ID: l.ID},
	}

	if l.ID != "" {
		item.ID = itemID(TypeSecurity, l.ID)
	} else {
		item.ID = itemID(TypeSecurity, syntheticLogID(l))
	}

	action := strings.TrimSpace(l.Action)
	if rule, ok := securityActionRules[action]; ok {
		item.Title = rule.Title
		item.Icon = rule.Icon
		item.Severity = rule.Severity
	} else if action != "" {
		item.Title = humanizeAction(action)
	} else {
		item.Title = "System Log"
	}
	return item
}

// humanizeAction turns an action key like PASSWORD_RESET into
// "Password Reset".
func humanizeAction(action string) string {
	words := strings.Split(strings.ToLower(action), "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

// shortOrderID is the display form of an order id: last 6 characters,
// uppercased.
func shortOrderID(id string) string {
	if len(id) > 6 {
		id = id[len(id)-6:]
	}
	return strings.ToUpper(id)
}
