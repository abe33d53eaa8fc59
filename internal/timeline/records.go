package timeline

import "time"

// Order is the storefront order record as fetched from Postgres.
type Order struct {
	ID          string
	TenantID    string
	UserID      string
	Status      string
	TotalAmount float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SupportTicket is a customer support ticket record.
type SupportTicket struct {
	ID        string
	TenantID  string
	UserID    string
	Status    string
	Subject   string
	CreatedAt time.Time
}

// Review is a product review record.
type Review struct {
	ID        string
	TenantID  string
	UserID    string
	ProductID string
	Rating    int
	CreatedAt time.Time
}

// SecurityLog is an account security entry recorded by the identity
// provider. ID may be empty for legacy rows ingested before event ids
// were mandatory.
type SecurityLog struct {
	ID          string
	TenantID    string
	UserID      string
	Action      string
	Description string
	CreatedAt   time.Time
}
