package auth

// Known OAuth scopes used by the account activity service.
const (
	ScopeActivityRead = "activity:read"
)
