// Package api exposes HTTP handlers for the account activity service.
package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"example.com/account-activity/internal/auth"
	"example.com/account-activity/internal/domain"
	"example.com/account-activity/internal/timeline"
)

// Handler coordinates HTTP requests with the domain service.
type Handler struct {
	service *domain.Service
}

// NewHandler builds a Handler.
func NewHandler(service *domain.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/v1/activity", h.activityFeed)
	mux.HandleFunc("/v1/activity/log", h.activityLog)
	mux.HandleFunc("/v1/activity/recent", h.recentActivity)
	mux.HandleFunc("/healthz", healthz)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) activityFeed(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.authorize(w, r)
	if !ok {
		return
	}

	filter, err := timeline.ParseFilter(r.URL.Query().Get("filter"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	items, err := h.service.Feed(r.Context(), claims.TenantID, claims.Subject, filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, ActivityFeedResponse{Items: toItemViews(items)})
}

func (h *Handler) activityLog(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.authorize(w, r)
	if !ok {
		return
	}

	filter, err := timeline.ParseFilter(r.URL.Query().Get("filter"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	buckets, err := h.service.ActivityLog(r.Context(), claims.TenantID, claims.Subject, filter, time.Now().UTC())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	views := make([]DayBucketView, 0, len(buckets))
	for _, b := range buckets {
		views = append(views, DayBucketView{Label: b.Label, Items: toItemViews(b.Items)})
	}
	writeJSON(w, http.StatusOK, ActivityLogResponse{Buckets: views})
}

func (h *Handler) recentActivity(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.authorize(w, r)
	if !ok {
		return
	}

	limit := timeline.DefaultRecentLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	items, err := h.service.RecentActivity(r.Context(), claims.TenantID, claims.Subject, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, RecentActivityResponse{Items: toItemViews(items)})
}

// authorize enforces the GET method, bearer claims, and the read scope.
func (h *Handler) authorize(w http.ResponseWriter, r *http.Request) (*auth.Claims, bool) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return nil, false
	}

	claims, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
		return nil, false
	}
	if !claims.HasScope(auth.ScopeActivityRead) {
		writeError(w, http.StatusForbidden, "forbidden", "scope activity:read required")
		return nil, false
	}
	return claims, true
}

// ActivityItemView exposes one feed entry to API clients.
type ActivityItemView struct {
	ID         string        `json:"id"`
	Type       string        `json:"type"`
	Date       time.Time     `json:"date"`
	Title      string        `json:"title"`
	Subtitle   string        `json:"subtitle,omitempty"`
	Category   string        `json:"category"`
	Severity   string        `json:"severity"`
	Icon       string        `json:"icon"`
	Actionable bool          `json:"actionable"`
	Source     SourceRefView `json:"source"`
}

// SourceRefView identifies the record a feed entry was derived from.
type SourceRefView struct {
	Kind string `json:"kind"`
	ID   string `json:"id,omitempty"`
}

// DayBucketView is one labeled day group of the activity log.
type DayBucketView struct {
	Label string             `json:"label"`
	Items []ActivityItemView `json:"items"`
}

// ActivityFeedResponse packages the flat sorted feed.
type ActivityFeedResponse struct {
	Items []ActivityItemView `json:"items"`
}

// ActivityLogResponse packages the bucketed activity log.
type ActivityLogResponse struct {
	Buckets []DayBucketView `json:"buckets"`
}

// RecentActivityResponse packages the dashboard projection.
type RecentActivityResponse struct {
	Items []ActivityItemView `json:"items"`
}

func toItemViews(items []timeline.Item) []ActivityItemView {
	views := make([]ActivityItemView, 0, len(items))
	for _, item := range items {
		views = append(views, ActivityItemView{
			ID:         item.ID,
			Type:       string(item.Type),
			Date:       item.Date,
			Title:      item.Title,
			Subtitle:   item.Subtitle,
			Category:   string(item.Category),
			Severity:   string(item.Severity),
			Icon:       item.Icon,
			Actionable: item.Actionable,
			Source:     SourceRefView{Kind: string(item.Source.Kind), ID: item.Source.ID},
		})
	}
	return views
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	payload := map[string]string{
		"type":   code,
		"detail": detail,
	}
	writeJSON(w, status, payload)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
