package platform

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Users

// ListUsers is GET /api/admin/users?q=&page=&limit=.
func (c *Client) ListUsers(ctx context.Context, q url.Values) (*UserPage, error) {
	var out UserPage
	if err := c.get(ctx, "/api/admin/users", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetUser is GET /api/admin/users/{id}.
func (c *Client) GetUser(ctx context.Context, id string) (*UserDetail, error) {
	var out UserDetail
	if err := c.get(ctx, "/api/admin/users/"+escape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateUser is PATCH /api/admin/users/{id}.
func (c *Client) UpdateUser(ctx context.Context, id string, upd UserUpdate) (string, error) {
	return c.send(ctx, http.MethodPatch, "/api/admin/users/"+escape(id), upd)
}

// DeleteUser is DELETE /api/admin/users/{id}.
func (c *Client) DeleteUser(ctx context.Context, id string) (string, error) {
	return c.send(ctx, http.MethodDelete, "/api/admin/users/"+escape(id), nil)
}

// BanUser is POST /api/admin/users/{id}/ban with the admin's reason.
func (c *Client) BanUser(ctx context.Context, id, reason string) (string, error) {
	body := struct {
		Reason string `json:"reason"`
	}{Reason: reason}
	return c.send(ctx, http.MethodPost, "/api/admin/users/"+escape(id)+"/ban", body)
}

// UnbanUser is DELETE /api/admin/users/{id}/ban.
func (c *Client) UnbanUser(ctx context.Context, id string) (string, error) {
	return c.send(ctx, http.MethodDelete, "/api/admin/users/"+escape(id)+"/ban", nil)
}

// Reviews

// ListReviews is GET /api/admin/reviews?q=&tag=&location=&rating=&page=&limit=.
func (c *Client) ListReviews(ctx context.Context, q url.Values) (*ReviewPage, error) {
	var out ReviewPage
	if err := c.get(ctx, "/api/admin/reviews", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetReview is GET /api/admin/reviews/{id}.
func (c *Client) GetReview(ctx context.Context, id string) (*ReviewDetail, error) {
	var out ReviewDetail
	if err := c.get(ctx, "/api/admin/reviews/"+escape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteReview is DELETE /api/reviews/{id}.
func (c *Client) DeleteReview(ctx context.Context, id string) (string, error) {
	return c.send(ctx, http.MethodDelete, "/api/reviews/"+escape(id), nil)
}

// Comments

// ListComments is GET /api/admin/comments?q=&userId=&reviewId=&page=&limit=.
func (c *Client) ListComments(ctx context.Context, q url.Values) (*CommentPage, error) {
	var out CommentPage
	if err := c.get(ctx, "/api/admin/comments", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteComment is DELETE /api/comments/{id}.
func (c *Client) DeleteComment(ctx context.Context, id string) (string, error) {
	return c.send(ctx, http.MethodDelete, "/api/comments/"+escape(id), nil)
}

// Reports

// ListReports is GET /api/admin/reports?page=&limit=.
func (c *Client) ListReports(ctx context.Context, q url.Values) (*ReportPage, error) {
	var out ReportPage
	if err := c.get(ctx, "/api/admin/reports", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DismissReport is PATCH /api/admin/reports/{id}/dismiss.
func (c *Client) DismissReport(ctx context.Context, id string) (string, error) {
	return c.send(ctx, http.MethodPatch, "/api/admin/reports/"+escape(id)+"/dismiss", nil)
}

// Support

// ListSupportMessages is GET /api/admin/support?page=&limit=.
func (c *Client) ListSupportMessages(ctx context.Context, q url.Values) (*SupportPage, error) {
	var out SupportPage
	if err := c.get(ctx, "/api/admin/support", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReplySupportMessage is POST /api/admin/support/{id}/reply.
func (c *Client) ReplySupportMessage(ctx context.Context, id, reply string) (string, error) {
	body := struct {
		ReplyContent string `json:"replyContent"`
	}{ReplyContent: reply}
	return c.send(ctx, http.MethodPost, "/api/admin/support/"+escape(id)+"/reply", body)
}

// SendNotification is POST /api/admin/notifications/send.
func (c *Client) SendNotification(ctx context.Context, n Notification) (string, error) {
	return c.send(ctx, http.MethodPost, "/api/admin/notifications/send", n)
}

// Metrics

// Dashboard is GET /api/admin/dashboard.
func (c *Client) Dashboard(ctx context.Context) (*DashboardMetrics, error) {
	var out DashboardMetrics
	if err := c.get(ctx, "/api/admin/dashboard", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Engagement is GET /api/admin/analytics/engagement?period=.
func (c *Client) Engagement(ctx context.Context, period string) (*EngagementData, error) {
	var out EngagementData
	if err := c.get(ctx, "/api/admin/analytics/engagement", url.Values{"period": {period}}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Tags is GET /api/admin/analytics/tags?period=&limit=.
func (c *Client) Tags(ctx context.Context, period string, limit int) (*TagData, error) {
	q := url.Values{"period": {period}, "limit": {strconv.Itoa(limit)}}
	var out TagData
	if err := c.get(ctx, "/api/admin/analytics/tags", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Locations is GET /api/admin/analytics/locations?period=&limit=.
func (c *Client) Locations(ctx context.Context, period string, limit int) (*LocationData, error) {
	q := url.Values{"period": {period}, "limit": {strconv.Itoa(limit)}}
	var out LocationData
	if err := c.get(ctx, "/api/admin/analytics/locations", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UserActivity is GET /api/admin/analytics/user-activity?period=.
func (c *Client) UserActivity(ctx context.Context, period string) (*UserActivityData, error) {
	var out UserActivityData
	if err := c.get(ctx, "/api/admin/analytics/user-activity", url.Values{"period": {period}}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Account

// Session is GET /api/auth/session for the forwarded cookies.
func (c *Client) Session(ctx context.Context) (*Session, error) {
	var out Session
	if err := c.get(ctx, "/api/auth/session", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ChangePassword is POST /api/settings/change-password.
func (c *Client) ChangePassword(ctx context.Context, current, next string) (string, error) {
	body := struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}{CurrentPassword: current, NewPassword: next}
	return c.send(ctx, http.MethodPost, "/api/settings/change-password", body)
}
