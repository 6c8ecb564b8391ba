// internal/app/system/auditlog/logger.go
package auditlog

import (
	"context"
	"net/http"
	"strings"

	"github.com/flatfacts/admin/internal/app/platform"
	"github.com/flatfacts/admin/internal/app/store/audit"
	"github.com/flatfacts/admin/internal/app/system/auth"
	"go.uber.org/zap"
)

// Destinations for a category.
const (
	ModeAll = "all" // MongoDB + zap
	ModeDB  = "db"  // MongoDB only
	ModeLog = "log" // zap only
	ModeOff = "off" // disabled
)

// ValidMode reports whether m is a known destination.
func ValidMode(m string) bool {
	switch m {
	case ModeAll, ModeDB, ModeLog, ModeOff:
		return true
	}
	return false
}

// Config holds audit logging configuration.
type Config struct {
	// Admin controls logging for moderation and user-management actions.
	Admin string
	// Account controls logging for the admin's own profile and password.
	// Empty means the same as Admin.
	Account string
}

// Logger records dashboard actions to MongoDB (via audit.Store) and
// structured logs (via zap). The store may be nil when no database is
// configured; database writes are then skipped.
type Logger struct {
	store  *audit.Store
	zapLog *zap.Logger
	config Config
}

// New creates a new audit Logger.
func New(store *audit.Store, zapLog *zap.Logger, config Config) *Logger {
	if zapLog == nil {
		zapLog = zap.NewNop()
	}
	return &Logger{
		store:  store,
		zapLog: zapLog,
		config: config,
	}
}

// getClientIP extracts the client IP from the request.
func getClientIP(r *http.Request) string {
	// Check X-Forwarded-For header first (for reverse proxies)
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}

// logToZap logs the event to zap with consistent structure.
func (l *Logger) logToZap(event audit.Event) {
	fields := []zap.Field{
		zap.Bool("audit", true),
		zap.String("category", event.Category),
		zap.String("event_type", event.EventType),
		zap.Bool("success", event.Success),
		zap.String("ip", event.IP),
	}
	if event.ActorEmail != "" {
		fields = append(fields, zap.String("actor", event.ActorEmail))
	}
	if event.TargetID != "" {
		fields = append(fields,
			zap.String("target_type", event.TargetType),
			zap.String("target_id", event.TargetID))
	}
	if event.FailureReason != "" {
		fields = append(fields, zap.String("failure_reason", event.FailureReason))
	}
	for k, v := range event.Details {
		fields = append(fields, zap.String("detail_"+k, v))
	}

	if event.Success {
		l.zapLog.Info("audit event", fields...)
	} else {
		l.zapLog.Warn("audit event", fields...)
	}
}

func (l *Logger) modeFor(category string) string {
	mode := l.config.Admin
	if category == audit.CategoryAccount && l.config.Account != "" {
		mode = l.config.Account
	}
	if mode == "" {
		return ModeAll
	}
	return mode
}

// Log records an audit event based on configuration.
// If the logger is nil, this is a no-op (allows tests to use nil audit logger).
// Storage errors are logged and never returned; an action is not undone
// because its record could not be written.
func (l *Logger) Log(ctx context.Context, event audit.Event) {
	if l == nil {
		return
	}

	mode := l.modeFor(event.Category)
	if mode == ModeOff {
		return
	}
	if mode == ModeAll || mode == ModeLog {
		l.logToZap(event)
	}
	if (mode == ModeAll || mode == ModeDB) && l.store != nil {
		if err := l.store.Log(ctx, event); err != nil {
			l.zapLog.Error("failed to store audit event",
				zap.Error(err),
				zap.String("event_type", event.EventType),
			)
		}
	}
}

// Record builds an event for the admin on r acting on one platform entity.
// A non-nil actionErr marks the event failed with the user-facing message.
func (l *Logger) Record(ctx context.Context, r *http.Request, category, eventType, targetType, targetID string, actionErr error, details map[string]string) {
	if l == nil {
		return
	}
	ev := audit.Event{
		Category:   category,
		EventType:  eventType,
		TargetType: targetType,
		TargetID:   targetID,
		IP:         getClientIP(r),
		UserAgent:  r.UserAgent(),
		Success:    actionErr == nil,
		Details:    details,
	}
	if a, ok := auth.CurrentAdmin(r); ok {
		ev.ActorID = a.ID
		ev.ActorEmail = a.Email
	}
	if actionErr != nil {
		ev.FailureReason = platform.Message(actionErr, actionErr.Error())
	}
	l.Log(ctx, ev)
}

func (l *Logger) admin(ctx context.Context, r *http.Request, eventType, targetType, targetID string, err error, details map[string]string) {
	l.Record(ctx, r, audit.CategoryAdmin, eventType, targetType, targetID, err, details)
}

// --- User management ---

// UserUpdated logs an edit of a platform user.
func (l *Logger) UserUpdated(ctx context.Context, r *http.Request, userID, fieldsChanged string, err error) {
	l.admin(ctx, r, audit.EventUserUpdated, audit.TargetUser, userID, err, map[string]string{
		"fields_changed": fieldsChanged,
	})
}

// UserDeleted logs a user deletion.
func (l *Logger) UserDeleted(ctx context.Context, r *http.Request, userID string, err error) {
	l.admin(ctx, r, audit.EventUserDeleted, audit.TargetUser, userID, err, nil)
}

// UserBanned logs a ban with its reason.
func (l *Logger) UserBanned(ctx context.Context, r *http.Request, userID, reason string, err error) {
	l.admin(ctx, r, audit.EventUserBanned, audit.TargetUser, userID, err, map[string]string{
		"reason": reason,
	})
}

// UserUnbanned logs a lifted ban.
func (l *Logger) UserUnbanned(ctx context.Context, r *http.Request, userID string, err error) {
	l.admin(ctx, r, audit.EventUserUnbanned, audit.TargetUser, userID, err, nil)
}

// --- Content moderation ---

// ReviewDeleted logs a review deletion.
func (l *Logger) ReviewDeleted(ctx context.Context, r *http.Request, reviewID string, err error) {
	l.admin(ctx, r, audit.EventReviewDeleted, audit.TargetReview, reviewID, err, nil)
}

// CommentDeleted logs a comment deletion.
func (l *Logger) CommentDeleted(ctx context.Context, r *http.Request, commentID string, err error) {
	l.admin(ctx, r, audit.EventCommentDeleted, audit.TargetComment, commentID, err, nil)
}

// ReportDismissed logs a dismissed report.
func (l *Logger) ReportDismissed(ctx context.Context, r *http.Request, reportID string, err error) {
	l.admin(ctx, r, audit.EventReportDismissed, audit.TargetReport, reportID, err, nil)
}

// --- Communication ---

// SupportReplied logs a reply to a support message.
func (l *Logger) SupportReplied(ctx context.Context, r *http.Request, messageID string, err error) {
	l.admin(ctx, r, audit.EventSupportReplied, audit.TargetSupport, messageID, err, nil)
}

// NotificationSent logs a broadcast. The audience target (an email or a tag)
// is recorded, never the message body.
func (l *Logger) NotificationSent(ctx context.Context, r *http.Request, n platform.Notification, err error) {
	details := map[string]string{
		"audience": n.Audience,
		"subject":  n.Subject,
	}
	switch n.Audience {
	case platform.AudienceSingleEmail:
		details["email"] = n.Email
	case platform.AudienceByTag:
		details["tag"] = n.Tag
	}
	l.admin(ctx, r, audit.EventNotificationSent, audit.TargetNotification, "", err, details)
}

// --- Own account ---

// ProfileUpdated logs a change to the admin's own profile.
func (l *Logger) ProfileUpdated(ctx context.Context, r *http.Request, userID string, err error) {
	l.Record(ctx, r, audit.CategoryAccount, audit.EventProfileUpdated, audit.TargetUser, userID, err, nil)
}

// PasswordChanged logs a change of the admin's own password.
func (l *Logger) PasswordChanged(ctx context.Context, r *http.Request, userID string, err error) {
	l.Record(ctx, r, audit.CategoryAccount, audit.EventPasswordChanged, audit.TargetUser, userID, err, nil)
}
