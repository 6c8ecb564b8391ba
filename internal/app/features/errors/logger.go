// internal/app/features/errors/logger.go
package errors

import (
	"net/http"

	"github.com/flatfacts/admin/internal/app/platform"
	"go.uber.org/zap"
)

// ErrorLogger logs a failure and answers the browser with a friendly page.
// Handlers hold one as ErrLog.
type ErrorLogger struct {
	Log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ErrorLogger{Log: logger}
}

func (e *ErrorLogger) fields(r *http.Request, err error) []zap.Field {
	f := []zap.Field{
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	}
	if err != nil {
		f = append(f, zap.Error(err))
		if s := platform.StatusOf(err); s != 0 {
			f = append(f, zap.Int("platform_status", s))
		}
	}
	return f
}

// LogServerError logs at error level and renders a 500 page with userMsg.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg, backURL string) {
	e.Log.Error(msg, e.fields(r, err)...)
	render(w, r, http.StatusInternalServerError, "Something went wrong", "Something went wrong", userMsg, backURL)
}

// LogUpstreamError is LogServerError for a failed platform call. The
// platform's own message is shown when it sent one.
func (e *ErrorLogger) LogUpstreamError(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg, backURL string) {
	e.Log.Warn(msg, e.fields(r, err)...)
	status := http.StatusBadGateway
	if platform.IsNotFound(err) {
		status = http.StatusNotFound
	}
	render(w, r, status, "Platform error", "The platform could not complete the request", platform.Message(err, userMsg), backURL)
}

// LogBadRequest logs at info level and renders a 400 page.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg, backURL string) {
	e.Log.Info(msg, e.fields(r, err)...)
	render(w, r, http.StatusBadRequest, "Bad request", "Bad request", userMsg, backURL)
}

// LogForbidden logs at warn level and renders a 403 page.
func (e *ErrorLogger) LogForbidden(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg, backURL string) {
	e.Log.Warn(msg, e.fields(r, err)...)
	RenderForbidden(w, r, userMsg, backURL)
}

// HTMXLogServerError is LogServerError for HTMX fragments: a plain
// message the client swaps into the target.
func (e *ErrorLogger) HTMXLogServerError(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg string) {
	e.Log.Error(msg, e.fields(r, err)...)
	http.Error(w, userMsg, http.StatusInternalServerError)
}

// HTMXLogBadRequest is LogBadRequest for HTMX fragments.
func (e *ErrorLogger) HTMXLogBadRequest(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg string) {
	e.Log.Info(msg, e.fields(r, err)...)
	http.Error(w, userMsg, http.StatusBadRequest)
}
