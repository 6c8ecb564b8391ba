package platform

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type sessionKey struct{}

// WithSessionCookies returns a context carrying the admin's platform cookies.
// Every call made with that context forwards them.
func WithSessionCookies(ctx context.Context, cookies []*http.Cookie) context.Context {
	return context.WithValue(ctx, sessionKey{}, cookies)
}

// SessionCookies returns the cookies stored by WithSessionCookies.
func SessionCookies(ctx context.Context) []*http.Cookie {
	cs, _ := ctx.Value(sessionKey{}).([]*http.Cookie)
	return cs
}

// loggingTransport logs each outbound platform call.
type loggingTransport struct {
	inner http.RoundTripper
	log   *zap.Logger
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.inner.RoundTrip(req)
	fields := []zap.Field{
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.String("query", req.URL.RawQuery),
		zap.String("request_id", req.Header.Get("X-Request-Id")),
		zap.Duration("duration", time.Since(start)),
	}
	if err != nil {
		t.log.Warn("platform request failed", append(fields, zap.Error(err))...)
		return nil, err
	}
	fields = append(fields, zap.Int("status", resp.StatusCode))
	if resp.StatusCode >= 500 {
		t.log.Warn("platform request", fields...)
	} else {
		t.log.Debug("platform request", fields...)
	}
	return resp, nil
}
