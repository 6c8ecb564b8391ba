// Package platform is the HTTP client for the FlatFacts platform API.
//
// The admin dashboard owns no platform data. Every list, detail and mutation
// is a call to one of the /api/... endpoints served by the platform, made on
// behalf of the signed-in admin by forwarding their session cookies.
package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxBodySize caps how much of a response body is read.
const maxBodySize = 4 << 20

// Config holds the settings for a platform Client.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client calls the platform API.
type Client struct {
	http    *http.Client
	baseURL *url.URL
}

// New builds a Client whose transport logs every call to logger.
// A zero Timeout means 10 seconds.
func New(cfg Config, logger *zap.Logger) (*Client, error) {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	hc := &http.Client{
		Timeout:   timeout,
		Transport: &loggingTransport{inner: http.DefaultTransport, log: logger},
	}
	return NewWithHTTPClient(cfg.BaseURL, hc)
}

// NewWithHTTPClient builds a Client around an existing http.Client.
func NewWithHTTPClient(baseURL string, hc *http.Client) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("platform: parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("platform: base url %q must be http or https", baseURL)
	}
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{http: hc, baseURL: u}, nil
}

// BaseURL returns the platform base URL.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// newRequest builds a request for relPath, which must already be escaped
// (ids go through escape). Query parameters must be passed in query, never
// embedded in relPath.
func (c *Client) newRequest(ctx context.Context, method, relPath string, query url.Values, body any) (*http.Request, error) {
	if strings.Contains(relPath, "?") {
		return nil, fmt.Errorf("platform: relPath must not contain a query string: %s", relPath)
	}
	if err := checkSegments(relPath); err != nil {
		return nil, err
	}

	u := *c.baseURL
	u.RawPath = strings.TrimRight(c.baseURL.EscapedPath(), "/") + relPath
	p, err := url.PathUnescape(u.RawPath)
	if err != nil {
		return nil, fmt.Errorf("platform: bad path %q: %w", relPath, err)
	}
	u.Path = p
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var rdr io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("platform: encode %s body: %w", relPath, err)
		}
		rdr = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), rdr)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	reqID := middleware.GetReqID(ctx)
	if reqID == "" {
		reqID = uuid.NewString()
	}
	req.Header.Set("X-Request-Id", reqID)

	for _, ck := range SessionCookies(ctx) {
		req.AddCookie(&http.Cookie{Name: ck.Name, Value: ck.Value})
	}
	return req, nil
}

// do sends req and decodes a 2xx JSON body into out (when out is non-nil).
// Any other status is returned as *Error.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrUnreachable, req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("%w: read %s: %w", ErrUnreachable, req.URL.Path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var eb struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		_ = json.Unmarshal(body, &eb)
		msg := eb.Error
		if msg == "" {
			msg = eb.Message
		}
		return &Error{Status: resp.StatusCode, Method: req.Method, Path: req.URL.Path, Message: msg}
	}

	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("platform: decode %s: %w", req.URL.Path, err)
	}
	return nil
}

// get is shorthand for a GET decoded into out.
func (c *Client) get(ctx context.Context, relPath string, query url.Values, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, relPath, query, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

// send issues a mutating call and returns the platform's "message", if any.
func (c *Client) send(ctx context.Context, method, relPath string, body any) (string, error) {
	req, err := c.newRequest(ctx, method, relPath, nil, body)
	if err != nil {
		return "", err
	}
	var res struct {
		Message string `json:"message"`
	}
	if err := c.do(req, &res); err != nil {
		return "", err
	}
	return res.Message, nil
}

// Ping checks that the platform answers HTTP at all. Any response,
// including 4xx, counts as reachable.
func (c *Client) Ping(ctx context.Context) error {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/auth/session", nil, nil)
	if err != nil {
		return err
	}
	err = c.do(req, nil)
	var pe *Error
	if err == nil || errors.As(err, &pe) && pe.Status < 500 {
		return nil
	}
	return err
}

// escape encodes one id as a single path segment. Ids that cannot be a
// segment ("", ".", "..") are left for checkSegments to reject.
func escape(id string) string {
	return url.PathEscape(id)
}

// checkSegments rejects empty and dot segments, which would otherwise send
// the call to a different endpoint.
func checkSegments(relPath string) error {
	if !strings.HasPrefix(relPath, "/") {
		return fmt.Errorf("%w: %q", ErrInvalidID, relPath)
	}
	for _, seg := range strings.Split(relPath[1:], "/") {
		if seg == "" || seg == "." || seg == ".." {
			return fmt.Errorf("%w: %q", ErrInvalidID, relPath)
		}
	}
	return nil
}
