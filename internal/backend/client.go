// Package backend talks to the records REST API.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tartampluch/priroda-razuma/internal/calendar"
	"github.com/tartampluch/priroda-razuma/internal/config"
	"github.com/tartampluch/priroda-razuma/internal/records"
	"github.com/tartampluch/priroda-razuma/internal/session"
)

// StatusError is a non-2xx answer from the backend.
type StatusError struct {
	Method string
	Path   string
	Code   int
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %s %s: %d", config.ErrUnexpectedStatus, e.Method, e.Path, e.Code)
	}
	return fmt.Sprintf("%s: %s %s: %d: %s", config.ErrUnexpectedStatus, e.Method, e.Path, e.Code, e.Detail)
}

// IsUnauthorized reports whether err is a 401 from the backend.
func IsUnauthorized(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == http.StatusUnauthorized
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == http.StatusNotFound
}

// Client issues one request at a time on behalf of a Session.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Session *session.Session
	Store   *session.TokenStore // optional; receives refresh tokens
	Clock   calendar.Clock

	// NewRequestID stamps X-Request-ID on every call.
	NewRequestID func() string

	mu sync.Mutex
}

// NewClient validates baseURL and returns a client bound to s.
func NewClient(baseURL string, s *session.Session) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrInvalidURL, err)
	}
	if u.Scheme != config.SchemeHTTP && u.Scheme != config.SchemeHTTPS {
		return nil, fmt.Errorf("%s: %s", config.ErrProtocol, u.Scheme)
	}
	if s == nil {
		s = session.New()
	}
	return &Client{
		BaseURL:      strings.TrimSuffix(baseURL, "/"),
		HTTP:         &http.Client{Timeout: config.HTTPTimeout},
		Session:      s,
		Clock:        calendar.RealClock{},
		NewRequestID: func() string { return uuid.New().String() },
	}, nil
}

// request describes one backend call.
type request struct {
	method string
	path   string
	body   io.Reader
	ctype  string
	auth   bool
}

func jsonRequest(method, path string, payload any) (request, error) {
	r := request{method: method, path: path, auth: true}
	if payload == nil {
		return r, nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return r, fmt.Errorf("%s: %w", config.ErrRequestEncode, err)
	}
	r.body = bytes.NewReader(raw)
	r.ctype = config.MimeJSON
	return r, nil
}

func formRequest(path string, form url.Values) request {
	return request{
		method: http.MethodPost,
		path:   path,
		body:   strings.NewReader(form.Encode()),
		ctype:  config.MimeForm,
	}
}

// call sends r, refreshing the session first when the access token is about
// to expire, and once more after a 401. The response is decoded into out
// unless out is nil.
func (c *Client) call(ctx context.Context, build func() (request, error), out any) error {
	r, err := build()
	if err != nil {
		return err
	}
	if !r.auth {
		return c.send(ctx, r, out)
	}

	if !c.Session.Authenticated() {
		return session.ErrNotAuthenticated
	}
	if c.Session.Expired(c.Clock.Now(), config.TokenExpirySkew) && c.Session.RefreshToken() != "" {
		if err := c.RefreshSession(ctx); err != nil {
			return err
		}
	}

	err = c.send(ctx, r, out)
	if !IsUnauthorized(err) || c.Session.RefreshToken() == "" {
		return err
	}
	if rerr := c.RefreshSession(ctx); rerr != nil {
		return err
	}
	// Bodies are single-use readers, so the request is rebuilt.
	if r, err = build(); err != nil {
		return err
	}
	return c.send(ctx, r, out)
}

func (c *Client) send(ctx context.Context, r request, out any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	start := time.Now()
	requestID := c.NewRequestID()
	log := slog.With(
		config.LogKeyComponent, config.CompBackend,
		config.LogKeyMethod, r.method,
		config.LogKeyURL, r.path,
		config.LogKeyRequestID, requestID,
	)

	req, err := http.NewRequestWithContext(ctx, r.method, c.BaseURL+r.path, r.body)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrRequestBuild, err)
	}
	req.Header.Set(config.HeaderUserAgent, config.UserAgent)
	req.Header.Set(config.HeaderAccept, config.MimeJSON)
	req.Header.Set(config.HeaderRequestID, requestID)
	if r.ctype != "" {
		req.Header.Set(config.HeaderContentType, r.ctype)
	}
	if r.auth {
		req.Header.Set(config.HeaderAuthorization, config.BearerPrefix+c.Session.AccessToken())
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%s: %w", config.ErrRequestSend, err)
	}
	defer func() { _ = resp.Body.Close() }()

	log.Debug(config.MsgRequestDone,
		config.LogKeyStatus, resp.StatusCode,
		config.LogKeyDuration, time.Since(start).Milliseconds(),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(r, resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	body := io.LimitReader(resp.Body, config.MaxHTTPResponseSize)
	if err := json.NewDecoder(body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%s: %w", config.ErrResponseDecode, err)
	}
	return nil
}

// statusError reads the FastAPI {"detail": ...} envelope when present.
func statusError(r request, resp *http.Response) error {
	se := &StatusError{Method: r.method, Path: r.path, Code: resp.StatusCode}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, config.MaxErrorBodySize))
	var env records.ErrorResponse
	if json.Unmarshal(raw, &env) == nil && env.Detail != "" {
		se.Detail = env.Detail
	} else {
		se.Detail = strings.TrimSpace(string(raw))
	}
	return se
}
