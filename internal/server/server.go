// Package server publishes the birthday feed and the patient list over HTTP.
package server

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/tartampluch/priroda-razuma/internal/config"
	"github.com/tartampluch/priroda-razuma/internal/engine"
)

// cacheItem stores the rendered calendar and its metadata for HTTP caching.
type cacheItem struct {
	data         []byte
	etag         string
	lastModified string // RFC1123 format required by HTTP headers
	entries      []engine.PatientEntry
}

// FeedServer serves the latest sync result. Reads are lock-free: a sync
// swaps the whole cacheItem at once.
type FeedServer struct {
	cache    atomic.Pointer[cacheItem]
	Port     string
	PageSize int

	metrics *Metrics
}

// NewFeedServer creates a server whose metrics are registered on reg.
// A nil reg gets a private registry.
func NewFeedServer(port string, reg *prometheus.Registry) *FeedServer {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	return &FeedServer{
		Port:     port,
		PageSize: config.DefaultPageSize,
		metrics:  NewMetrics(reg),
	}
}

// Metrics returns the counters of this server.
func (s *FeedServer) Metrics() *Metrics { return s.metrics }

// Handler routes the feed, the patient API and the metrics endpoint.
func (s *FeedServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle(config.RouteRoot, s.metrics.instrument(config.RouteFeed, http.HandlerFunc(s.handleCalendarRequest)))
	mux.Handle(config.RouteAPIPatients, s.metrics.instrument(config.RouteAPIPatients, http.HandlerFunc(s.handlePatients)))
	mux.Handle(config.RouteMetrics, s.metrics.handler())
	return mux
}

// Start listens on localhost and blocks until ctx is cancelled.
func (s *FeedServer) Start(ctx context.Context) error {
	if err := config.ValidatePort(s.Port); err != nil {
		return err
	}
	ln, err := net.Listen("tcp", config.LocalhostBindAddr+config.AddrSeparator+s.Port)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrServerStartup, err)
	}
	return s.Serve(ctx, ln)
}

// Serve runs the server on ln until ctx is cancelled, then shuts down gracefully.
func (s *FeedServer) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
		IdleTimeout:  config.ServerIdleTimeout,
	}

	serverError := make(chan error, config.ChannelBufferSize)
	go func() {
		slog.Info(config.MsgServerListen,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyPort, ln.Addr().String(),
		)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info(config.MsgServerStop, config.LogKeyComponent, config.CompServer)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%s: %w", config.ErrServerShutdown, err)
		}
		return nil

	case err := <-serverError:
		return fmt.Errorf("%s: %w", config.ErrServerStartup, err)
	}
}

// Update atomically replaces the served feed and patient list.
func (s *FeedServer) Update(data []byte, entries []engine.PatientEntry) {
	hash := sha256.Sum256(data)
	etag := fmt.Sprintf(config.FormatETag, hex.EncodeToString(hash[:]))

	s.cache.Store(&cacheItem{
		data:         data,
		etag:         etag,
		lastModified: time.Now().UTC().Format(http.TimeFormat),
		entries:      entries,
	})

	slog.Debug(config.MsgCacheUpdated,
		config.LogKeyComponent, config.CompServer,
		config.LogKeySizeBytes, len(data),
		config.LogKeyCount, len(entries),
		config.LogKeyETag, etag,
	)
}

// Entries returns the patient list of the last sync, nil before the first.
func (s *FeedServer) Entries() []engine.PatientEntry {
	if item := s.cache.Load(); item != nil {
		return item.entries
	}
	return nil
}

func allowRead(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return true
	}
	w.Header().Set(config.HeaderAllow, config.AllowedMethods)
	http.Error(w, config.HTTPMsgMethodNotAll, http.StatusMethodNotAllowed)
	return false
}

func initializing(w http.ResponseWriter) {
	w.Header().Set(config.HeaderRetryAfter, config.RetryAfterSeconds)
	http.Error(w, config.HTTPMsgInitializing, http.StatusServiceUnavailable)
}

// handleCalendarRequest serves the ICS content with HTTP caching support.
func (s *FeedServer) handleCalendarRequest(w http.ResponseWriter, r *http.Request) {
	if !allowRead(w, r) {
		return
	}
	item := s.cache.Load()
	if item == nil {
		initializing(w)
		return
	}

	w.Header().Set(config.HeaderContentType, config.MimeTextCalendar)
	w.Header().Set(config.HeaderXContentType, config.MimeNoSniff)
	w.Header().Set(config.HeaderCacheControl, config.CacheControlPrivate)
	w.Header().Set(config.HeaderETag, item.etag)
	w.Header().Set(config.HeaderLastModified, item.lastModified)

	if notModified(r, item) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	if r.Method == http.MethodGet {
		if _, err := io.Copy(w, bytes.NewReader(item.data)); err != nil {
			slog.Error(config.ErrWriteResp,
				config.LogKeyComponent, config.CompServer,
				config.LogKeyError, err,
			)
		}
	}
}

// notModified evaluates If-None-Match first, then If-Modified-Since.
func notModified(r *http.Request, item *cacheItem) bool {
	if match := r.Header.Get(config.HeaderIfNoneMatch); match != "" {
		return match == item.etag
	}
	since := r.Header.Get(config.HeaderIfModifiedSince)
	if since == "" {
		return false
	}
	clientTime, err := time.Parse(http.TimeFormat, since)
	if err != nil {
		return false
	}
	serverTime, err := time.Parse(http.TimeFormat, item.lastModified)
	if err != nil {
		return false
	}
	return !serverTime.After(clientTime)
}
