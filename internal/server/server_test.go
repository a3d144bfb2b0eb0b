package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/priroda-razuma/internal/calendar"
	"github.com/tartampluch/priroda-razuma/internal/config"
	"github.com/tartampluch/priroda-razuma/internal/engine"
	"github.com/tartampluch/priroda-razuma/internal/pager"
	"github.com/tartampluch/priroda-razuma/internal/records"
)

func get(t *testing.T, h http.Handler, target string, header ...string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	resp := w.Result()
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func entries(fios ...string) []engine.PatientEntry {
	out := make([]engine.PatientEntry, len(fios))
	for i, fio := range fios {
		out[i] = engine.PatientEntry{ID: i + 1, FIO: fio, BirthDate: calendar.Date{Year: 2015, Month: 1, Day: i%28 + 1}}
	}
	return out
}

// -----------------------------------------------------------------------------
// Feed
// -----------------------------------------------------------------------------

func TestFeed_ServingContent(t *testing.T) {
	srv := NewFeedServer("0", nil)
	expectedICS := []byte("BEGIN:VCALENDAR\r\nVERSION:2.0\r\nEND:VCALENDAR")
	srv.Update(expectedICS, nil)

	resp := get(t, srv.Handler(), "/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, config.MimeTextCalendar, resp.Header.Get(config.HeaderContentType))
	assert.Equal(t, config.MimeNoSniff, resp.Header.Get(config.HeaderXContentType))
	assert.Contains(t, resp.Header.Get(config.HeaderCacheControl), "no-cache")
	assert.NotEmpty(t, resp.Header.Get(config.HeaderETag))
	assert.NotEmpty(t, resp.Header.Get(config.HeaderLastModified))

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, expectedICS, body)
}

func TestFeed_Caching(t *testing.T) {
	srv := NewFeedServer("0", nil)
	srv.Update([]byte("DATA_VERSION_1"), nil)
	h := srv.Handler()

	first := get(t, h, "/")
	etag := first.Header.Get(config.HeaderETag)
	require.NotEmpty(t, etag, "Server must provide an ETag")

	resp := get(t, h, "/", config.HeaderIfNoneMatch, etag)
	assert.Equal(t, http.StatusNotModified, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Empty(t, body, "Body must be empty on 304 Not Modified")

	resp = get(t, h, "/", config.HeaderIfNoneMatch, `"stale"`,
		config.HeaderIfModifiedSince, time.Now().Add(time.Hour).UTC().Format(http.TimeFormat))
	assert.Equal(t, http.StatusOK, resp.StatusCode, "A mismatched ETag wins over If-Modified-Since")

	resp = get(t, h, "/", config.HeaderIfModifiedSince, time.Now().Add(time.Hour).UTC().Format(http.TimeFormat))
	assert.Equal(t, http.StatusNotModified, resp.StatusCode)

	resp = get(t, h, "/", config.HeaderIfModifiedSince, time.Now().Add(-time.Hour).UTC().Format(http.TimeFormat))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestFeed_MethodNotAllowed(t *testing.T) {
	srv := NewFeedServer("0", nil)
	for _, target := range []string{"/", config.RouteAPIPatients} {
		req := httptest.NewRequest(http.MethodPost, target, nil)
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code, target)
		assert.Equal(t, config.AllowedMethods, w.Header().Get(config.HeaderAllow))
	}
}

func TestFeed_Initializing(t *testing.T) {
	srv := NewFeedServer("0", nil)
	for _, target := range []string{"/", config.RouteAPIPatients} {
		resp := get(t, srv.Handler(), target)
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode, target)
		assert.Equal(t, config.RetryAfterSeconds, resp.Header.Get(config.HeaderRetryAfter))
	}
	assert.Nil(t, srv.Entries())
}

// -----------------------------------------------------------------------------
// Patient API
// -----------------------------------------------------------------------------

func decodePage(t *testing.T, resp *http.Response) pager.Page[engine.PatientEntry] {
	t.Helper()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, config.MimeJSONUTF8, resp.Header.Get(config.HeaderContentType))
	var page pager.Page[engine.PatientEntry]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	return page
}

func TestPatients_Pages(t *testing.T) {
	srv := NewFeedServer("0", nil)
	srv.PageSize = 2
	srv.Update([]byte("ICS"), entries("Иванов Иван", "Петров Пётр", "Иванова Анна", "Сидоров Олег", "Ёлкин Илья"))
	h := srv.Handler()

	page := decodePage(t, get(t, h, config.RouteAPIPatients))
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 3, page.Count)
	assert.Equal(t, 5, page.Total)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Иванов Иван", page.Items[0].FIO)
	assert.Equal(t, calendar.Date{Year: 2015, Month: 1, Day: 1}, page.Items[0].BirthDate)

	page = decodePage(t, get(t, h, config.RouteAPIPatients+"?page=3"))
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Ёлкин Илья", page.Items[0].FIO)

	page = decodePage(t, get(t, h, config.RouteAPIPatients+"?q=%D0%98%D0%92%D0%90%D0%9D%D0%9E%D0%92"))
	assert.Equal(t, 2, page.Total, "Search is case-insensitive")
	assert.Equal(t, 1, page.Count)

	page = decodePage(t, get(t, h, config.RouteAPIPatients+"?q=nobody"))
	assert.Equal(t, 1, page.Count, "An empty result is still page 1 of 1")
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
}

func TestPatients_BadPage(t *testing.T) {
	srv := NewFeedServer("0", nil)
	srv.Update([]byte("ICS"), entries("Иванов Иван"))
	h := srv.Handler()

	for _, raw := range []string{"abc", "0", "2", "-1"} {
		resp := get(t, h, config.RouteAPIPatients+"?page="+raw)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, raw)

		var body records.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.NotEmpty(t, body.Detail)
	}
}

// -----------------------------------------------------------------------------
// Metrics
// -----------------------------------------------------------------------------

func TestMetrics(t *testing.T) {
	srv := NewFeedServer("0", nil)
	h := srv.Handler()

	get(t, h, "/")
	srv.Update([]byte("ICS"), nil)
	get(t, h, "/")
	get(t, h, "/")
	get(t, h, config.RouteAPIPatients+"?page=x")

	m := srv.Metrics()
	assert.InDelta(t, 1, testutil.ToFloat64(m.Requests.WithLabelValues(config.RouteFeed, "503")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.Requests.WithLabelValues(config.RouteFeed, "200")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Requests.WithLabelValues(config.RouteAPIPatients, "400")), 0)

	m.ObserveSync(nil)
	m.ObserveSync(errors.New("boom"))
	m.ObserveSync(nil)
	assert.InDelta(t, 2, testutil.ToFloat64(m.Syncs.WithLabelValues(config.MetricOutcomeSuccess)), 0)

	resp := get(t, h, config.RouteMetrics)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "priroda_http_requests_total")
	assert.Contains(t, string(body), "priroda_sync_runs_total")
}

// -----------------------------------------------------------------------------
// Concurrency Tests (Race Detection)
// -----------------------------------------------------------------------------

// TestServer_RaceCondition stresses concurrent Update and reads. Run with -race.
func TestServer_RaceCondition(t *testing.T) {
	srv := NewFeedServer("0", nil)
	h := srv.Handler()
	var wg sync.WaitGroup
	end := time.Now().Add(300 * time.Millisecond)

	for w := range 5 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; time.Now().Before(end); i++ {
				srv.Update([]byte(fmt.Sprintf("VERSION:%d-%d", w, i)), entries("А Б"))
				time.Sleep(time.Microsecond)
			}
		}()
	}

	for r := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			target := "/"
			if r%2 == 1 {
				target = config.RouteAPIPatients
			}
			for time.Now().Before(end) {
				w := httptest.NewRecorder()
				h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
				if w.Code != http.StatusOK && w.Code != http.StatusServiceUnavailable {
					t.Errorf("Unexpected status code during race test: %d", w.Code)
				}
			}
		}()
	}

	wg.Wait()
}

// -----------------------------------------------------------------------------
// Integration Tests (Real TCP Lifecycle)
// -----------------------------------------------------------------------------

func TestServer_Lifecycle(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	url := "http://" + ln.Addr().String() + "/"

	srv := NewFeedServer("0", nil)
	ctx, cancel := context.WithCancel(context.Background())
	errChan := make(chan error, 1)
	go func() { errChan <- srv.Serve(ctx, ln) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusServiceUnavailable
	}, 2*time.Second, 50*time.Millisecond, "Server failed to listen in time")

	srv.Update([]byte("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n"), nil)

	resp, err := http.Get(url)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(string(body), "BEGIN:VCALENDAR"))

	cancel()
	select {
	case err := <-errChan:
		assert.NoError(t, err, "Server should shutdown gracefully without error")
	case <-time.After(5 * time.Second):
		t.Fatal("Server shutdown timed out")
	}
}

func TestServer_StartValidatesPort(t *testing.T) {
	assert.Error(t, NewFeedServer("", nil).Start(context.Background()))
	assert.Error(t, NewFeedServer("http", nil).Start(context.Background()))
	assert.Error(t, NewFeedServer("70000", nil).Start(context.Background()))
}
