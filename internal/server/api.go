package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/tartampluch/priroda-razuma/internal/config"
	"github.com/tartampluch/priroda-razuma/internal/engine"
	"github.com/tartampluch/priroda-razuma/internal/pager"
	"github.com/tartampluch/priroda-razuma/internal/records"
)

// handlePatients serves GET /api/patients?page=N&q=term: one page of the
// last synced patients, filtered by FIO and ordered by next birthday.
func (s *FeedServer) handlePatients(w http.ResponseWriter, r *http.Request) {
	if !allowRead(w, r) {
		return
	}
	item := s.cache.Load()
	if item == nil {
		initializing(w)
		return
	}

	q := r.URL.Query()
	filtered := pager.Filter(item.entries,
		pager.Contains(func(e engine.PatientEntry) string { return e.FIO }, q.Get(config.QuerySearch)))
	count := pager.PageCount(len(filtered), s.PageSize)

	number := 1
	if raw := strings.TrimSpace(q.Get(config.QueryPage)); raw != "" {
		n, err := pager.ParsePageInput(raw, count)
		if err != nil {
			slog.Debug(config.HTTPMsgBadPage,
				config.LogKeyComponent, config.CompServer,
				config.LogKeyPage, raw,
				config.LogKeyError, err)
			writeJSON(w, http.StatusBadRequest, records.ErrorResponse{Detail: config.HTTPMsgBadPage + ": " + err.Error()})
			return
		}
		number = n
	}

	writeJSON(w, http.StatusOK, pager.Paginate(filtered, number, s.PageSize))
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set(config.HeaderContentType, config.MimeJSONUTF8)
	w.Header().Set(config.HeaderXContentType, config.MimeNoSniff)
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error(config.ErrWriteResp,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyError, err,
		)
	}
}
