package server

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"logdeck/internal/logging"
	"logdeck/internal/logparse"
	"logdeck/internal/logs"
	"logdeck/internal/store"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":          "ok",
		"tailPollSeconds": s.cfg.Logs.TailPollSeconds,
	})
}

func (s *Server) handleSupervisors(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var projectID int64
	if value := strings.TrimSpace(r.URL.Query().Get("project")); value != "" {
		parsed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, "invalid project id")
			return
		}
		projectID = parsed
	}

	supervisors, err := s.catalog.ListSupervisors(r.Context(), projectID)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"supervisors": supervisors})
}

// handleSupervisorSubtree routes /api/supervisors/{id}/logs and
// /api/supervisors/{id}/logs/tail.
func (s *Server) handleSupervisorSubtree(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/api/supervisors/")
	parts := strings.Split(rest, "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] != "logs" {
		s.writeError(w, http.StatusNotFound, "not found")
		return
	}
	id := parts[0]

	supervisor, err := s.catalog.GetSupervisor(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.writeError(w, http.StatusNotFound, "supervisor not found")
			return
		}
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	template, err := logparse.ParseTemplate(supervisor.Template)
	if err != nil {
		// A bad stored template degrades to default parsing rather
		// than making logs unreadable.
		s.logger.Warn("stored template invalid", logging.String("supervisor", id), logging.Error(err))
		template = logparse.TemplateDefault
	}

	switch {
	case len(parts) == 2:
		s.handleLogWindow(w, r, supervisor, template)
	case len(parts) == 3 && parts[2] == "tail":
		s.handleLogTail(w, r, supervisor, template)
	default:
		s.writeError(w, http.StatusNotFound, "not found")
	}
}

func (s *Server) handleLogWindow(w http.ResponseWriter, r *http.Request, supervisor *store.Supervisor, template logparse.Template) {
	query := r.URL.Query()

	limit := s.cfg.Logs.PageSize
	if value := query.Get("limit"); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed <= 0 {
			s.writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	beforeLine := 0
	if value := query.Get("before_line"); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed < 0 {
			s.writeError(w, http.StatusBadRequest, "invalid before_line")
			return
		}
		beforeLine = parsed
	}

	filter, err := filterFromQuery(query.Get("search"), query.Get("level"), query.Get("start_date"), query.Get("end_date"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	start := time.Now()
	window := s.reader.ReadBackward(supervisor.LogPath, logs.BackwardOptions{
		Limit:      limit,
		BeforeLine: beforeLine,
		Template:   template,
		Filter:     filter,
	})
	s.observeRead(start)

	s.writeJSON(w, http.StatusOK, window)
}

func (s *Server) handleLogTail(w http.ResponseWriter, r *http.Request, supervisor *store.Supervisor, template logparse.Template) {
	query := r.URL.Query()

	lastLine := 0
	if value := query.Get("last_line"); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed < 0 {
			s.writeError(w, http.StatusBadRequest, "invalid last_line")
			return
		}
		lastLine = parsed
	}
	fetch := query.Get("fetch") == "1" || strings.EqualFold(query.Get("fetch"), "true")

	filter, err := filterFromQuery(query.Get("search"), query.Get("level"), query.Get("start_date"), query.Get("end_date"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	start := time.Now()
	result := s.reader.Tail(supervisor.LogPath, logs.TailOptions{
		Template:     template,
		LastLine:     lastLine,
		FetchEntries: fetch,
		Filter:       filter,
	})
	s.observeRead(start)

	s.writeJSON(w, http.StatusOK, result)
}

func filterFromQuery(search, level, startDate, endDate string) (logs.Filter, error) {
	filter := logs.Filter{
		Search: strings.TrimSpace(search),
		Level:  strings.TrimSpace(level),
	}
	if value := strings.TrimSpace(startDate); value != "" {
		parsed, err := logs.ParseDateBound(value)
		if err != nil {
			return logs.Filter{}, errors.New("invalid start_date, expected YYYY-MM-DD")
		}
		filter.StartDate = parsed
	}
	if value := strings.TrimSpace(endDate); value != "" {
		parsed, err := logs.ParseDateBound(value)
		if err != nil {
			return logs.Filter{}, errors.New("invalid end_date, expected YYYY-MM-DD")
		}
		filter.EndDate = parsed
	}
	return filter, nil
}
