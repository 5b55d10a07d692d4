package adapthttp

import (
	"net/http"
	"time"

	"nutricoach/internal/domain"
)

func (s *Server) handleAdherenceWeek(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r)

	// The scorer takes "today" explicitly; resolve it here, optionally from
	// the query so clients can replay past weeks.
	today := time.Now().In(time.Local)
	if v := r.URL.Query().Get("today"); v != "" {
		t, err := time.ParseInLocation(domain.DayLayout, v, time.Local)
		if err != nil {
			http.Error(w, "today must be formatted YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		today = t
	}

	week, err := s.adherence.GetWeekReport(r.Context(), user.ID, today)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, week)
}
