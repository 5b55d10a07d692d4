package adapthttp

import (
	"net/http"
	"strconv"
	"time"

	"nutricoach/internal/app"

	"github.com/gorilla/mux"
)

func (s *Server) handleMealLog(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r)

	var body app.LogFoodInput
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if body.Day == "" {
		body.Day = localDayString(time.Now())
	}

	entry, err := s.meals.LogFood(r.Context(), user.ID, time.Now(), body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"entry": entry})
}

func (s *Server) handleMealsForDay(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r)
	day := dayQuery(r, time.Now())

	items, err := s.meals.EntriesForDay(r.Context(), user.ID, day)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if limit := intQuery(r, "limit", 0); limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	writeJSON(w, http.StatusOK, map[string]any{"day": day, "items": items})
}

func (s *Server) handleMealDelete(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r)
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := s.meals.DeleteEntry(r.Context(), user.ID, id); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "deleted": id})
}

func (s *Server) handleDayTotals(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r)
	day := dayQuery(r, time.Now())

	totals, err := s.meals.TotalsForDay(r.Context(), user.ID, day)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, totals)
}
