package adapthttp

import (
	"net/http"
	"strconv"
	"time"

	"nutricoach/internal/app"
	"nutricoach/internal/domain"
)

func (s *Server) handleProfileGet(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r)
	profile, err := s.goals.GetProfile(r.Context(), user.ID)
	if err == app.ErrProfileNotFound {
		writeJSON(w, http.StatusOK, map[string]any{"profile": nil})
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"profile": profile})
}

func (s *Server) handleProfilePut(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r)

	var body domain.Profile
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	body.UserID = user.ID

	if err := s.goals.SaveProfile(r.Context(), body, time.Now()); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	view, err := s.goals.GetGoals(r.Context(), user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleGoals(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r)
	view, err := s.goals.GetGoals(r.Context(), user.ID)
	if err == app.ErrProfileNotFound {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// handleBMI computes BMI for ad-hoc weight/height values, e.g. during
// onboarding before a profile exists.
func (s *Server) handleBMI(w http.ResponseWriter, r *http.Request) {
	weight, err1 := strconv.ParseFloat(r.URL.Query().Get("weight"), 64)
	height, err2 := strconv.ParseFloat(r.URL.Query().Get("height"), 64)
	if err1 != nil || err2 != nil || weight <= 0 || height <= 0 {
		http.Error(w, "weight and height query parameters must be positive numbers", http.StatusBadRequest)
		return
	}

	bmi := domain.CalculateBMI(weight, height)
	writeJSON(w, http.StatusOK, map[string]any{
		"bmi":      bmi,
		"category": domain.BMICategory(bmi),
	})
}
