package adapthttp

import (
	"net/http"

	"nutricoach/internal/domain"
)

// handleFoodNormalize exposes the food normalizer to clients: it detects the
// unit and cooking state of a food name and rescales nutrition values to the
// requested cooking state. Purely computational; nothing is stored.
func (s *Server) handleFoodNormalize(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name         string                     `json:"name"`
		CookingState domain.CookingState        `json:"cookingState"`
		TargetState  domain.CookingState        `json:"targetState"`
		Nutrition    domain.NormalizedNutrition `json:"nutrition"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if body.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	state := body.CookingState
	if state == "" {
		state = domain.DetectCookingState(body.Name)
	}
	target := body.TargetState
	if target == "" {
		target = domain.StateCooked
	}

	unit := domain.DetectProductUnit(body.Name)
	adjusted := domain.AdjustForCooking(body.Name, body.Nutrition, state, target)

	writeJSON(w, http.StatusOK, map[string]any{
		"name":           body.Name,
		"detectedState":  state,
		"targetState":    target,
		"detectedUnit":   unit,
		"unitConfig":     domain.UnitConfigFor(unit),
		"nutrition":      adjusted,
		"convertible":    domain.CookingConversionFor(body.Name) != nil,
		"cookedPortion":  domain.CookedPortionFor(body.Name),
		"commonPortion":  domain.CommonPortionFor(body.Name),
	})
}
