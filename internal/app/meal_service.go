package app

import (
	"context"
	"errors"
	"time"

	"nutricoach/internal/domain"
)

// MealService encapsulates food-logging use cases. Logged entries are
// normalized to cooked-state nutrition for their full quantity before
// storage, so day totals stay directly comparable.
type MealService struct {
	meals domain.MealRepository
}

// NewMealService creates a MealService backed by the given repository.
func NewMealService(meals domain.MealRepository) *MealService {
	return &MealService{meals: meals}
}

// LogFoodInput is a raw food-log entry as it arrives from product search or
// barcode lookup. Per100g holds the nutrition values per 100 g in the given
// cooking state. Unit and CookingState may be left empty to be detected from
// the name.
type LogFoodInput struct {
	Day          string                     `json:"day"`
	Slot         domain.MealSlot            `json:"slot"`
	Name         string                     `json:"name"`
	Quantity     float64                    `json:"quantity"`
	Unit         domain.Unit                `json:"unit"`
	CookingState domain.CookingState        `json:"cookingState"`
	Per100g      domain.NormalizedNutrition `json:"per100g"`
}

// LogFood validates, normalizes, and stores a food entry.
func (s *MealService) LogFood(ctx context.Context, userID int64, now time.Time, in LogFoodInput) (*domain.FoodEntry, error) {
	if in.Name == "" {
		return nil, errors.New("name is required")
	}
	if in.Quantity <= 0 {
		return nil, errors.New("quantity must be > 0")
	}
	if !domain.ValidMealSlot(in.Slot) {
		return nil, errors.New("slot must be breakfast, lunch, dinner, or snack")
	}
	if _, err := time.Parse(domain.DayLayout, in.Day); err != nil {
		return nil, errors.New("day must be formatted YYYY-MM-DD")
	}

	unit := in.Unit
	if unit == "" {
		unit = domain.DetectProductUnit(in.Name)
	}
	state := in.CookingState
	if state == "" {
		state = domain.DetectCookingState(in.Name)
	}

	grams := in.Quantity * domain.UnitConfigFor(unit).EquivalentGrams
	nutrition := in.Per100g.Scale(grams / 100)
	nutrition = domain.AdjustForCooking(in.Name, nutrition, state, domain.StateCooked)

	entry := domain.FoodEntry{
		UserID:       userID,
		Day:          in.Day,
		Slot:         in.Slot,
		Name:         in.Name,
		Quantity:     in.Quantity,
		Unit:         unit,
		CookingState: state,
		Nutrition:    nutrition,
		CreatedAt:    now,
	}
	id, err := s.meals.AddFoodEntry(ctx, entry)
	if err != nil {
		return nil, err
	}
	entry.ID = id
	return &entry, nil
}

// DeleteEntry removes a logged entry owned by the user.
func (s *MealService) DeleteEntry(ctx context.Context, userID, id int64) error {
	return s.meals.DeleteFoodEntry(ctx, userID, id)
}

// EntriesForDay lists a day's logged entries.
func (s *MealService) EntriesForDay(ctx context.Context, userID int64, day string) ([]domain.FoodEntry, error) {
	return s.meals.EntriesForDay(ctx, userID, day)
}

// DayTotals is the dashboard summary of one day.
type DayTotals struct {
	Day   string                                         `json:"day"`
	Slots map[domain.MealSlot]domain.NormalizedNutrition `json:"slots"`
	Total domain.NormalizedNutrition                     `json:"total"`
}

// TotalsForDay aggregates a day's entries into per-slot and whole-day sums.
func (s *MealService) TotalsForDay(ctx context.Context, userID int64, day string) (*DayTotals, error) {
	entries, err := s.meals.EntriesForDay(ctx, userID, day)
	if err != nil {
		return nil, err
	}
	totals := &DayTotals{Day: day, Slots: make(map[domain.MealSlot]domain.NormalizedNutrition)}
	for _, e := range entries {
		totals.Slots[e.Slot] = totals.Slots[e.Slot].Add(e.Nutrition)
		totals.Total = totals.Total.Add(e.Nutrition)
	}
	return totals, nil
}
