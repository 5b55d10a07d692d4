package domain

import (
	"context"
	"time"
)

// DayLayout is the calendar-day format used everywhere a day is stored or
// keyed: ISO "YYYY-MM-DD".
const DayLayout = "2006-01-02"

// MealSlot is one of the four daily meal slots.
type MealSlot string

// Meal slots.
const (
	SlotBreakfast MealSlot = "breakfast"
	SlotLunch     MealSlot = "lunch"
	SlotDinner    MealSlot = "dinner"
	SlotSnack     MealSlot = "snack"
)

// ValidMealSlot reports whether s is one of the known slots.
func ValidMealSlot(s MealSlot) bool {
	switch s {
	case SlotBreakfast, SlotLunch, SlotDinner, SlotSnack:
		return true
	default:
		return false
	}
}

// FoodEntry is a single logged food, already normalized to cooked-state
// nutrition values for its full logged quantity.
type FoodEntry struct {
	ID           int64               `json:"id"`
	UserID       int64               `json:"userId"`
	Day          string              `json:"day"`
	Slot         MealSlot            `json:"slot"`
	Name         string              `json:"name"`
	Quantity     float64             `json:"quantity"`
	Unit         Unit                `json:"unit"`
	CookingState CookingState        `json:"cookingState"`
	Nutrition    NormalizedNutrition `json:"nutrition"`
	CreatedAt    time.Time           `json:"createdAt"`
}

// DayIntake is one day's consumption as the scorer sees it: per-slot sums
// plus an optional precomputed daily calorie total. When TotalCalories is
// set it takes precedence over summing the slots.
type DayIntake struct {
	Slots         map[MealSlot]NormalizedNutrition `json:"slots"`
	TotalCalories *float64                         `json:"totalCalories,omitempty"`
}

// HasData reports whether at least one meal slot holds a record.
func (d DayIntake) HasData() bool {
	return len(d.Slots) > 0
}

// ConsumedCalories returns the precomputed total when present, otherwise the
// sum of the slot calories. Missing slots contribute 0.
func (d DayIntake) ConsumedCalories() float64 {
	if d.TotalCalories != nil {
		return *d.TotalCalories
	}
	var sum float64
	for _, n := range d.Slots {
		sum += n.Calories
	}
	return sum
}

// MealRepository is the port for meal-log persistence.
type MealRepository interface {
	AddFoodEntry(ctx context.Context, entry FoodEntry) (int64, error)
	DeleteFoodEntry(ctx context.Context, userID, id int64) error
	EntriesForDay(ctx context.Context, userID int64, day string) ([]FoodEntry, error)
	IntakeForRange(ctx context.Context, userID int64, fromDay, toDay string) (map[string]DayIntake, error)
}
