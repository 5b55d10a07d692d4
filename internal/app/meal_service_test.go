package app_test

import (
	"context"
	"math"
	"testing"
	"time"

	"nutricoach/internal/app"
	"nutricoach/internal/domain"
)

type mockMealRepo struct {
	addFn    func(ctx context.Context, e domain.FoodEntry) (int64, error)
	delFn    func(ctx context.Context, userID, id int64) error
	listFn   func(ctx context.Context, userID int64, day string) ([]domain.FoodEntry, error)
	intakeFn func(ctx context.Context, userID int64, fromDay, toDay string) (map[string]domain.DayIntake, error)
}

func (m *mockMealRepo) AddFoodEntry(ctx context.Context, e domain.FoodEntry) (int64, error) {
	if m.addFn != nil {
		return m.addFn(ctx, e)
	}
	return 0, nil
}

func (m *mockMealRepo) DeleteFoodEntry(ctx context.Context, userID, id int64) error {
	if m.delFn != nil {
		return m.delFn(ctx, userID, id)
	}
	return nil
}

func (m *mockMealRepo) EntriesForDay(ctx context.Context, userID int64, day string) ([]domain.FoodEntry, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID, day)
	}
	return nil, nil
}

func (m *mockMealRepo) IntakeForRange(ctx context.Context, userID int64, fromDay, toDay string) (map[string]domain.DayIntake, error) {
	if m.intakeFn != nil {
		return m.intakeFn(ctx, userID, fromDay, toDay)
	}
	return nil, nil
}

func validInput() app.LogFoodInput {
	return app.LogFoodInput{
		Day:      "2026-08-31",
		Slot:     domain.SlotLunch,
		Name:     "Escalope de dinde",
		Quantity: 150,
		Per100g:  domain.NormalizedNutrition{Calories: 110, Proteins: 24, Carbs: 0.5, Fats: 1},
	}
}

func TestLogFood_Validation(t *testing.T) {
	svc := app.NewMealService(&mockMealRepo{})
	now := time.Now()

	tests := []struct {
		name   string
		modify func(*app.LogFoodInput)
	}{
		{"empty name", func(in *app.LogFoodInput) { in.Name = "" }},
		{"zero quantity", func(in *app.LogFoodInput) { in.Quantity = 0 }},
		{"negative quantity", func(in *app.LogFoodInput) { in.Quantity = -100 }},
		{"unknown slot", func(in *app.LogFoodInput) { in.Slot = "brunch" }},
		{"bad day format", func(in *app.LogFoodInput) { in.Day = "31/08/2026" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.modify(&in)
			if _, err := svc.LogFood(context.Background(), 1, now, in); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestLogFood_ScalesPer100gByQuantity(t *testing.T) {
	var stored domain.FoodEntry
	repo := &mockMealRepo{
		addFn: func(_ context.Context, e domain.FoodEntry) (int64, error) {
			stored = e
			return 9, nil
		},
	}
	svc := app.NewMealService(repo)

	entry, err := svc.LogFood(context.Background(), 1, time.Now(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.ID != 9 {
		t.Errorf("ID = %d; want 9", entry.ID)
	}
	// 150 g of a 110 kcal/100g food, no conversion rule for dinde.
	if math.Abs(stored.Nutrition.Calories-165) > 1e-9 {
		t.Errorf("Calories = %v; want 165", stored.Nutrition.Calories)
	}
	if math.Abs(stored.Nutrition.Proteins-36) > 1e-9 {
		t.Errorf("Proteins = %v; want 36", stored.Nutrition.Proteins)
	}
	if stored.Unit != domain.UnitGram {
		t.Errorf("Unit = %q; want detected g", stored.Unit)
	}
	if stored.CookingState != domain.StateCooked {
		t.Errorf("CookingState = %q; want detected cooked", stored.CookingState)
	}
}

func TestLogFood_ConvertsRawGrainToCooked(t *testing.T) {
	var stored domain.FoodEntry
	repo := &mockMealRepo{
		addFn: func(_ context.Context, e domain.FoodEntry) (int64, error) {
			stored = e
			return 1, nil
		},
	}
	svc := app.NewMealService(repo)

	in := validInput()
	in.Name = "Riz basmati" // grain, defaults to raw
	in.Quantity = 100
	in.Per100g = domain.NormalizedNutrition{Calories: 360, Proteins: 7, Carbs: 78, Fats: 0.6}

	if _, err := svc.LogFood(context.Background(), 1, time.Now(), in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rule := domain.CookingConversionFor("Riz basmati")
	want := 360 * rule.CalorieRatio
	if math.Abs(stored.Nutrition.Calories-want) > 1e-9 {
		t.Errorf("Calories = %v; want %v (raw scaled to cooked)", stored.Nutrition.Calories, want)
	}
	if stored.CookingState != domain.StateRaw {
		t.Errorf("CookingState = %q; want raw (the logged state)", stored.CookingState)
	}
}

func TestLogFood_PieceUnitUsesGramEquivalent(t *testing.T) {
	var stored domain.FoodEntry
	repo := &mockMealRepo{
		addFn: func(_ context.Context, e domain.FoodEntry) (int64, error) {
			stored = e
			return 1, nil
		},
	}
	svc := app.NewMealService(repo)

	in := validInput()
	in.Name = "Banane"
	in.Quantity = 2
	in.Per100g = domain.NormalizedNutrition{Calories: 90, Proteins: 1, Carbs: 23, Fats: 0.3}

	if _, err := svc.LogFood(context.Background(), 1, time.Now(), in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Unit != domain.UnitPiece {
		t.Fatalf("Unit = %q; want unit", stored.Unit)
	}
	// 2 pieces × 150 g equivalent = 300 g → factor 3.
	if math.Abs(stored.Nutrition.Calories-270) > 1e-9 {
		t.Errorf("Calories = %v; want 270", stored.Nutrition.Calories)
	}
}

func TestTotalsForDay(t *testing.T) {
	repo := &mockMealRepo{
		listFn: func(_ context.Context, _ int64, day string) ([]domain.FoodEntry, error) {
			if day != "2026-08-31" {
				t.Fatalf("unexpected day: %s", day)
			}
			return []domain.FoodEntry{
				{Slot: domain.SlotBreakfast, Nutrition: domain.NormalizedNutrition{Calories: 400, Proteins: 20}},
				{Slot: domain.SlotLunch, Nutrition: domain.NormalizedNutrition{Calories: 700, Proteins: 40}},
				{Slot: domain.SlotLunch, Nutrition: domain.NormalizedNutrition{Calories: 150, Proteins: 5}},
			}, nil
		},
	}
	svc := app.NewMealService(repo)
	totals, err := svc.TotalsForDay(context.Background(), 1, "2026-08-31")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if totals.Total.Calories != 1250 {
		t.Errorf("Total.Calories = %v; want 1250", totals.Total.Calories)
	}
	if totals.Slots[domain.SlotLunch].Calories != 850 {
		t.Errorf("lunch calories = %v; want 850", totals.Slots[domain.SlotLunch].Calories)
	}
	if totals.Slots[domain.SlotBreakfast].Proteins != 20 {
		t.Errorf("breakfast proteins = %v; want 20", totals.Slots[domain.SlotBreakfast].Proteins)
	}
}
