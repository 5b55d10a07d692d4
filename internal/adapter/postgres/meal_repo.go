package postgres

import (
	"context"

	"nutricoach/internal/domain"
)

// AddFoodEntry inserts a normalized food entry.
func (d *DB) AddFoodEntry(ctx context.Context, e domain.FoodEntry) (int64, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx,
		`INSERT INTO food_entries (user_id, day, slot, name, quantity, unit, cooking_state, calories, proteins, carbs, fats, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`,
		e.UserID, e.Day, string(e.Slot), e.Name, e.Quantity, string(e.Unit), string(e.CookingState),
		e.Nutrition.Calories, e.Nutrition.Proteins, e.Nutrition.Carbs, e.Nutrition.Fats, e.CreatedAt.UTC(),
	).Scan(&id)
	return id, err
}

// DeleteFoodEntry removes a food entry by ID, scoped to a user.
func (d *DB) DeleteFoodEntry(ctx context.Context, userID, id int64) error {
	_, err := d.sql.ExecContext(ctx, "DELETE FROM food_entries WHERE id = $1 AND user_id = $2", id, userID)
	return err
}

// EntriesForDay returns a user's food entries for one calendar day, oldest
// first.
func (d *DB) EntriesForDay(ctx context.Context, userID int64, day string) ([]domain.FoodEntry, error) {
	rows, err := d.sql.QueryContext(ctx,
		`SELECT id, day, slot, name, quantity, unit, cooking_state, calories, proteins, carbs, fats, created_at
		 FROM food_entries WHERE user_id = $1 AND day = $2 ORDER BY created_at`,
		userID, day,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var out []domain.FoodEntry
	for rows.Next() {
		var e domain.FoodEntry
		var slot, unit, state string
		if err := rows.Scan(&e.ID, &e.Day, &slot, &e.Name, &e.Quantity, &unit, &state,
			&e.Nutrition.Calories, &e.Nutrition.Proteins, &e.Nutrition.Carbs, &e.Nutrition.Fats, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.UserID = userID
		e.Slot = domain.MealSlot(slot)
		e.Unit = domain.Unit(unit)
		e.CookingState = domain.CookingState(state)
		out = append(out, e)
	}
	return out, rows.Err()
}

// IntakeForRange returns per-day, per-slot nutrition sums for the inclusive
// day range. Days without entries are absent from the map.
func (d *DB) IntakeForRange(ctx context.Context, userID int64, fromDay, toDay string) (map[string]domain.DayIntake, error) {
	rows, err := d.sql.QueryContext(ctx,
		`SELECT day, slot, SUM(calories), SUM(proteins), SUM(carbs), SUM(fats)
		 FROM food_entries WHERE user_id = $1 AND day >= $2 AND day <= $3
		 GROUP BY day, slot`,
		userID, fromDay, toDay,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := make(map[string]domain.DayIntake)
	for rows.Next() {
		var day, slot string
		var n domain.NormalizedNutrition
		if err := rows.Scan(&day, &slot, &n.Calories, &n.Proteins, &n.Carbs, &n.Fats); err != nil {
			return nil, err
		}
		intake := out[day]
		if intake.Slots == nil {
			intake.Slots = make(map[domain.MealSlot]domain.NormalizedNutrition)
		}
		intake.Slots[domain.MealSlot(slot)] = n
		out[day] = intake
	}
	return out, rows.Err()
}
