package postgres

import (
	"context"
	"database/sql"

	"nutricoach/internal/domain"
)

// UpsertProfile inserts or replaces a user's profile.
func (d *DB) UpsertProfile(ctx context.Context, p domain.Profile) error {
	_, err := d.sql.ExecContext(ctx,
		`INSERT INTO profiles (user_id, weight_kg, height_cm, age, gender, activity_level, primary_goal, diet_preference, target_weight_kg, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (user_id) DO UPDATE SET
			weight_kg = EXCLUDED.weight_kg,
			height_cm = EXCLUDED.height_cm,
			age = EXCLUDED.age,
			gender = EXCLUDED.gender,
			activity_level = EXCLUDED.activity_level,
			primary_goal = EXCLUDED.primary_goal,
			diet_preference = EXCLUDED.diet_preference,
			target_weight_kg = EXCLUDED.target_weight_kg,
			updated_at = EXCLUDED.updated_at`,
		p.UserID, p.WeightKg, p.HeightCm, p.Age, string(p.Gender), string(p.ActivityLevel),
		string(p.PrimaryGoal), string(p.DietPreference), p.TargetWeightKg, p.UpdatedAt,
	)
	return err
}

// ProfileByUserID returns the user's profile, or nil when onboarding has not
// happened yet.
func (d *DB) ProfileByUserID(ctx context.Context, userID int64) (*domain.Profile, error) {
	var p domain.Profile
	var gender, activity, goal, diet string
	err := d.sql.QueryRowContext(ctx,
		`SELECT user_id, weight_kg, height_cm, age, gender, activity_level, primary_goal, diet_preference, target_weight_kg, updated_at
		 FROM profiles WHERE user_id = $1`,
		userID,
	).Scan(&p.UserID, &p.WeightKg, &p.HeightCm, &p.Age, &gender, &activity, &goal, &diet, &p.TargetWeightKg, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	p.Gender = domain.Gender(gender)
	p.ActivityLevel = domain.ActivityLevel(activity)
	p.PrimaryGoal = domain.PrimaryGoal(goal)
	p.DietPreference = domain.DietPreference(diet)
	return &p, nil
}
