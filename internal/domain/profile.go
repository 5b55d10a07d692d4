// Package domain contains the core business entities, the pure nutrition
// engine, and the repository ports.
package domain

import (
	"context"
	"time"
)

// Gender is the closed set of gender variants a profile can carry.
type Gender string

// Gender variants.
const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// ActivityLevel is the closed set of activity variants. The empty string means
// the user has not picked one yet.
type ActivityLevel string

// Activity levels, from least to most active.
const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityLight     ActivityLevel = "light"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityActive    ActivityLevel = "active"
	ActivityAthlete   ActivityLevel = "athlete"
)

// PrimaryGoal is the user's main objective. Empty means unset.
type PrimaryGoal string

// Primary goals.
const (
	GoalWeightLoss  PrimaryGoal = "weight_loss"
	GoalMuscleGain  PrimaryGoal = "muscle_gain"
	GoalMaintenance PrimaryGoal = "maintenance"
	GoalHealth      PrimaryGoal = "health"
	GoalEnergy      PrimaryGoal = "energy"
)

// DietPreference is an optional dietary regime. Only keto changes the macro
// split; the others are carried for meal-plan generation upstream.
type DietPreference string

// Diet preferences.
const (
	DietKeto       DietPreference = "keto"
	DietVegetarian DietPreference = "vegetarian"
	DietVegan      DietPreference = "vegan"
)

// Profile is the biometric and preference snapshot the engine computes from.
// It is owned by the caller and never mutated here. Zero values on the
// numeric fields and empty strings on the variants mean "not provided".
type Profile struct {
	UserID         int64          `json:"userId"`
	WeightKg       float64        `json:"weightKg"`
	HeightCm       float64        `json:"heightCm"`
	Age            int            `json:"age"`
	Gender         Gender         `json:"gender"`
	ActivityLevel  ActivityLevel  `json:"activityLevel,omitempty"`
	PrimaryGoal    PrimaryGoal    `json:"primaryGoal,omitempty"`
	DietPreference DietPreference `json:"dietPreference,omitempty"`
	TargetWeightKg float64        `json:"targetWeightKg,omitempty"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// NutritionGoals are the derived daily targets. They are recomputed on every
// call and never cached inside the engine. Calories == 0 means the profile is
// missing required fields, not that the target is zero.
type NutritionGoals struct {
	Calories int `json:"calories"`
	Proteins int `json:"proteins"`
	Carbs    int `json:"carbs"`
	Fats     int `json:"fats"`
	Water    int `json:"water"`
}

// ProfileRepository is the port for profile persistence.
type ProfileRepository interface {
	UpsertProfile(ctx context.Context, p Profile) error
	ProfileByUserID(ctx context.Context, userID int64) (*Profile, error)
}
