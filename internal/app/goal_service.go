// Package app holds the application services and business logic.
package app

import (
	"context"
	"errors"
	"time"

	"nutricoach/internal/domain"
)

// ErrProfileNotFound indicates that the user has not completed onboarding.
var ErrProfileNotFound = errors.New("profile not found")

// GoalService encapsulates profile-onboarding and target-calculation use cases.
type GoalService struct {
	profiles domain.ProfileRepository
}

// NewGoalService creates a GoalService backed by the given repository.
func NewGoalService(profiles domain.ProfileRepository) *GoalService {
	return &GoalService{profiles: profiles}
}

// GoalsView is the computed target bundle returned to clients. Complete is
// false when the profile lacks the fields the BMR needs, in which case the
// calorie and macro targets are the zero sentinel and must not be displayed
// as real targets.
type GoalsView struct {
	Goals       domain.NutritionGoals `json:"goals"`
	BMR         float64               `json:"bmr"`
	TDEE        float64               `json:"tdee"`
	BMI         float64               `json:"bmi"`
	BMICategory string                `json:"bmiCategory"`
	Complete    bool                  `json:"complete"`
}

// SaveProfile validates and upserts a user's profile.
func (s *GoalService) SaveProfile(ctx context.Context, p domain.Profile, now time.Time) error {
	if p.WeightKg < 0 || p.HeightCm < 0 || p.Age < 0 {
		return errors.New("weight, height, and age must not be negative")
	}
	switch p.Gender {
	case "", domain.GenderMale, domain.GenderFemale, domain.GenderOther:
	default:
		return errors.New("unknown gender")
	}
	switch p.ActivityLevel {
	case "", domain.ActivitySedentary, domain.ActivityLight, domain.ActivityModerate,
		domain.ActivityActive, domain.ActivityAthlete:
	default:
		return errors.New("unknown activity level")
	}
	p.UpdatedAt = now
	return s.profiles.UpsertProfile(ctx, p)
}

// GetProfile returns the stored profile, or ErrProfileNotFound.
func (s *GoalService) GetProfile(ctx context.Context, userID int64) (*domain.Profile, error) {
	p, err := s.profiles.ProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProfileNotFound
	}
	return p, nil
}

// GetGoals computes the daily targets for a user's stored profile. Targets
// are recomputed on every call; nothing is cached here.
func (s *GoalService) GetGoals(ctx context.Context, userID int64) (*GoalsView, error) {
	p, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	goals := domain.CalculateGoals(*p)
	bmi := domain.CalculateBMI(p.WeightKg, p.HeightCm)
	return &GoalsView{
		Goals:       goals,
		BMR:         domain.CalculateBMR(*p),
		TDEE:        domain.CalculateTDEE(*p),
		BMI:         bmi,
		BMICategory: domain.BMICategory(bmi),
		Complete:    goals.Calories > 0,
	}, nil
}
