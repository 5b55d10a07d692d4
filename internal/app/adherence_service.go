package app

import (
	"context"
	"time"

	"nutricoach/internal/domain"
)

// AdherenceService builds the weekly adherence dashboard from the meal log
// and the profile-derived calorie target.
type AdherenceService struct {
	profiles domain.ProfileRepository
	meals    domain.MealRepository
}

// NewAdherenceService creates an AdherenceService backed by the given
// repositories.
func NewAdherenceService(profiles domain.ProfileRepository, meals domain.MealRepository) *AdherenceService {
	return &AdherenceService{profiles: profiles, meals: meals}
}

// WeekReport bundles the scored week with its presentation message.
type WeekReport struct {
	TargetCalories int                     `json:"targetCalories"`
	Report         domain.AdherenceReport  `json:"report"`
	Message        domain.AdherenceMessage `json:"message"`
}

// GetWeekReport scores the 7 days ending at today. A missing or incomplete
// profile yields a zero target, which the scorer treats as 0% days; callers
// should steer those users back to onboarding.
func (s *AdherenceService) GetWeekReport(ctx context.Context, userID int64, today time.Time) (*WeekReport, error) {
	target := 0
	profile, err := s.profiles.ProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		target = domain.CalculateGoals(*profile).Calories
	}

	from := today.AddDate(0, 0, -6).Format(domain.DayLayout)
	to := today.Format(domain.DayLayout)
	log, err := s.meals.IntakeForRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	report := domain.BuildAdherenceReport(log, target, today, domain.DefaultCreditRequired)
	return &WeekReport{
		TargetCalories: target,
		Report:         report,
		Message:        domain.MessageForReport(report),
	}, nil
}
