package app_test

import (
	"context"
	"testing"
	"time"

	"nutricoach/internal/app"
	"nutricoach/internal/domain"
)

type mockProfileRepo struct {
	upsertFn func(ctx context.Context, p domain.Profile) error
	getFn    func(ctx context.Context, userID int64) (*domain.Profile, error)
}

func (m *mockProfileRepo) UpsertProfile(ctx context.Context, p domain.Profile) error {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, p)
	}
	return nil
}

func (m *mockProfileRepo) ProfileByUserID(ctx context.Context, userID int64) (*domain.Profile, error) {
	if m.getFn != nil {
		return m.getFn(ctx, userID)
	}
	return nil, nil
}

func TestSaveProfile_Validation(t *testing.T) {
	svc := app.NewGoalService(&mockProfileRepo{})
	now := time.Now()

	tests := []struct {
		name    string
		profile domain.Profile
	}{
		{"negative weight", domain.Profile{WeightKg: -1}},
		{"negative height", domain.Profile{HeightCm: -170}},
		{"negative age", domain.Profile{Age: -30}},
		{"unknown gender", domain.Profile{Gender: "robot"}},
		{"unknown activity level", domain.Profile{ActivityLevel: "couch"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := svc.SaveProfile(context.Background(), tc.profile, now); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestSaveProfile_StampsUpdatedAt(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	var stored domain.Profile
	repo := &mockProfileRepo{
		upsertFn: func(_ context.Context, p domain.Profile) error {
			stored = p
			return nil
		},
	}
	svc := app.NewGoalService(repo)
	p := domain.Profile{UserID: 1, WeightKg: 70, HeightCm: 175, Age: 30, Gender: domain.GenderMale}
	if err := svc.SaveProfile(context.Background(), p, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !stored.UpdatedAt.Equal(now) {
		t.Errorf("UpdatedAt = %v; want %v", stored.UpdatedAt, now)
	}
}

func TestGetGoals_NotFound(t *testing.T) {
	svc := app.NewGoalService(&mockProfileRepo{})
	_, err := svc.GetGoals(context.Background(), 1)
	if err != app.ErrProfileNotFound {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestGetGoals_Complete(t *testing.T) {
	repo := &mockProfileRepo{
		getFn: func(_ context.Context, _ int64) (*domain.Profile, error) {
			return &domain.Profile{
				UserID:        1,
				WeightKg:      70,
				HeightCm:      175,
				Age:           30,
				Gender:        domain.GenderMale,
				ActivityLevel: domain.ActivityModerate,
			}, nil
		},
	}
	svc := app.NewGoalService(repo)
	view, err := svc.GetGoals(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !view.Complete {
		t.Error("expected Complete for a full profile")
	}
	if view.Goals.Calories != 2556 { // round(1648.75 × 1.55)
		t.Errorf("Calories = %d; want 2556", view.Goals.Calories)
	}
	if view.BMICategory != "normal" {
		t.Errorf("BMICategory = %q; want normal", view.BMICategory)
	}
}

func TestGetGoals_IncompleteProfileIsSentinel(t *testing.T) {
	repo := &mockProfileRepo{
		getFn: func(_ context.Context, _ int64) (*domain.Profile, error) {
			return &domain.Profile{UserID: 1, HeightCm: 175, Age: 30, Gender: domain.GenderFemale}, nil
		},
	}
	svc := app.NewGoalService(repo)
	view, err := svc.GetGoals(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Complete {
		t.Error("expected Complete=false for missing weight")
	}
	if view.Goals.Calories != 0 {
		t.Errorf("Calories = %d; want 0 sentinel", view.Goals.Calories)
	}
}
