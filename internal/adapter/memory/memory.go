// Package memory implements in-memory repositories for development and testing.
package memory

import (
	"context"
	"sync"
	"time"

	"nutricoach/internal/domain"
)

// DB implements every repository port in memory.
type DB struct {
	mu       sync.Mutex
	users    []*domain.User
	sessions map[string]*domain.Session
	profiles map[int64]domain.Profile
	entries  []domain.FoodEntry

	userIDCounter  int64
	entryIDCounter int64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{
		sessions: make(map[string]*domain.Session),
		profiles: make(map[int64]domain.Profile),
	}
}

// Ensure interfaces are met.
var _ domain.UserRepository = (*DB)(nil)
var _ domain.ProfileRepository = (*DB)(nil)
var _ domain.MealRepository = (*DB)(nil)
var _ domain.SessionRepository = (*SessionRepo)(nil)

// --- UserRepository ---

// GetByUsername returns the user with the given username, or nil.
func (db *DB) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	for _, u := range db.users {
		if u.Username == username {
			out := *u
			return &out, nil
		}
	}
	return nil, nil
}

// GetByID returns the user with the given ID, or nil.
func (db *DB) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	for _, u := range db.users {
		if u.ID == id {
			out := *u
			return &out, nil
		}
	}
	return nil, nil
}

// Create adds a new user.
func (db *DB) Create(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.userIDCounter++
	u := &domain.User{
		ID:           db.userIDCounter,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	db.users = append(db.users, u)
	out := *u
	return &out, nil
}

// Count returns the number of users.
func (db *DB) Count(ctx context.Context) (int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.users), nil
}

// --- SessionRepository ---

// SessionRepo exposes the session operations of a DB. It is a separate type
// because both user and session ports declare a Create method.
type SessionRepo struct {
	db *DB
}

// NewSessionRepo wraps a DB as a SessionRepository.
func NewSessionRepo(db *DB) *SessionRepo {
	return &SessionRepo{db: db}
}

// Create stores a new session.
func (r *SessionRepo) Create(ctx context.Context, userID int64, token, userAgent, ip string, expiresAt time.Time) error {
	db := r.db
	db.mu.Lock()
	defer db.mu.Unlock()
	db.sessions[token] = &domain.Session{
		Token:     token,
		UserID:    userID,
		UserAgent: userAgent,
		IP:        ip,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}
	return nil
}

// GetByToken returns the session for the token, or nil.
func (r *SessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	s, ok := r.db.sessions[token]
	if !ok {
		return nil, nil
	}
	out := *s
	return &out, nil
}

// Delete removes a session.
func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	delete(r.db.sessions, token)
	return nil
}

// DeleteExpired removes all expired sessions.
func (r *SessionRepo) DeleteExpired(ctx context.Context) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	now := time.Now()
	for token, s := range r.db.sessions {
		if now.After(s.ExpiresAt) {
			delete(r.db.sessions, token)
		}
	}
	return nil
}

// --- ProfileRepository ---

// UpsertProfile stores or replaces a user's profile.
func (db *DB) UpsertProfile(ctx context.Context, p domain.Profile) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.profiles[p.UserID] = p
	return nil
}

// ProfileByUserID returns a copy of the stored profile, or nil.
func (db *DB) ProfileByUserID(ctx context.Context, userID int64) (*domain.Profile, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	p, ok := db.profiles[userID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// --- MealRepository ---

// AddFoodEntry stores a food entry.
func (db *DB) AddFoodEntry(ctx context.Context, e domain.FoodEntry) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.entryIDCounter++
	e.ID = db.entryIDCounter
	db.entries = append(db.entries, e)
	return e.ID, nil
}

// DeleteFoodEntry removes an entry by ID, scoped to a user.
func (db *DB) DeleteFoodEntry(ctx context.Context, userID, id int64) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	for i, e := range db.entries {
		if e.ID == id && e.UserID == userID {
			db.entries = append(db.entries[:i], db.entries[i+1:]...)
			return nil
		}
	}
	return nil
}

// EntriesForDay returns a user's entries for one day in insertion order.
func (db *DB) EntriesForDay(ctx context.Context, userID int64, day string) ([]domain.FoodEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	var out []domain.FoodEntry
	for _, e := range db.entries {
		if e.UserID == userID && e.Day == day {
			out = append(out, e)
		}
	}
	return out, nil
}

// IntakeForRange aggregates entries into per-day, per-slot sums for the
// inclusive day range.
func (db *DB) IntakeForRange(ctx context.Context, userID int64, fromDay, toDay string) (map[string]domain.DayIntake, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	out := make(map[string]domain.DayIntake)
	for _, e := range db.entries {
		if e.UserID != userID || e.Day < fromDay || e.Day > toDay {
			continue
		}
		intake := out[e.Day]
		if intake.Slots == nil {
			intake.Slots = make(map[domain.MealSlot]domain.NormalizedNutrition)
		}
		intake.Slots[e.Slot] = intake.Slots[e.Slot].Add(e.Nutrition)
		out[e.Day] = intake
	}
	return out, nil
}
