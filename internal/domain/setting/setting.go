// Package setting holds the key/value application settings, of which the
// check-in cutoff time is the only key today.
package setting

import (
	"context"
	"errors"
)

const (
	CutoffKey     = "cutoffTime"
	DefaultCutoff = "08:00"
)

var ErrSettingNotFound = errors.New("setting not found")

// Repository persists settings with upsert-on-write semantics.
type Repository interface {
	// Get returns ErrSettingNotFound when the key was never written.
	Get(ctx context.Context, key string) (string, error)

	// Set creates or replaces the value and returns what was stored.
	Set(ctx context.Context, key, value string) (string, error)
}

// Store is the read-through accessor for the cutoff setting. It is read on
// every classification; a change is visible immediately to all subsequent
// reads, including re-classification of historical records.
type Store struct {
	repo Repository
}

func NewStore(repo Repository) *Store {
	return &Store{repo: repo}
}

// CutoffTime returns the configured cutoff, or the compiled-in default when
// the setting was never written.
func (s *Store) CutoffTime(ctx context.Context) (string, error) {
	value, err := s.repo.Get(ctx, CutoffKey)
	if err != nil {
		if errors.Is(err, ErrSettingNotFound) {
			return DefaultCutoff, nil
		}
		return "", err
	}
	return value, nil
}

// SetCutoffTime stores a new cutoff, creating the setting on first write.
func (s *Store) SetCutoffTime(ctx context.Context, value string) (string, error) {
	return s.repo.Set(ctx, CutoffKey, value)
}
