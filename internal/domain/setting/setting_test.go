package setting

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRepo struct {
	values map[string]string
	err    error
}

func (m *memoryRepo) Get(_ context.Context, key string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	value, ok := m.values[key]
	if !ok {
		return "", ErrSettingNotFound
	}
	return value, nil
}

func (m *memoryRepo) Set(_ context.Context, key, value string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.values[key] = value
	return value, nil
}

func TestCutoffTimeDefaultsWhenUnset(t *testing.T) {
	store := NewStore(&memoryRepo{values: map[string]string{}})

	cutoff, err := store.CutoffTime(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DefaultCutoff, cutoff)
}

func TestCutoffTimeReadsStoredValue(t *testing.T) {
	store := NewStore(&memoryRepo{values: map[string]string{CutoffKey: "09:30"}})

	cutoff, err := store.CutoffTime(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "09:30", cutoff)
}

func TestCutoffTimePropagatesStorageErrors(t *testing.T) {
	storageErr := errors.New("connection refused")
	store := NewStore(&memoryRepo{err: storageErr})

	_, err := store.CutoffTime(context.Background())
	assert.ErrorIs(t, err, storageErr)
}

func TestSetCutoffTimeWritesThrough(t *testing.T) {
	repo := &memoryRepo{values: map[string]string{}}
	store := NewStore(repo)

	stored, err := store.SetCutoffTime(context.Background(), "07:45")
	require.NoError(t, err)
	assert.Equal(t, "07:45", stored)
	assert.Equal(t, "07:45", repo.values[CutoffKey])
}
