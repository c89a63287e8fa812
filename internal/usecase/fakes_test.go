package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"grad-match/internal/domain/candidate"
	"grad-match/internal/domain/posting"
)

type fakeCandidates struct {
	items map[int]candidate.Candidate
	err   error
}

func (f *fakeCandidates) GetByID(_ context.Context, id int) (candidate.Candidate, error) {
	if f.err != nil {
		return candidate.Candidate{}, f.err
	}
	c, ok := f.items[id]
	if !ok {
		return candidate.Candidate{}, candidate.ErrNotFound
	}
	return c, nil
}

func (f *fakeCandidates) GetByNationalID(_ context.Context, nationalID string) (candidate.Candidate, error) {
	if f.err != nil {
		return candidate.Candidate{}, f.err
	}
	for _, c := range f.items {
		if c.NationalID == nationalID {
			return c, nil
		}
	}
	return candidate.Candidate{}, candidate.ErrNotFound
}

type fakePostings struct {
	items []posting.Posting
	err   error
	calls int
}

func (f *fakePostings) List(context.Context) ([]posting.Posting, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	locks   map[string]string
	setErr  error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}, locks: map[string]string{}}
}

func (m *memoryCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (m *memoryCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	if m.setErr != nil {
		return m.setErr
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = b
	return nil
}

func (m *memoryCache) AcquireLock(_ context.Context, key, token string, _ time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, held := m.locks[key]; held {
		return false, nil
	}
	m.locks[key] = token
	return true, nil
}

func (m *memoryCache) ReleaseLock(_ context.Context, key, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.locks[key] == token {
		delete(m.locks, key)
	}
	return nil
}

var errStore = errors.New("store down")

func (m *memoryCache) DeleteByPattern(_ context.Context, pattern string) error {
	prefix := strings.TrimSuffix(pattern, "*")
	m.mu.Lock()
	defer m.mu.Unlock()
	for k := range m.entries {
		if strings.HasPrefix(k, prefix) {
			delete(m.entries, k)
		}
	}
	for k := range m.locks {
		if strings.HasPrefix(k, prefix) {
			delete(m.locks, k)
		}
	}
	return nil
}
