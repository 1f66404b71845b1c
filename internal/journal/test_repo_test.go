package journal

import (
	"context"
	"sort"
	"time"
)

type testRepo struct {
	lastID  int
	entries map[int]*Entry
}

func newTestRepo() *testRepo {
	return &testRepo{
		entries: make(map[int]*Entry),
	}
}

func (r *testRepo) Add(_ context.Context, entry *Entry) (*Entry, error) {
	r.lastID++
	entry.ID = r.lastID
	entry.UpdatedAt = entry.CreatedAt
	stored := *entry
	r.entries[entry.ID] = &stored
	return entry, nil
}

func (r *testRepo) Get(_ context.Context, ownerID, id int) (*Entry, error) {
	entry, ok := r.entries[id]
	if !ok || entry.OwnerID != ownerID {
		return nil, ErrEntryNotFound
	}
	e := *entry
	return &e, nil
}

func (r *testRepo) Update(_ context.Context, entry *Entry, now time.Time) error {
	stored, ok := r.entries[entry.ID]
	if !ok || stored.OwnerID != entry.OwnerID {
		return ErrEntryNotFound
	}
	stored.Title = entry.Title
	stored.Content = entry.Content
	stored.UpdatedAt = now
	entry.CreatedAt = stored.CreatedAt
	entry.UpdatedAt = now
	return nil
}

func (r *testRepo) Delete(_ context.Context, ownerID, id int) error {
	entry, ok := r.entries[id]
	if !ok || entry.OwnerID != ownerID {
		return ErrEntryNotFound
	}
	delete(r.entries, id)
	return nil
}

func (r *testRepo) List(_ context.Context, ownerID int) ([]Entry, error) {
	var entries []Entry
	for _, e := range r.entries {
		if e.OwnerID == ownerID {
			entries = append(entries, *e)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].CreatedAt.Equal(entries[j].CreatedAt) {
			return entries[i].ID > entries[j].ID
		}
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	return entries, nil
}
