// File: services/blockeddates/repo_fake_test.go
package blockeddates

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"appointly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// fakeBlockedDateRepo is an in-memory stand-in for the Mongo repository. It
// mimics the unique index on date by failing Create with a duplicate-key
// write error, and mimics unordered CreateMany by skipping duplicates
// instead of failing. seed bypasses the uniqueness check so tests can stage
// a corrupted collection.
type fakeBlockedDateRepo struct {
	mu      sync.Mutex
	records []models.BlockedDate
	nextID  int
}

func dupKeyErr() error {
	return mongo.WriteException{
		WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key error"}},
	}
}

func (f *fakeBlockedDateRepo) seed(recs ...models.BlockedDate) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, rec := range recs {
		if rec.ID == "" {
			f.nextID++
			rec.ID = fmt.Sprintf("bd-%03d", f.nextID)
		}
		f.records = append(f.records, rec)
	}
}

func (f *fakeBlockedDateRepo) GetAll(ctx context.Context) ([]models.BlockedDate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.BlockedDate, len(f.records))
	copy(out, f.records)
	return out, nil
}

func (f *fakeBlockedDateRepo) GetAllSorted(ctx context.Context) ([]models.BlockedDate, error) {
	out, _ := f.GetAll(ctx)
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (f *fakeBlockedDateRepo) GetByDate(ctx context.Context, date string) (*models.BlockedDate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.records {
		if f.records[i].Date == date {
			rec := f.records[i]
			return &rec, nil
		}
	}
	return nil, nil
}

func (f *fakeBlockedDateRepo) GetInRange(ctx context.Context, start, end string) ([]models.BlockedDate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.BlockedDate
	for _, rec := range f.records {
		if rec.Date >= start && rec.Date <= end {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeBlockedDateRepo) Create(ctx context.Context, bd *models.BlockedDate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, rec := range f.records {
		if rec.Date == bd.Date {
			return dupKeyErr()
		}
	}
	if bd.ID == "" {
		f.nextID++
		bd.ID = fmt.Sprintf("bd-%03d", f.nextID)
	}
	f.records = append(f.records, *bd)
	return nil
}

func (f *fakeBlockedDateRepo) CreateMany(ctx context.Context, records []models.BlockedDate) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	have := make(map[string]bool, len(f.records))
	for _, rec := range f.records {
		have[rec.Date] = true
	}
	inserted := 0
	for _, rec := range records {
		if have[rec.Date] {
			continue
		}
		have[rec.Date] = true
		if rec.ID == "" {
			f.nextID++
			rec.ID = fmt.Sprintf("bd-%03d", f.nextID)
		}
		f.records = append(f.records, rec)
		inserted++
	}
	return inserted, nil
}

func (f *fakeBlockedDateRepo) Update(ctx context.Context, id string, fields map[string]any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.records {
		if f.records[i].ID != id {
			continue
		}
		if date, ok := fields["date"].(string); ok {
			for j := range f.records {
				if j != i && f.records[j].Date == date {
					return dupKeyErr()
				}
			}
			f.records[i].Date = date
		}
		if reason, ok := fields["reason"].(string); ok {
			f.records[i].Reason = reason
		}
		if pattern, ok := fields["recurringPattern"].(string); ok {
			f.records[i].RecurringPattern = pattern
		}
		return nil
	}
	return mongo.ErrNoDocuments
}

func (f *fakeBlockedDateRepo) DeleteByID(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.records {
		if f.records[i].ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (f *fakeBlockedDateRepo) DeleteByDate(ctx context.Context, date string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.records {
		if f.records[i].Date == date {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (f *fakeBlockedDateRepo) DeleteByIDs(ctx context.Context, ids []string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	var kept []models.BlockedDate
	var removed int64
	for _, rec := range f.records {
		if drop[rec.ID] {
			removed++
			continue
		}
		kept = append(kept, rec)
	}
	f.records = kept
	return removed, nil
}

func (f *fakeBlockedDateRepo) DeleteAll(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := int64(len(f.records))
	f.records = nil
	return n, nil
}

func (f *fakeBlockedDateRepo) EnsureIndexes() error { return nil }

func newTestService() (*DefaultBlockedDateService, *fakeBlockedDateRepo) {
	repo := &fakeBlockedDateRepo{}
	return &DefaultBlockedDateService{Repo: repo}, repo
}
