// File: services/appointment/service_test.go
package appointment

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"appointly/models"
	"appointly/services/blockeddates"
	"appointly/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

type fakeAppointmentRepo struct {
	mu     sync.Mutex
	appts  []models.Appointment
	nextID int
}

func (f *fakeAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.appts {
		if f.appts[i].ID == id {
			a := f.appts[i]
			return &a, nil
		}
	}
	return nil, nil
}

func (f *fakeAppointmentRepo) GetAll(ctx context.Context) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Appointment, len(f.appts))
	copy(out, f.appts)
	return out, nil
}

func (f *fakeAppointmentRepo) GetByUserID(ctx context.Context, userID string) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Appointment
	for _, a := range f.appts {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) GetAllWithUserDetails(ctx context.Context) ([]models.AppointmentWithUser, error) {
	all, _ := f.GetAll(ctx)
	out := make([]models.AppointmentWithUser, len(all))
	for i, a := range all {
		out[i] = models.AppointmentWithUser{Appointment: a}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, appt *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if appt.ID == "" {
		f.nextID++
		appt.ID = fmt.Sprintf("appt-%03d", f.nextID)
	}
	f.appts = append(f.appts, *appt)
	return nil
}

func (f *fakeAppointmentRepo) Update(ctx context.Context, id string, fields map[string]any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.appts {
		if f.appts[i].ID != id {
			continue
		}
		if title, ok := fields["title"].(string); ok {
			f.appts[i].Title = title
		}
		if loc, ok := fields["location"].(string); ok {
			f.appts[i].Location = loc
		}
		if date, ok := fields["date"].(time.Time); ok {
			f.appts[i].Date = date
		}
		if cancelled, ok := fields["cancelled"].(bool); ok {
			f.appts[i].Cancelled = cancelled
		}
		if reason, ok := fields["cancellationReason"].(string); ok {
			f.appts[i].CancellationReason = reason
		}
		return nil
	}
	return mongo.ErrNoDocuments
}

func (f *fakeAppointmentRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.appts {
		if f.appts[i].ID == id {
			f.appts = append(f.appts[:i], f.appts[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (f *fakeAppointmentRepo) EnsureIndexes() error { return nil }

type fakeUserLookup struct {
	users map[string]models.User // keyed by lowercased email
}

func (f *fakeUserLookup) GetByID(ctx context.Context, id string) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserLookup) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if u, ok := f.users[strings.ToLower(email)]; ok {
		return &u, nil
	}
	return nil, nil
}

func (f *fakeUserLookup) GetAll(ctx context.Context) ([]models.User, error) { return nil, nil }
func (f *fakeUserLookup) Create(ctx context.Context, u *models.User) error  { return nil }
func (f *fakeUserLookup) Update(ctx context.Context, id string, fields map[string]any) error {
	return nil
}
func (f *fakeUserLookup) Delete(ctx context.Context, id string) error { return nil }
func (f *fakeUserLookup) EnsureIndexes() error                        { return nil }

// blockedDay satisfies the registry contract with a fixed set of blocked days.
type blockedDay struct {
	blockeddates.BlockedDateService
	days map[string]string
}

func (b blockedDay) CheckDate(ctx context.Context, date string) (*models.DateCheck, error) {
	check := &models.DateCheck{Date: date}
	if reason, ok := b.days[date]; ok {
		check.Blocked = true
		check.Reason = reason
	}
	return check, nil
}

func newTestService(blocked map[string]string) (*DefaultAppointmentService, *fakeAppointmentRepo) {
	repo := &fakeAppointmentRepo{}
	svc := &DefaultAppointmentService{
		Repo: repo,
		Users: &fakeUserLookup{users: map[string]models.User{
			"katie@example.com": {ID: "user-001", Name: "Katie", Email: "katie@example.com"},
		}},
		BlockedDates: blockedDay{days: blocked},
	}
	return svc, repo
}

func TestCreateAppointment(t *testing.T) {
	svc, _ := newTestService(nil)
	ctx := context.Background()

	appt, err := svc.Create(ctx, models.CreateAppointmentRequest{
		UserID:   "user-001",
		Title:    "Consultation",
		Date:     time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC),
		Location: "Studio",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if appt.ID == "" || appt.UserID != "user-001" {
		t.Errorf("unexpected appointment: %+v", appt)
	}

	got, err := svc.GetByID(ctx, appt.ID)
	if err != nil || got.Title != "Consultation" {
		t.Errorf("GetByID returned %+v, %v", got, err)
	}
}

func TestCreateOnBlockedDateConflicts(t *testing.T) {
	svc, repo := newTestService(map[string]string{"2026-09-15": "Holiday"})
	ctx := context.Background()

	_, err := svc.Create(ctx, models.CreateAppointmentRequest{
		UserID:   "user-001",
		Title:    "Consultation",
		Date:     time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC),
		Location: "Studio",
	})
	if code := utils.ErrorCode(err); code != utils.CodeConflict {
		t.Fatalf("expected conflict on blocked date, got %v", err)
	}
	if all, _ := repo.GetAll(ctx); len(all) != 0 {
		t.Error("appointment persisted despite blocked date")
	}

	// The adjacent free day books fine.
	_, err = svc.Create(ctx, models.CreateAppointmentRequest{
		UserID:   "user-001",
		Title:    "Consultation",
		Date:     time.Date(2026, 9, 16, 10, 0, 0, 0, time.UTC),
		Location: "Studio",
	})
	if err != nil {
		t.Errorf("booking on free day failed: %v", err)
	}
}

func TestCreateResolvesOwnerFromAttendee(t *testing.T) {
	svc, _ := newTestService(nil)
	ctx := context.Background()

	appt, err := svc.Create(ctx, models.CreateAppointmentRequest{
		Title:     "Consultation",
		Date:      time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC),
		Location:  "Studio",
		Attendees: []models.Attendee{{Name: "Katie", Email: "Katie@Example.com"}},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if appt.UserID != "user-001" {
		t.Errorf("owner not resolved from attendee email, got %q", appt.UserID)
	}

	_, err = svc.Create(ctx, models.CreateAppointmentRequest{
		Title:     "Consultation",
		Date:      time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC),
		Location:  "Studio",
		Attendees: []models.Attendee{{Name: "Ghost", Email: "ghost@example.com"}},
	})
	if code := utils.ErrorCode(err); code != utils.CodeInvalidArgument {
		t.Errorf("expected invalidArgument for unknown attendee, got %v", err)
	}
}

func TestRescheduleChecksBlockedDate(t *testing.T) {
	svc, _ := newTestService(map[string]string{"2026-09-20": "Holiday"})
	ctx := context.Background()

	appt, err := svc.Create(ctx, models.CreateAppointmentRequest{
		UserID:   "user-001",
		Title:    "Consultation",
		Date:     time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC),
		Location: "Studio",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	onto := time.Date(2026, 9, 20, 10, 0, 0, 0, time.UTC)
	_, err = svc.Update(ctx, appt.ID, models.UpdateAppointmentRequest{Date: &onto})
	if code := utils.ErrorCode(err); code != utils.CodeConflict {
		t.Errorf("expected conflict rescheduling onto blocked date, got %v", err)
	}

	free := time.Date(2026, 9, 21, 10, 0, 0, 0, time.UTC)
	updated, err := svc.Update(ctx, appt.ID, models.UpdateAppointmentRequest{Date: &free})
	if err != nil {
		t.Fatalf("reschedule failed: %v", err)
	}
	if !updated.Date.Equal(free) {
		t.Errorf("date not updated, got %v", updated.Date)
	}
}

func TestCancelAppointment(t *testing.T) {
	svc, _ := newTestService(nil)
	ctx := context.Background()

	appt, err := svc.Create(ctx, models.CreateAppointmentRequest{
		UserID:   "user-001",
		Title:    "Consultation",
		Date:     time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC),
		Location: "Studio",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	cancelled, err := svc.Cancel(ctx, appt.ID, "client request")
	if err != nil {
		t.Fatalf("Cancel failed: %v", err)
	}
	if !cancelled.Cancelled || cancelled.CancellationReason != "client request" {
		t.Errorf("unexpected cancelled state: %+v", cancelled)
	}

	_, err = svc.Cancel(ctx, "no-such-id", "")
	if code := utils.ErrorCode(err); code != utils.CodeNotFound {
		t.Errorf("expected notFound, got %v", err)
	}
}

func TestUpdateValidation(t *testing.T) {
	svc, _ := newTestService(nil)
	ctx := context.Background()

	appt, err := svc.Create(ctx, models.CreateAppointmentRequest{
		UserID:   "user-001",
		Title:    "Consultation",
		Date:     time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC),
		Location: "Studio",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	_, err = svc.Update(ctx, appt.ID, models.UpdateAppointmentRequest{})
	if code := utils.ErrorCode(err); code != utils.CodeInvalidArgument {
		t.Errorf("expected invalidArgument for empty update, got %v", err)
	}

	_, err = svc.Update(ctx, "no-such-id", models.UpdateAppointmentRequest{Title: "x"})
	if code := utils.ErrorCode(err); code != utils.CodeNotFound {
		t.Errorf("expected notFound for unknown id, got %v", err)
	}
}
