// File: services/blockeddates/consistency_test.go
package blockeddates

import (
	"context"
	"reflect"
	"testing"
	"time"

	"appointly/models"
)

func TestValidateConsistencyClean(t *testing.T) {
	svc, repo := newTestService()
	repo.seed(
		models.BlockedDate{Date: "2026-09-15", Reason: "x"},
		models.BlockedDate{Date: "2026-09-16", Reason: "x"},
	)

	report, err := svc.ValidateConsistency(context.Background())
	if err != nil {
		t.Fatalf("ValidateConsistency failed: %v", err)
	}
	if !report.IsValid || report.TotalCount != 2 || len(report.DuplicateDates) != 0 {
		t.Errorf("unexpected report for clean registry: %+v", report)
	}
}

func TestValidateConsistencyReportsDuplicatesSorted(t *testing.T) {
	svc, repo := newTestService()
	repo.seed(
		models.BlockedDate{Date: "2026-09-20", Reason: "x"},
		models.BlockedDate{Date: "2026-09-15", Reason: "x"},
		models.BlockedDate{Date: "2026-09-20", Reason: "y"},
		models.BlockedDate{Date: "2026-09-10", Reason: "x"},
		models.BlockedDate{Date: "2026-09-10", Reason: "y"},
		models.BlockedDate{Date: "2026-09-10", Reason: "z"},
	)

	report, err := svc.ValidateConsistency(context.Background())
	if err != nil {
		t.Fatalf("ValidateConsistency failed: %v", err)
	}
	if report.IsValid {
		t.Error("expected IsValid=false with duplicates present")
	}
	if report.TotalCount != 6 {
		t.Errorf("expected total 6, got %d", report.TotalCount)
	}
	want := []string{"2026-09-10", "2026-09-20"}
	if !reflect.DeepEqual(report.DuplicateDates, want) {
		t.Errorf("expected duplicates %v, got %v", want, report.DuplicateDates)
	}
}

func TestForceSyncKeepsOldestPerDate(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	base := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	repo.seed(
		models.BlockedDate{ID: "new", Date: "2026-09-15", Reason: "late", CreatedAt: base.Add(time.Hour)},
		models.BlockedDate{ID: "old", Date: "2026-09-15", Reason: "early", CreatedAt: base},
		models.BlockedDate{ID: "solo", Date: "2026-09-16", Reason: "x", CreatedAt: base},
	)

	res, err := svc.ForceSync(ctx)
	if err != nil {
		t.Fatalf("ForceSync failed: %v", err)
	}
	if res.OriginalCount != 3 || res.UniqueCount != 2 || res.RemovedCount != 1 {
		t.Errorf("unexpected sync result: %+v", res)
	}

	check, _ := svc.CheckDate(ctx, "2026-09-15")
	if check.Reason != "early" {
		t.Errorf("expected the oldest record to survive, got reason %q", check.Reason)
	}
	check, _ = svc.CheckDate(ctx, "2026-09-16")
	if !check.Blocked {
		t.Error("untouched record lost during sync")
	}
}

func TestForceSyncTiebreakOnID(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	at := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	// Identical createdAt: the lower id wins deterministically.
	repo.seed(
		models.BlockedDate{ID: "b", Date: "2026-09-15", Reason: "second", CreatedAt: at},
		models.BlockedDate{ID: "a", Date: "2026-09-15", Reason: "first", CreatedAt: at},
	)

	if _, err := svc.ForceSync(ctx); err != nil {
		t.Fatalf("ForceSync failed: %v", err)
	}
	check, _ := svc.CheckDate(ctx, "2026-09-15")
	if check.Reason != "first" {
		t.Errorf("expected id tiebreak to keep %q, got %q", "first", check.Reason)
	}
}

func TestForceSyncIdempotentOnCleanRegistry(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	repo.seed(
		models.BlockedDate{Date: "2026-09-15", Reason: "x"},
		models.BlockedDate{Date: "2026-09-16", Reason: "x"},
	)

	res, err := svc.ForceSync(ctx)
	if err != nil {
		t.Fatalf("ForceSync failed: %v", err)
	}
	if res.RemovedCount != 0 || res.OriginalCount != 2 || res.UniqueCount != 2 {
		t.Errorf("clean registry should be untouched: %+v", res)
	}

	report, _ := svc.ValidateConsistency(ctx)
	if !report.IsValid {
		t.Error("registry invalid after no-op sync")
	}
}
