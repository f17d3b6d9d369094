// File: services/blockeddates/bulk_test.go
package blockeddates

import (
	"context"
	"testing"

	"appointly/models"
	"appointly/utils"
)

func TestBlockManyInsertsAndSkips(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.Block(ctx, "2026-09-16", "Holiday", ""); err != nil {
		t.Fatalf("seed Block failed: %v", err)
	}

	// One already blocked, one repeated in the batch, two fresh.
	res, err := svc.BlockMany(ctx,
		[]string{"2026-09-15", "2026-09-16", "2026-09-17", "2026-09-15"}, "", "")
	if err != nil {
		t.Fatalf("BlockMany failed: %v", err)
	}
	if res.InsertedCount != 2 {
		t.Errorf("expected 2 inserted, got %d", res.InsertedCount)
	}
	if len(res.SkippedDates) != 2 {
		t.Fatalf("expected 2 skipped dates, got %v", res.SkippedDates)
	}
	skipped := map[string]bool{}
	for _, d := range res.SkippedDates {
		skipped[d] = true
	}
	if !skipped["2026-09-16"] || !skipped["2026-09-15"] {
		t.Errorf("unexpected skipped set: %v", res.SkippedDates)
	}

	// The default reason applies to the inserted records.
	check, err := svc.CheckDate(ctx, "2026-09-17")
	if err != nil {
		t.Fatalf("CheckDate failed: %v", err)
	}
	if !check.Blocked || check.Reason != DefaultBulkReason {
		t.Errorf("expected default reason %q, got %+v", DefaultBulkReason, check)
	}
	// The pre-existing record keeps its original reason.
	check, _ = svc.CheckDate(ctx, "2026-09-16")
	if check.Reason != "Holiday" {
		t.Errorf("pre-existing record overwritten: %+v", check)
	}
}

func TestBlockManyValidationIsAllOrNothing(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	_, err := svc.BlockMany(ctx, []string{"2026-09-15", "september 16th"}, "Holiday", "")
	if err == nil {
		t.Fatal("expected validation error")
	}
	if code := utils.ErrorCode(err); code != utils.CodeInvalidArgument {
		t.Errorf("expected code %q, got %q", utils.CodeInvalidArgument, code)
	}
	all, _ := repo.GetAll(ctx)
	if len(all) != 0 {
		t.Errorf("registry mutated despite validation failure: %d records", len(all))
	}
}

func TestBlockManyEmptyBatch(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.BlockMany(context.Background(), nil, "Holiday", "")
	if code := utils.ErrorCode(err); code != utils.CodeInvalidArgument {
		t.Errorf("expected invalidArgument for empty batch, got %v", err)
	}
}

func TestBlockManyAllDuplicates(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	if _, err := svc.Block(ctx, "2026-09-15", "Holiday", ""); err != nil {
		t.Fatalf("seed Block failed: %v", err)
	}

	res, err := svc.BlockMany(ctx, []string{"2026-09-15"}, "Again", "")
	if err != nil {
		t.Fatalf("BlockMany failed: %v", err)
	}
	if res.InsertedCount != 0 || len(res.SkippedDates) != 1 {
		t.Errorf("expected 0 inserted / 1 skipped, got %+v", res)
	}
}

func TestBlockManyCarriesPattern(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	res, err := svc.BlockMany(ctx, []string{"2026-09-15"}, "Weekly closure", models.RecurWeekly)
	if err != nil {
		t.Fatalf("BlockMany failed: %v", err)
	}
	if res.InsertedCount != 1 {
		t.Fatalf("expected 1 inserted, got %d", res.InsertedCount)
	}
	all, _ := svc.ListAll(ctx)
	if all[0].RecurringPattern != models.RecurWeekly {
		t.Errorf("pattern not carried, got %q", all[0].RecurringPattern)
	}

	if _, err := svc.BlockMany(ctx, []string{"2026-09-18"}, "x", "hourly"); err == nil {
		t.Error("expected error for unknown pattern")
	}
}
