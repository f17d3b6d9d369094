// File: handlers/blockedDates_test.go
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"appointly/models"
	"appointly/services/blockeddates"
	"appointly/utils"

	"github.com/gin-gonic/gin"
)

// stubBlockedDateService answers CheckDate and Block from a fixed map and
// panics (via the embedded nil interface) on anything else, keeping each
// test pinned to the endpoints it exercises.
type stubBlockedDateService struct {
	blockeddates.BlockedDateService
	blocked map[string]string
}

func (s *stubBlockedDateService) CheckDate(ctx context.Context, date string) (*models.DateCheck, error) {
	if !models.ValidDateFormat(date) {
		return nil, utils.NewInvalidArgument("invalid date format, use YYYY-MM-DD")
	}
	check := &models.DateCheck{Date: date}
	if reason, ok := s.blocked[date]; ok {
		check.Blocked = true
		check.Reason = reason
	}
	return check, nil
}

func (s *stubBlockedDateService) Block(ctx context.Context, date, reason, pattern string) (*models.BlockedDate, error) {
	if !models.ValidDateFormat(date) {
		return nil, utils.NewInvalidArgument("invalid date format, use YYYY-MM-DD")
	}
	if _, ok := s.blocked[date]; ok {
		return nil, utils.NewConflict("date is already blocked")
	}
	s.blocked[date] = reason
	return &models.BlockedDate{ID: "bd-001", Date: date, Reason: reason}, nil
}

func newTestRouter(svc blockeddates.BlockedDateService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewBlockedDateHandler(svc)
	r.GET("/api/blocked-dates/check/:date", h.CheckDateHandler)
	r.POST("/api/blocked-dates", h.CreateHandler)
	return r
}

func TestCheckDateHandler(t *testing.T) {
	router := newTestRouter(&stubBlockedDateService{
		blocked: map[string]string{"2026-09-15": "Holiday"},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/blocked-dates/check/2026-09-15", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var check models.DateCheck
	if err := json.Unmarshal(w.Body.Bytes(), &check); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if !check.Blocked || check.Reason != "Holiday" {
		t.Errorf("unexpected check: %+v", check)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/blocked-dates/check/not-a-date", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed date, got %d", w.Code)
	}
}

func TestCreateHandlerStatusCodes(t *testing.T) {
	router := newTestRouter(&stubBlockedDateService{
		blocked: map[string]string{"2026-09-15": "Holiday"},
	})

	post := func(body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/blocked-dates", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		return w
	}

	if w := post(`{"date":"2026-09-16","reason":"Maintenance"}`); w.Code != http.StatusCreated {
		t.Errorf("expected 201 for new date, got %d: %s", w.Code, w.Body.String())
	}
	if w := post(`{"date":"2026-09-15","reason":"Again"}`); w.Code != http.StatusConflict {
		t.Errorf("expected 409 for duplicate date, got %d", w.Code)
	}
	if w := post(`not json`); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed body, got %d", w.Code)
	}
}
