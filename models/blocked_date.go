package models

import (
	"regexp"
	"time"
)

// Recurring patterns a blocked date may carry. The pattern is stored as a tag
// only; a record always covers the single concrete Date and is never expanded
// into further dates by the backend.
const (
	RecurNone    = "none"
	RecurWeekly  = "weekly"
	RecurMonthly = "monthly"
	RecurYearly  = "yearly"
)

// BlockedDate marks a calendar day on which no new appointments may be booked.
// Date is the business key: at most one record exists per date.
type BlockedDate struct {
	ID               string    `bson:"id" json:"id"`
	Date             string    `bson:"date" json:"date"` // YYYY-MM-DD, no time component
	Reason           string    `bson:"reason" json:"reason"`
	RecurringPattern string    `bson:"recurringPattern" json:"recurringPattern"`
	CreatedAt        time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time `bson:"updatedAt" json:"updatedAt"`
}

var dateFormatRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidDateFormat reports whether s is a YYYY-MM-DD calendar date string.
// The check is lexical only: "2025-02-31" passes. Fixed-width digits keep
// lexical ordering identical to chronological ordering, which the range
// queries rely on.
func ValidDateFormat(s string) bool {
	return dateFormatRe.MatchString(s)
}

// ValidRecurringPattern reports whether p is one of the known pattern tags.
func ValidRecurringPattern(p string) bool {
	switch p {
	case RecurNone, RecurWeekly, RecurMonthly, RecurYearly:
		return true
	}
	return false
}

// CreateBlockedDateRequest is the payload for blocking a single date.
type CreateBlockedDateRequest struct {
	Date             string `json:"date" binding:"required"`
	Reason           string `json:"reason" binding:"required"`
	RecurringPattern string `json:"recurringPattern"`
}

// UpdateBlockedDateRequest is a partial update; empty fields are left untouched.
type UpdateBlockedDateRequest struct {
	Date             string `json:"date"`
	Reason           string `json:"reason"`
	RecurringPattern string `json:"recurringPattern"`
}

// BulkBlockRequest blocks several dates in one call with a shared reason.
type BulkBlockRequest struct {
	Dates            []string `json:"dates" binding:"required"`
	Reason           string   `json:"reason"`
	RecurringPattern string   `json:"recurringPattern"`
}

// BulkBlockResult reports the outcome of a bulk block: how many records were
// persisted and which input dates were skipped as already blocked.
type BulkBlockResult struct {
	InsertedCount int      `json:"insertedCount"`
	SkippedDates  []string `json:"skippedDates"`
}

// ConsistencyReport is the read-only duplicate scan result.
type ConsistencyReport struct {
	IsValid        bool      `json:"isValid"`
	TotalCount     int       `json:"totalCount"`
	DuplicateDates []string  `json:"duplicateDates"`
	CheckedAt      time.Time `json:"checkedAt"`
}

// SyncResult reports a force-sync repair run.
type SyncResult struct {
	OriginalCount int       `json:"originalCount"`
	UniqueCount   int       `json:"uniqueCount"`
	RemovedCount  int       `json:"removedCount"`
	SyncedAt      time.Time `json:"syncedAt"`
}

// BlockedDateSummary is the compact listing used by frontend sync checks.
type BlockedDateSummary struct {
	TotalBlockedDates int                `json:"totalBlockedDates"`
	BlockedDates      []BlockedDateBrief `json:"blockedDates"`
	LastUpdated       time.Time          `json:"lastUpdated"`
}

// BlockedDateBrief is the date/reason pair used in summaries.
type BlockedDateBrief struct {
	Date   string `json:"date"`
	Reason string `json:"reason"`
}

// DateCheck answers "is this date blocked?".
type DateCheck struct {
	Date    string `json:"date"`
	Blocked bool   `json:"blocked"`
	Reason  string `json:"reason,omitempty"`
}
