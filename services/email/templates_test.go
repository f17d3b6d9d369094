// File: services/email/templates_test.go
package email

import (
	"strings"
	"testing"
)

func testService() *DefaultEmailService {
	return &DefaultEmailService{
		From:        "bookings@example.com",
		ContactAddr: "hello@example.com",
		FrontendURL: "https://booking.example.com",
	}
}

func TestRenderWrapsBodyInLayout(t *testing.T) {
	svc := testService()
	html, err := svc.render("Test Heading", para("hello there"))
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	for _, want := range []string{
		"Test Heading",
		"hello there",
		"hello@example.com",
		"Katie's Appointment Booking System",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered email missing %q", want)
		}
	}
}

func TestDetailCardEscapesAndOrders(t *testing.T) {
	html := string(detailCard(map[string]string{
		"Title":    "<script>alert(1)</script>",
		"Location": "Studio",
	}, []string{"Title", "Location"}))

	if strings.Contains(html, "<script>") {
		t.Error("detail card did not escape HTML in values")
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Error("escaped value missing from card")
	}
	// Row order follows the order slice, not map iteration.
	if strings.Index(html, "Title") > strings.Index(html, "Location") {
		t.Error("rows rendered out of order")
	}
}

func TestParaEscapes(t *testing.T) {
	html := string(para(`Hi <b>"Katie"</b>`))
	if strings.Contains(html, "<b>") {
		t.Error("para did not escape HTML")
	}
	if !strings.Contains(html, "Hi") {
		t.Error("para lost its text")
	}
}
