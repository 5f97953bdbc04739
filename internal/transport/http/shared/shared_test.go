package shared

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2026-03-02")
	if err != nil {
		t.Fatalf("date-only parse failed: %v", err)
	}
	if got.Year() != 2026 || got.Month() != time.March || got.Day() != 2 {
		t.Fatalf("got %v", got)
	}

	got, err = ParseDate("2026-03-02T09:30:00+08:00")
	if err != nil {
		t.Fatalf("RFC3339 parse failed: %v", err)
	}
	if got.Hour() != 9 || got.Minute() != 30 {
		t.Fatalf("got %v", got)
	}

	got, err = ParseDate("")
	if err != nil || !got.IsZero() {
		t.Fatalf("empty input: got %v, %v", got, err)
	}

	if _, err := ParseDate("02/03/2026"); err == nil {
		t.Fatal("slash format must be rejected")
	}
}

func TestValidatorCollectsAndSorts(t *testing.T) {
	v := NewValidator()
	v.Required("lastName", "", "is required")
	v.Required("firstName", "", "is required")
	v.Required("email", "someone@example.com", "is required")
	v.Enum("decision", "maybe", []string{"approve", "reject"}, "must be approve or reject")
	v.Enum("stage", "APPLIED", []string{"applied", "endorsed"}, "unknown stage")

	if !v.HasIssues() {
		t.Fatal("expected issues")
	}
	issues := v.Issues()
	if len(issues) != 3 {
		t.Fatalf("issues = %+v, want 3", issues)
	}
	// Sorted by field.
	if issues[0].Field != "decision" || issues[1].Field != "firstName" || issues[2].Field != "lastName" {
		t.Fatalf("order = %+v", issues)
	}
}

func TestValidatorStructTags(t *testing.T) {
	type payload struct {
		Name  string  `validate:"required"`
		Email string  `validate:"required,email"`
		Units float64 `validate:"gte=0"`
	}

	v := NewValidator()
	v.Struct(payload{Email: "not-an-email", Units: -1})
	issues := v.Issues()
	if len(issues) != 3 {
		t.Fatalf("issues = %+v, want 3", issues)
	}
	byField := map[string]string{}
	for _, issue := range issues {
		byField[issue.Field] = issue.Reason
	}
	if byField["Name"] != "is required" {
		t.Errorf("Name reason = %q", byField["Name"])
	}
	if byField["Email"] != "must be a valid email address" {
		t.Errorf("Email reason = %q", byField["Email"])
	}
	if byField["Units"] != "must be at least 0" {
		t.Errorf("Units reason = %q", byField["Units"])
	}

	ok := NewValidator()
	ok.Struct(payload{Name: "x", Email: "x@example.com"})
	if ok.HasIssues() {
		t.Fatalf("valid payload flagged: %+v", ok.Issues())
	}
}
