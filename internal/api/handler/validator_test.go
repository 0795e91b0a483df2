package handler

import (
	"strings"
	"testing"
)

func TestValidate_MaxLength(t *testing.T) {
	ev := NewValidator()

	req := submitRequestRequest{
		UserName:     "Asha",
		UserPhone:    "9876543210",
		ServiceName:  "PAN Card",
		ServiceID:    "2",
		AadharNumber: "1234567890123", // 13 chars, limit is 12
	}
	err := ev.Validate(req)
	if err == nil {
		t.Fatal("expected validation error for over-long aadhar number")
	}
	if got := err.Error(); got != "aadharnumber must be at most 12 characters" {
		t.Errorf("unexpected message: %q", got)
	}

	req.AadharNumber = "123456789012"
	if err := ev.Validate(req); err != nil {
		t.Errorf("valid request rejected: %v", err)
	}

	// An empty aadhar number is optional, not a violation.
	req.AadharNumber = ""
	if err := ev.Validate(req); err != nil {
		t.Errorf("empty optional field rejected: %v", err)
	}
}

func TestValidate_UnmappedTagFallback(t *testing.T) {
	ev := NewValidator()

	in := struct {
		Email string `validate:"email"`
	}{Email: "not-an-email"}

	err := ev.Validate(in)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "failed validation (email)") {
		t.Errorf("unexpected fallback message: %q", err)
	}
}
