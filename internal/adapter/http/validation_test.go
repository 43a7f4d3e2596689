package http

import (
	"errors"
	"testing"
)

func TestHHMMValidation(t *testing.T) {
	type P struct {
		Start string `validate:"hhmm"`
	}
	cv := NewValidator()

	for _, s := range []string{"00:00", "09:00", "17:30", "23:59"} {
		if err := cv.Validate(P{Start: s}); err != nil {
			t.Fatalf("expected valid hhmm for %q, got err: %v", s, err)
		}
	}

	for _, s := range []string{
		"",        // empty
		"9:00",    // missing leading zero
		"24:00",   // hour out of range
		"12:60",   // minute out of range
		"12.30",   // wrong separator
		"noon",    // garbage
		"12:300",  // too long
		" 12:30 ", // padded
	} {
		err := cv.Validate(P{Start: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "Start", "24h clock time") {
			t.Fatalf("expected hhmm message for %q, got: %+v", s, fe)
		}
	}
}

func TestLeaveTypeValidation(t *testing.T) {
	type P struct {
		LeaveType string `validate:"leavetype"`
	}
	cv := NewValidator()

	for _, s := range []string{"annual", "sick", "long_service", "unpaid", "other"} {
		if err := cv.Validate(P{LeaveType: s}); err != nil {
			t.Fatalf("expected valid leave type %q, got %v", s, err)
		}
	}
	for _, s := range []string{"", "Annual", "vacation", "sick "} {
		err := cv.Validate(P{LeaveType: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "LeaveType", "known leave type") {
			t.Fatalf("expected leavetype message for %q, got %+v", s, fe)
		}
	}
}

func TestHalfHourValidation(t *testing.T) {
	type P struct {
		Hours float64 `validate:"halfhour"`
	}
	cv := NewValidator()

	for _, v := range []float64{0, 0.5, 8, 40.5, 80} {
		if err := cv.Validate(P{Hours: v}); err != nil {
			t.Fatalf("expected halfhour OK for %v, got %v", v, err)
		}
	}
	for _, v := range []float64{0.25, 8.1, 7.99} {
		err := cv.Validate(P{Hours: v})
		if err == nil {
			t.Fatalf("expected halfhour error for %v", v)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "Hours", "multiple of 0.5") {
			t.Fatalf("expected half-hour message for %v, got %+v", v, fe)
		}
	}
}

func TestRequiredAndBoundsMapping(t *testing.T) {
	type P struct {
		Name  string  `validate:"required"`
		Weeks int     `validate:"gte=1,lte=8"`
		Date  string  `validate:"datetime=2006-01-02"`
		Hours float64 `validate:"gt=0"`
	}
	cv := NewValidator()

	// Intentionally violate all
	err := cv.Validate(P{
		Name:  "",           // required
		Weeks: 0,            // gte=1
		Date:  "01/02/2024", // datetime
		Hours: 0,            // gt=0
	})
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	fe := ToFieldErrors(err)

	if !containsFieldMsg(fe, "Name", "is required") {
		t.Fatalf("missing 'is required' for Name: %+v", fe)
	}
	if !containsFieldMsg(fe, "Weeks", "greater than or equal to 1") {
		t.Fatalf("missing gte message for Weeks: %+v", fe)
	}
	if !containsFieldMsg(fe, "Date", "2006-01-02") {
		t.Fatalf("missing datetime message for Date: %+v", fe)
	}
	if !containsFieldMsg(fe, "Hours", "greater than 0") {
		t.Fatalf("missing gt message for Hours: %+v", fe)
	}

	// upper bound separately, gte passes first
	err = cv.Validate(P{Name: "x", Weeks: 9, Date: "2024-01-01", Hours: 1})
	if err == nil {
		t.Fatalf("expected lte violation")
	}
	if !containsFieldMsg(ToFieldErrors(err), "Weeks", "less than or equal to 8") {
		t.Fatalf("missing lte message: %+v", ToFieldErrors(err))
	}
}

func TestToFieldErrors_NonValidation(t *testing.T) {
	err := errors.New("boom")
	fe := ToFieldErrors(err)
	if len(fe) != 1 {
		t.Fatalf("expected 1 field error, got %d", len(fe))
	}
	if fe[0].Field != "_" || fe[0].Message != "boom" {
		t.Fatalf("unexpected mapping: %+v", fe[0])
	}
}
