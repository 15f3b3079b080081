package models

import "testing"

func validInput() Input {
	return Input{
		Name: "Alice", Phone: "123456789", Zone: 3,
		Date: "2025-06-01", StartTime: "10:00", EndTime: "10:30",
		Status: StatusArrived,
	}
}

func TestValidInputPasses(t *testing.T) {
	if bad := validInput().Validate(); len(bad) != 0 {
		t.Errorf("expected no failures, got %v", bad)
	}
}

func TestZoneRange(t *testing.T) {
	for _, zone := range []int{0, -1, 19} {
		in := validInput()
		in.Zone = zone
		if bad := in.Validate(); len(bad) != 1 || bad[0] != "zone" {
			t.Errorf("zone %d: expected [zone], got %v", zone, bad)
		}
	}
	for _, zone := range []int{1, 18} {
		in := validInput()
		in.Zone = zone
		if bad := in.Validate(); len(bad) != 0 {
			t.Errorf("zone %d: expected valid, got %v", zone, bad)
		}
	}
}

func TestEmailOnlyValidatedWhenPresent(t *testing.T) {
	in := validInput()
	in.Email = ""
	if bad := in.Validate(); len(bad) != 0 {
		t.Errorf("empty email must pass, got %v", bad)
	}

	in.Email = "not-an-email"
	if bad := in.Validate(); len(bad) != 1 || bad[0] != "email" {
		t.Errorf("expected [email], got %v", bad)
	}

	in.Email = "alice@example.com"
	if bad := in.Validate(); len(bad) != 0 {
		t.Errorf("valid email rejected: %v", bad)
	}
}

func TestTimeAcceptsSecondsPrecision(t *testing.T) {
	in := validInput()
	in.StartTime = "10:00:00"
	if bad := in.Validate(); len(bad) != 0 {
		t.Errorf("HH:MM:SS must be accepted, got %v", bad)
	}
}

func TestWhitespaceOnlyNameRejected(t *testing.T) {
	in := validInput()
	in.Name = "   "
	if bad := in.Validate(); len(bad) != 1 || bad[0] != "name" {
		t.Errorf("expected [name], got %v", bad)
	}
}

func TestApplyNormalizes(t *testing.T) {
	in := validInput()
	in.Email = ""
	in.StartTime = "10:00:30"
	in.Status = ""
	in.Name = " Alice "

	var r Reservation
	in.Apply(&r)

	if r.Email != nil {
		t.Errorf("empty email must be stored absent, got %q", *r.Email)
	}
	if r.StartTime != "10:00" {
		t.Errorf("expected clipped start time, got %q", r.StartTime)
	}
	if r.Status != StatusDefault {
		t.Errorf("expected default status, got %q", r.Status)
	}
	if r.Name != "Alice" {
		t.Errorf("expected trimmed name, got %q", r.Name)
	}
}

func TestDisplayStatusFallsBack(t *testing.T) {
	r := Reservation{Status: "Zaplaceno"}
	if got := r.DisplayStatus(); got != StatusDefault {
		t.Errorf("expected fallback to %q, got %q", StatusDefault, got)
	}
	// The stored value itself must not be rewritten.
	if r.Status != "Zaplaceno" {
		t.Errorf("stored status mutated to %q", r.Status)
	}
}

func TestStartInstant(t *testing.T) {
	r := Reservation{Date: "2025-06-01", StartTime: "10:30"}
	instant, ok := r.StartInstant()
	if !ok {
		t.Fatal("expected parseable instant")
	}
	if instant.Hour() != 10 || instant.Minute() != 30 {
		t.Errorf("unexpected instant %v", instant)
	}

	if _, ok := (Reservation{Date: "garbage", StartTime: "10:30"}).StartInstant(); ok {
		t.Error("expected unparseable date to report not ok")
	}
}
