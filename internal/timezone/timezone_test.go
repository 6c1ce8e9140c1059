package timezone

import "testing"

func TestIsValid(t *testing.T) {
	if !IsValid(DefaultTimezone) {
		t.Errorf("default timezone %q rejected", DefaultTimezone)
	}
	if IsValid("") || IsValid("Marte/Olympus") {
		t.Error("invalid timezone accepted")
	}
}

func TestLocationFallsBack(t *testing.T) {
	if got := Location("Marte/Olympus"); got.String() != DefaultTimezone {
		t.Errorf("Location fallback = %q", got)
	}
	if got := Location("America/Montevideo"); got.String() != "America/Montevideo" {
		t.Errorf("Location = %q", got)
	}
}
