package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidDecimal(t *testing.T) {
	valid := []string{"0", "10", "420.00", "0.5", "999999.99"}
	invalid := []string{"", "-5", "1.", ".5", "1,5", "abc", "1.2.3", "5 "}
	for _, s := range valid {
		if !IsValidDecimal(s) {
			t.Errorf("IsValidDecimal(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidDecimal(s) {
			t.Errorf("IsValidDecimal(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2024-05-20"); !ok {
		t.Error("IsValidDate(\"2024-05-20\") = false, want true")
	}
	invalid := []string{"", "2024-13-01", "2024-05-32", "20-05-2024", "2024/05/20", "yesterday"}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	valid := []string{"+919812345001", "08123456789", "+1 555 012 3456", "555-012-3456-78"}
	invalid := []string{"", "12345", "phone", "+1234567890123456"}
	for _, s := range valid {
		if !IsValidPhoneNumber(s) {
			t.Errorf("IsValidPhoneNumber(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidPhoneNumber(s) {
			t.Errorf("IsValidPhoneNumber(%q) = true, want false", s)
		}
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "name is required"},
		{Field: "date", Message: "date must be in YYYY-MM-DD format"},
	}

	if got := errs.Error(); got != "name: name is required; date: date must be in YYYY-MM-DD format" {
		t.Errorf("Error() = %q", got)
	}

	m := errs.ToMap()
	if len(m) != 2 || m["name"] != "name is required" {
		t.Errorf("ToMap() = %v", m)
	}
}
