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

func TestIsNumeric(t *testing.T) {
	valid := []string{"0", "42", "000123"}
	invalid := []string{"", "12a", "-1", "1.5", " 42"}
	for _, s := range valid {
		if !IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2024-02-29")
	if !ok {
		t.Fatal("IsValidDate(2024-02-29) = false, want true")
	}
	if date.Year() != 2024 || date.Month() != 2 || date.Day() != 29 {
		t.Errorf("IsValidDate(2024-02-29) parsed as %v", date)
	}

	invalid := []string{"", "2024-13-01", "2023-02-29", "01-02-2024", "2024/01/02"}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"Present", "Absent", "Leave"}
	if !IsInSlice("Absent", slice) {
		t.Error("IsInSlice(Absent) = false, want true")
	}
	if IsInSlice("absent", slice) {
		t.Error("IsInSlice(absent) = true, want false")
	}
	if IsInSlice("", nil) {
		t.Error("IsInSlice on nil slice = true, want false")
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "email is required"},
		{Field: "date", Message: "expected YYYY-MM-DD"},
	}

	want := "email: email is required; date: expected YYYY-MM-DD"
	if errs.Error() != want {
		t.Errorf("Error() = %q, want %q", errs.Error(), want)
	}

	m := errs.ToMap()
	if m["email"] != "email is required" || m["date"] != "expected YYYY-MM-DD" {
		t.Errorf("ToMap() = %v", m)
	}
}
