package validation

import "testing"

func TestIsStrongPassword(t *testing.T) {
	cases := map[string]bool{
		"Admin@123":          true,
		"aB3$aB3$":           true,
		"admin@123":          false, // no upper case
		"ADMIN@123":          false, // no lower case
		"Admin@abc":          false, // no digit
		"Admin1234":          false, // no symbol
		"Ab1_":               false, // too short
		"Abcdefgh1234567_xy": false, // too long
		"Abc_1234":           true,  // underscore counts as a symbol
	}

	for pw, want := range cases {
		if got := IsStrongPassword(pw); got != want {
			t.Errorf("IsStrongPassword(%q) = %v, want %v", pw, got, want)
		}
	}
}

func TestIsValidName(t *testing.T) {
	if IsValidName("Ravi") {
		t.Error("short name accepted")
	}
	if !IsValidName("Student One") {
		t.Error("valid name rejected")
	}
}

func TestFormats(t *testing.T) {
	if !IsValidRegNo("2021CSE001") || IsValidRegNo("21 CSE") {
		t.Error("reg no pattern misbehaves")
	}
	if !IsValidPhone("+919876543210") || IsValidPhone("98765") {
		t.Error("phone pattern misbehaves")
	}
}
