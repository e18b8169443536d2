package domain

import (
	"strings"
	"testing"
)

func TestNewUsername(t *testing.T) {
	cases := []struct {
		name  string
		input string
		ok    bool
		want  string
	}{
		{"empty", "", false, ""},
		{"whitespace only", "   ", false, ""},
		{"too short", "ab", false, ""},
		{"too short after trim", "  ab  ", false, ""},
		{"minimum length", "abc", true, "abc"},
		{"trimmed", "  alice  ", true, "alice"},
		{"maximum length", strings.Repeat("a", 50), true, strings.Repeat("a", 50)},
		{"too long", strings.Repeat("a", 51), false, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := NewUsername(tc.input)
			if result.IsSuccess() != tc.ok {
				t.Fatalf("NewUsername(%q): success=%v, want %v (err=%q)", tc.input, result.IsSuccess(), tc.ok, result.Err())
			}
			if tc.ok && result.Value().String() != tc.want {
				t.Fatalf("NewUsername(%q) = %q, want %q", tc.input, result.Value().String(), tc.want)
			}
		})
	}
}

func TestNewPassword(t *testing.T) {
	cases := []struct {
		name  string
		input string
		ok    bool
	}{
		{"empty", "", false},
		{"whitespace only", "      ", false},
		{"too short", "abcde", false},
		{"minimum length", "abcdef", true},
		{"maximum length", strings.Repeat("p", 100), true},
		{"too long", strings.Repeat("p", 101), false},
		// Passwords are not trimmed: surrounding spaces count.
		{"spaces preserved", " abcd ", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := NewPassword(tc.input)
			if result.IsSuccess() != tc.ok {
				t.Fatalf("NewPassword(%q): success=%v, want %v (err=%q)", tc.input, result.IsSuccess(), tc.ok, result.Err())
			}
		})
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	password := NewPassword("secret1")
	if password.IsFailure() {
		t.Fatalf("NewPassword failed: %s", password.Err())
	}

	hashed := HashPassword(password.Value())
	if hashed.IsFailure() {
		t.Fatalf("HashPassword failed: %s", hashed.Err())
	}

	hash := hashed.Value()
	if !hash.Matches("secret1") {
		t.Fatal("hash does not match original password")
	}
	if hash.Matches("secret2") {
		t.Fatal("hash matched a different password")
	}
	if hash.Matches("") {
		t.Fatal("hash matched the empty string")
	}
}

// bcrypt reads only the first 72 bytes, but every password up to the 100-char
// validation limit must hash and verify.
func TestPasswordHashLongPasswords(t *testing.T) {
	for _, length := range []int{72, 73, 100} {
		long := strings.Repeat("p", length)

		hashed := HashPassword(NewPassword(long).Value())
		if hashed.IsFailure() {
			t.Fatalf("HashPassword with %d chars failed: %s", length, hashed.Err())
		}
		if !hashed.Value().Matches(long) {
			t.Fatalf("%d-char password does not verify against its own hash", length)
		}
		if hashed.Value().Matches(strings.Repeat("q", length)) {
			t.Fatalf("different %d-char password must not match", length)
		}
	}

	// Candidates agreeing on the first 72 bytes are equivalent to bcrypt.
	hash := HashPassword(NewPassword(strings.Repeat("p", 100)).Value()).Value()
	if !hash.Matches(strings.Repeat("p", 72) + "different-tail") {
		t.Fatal("candidates identical in the first 72 bytes must match")
	}
}

func TestPasswordHashFromStored(t *testing.T) {
	if result := PasswordHashFromStored(""); result.IsSuccess() {
		t.Fatal("expected failure for empty stored hash")
	}
	if result := PasswordHashFromStored("  "); result.IsSuccess() {
		t.Fatal("expected failure for whitespace stored hash")
	}
	if result := PasswordHashFromStored("$2a$10$abcdefg"); result.IsFailure() {
		t.Fatalf("expected success for opaque stored hash: %s", result.Err())
	}
}

func TestPasswordNeverPrintsValue(t *testing.T) {
	password := NewPassword("secret1").Value()
	if password.String() != "***" {
		t.Fatalf("Password.String() = %q, want masked", password.String())
	}

	hash := HashPassword(password).Value()
	if hash.String() != "***" {
		t.Fatalf("PasswordHash.String() = %q, want masked", hash.String())
	}
}

func TestNewProjectName(t *testing.T) {
	cases := []struct {
		name  string
		input string
		ok    bool
		want  string
	}{
		{"empty", "", false, ""},
		{"whitespace only", "  ", false, ""},
		{"single char", "P", true, "P"},
		{"trimmed", "  Personal  ", true, "Personal"},
		{"maximum length", strings.Repeat("n", 100), true, strings.Repeat("n", 100)},
		{"too long", strings.Repeat("n", 101), false, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := NewProjectName(tc.input)
			if result.IsSuccess() != tc.ok {
				t.Fatalf("NewProjectName(%q): success=%v, want %v (err=%q)", tc.input, result.IsSuccess(), tc.ok, result.Err())
			}
			if tc.ok && result.Value().String() != tc.want {
				t.Fatalf("NewProjectName(%q) = %q, want %q", tc.input, result.Value().String(), tc.want)
			}
		})
	}
}

func TestNewTaskTitle(t *testing.T) {
	cases := []struct {
		name  string
		input string
		ok    bool
	}{
		{"empty", "", false},
		{"whitespace only", " \t ", false},
		{"single char", "x", true},
		{"maximum length", strings.Repeat("t", 200), true},
		{"too long", strings.Repeat("t", 201), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := NewTaskTitle(tc.input)
			if result.IsSuccess() != tc.ok {
				t.Fatalf("NewTaskTitle(%q): success=%v, want %v (err=%q)", tc.input, result.IsSuccess(), tc.ok, result.Err())
			}
		})
	}
}

func TestNewTaskDescription(t *testing.T) {
	if result := NewTaskDescription(""); result.IsFailure() {
		t.Fatalf("empty description should be valid: %s", result.Err())
	}
	if result := NewTaskDescription("  trimmed  "); result.IsFailure() || result.Value().String() != "trimmed" {
		t.Fatalf("description not trimmed: %q", result.Value().String())
	}
	if result := NewTaskDescription(strings.Repeat("d", 1000)); result.IsFailure() {
		t.Fatalf("1000 chars should be valid: %s", result.Err())
	}
	if result := NewTaskDescription(strings.Repeat("d", 1001)); result.IsSuccess() {
		t.Fatal("1001 chars should fail")
	}
}

func TestResultValuePanicsOnFailure(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when reading Value of a failed result")
		}
	}()

	Fail[Username]("boom").Value()
}
